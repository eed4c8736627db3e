package encode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Totox00/multiarchi-tools/parse"
	"github.com/Totox00/multiarchi-tools/tree"
	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

func encodeString(t *testing.T, n *tree.Node, opts ...EncodeOption) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, opts...); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestEncodeBlock(t *testing.T) {
	tests := []struct {
		name string
		in   *tree.Node
		want string
	}{
		{
			name: "player",
			in: tree.FromPairs(
				"name", "Foo",
				"game", "A Link to the Past",
				"A Link to the Past", tree.FromPairs(
					"progression_balancing", 50,
					"start_inventory", tree.FromPairs(),
					"local_items", tree.FromStrings("Bow", "Hookshot"),
					"death_link", false,
					"weight", 1.0,
					"nothing", nil,
				),
			),
			want: `name: Foo
game: A Link to the Past
A Link to the Past:
  progression_balancing: 50
  start_inventory: {}
  local_items:
    - Bow
    - Hookshot
  death_link: false
  weight: 1.0
  nothing: null
`,
		},
		{
			name: "sequences",
			in: tree.FromPairs("plando_items", tree.FromSlice([]*tree.Node{
				tree.FromPairs("items", tree.FromPairs("Bow", 1), "world", "Bob"),
				tree.FromStrings("a", "b"),
			})),
			want: `plando_items:
  - items:
      Bow: 1
    world: Bob
  - - a
    - b
`,
		},
		{
			name: "quoting",
			in: tree.FromPairs(
				"s1", "12",
				"s2", "yes",
				"s3", "",
				"s4", "a: b",
				"n", 12,
				"1_000", "x",
				"y", "on",
				"on", true,
			),
			want: `s1: "12"
s2: "yes"
s3: ""
s4: "a: b"
"n": 12
"1_000": x
"y": "on"
"on": true
`,
		},
		{
			name: "literals",
			in: tree.FromPairs(
				"text", "line1\nline2\n",
				"clip", "a\nb",
				"keep", "a\n\n",
				"seq", tree.FromStrings("x\ny\n"),
			),
			want: `text: |
  line1
  line2
clip: |-
  a
  b
keep: |+
  a

seq:
  - |
    x
    y
`,
		},
		{
			name: "composite keys",
			in: tree.FromKeyVals([]tree.KeyVal{
				{Key: tree.FromStrings("a", "b"), Val: tree.FromInt(1)},
				{Key: tree.FromPairs("k", "v"), Val: tree.FromPairs("x", 1)},
			}),
			want: `? [a, b]
: 1
? {k: v}
:
  x: 1
`,
		},
		{
			name: "scalar document",
			in:   tree.FromString("hello"),
			want: "hello\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, encodeString(t, tt.in)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeDocuments(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	docs := []*tree.Node{tree.FromPairs("a", 1), tree.FromPairs("b", 2)}
	if err := EncodeDocuments(docs, buf); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "---\na: 1\n---\nb: 2\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeInvalid(t *testing.T) {
	err := Encode(tree.FromPairs("a", tree.Invalid("oops")), bytes.NewBuffer(nil))
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("expected ErrEncoding, got %v", err)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString(tree.FromPairs("a", 1)); got != "a: 1" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeColorsDisabled(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()
	n := tree.FromPairs("a", tree.FromStrings("50%", "x"))
	if got, want := encodeString(t, n, EncodeColors(NewColors())), encodeString(t, n); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	in := tree.FromPairs(
		"name", "Foo",
		"strings", tree.FromStrings("yes", "12", "", "a: b", "line\nbreak\n", "1_000", "-dash", "#hash", "it's", "tab\tx", "null"),
		"opts", tree.FromPairs("weight", 1.0, "count", 50, "on", true, "none", nil),
		"empty", tree.FromSlice(nil),
	)
	docs, err := parse.Parse([]byte(encodeString(t, in)))
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 || !tree.Equal(docs[0], in) {
		t.Errorf("round trip changed the document:\n%s", encodeString(t, docs[0]))
	}
}
