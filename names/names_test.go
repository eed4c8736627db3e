package names

import (
	"errors"
	"strings"
	"testing"

	"github.com/Totox00/multiarchi-tools/encode"
	"github.com/Totox00/multiarchi-tools/parse"
	"github.com/Totox00/multiarchi-tools/tree"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, s string) *tree.Node {
	t.Helper()
	n, err := parse.ParseOne([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func checkTree(t *testing.T, got *tree.Node, want string) {
	t.Helper()
	w := mustParse(t, want)
	if !tree.Equal(got, w) {
		t.Errorf("got\n%s\nwant\n%s", encode.MustString(got), encode.MustString(w))
	}
}

func TestSetName(t *testing.T) {
	tests := []struct {
		name string
		game string
		in   string
		want string
		old  string
	}{
		{
			name: "replace",
			in:   "name: Bob\ngame: A\n",
			want: "name: P1\ngame: A\n",
			old:  "Bob",
		},
		{
			name: "insert",
			in:   "game: A\n",
			want: "game: A\nname: P1\n",
		},
		{
			name: "top level trigger",
			in: `name: Bob
triggers:
  - option_name: x
    options:
      null:
        name: Other
  - option_name: y
    options:
      ~:
        name: Other
        progression_balancing: 0
`,
			want: `name: P1
triggers:
  - option_name: y
    options:
      ~:
        progression_balancing: 0
`,
			old: "Bob",
		},
		{
			name: "game trigger",
			game: "A",
			in: `name: Bob
A:
  triggers:
    - option_name: x
      options:
        null: {name: Z}
        A: {goal: b}
`,
			want: `name: P1
A:
  triggers:
    - option_name: x
      options:
        A: {goal: b}
`,
			old: "Bob",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.in)
			old := SetName(doc, "P1", tt.game)
			checkTree(t, doc, tt.want)
			got := ""
			if old != nil {
				got = old.Text()
			}
			if got != tt.old {
				t.Errorf("old name %q want %q", got, tt.old)
			}
		})
	}
}

func TestRenamePlandoWorlds(t *testing.T) {
	docs := []*tree.Node{
		mustParse(t, `game: A
A:
  plando_items:
    - item: Sword
      world: Bob
    - items: {Bow: 1}
      world: [Bob, Carol, false]
`),
		mustParse(t, `game: B
plando_items:
  - item: Key
    world: Carol
`),
	}
	RenamePlandoWorlds(map[string]string{"Bob": "P1", "Carol": "P2"}, docs)
	checkTree(t, docs[0], `game: A
A:
  plando_items:
    - item: Sword
      world: P1
    - items: {Bow: 1}
      world: [P1, P2, false]
`)
	checkTree(t, docs[1], `game: B
plando_items:
  - item: Key
    world: P2
`)
}

const mappingText = `game A
items
Old Sword	Sword
locations
Old Cave	Cave
addexact items	Item Room

game B
items
locations
Both	Shared
`

func TestReadMapping(t *testing.T) {
	m, err := ReadMapping(strings.NewReader(mappingText))
	if err != nil {
		t.Fatal(err)
	}
	want := Mapping{
		"A": {
			Items:     map[string]string{"Old Sword": "Sword", "Old Cave": "Cave", "items": "Item Room"},
			Locations: map[string]string{"Old Cave": "Cave", "items": "Item Room"},
		},
		"B": {
			Items:     map[string]string{"Both": "Shared"},
			Locations: map[string]string{"Both": "Shared"},
		},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	_, err = ReadMapping(strings.NewReader("items\n"))
	if !errors.Is(err, ErrMapping) {
		t.Errorf("got %v", err)
	}
}

func TestRemapCommonOptions(t *testing.T) {
	m, err := ReadMapping(strings.NewReader(mappingText))
	if err != nil {
		t.Fatal(err)
	}
	doc := mustParse(t, `game: A
A:
  local_items: [Old Sword, Shield]
  start_inventory: {Old Sword: 1, Shield: 2}
  exclude_locations: [Old Cave]
  plando_items:
    - item: Old Sword
      location: Old Cave
    - items: {Old Sword: 2}
      locations: [Old Cave, Hill]
`)
	m.RemapCommonOptions(doc, "A")
	checkTree(t, doc, `game: A
A:
  local_items: [Sword, Shield]
  start_inventory: {Shield: 2, Sword: 1}
  exclude_locations: [Cave]
  plando_items:
    - item: Sword
      location: Cave
    - items: {Sword: 2}
      locations: [Cave, Hill]
`)
}
