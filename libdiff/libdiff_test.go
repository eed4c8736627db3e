package libdiff

import (
	"testing"

	"github.com/Totox00/multiarchi-tools/tree"

	"github.com/google/go-cmp/cmp"
)

func strs(vs ...string) []*tree.Node {
	res := make([]*tree.Node, len(vs))
	for i, v := range vs {
		res[i] = tree.FromString(v)
	}
	return res
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to []*tree.Node
		want     []Edit
	}{
		{"same", strs("a", "b"), strs("a", "b"), []Edit{{Equal, 0, 0}, {Equal, 1, 1}}},
		{"insert", strs("a"), strs("a", "b"), []Edit{{Equal, 0, 0}, {Insert, -1, 1}}},
		{"delete", strs("a", "b"), strs("b"), []Edit{{Delete, 0, -1}, {Equal, 1, 0}}},
		{"empty", nil, strs("x"), []Edit{{Insert, -1, 0}}},
		{
			"structural",
			[]*tree.Node{tree.FromPairs("k", 1), tree.FromInt(2)},
			[]*tree.Node{tree.FromPairs("k", 1), tree.FromString("2")},
			[]Edit{{Equal, 0, 0}, {Delete, 1, -1}, {Insert, -1, 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.from, tt.to)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			back := Reverse(got)
			for i, e := range back {
				if e.Op == Insert && got[i].Op != Delete {
					t.Errorf("reverse %d: %v", i, e)
				}
			}
		})
	}
}

func TestDiffKeys(t *testing.T) {
	from := tree.FromPairs("a", 1, "b", 2, "c", 3)
	to := tree.FromPairs("c", 3, "a", 5, "d", 4)
	got := DiffKeys(from, to)
	var ops []string
	for _, kc := range got {
		ops = append(ops, kc.Op.String()+" "+kc.Key.Text())
	}
	want := []string{"equal a", "delete b", "equal c", "insert d"}
	if len(ops) != len(want) {
		t.Fatalf("got %v", ops)
	}
	seen := map[string]bool{}
	for _, o := range ops {
		seen[o] = true
	}
	for _, w := range want {
		if !seen[w] {
			t.Errorf("missing %q in %v", w, ops)
		}
	}
	for _, kc := range got {
		if kc.Op == Equal && kc.Key.Text() == "a" && kc.To.Int != 5 {
			t.Errorf("a paired with %s", kc.To.Text())
		}
	}
}

func TestText(t *testing.T) {
	if got, want := Text("hello bob", "hello amy"), "hello [-bob-]{+amy+}"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	got := Text("a\nb\nc\n", "a\nx\nc\n")
	if want := "a\n[-b\n-]{+x\n+}c\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
