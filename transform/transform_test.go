package transform

import (
	"errors"
	"testing"

	"github.com/Totox00/multiarchi-tools/tree"
	"github.com/Totox00/multiarchi-tools/weighted"
)

func s(v string) *tree.Node { return tree.FromString(v) }

func atLeast(n int64) Predicate {
	return func(c *tree.Node) bool {
		v, ok := tree.IntWeight(c)
		return ok && v >= n
	}
}

func liveMass(n *tree.Node) float64 {
	total := 0.0
	for _, v := range n.Values {
		if w, ok := tree.Weight(v); ok && w > 0 {
			total += w
		}
	}
	return total
}

func TestMoveWeight(t *testing.T) {
	tests := []struct {
		name     string
		in       *tree.Node
		from, to *tree.Node
		want     *tree.Node
	}{
		{"dead source is dropped", tree.FromPairs("foo", 10, "bar", 0), s("bar"), s("baz"), tree.FromPairs("foo", 10)},
		{"new target appended", tree.FromPairs("a", 1, "b", 2), s("a"), s("c"), tree.FromPairs("b", 2, "c", 1)},
		{"merge into existing", tree.FromPairs("a", 1, "b", 2, "c", 3), s("a"), s("c"), tree.FromPairs("b", 2, "c", 4)},
		{"float into int truncates", tree.FromPairs("a", 1.9, "c", 3), s("a"), s("c"), tree.FromPairs("c", 4)},
		{"float kept when new", tree.FromPairs("a", 0.5), s("a"), s("c"), tree.FromPairs("c", 0.5)},
		{"dead target overwritten", tree.FromPairs("a", 5, "c", 0), s("a"), s("c"), tree.FromPairs("c", 5)},
		{"absent source", tree.FromPairs("a", 5), s("x"), s("c"), tree.FromPairs("a", 5)},
		{"scalar match", s("perfection"), s("perfection"), s("random"), s("random")},
		{"scalar other", s("grandpa"), s("perfection"), s("random"), s("grandpa")},
		{"bool string candidate", tree.FromPairs("True", 3, "false", 1), tree.FromBool(true), s("on"), tree.FromPairs("false", 1, "on", 3)},
		{"numeric string is not a number", tree.FromPairs("50", 3), tree.FromInt(50), s("x"), tree.FromPairs("50", 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveWeight(tt.in, tt.from, tt.to)
			if !tree.Equal(got, tt.want) {
				t.Errorf("got %s want %s", got.Text(), tt.want.Text())
			}
		})
	}
}

func TestMoveWeightMatching(t *testing.T) {
	tests := []struct {
		name string
		in   *tree.Node
		pred Predicate
		to   *tree.Node
		want *tree.Node
	}{
		{"threshold", tree.FromPairs("a", 40, "b", 60), func(c *tree.Node) bool { return c.String == "b" }, s("big"), tree.FromPairs("a", 40, "big", 60)},
		{"numeric candidates", tree.FromPairs(50, 10, 95, 20, 100, 5), atLeast(90), s("random-range-50-90"), tree.FromPairs(50, 10, "random-range-50-90", 25)},
		{"existing target kept in place", tree.FromPairs("t", 1, 95, 2, "x", 3), atLeast(90), s("t"), tree.FromPairs("t", 3, "x", 3)},
		{"dead matches removed", tree.FromPairs(95, 0, "x", 3), atLeast(90), s("t"), tree.FromPairs("x", 3)},
		{"no match", tree.FromPairs("x", 3), atLeast(90), s("t"), tree.FromPairs("x", 3)},
		{"scalar", tree.FromInt(95), atLeast(90), s("t"), s("t")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveWeightMatching(tt.in, tt.pred, tt.to)
			if !tree.Equal(got, tt.want) {
				t.Errorf("got %s want %s", got.Text(), tt.want.Text())
			}
		})
	}
}

func TestMassConservation(t *testing.T) {
	dists := []*tree.Node{
		tree.FromPairs("a", 1, "b", 2, "c", 3, "d", 0, "e", -4),
		tree.FromPairs("a", 10, "c", 5),
		tree.FromPairs("b", 7),
		tree.FromPairs("a", 0, "b", 0, "c", 1),
	}
	for _, d := range dists {
		before := liveMass(d)
		MoveWeight(d, s("a"), s("c"))
		MoveWeightMatching(d, func(c *tree.Node) bool { return c.String == "b" || c.String == "e" }, s("z"))
		if after := liveMass(d); after != before {
			t.Errorf("mass changed from %v to %v: %s", before, after, d.Text())
		}
		for _, v := range d.Values {
			if !tree.Live(v) && v.Int < 0 {
				t.Errorf("negative entry survived: %s", d.Text())
			}
		}
	}
}

func TestCanBe(t *testing.T) {
	yes := tree.FromBool(true)
	no := tree.FromBool(false)
	tests := []struct {
		name      string
		node      *tree.Node
		def, cand *tree.Node
		can, diff bool
	}{
		{"bool string", s("true"), no, yes, true, false},
		{"bool", yes, no, yes, true, false},
		{"absent uses default", nil, no, yes, false, true},
		{"absent default matches", nil, yes, yes, true, false},
		{"distribution live", tree.FromPairs("true", 1, "false", 0), no, yes, true, false},
		{"distribution dead", tree.FromPairs("true", 0, "false", 5), no, yes, false, true},
		{"distribution mixed", tree.FromPairs(true, 1, false, 1), no, yes, true, true},
		{"other scalar", s("allsanity"), s("random"), s("perfection"), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanBe(tt.node, tt.def, tt.cand); got != tt.can {
				t.Errorf("CanBe = %v", got)
			}
			if got := CanBeOtherThan(tt.node, tt.def, tt.cand); got != tt.diff {
				t.Errorf("CanBeOtherThan = %v", got)
			}
		})
	}
}

func TestKeyedOperations(t *testing.T) {
	opts := tree.FromPairs(
		"goal", tree.FromPairs("perfection", 2, "grandpa", 1),
		"trap_items", "medium",
		"death_link", "true",
		"minimum_difficulty", 3,
	)
	Rename(opts, "goal", s("perfection"), s("random"))
	Rename(opts, "missing", s("a"), s("b"))
	RenameOption(opts, "trap_items", "trap_difficulty")
	RenameTrueFalse(opts, "death_link", s("on"), s("off"))
	CopyOption(opts, "minimum_difficulty", "minimum_difficulty_standard", "minimum_difficulty_catch")

	want := tree.FromPairs(
		"goal", tree.FromPairs("grandpa", 1, "random", 2),
		"death_link", "on",
		"trap_difficulty", "medium",
		"minimum_difficulty_standard", 3,
		"minimum_difficulty_catch", 3,
	)
	if !tree.Equal(opts, want) {
		t.Errorf("got %s\nwant %s", opts.Text(), want.Text())
	}
	if opts.Has(s("missing")) {
		t.Errorf("absent option was created")
	}
	if !OptionCanBe(opts, "goal", s("x"), s("random")) {
		t.Errorf("goal can be random")
	}
	if OptionCanBeOtherThan(opts, "absent", s("x"), s("x")) {
		t.Errorf("absent option with matching default")
	}
}

func TestResolveNow(t *testing.T) {
	opts := tree.FromPairs("goal", tree.FromPairs("a", 0, "b", 4), "plain", "x")
	sel := weighted.NewSeeded(3)
	if err := ResolveNow(opts, "goal", sel); err != nil {
		t.Fatal(err)
	}
	if got := opts.GetString("goal"); got.Type != tree.StringType || got.String != "b" {
		t.Errorf("got %s", got.Text())
	}
	if opts.Keys[0].String != "goal" {
		t.Errorf("resolved option moved")
	}
	if err := ResolveNow(opts, "missing", sel); err != nil {
		t.Errorf("absent option: %v", err)
	}
	opts.SetString("dead", tree.FromPairs("a", 0))
	if err := ResolveNow(opts, "dead", sel); !errors.Is(err, weighted.ErrEmptyDistribution) {
		t.Errorf("expected ErrEmptyDistribution, got %v", err)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		in   *tree.Node
		want string
	}{
		{tree.FromPairs("a", 0, "b", 5), "b"},
		{tree.FromPairs("a", 1, "b", 5), "{a: 1, b: 5}"},
		{tree.FromPairs("a", 0, "b", 0), "{a, b}"},
		{tree.FromStrings("Story", "Seasonal"), "[Story, Seasonal]"},
		{tree.FromBool(false), "false"},
		{tree.Alias("x"), "Unknown"},
		{nil, "~"},
	}
	for _, tt := range tests {
		if got := Describe(tt.in); got != tt.want {
			t.Errorf("Describe(%s) = %q, want %q", tt.in.Text(), got, tt.want)
		}
	}
	if got := ValueOrDefault(tree.FromPairs(), "mods", "[]"); got != "[]" {
		t.Errorf("got %q", got)
	}
}
