package weighted

import (
	"errors"
	"math"
	"testing"

	"github.com/Totox00/multiarchi-tools/tree"
)

func TestDrawScalar(t *testing.T) {
	s := NewSeeded(1)
	got, err := s.Draw(tree.FromString("Ocarina of Time"))
	if err != nil {
		t.Fatal(err)
	}
	if got.String != "Ocarina of Time" {
		t.Errorf("got %s", got.Text())
	}
}

func TestDrawFrequency(t *testing.T) {
	s := NewSeeded(42)
	dist := tree.FromPairs("A", 1, "B", 3)
	const n = 100000
	bs := 0
	for i := 0; i < n; i++ {
		v, err := s.Draw(dist)
		if err != nil {
			t.Fatal(err)
		}
		if v.String == "B" {
			bs++
		}
	}
	// 0.75 with a standard deviation of about 0.0014
	if f := float64(bs) / n; math.Abs(f-0.75) > 0.01 {
		t.Errorf("B drawn with frequency %f", f)
	}
}

func TestDrawSkipsInert(t *testing.T) {
	s := NewSeeded(7)
	dist := tree.FromPairs("zero", 0, "neg", -5, "str", "10", "live", 2.5)
	for i := 0; i < 200; i++ {
		v, err := s.Draw(dist)
		if err != nil {
			t.Fatal(err)
		}
		if v.String != "live" {
			t.Fatalf("drew inert candidate %s", v.Text())
		}
	}
	if dist.Len() != 4 {
		t.Errorf("draw modified its argument")
	}
}

func TestDrawEmpty(t *testing.T) {
	s := NewSeeded(1)
	for _, dist := range []*tree.Node{
		tree.FromPairs(),
		tree.FromPairs("a", 0, "b", -1),
		tree.FromPairs("a", "50"),
		tree.FromStrings("a"),
	} {
		if _, err := s.Draw(dist); !errors.Is(err, ErrEmptyDistribution) {
			t.Errorf("Draw(%s): expected ErrEmptyDistribution, got %v", dist.Text(), err)
		}
	}
}

func TestSeededRepeats(t *testing.T) {
	dist := tree.FromPairs("a", 1, "b", 1, "c", 1, "d", 1)
	a, b := NewSeeded(99), NewSeeded(99)
	for i := 0; i < 50; i++ {
		x, _ := a.Draw(dist)
		y, _ := b.Draw(dist)
		if !tree.Equal(x, y) {
			t.Fatalf("draw %d differs: %s %s", i, x.Text(), y.Text())
		}
	}
}

func TestCompositeCandidate(t *testing.T) {
	key := tree.FromStrings("x", "y")
	dist := tree.FromKeyVals([]tree.KeyVal{{Key: key, Val: tree.FromInt(1)}})
	v, err := Draw(dist)
	if err != nil {
		t.Fatal(err)
	}
	if !tree.Equal(v, key) {
		t.Errorf("got %s", v.Text())
	}
}
