// Package weighted draws concrete values from weighted distributions.
//
// A distribution is either a scalar, which always draws itself, or a
// mapping from candidate to weight. Only finite numeric weights greater
// than zero make a candidate drawable; see [tree.Weight].
package weighted

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Totox00/multiarchi-tools/debug"
	"github.com/Totox00/multiarchi-tools/tree"
)

// Selector draws from distributions using its own random source.
type Selector struct {
	rng *rand.Rand
}

// New returns a selector drawing from src.
func New(src rand.Source) *Selector {
	return &Selector{rng: rand.New(src)}
}

// NewSeeded returns a selector whose draws repeat for the same seed and
// the same sequence of distributions.
func NewSeeded(seed int64) *Selector {
	return New(rand.NewSource(seed))
}

// NewRandom returns a selector seeded from crypto/rand.
func NewRandom() (*Selector, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewSeeded(seed), nil
}

// Candidate is one drawable entry of a distribution.
type Candidate struct {
	Value  *tree.Node
	Weight float64
}

// Candidates lists the drawable entries of dist in mapping order. A
// scalar is a single candidate of weight 1.
func Candidates(dist *tree.Node) []Candidate {
	if dist == nil {
		return nil
	}
	switch dist.Type {
	case tree.MappingType:
	case tree.SequenceType, tree.InvalidType:
		return nil
	default:
		return []Candidate{{Value: dist, Weight: 1}}
	}
	res := make([]Candidate, 0, len(dist.Keys))
	for i, k := range dist.Keys {
		w, ok := tree.Weight(dist.Values[i])
		if !ok || w <= 0 {
			continue
		}
		res = append(res, Candidate{Value: k, Weight: w})
	}
	return res
}

// Draw picks one value of dist with probability proportional to its
// weight. The result is a copy; dist is not modified.
func (s *Selector) Draw(dist *tree.Node) (*tree.Node, error) {
	if dist != nil && dist.Type != tree.MappingType && dist.Type != tree.SequenceType {
		return dist.Clone(), nil
	}
	cs := Candidates(dist)
	total := 0.0
	for _, c := range cs {
		total += c.Weight
	}
	if len(cs) == 0 || total <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDistribution, dist.Text())
	}
	r := s.rng.Float64() * total
	pick := cs[len(cs)-1].Value
	for _, c := range cs {
		if r < c.Weight {
			pick = c.Value
			break
		}
		r -= c.Weight
	}
	if debug.Draw() {
		debug.Logf("draw %v -> %v\n", dist, pick)
	}
	return pick.Clone(), nil
}

var (
	defaultOnce sync.Once
	defaultSel  *Selector
)

// Default returns the process-wide selector used by [Draw].
func Default() *Selector {
	defaultOnce.Do(func() {
		seed, err := NewSeed()
		if err != nil {
			seed = time.Now().UnixNano()
		}
		defaultSel = NewSeeded(seed)
	})
	return defaultSel
}

// Draw draws from dist with the default selector.
func Draw(dist *tree.Node) (*tree.Node, error) {
	return Default().Draw(dist)
}
