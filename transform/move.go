package transform

import "github.com/Totox00/multiarchi-tools/tree"

// Predicate selects candidates of a distribution.
type Predicate func(candidate *tree.Node) bool

// Equals is the predicate matching one candidate.
func Equals(c *tree.Node) Predicate {
	return func(x *tree.Node) bool { return tree.Matches(x, c) }
}

// MoveWeight moves the weight of candidate from onto candidate to. If node
// itself is from, the result is to. Otherwise a mapping node is modified
// in place and returned. A from entry whose weight is not live is removed
// and nothing is added to to.
func MoveWeight(node, from, to *tree.Node) *tree.Node {
	if node == nil {
		return nil
	}
	if tree.Matches(node, from) {
		return to.Clone()
	}
	if !node.IsMapping() {
		return node
	}
	i := index(node, Equals(from))
	if i < 0 {
		return node
	}
	w := node.Values[i]
	removeAt(node, i)
	if !tree.Live(w) {
		return node
	}
	addWeight(node, to, w)
	return node
}

// MoveWeightMatching moves the weight of every candidate satisfying pred
// onto to. Matching entries are removed; to is kept or added only if the
// merged weight is live.
func MoveWeightMatching(node *tree.Node, pred Predicate, to *tree.Node) *tree.Node {
	if node == nil {
		return nil
	}
	if !node.IsMapping() {
		if pred(node) {
			return to.Clone()
		}
		return node
	}
	var acc *tree.Node
	target := index(node, Equals(to))
	if target >= 0 && tree.Live(node.Values[target]) {
		acc = node.Values[target].Clone()
	}
	matched := false
	for i, k := range node.Keys {
		if i == target || !pred(k) {
			continue
		}
		matched = true
		if w := node.Values[i]; tree.Live(w) {
			acc = accumulate(acc, w)
		}
	}
	if !matched {
		return node
	}
	toKey := to
	if target >= 0 {
		toKey = node.Keys[target]
	}
	node.DeleteFunc(func(k, _ *tree.Node) bool { return pred(k) })
	if acc == nil || !tree.Live(acc) {
		return node
	}
	if i := node.Index(toKey); i >= 0 {
		node.Values[i] = acc
		return node
	}
	node.Set(toKey.Clone(), acc)
	return node
}

// addWeight adds w onto the entry for to, or appends a new entry. A target
// whose own weight is not live is overwritten.
func addWeight(m, to, w *tree.Node) {
	i := index(m, Equals(to))
	if i < 0 {
		m.Set(to.Clone(), w.Clone())
		return
	}
	if !tree.Live(m.Values[i]) {
		m.Values[i] = w.Clone()
		return
	}
	m.Values[i] = accumulate(m.Values[i], w)
}

// accumulate adds w to acc. An integer accumulator stays an integer and
// takes floats truncated toward zero.
func accumulate(acc, w *tree.Node) *tree.Node {
	if acc == nil {
		return w.Clone()
	}
	switch acc.Type {
	case tree.IntType:
		n, _ := tree.IntWeight(w)
		return tree.FromInt(acc.Int + n)
	case tree.FloatType:
		f, _ := tree.Weight(w)
		return tree.FromFloat(acc.Float + f)
	}
	return w.Clone()
}

func index(m *tree.Node, pred Predicate) int {
	for i, k := range m.Keys {
		if pred(k) {
			return i
		}
	}
	return -1
}

func removeAt(m *tree.Node, i int) {
	m.Keys = append(m.Keys[:i], m.Keys[i+1:]...)
	m.Values = append(m.Values[:i], m.Values[i+1:]...)
}
