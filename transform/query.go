package transform

import "github.com/Totox00/multiarchi-tools/tree"

// CanBe reports whether resolving node could yield cand. A nil node is an
// absent option and compares def instead.
func CanBe(node, def, cand *tree.Node) bool {
	if node == nil {
		return tree.Matches(def, cand)
	}
	if tree.Matches(node, cand) {
		return true
	}
	if !node.IsMapping() {
		return false
	}
	for i, k := range node.Keys {
		if tree.Matches(k, cand) && tree.Live(node.Values[i]) {
			return true
		}
	}
	return false
}

// CanBeOtherThan reports whether resolving node could yield anything
// other than cand.
func CanBeOtherThan(node, def, cand *tree.Node) bool {
	if node == nil {
		return !tree.Matches(def, cand)
	}
	if !node.IsMapping() {
		return !tree.Matches(node, cand)
	}
	for i, k := range node.Keys {
		if !tree.Matches(k, cand) && tree.Live(node.Values[i]) {
			return true
		}
	}
	return false
}
