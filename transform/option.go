package transform

import (
	"fmt"

	"github.com/Totox00/multiarchi-tools/tree"
	"github.com/Totox00/multiarchi-tools/weighted"
)

// Rename applies MoveWeight to the option named key.
func Rename(m *tree.Node, key string, from, to *tree.Node) {
	v := m.GetString(key)
	if v == nil {
		return
	}
	if nv := MoveWeight(v, from, to); nv != v {
		m.SetString(key, nv)
	}
}

// RenameMatching applies MoveWeightMatching to the option named key.
func RenameMatching(m *tree.Node, key string, pred Predicate, to *tree.Node) {
	v := m.GetString(key)
	if v == nil {
		return
	}
	if nv := MoveWeightMatching(v, pred, to); nv != v {
		m.SetString(key, nv)
	}
}

// OptionCanBe reports whether the option named key can resolve to cand,
// with def standing in for a missing option.
func OptionCanBe(m *tree.Node, key string, def, cand *tree.Node) bool {
	return CanBe(m.GetString(key), def, cand)
}

// OptionCanBeOtherThan reports whether the option named key can resolve
// to something other than cand.
func OptionCanBeOtherThan(m *tree.Node, key string, def, cand *tree.Node) bool {
	return CanBeOtherThan(m.GetString(key), def, cand)
}

// ResolveNow replaces the distribution at key with one value drawn from
// it. A nil selector uses weighted.Default.
func ResolveNow(m *tree.Node, key string, sel *weighted.Selector) error {
	v := m.GetString(key)
	if !v.IsMapping() {
		return nil
	}
	if sel == nil {
		sel = weighted.Default()
	}
	r, err := sel.Draw(v)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", key, err)
	}
	m.SetString(key, r)
	return nil
}

// RenameOption moves the option from to the key to, at the end of the
// mapping.
func RenameOption(m *tree.Node, from, to string) bool {
	return m.RenameKey(tree.FromString(from), tree.FromString(to))
}

// RenameTrueFalse renames the boolean candidates of an option that
// stopped being a toggle.
func RenameTrueFalse(m *tree.Node, key string, ifTrue, ifFalse *tree.Node) {
	Rename(m, key, tree.FromBool(true), ifTrue)
	Rename(m, key, tree.FromBool(false), ifFalse)
}

// CopyOption copies the option from into each of the keys to and removes
// from, unless from is itself among them.
func CopyOption(m *tree.Node, from string, to ...string) {
	v := m.DeleteString(from)
	if v == nil {
		return
	}
	for _, k := range to {
		m.SetString(k, v.Clone())
	}
}

// ValueOrDefault describes the option at key, or returns def when it is
// absent.
func ValueOrDefault(m *tree.Node, key, def string) string {
	v := m.GetString(key)
	if v == nil {
		return def
	}
	return Describe(v)
}
