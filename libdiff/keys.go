package libdiff

import "github.com/Totox00/multiarchi-tools/tree"

// KeyChange is one entry of a mapping diff. For Equal changes both
// values are set; otherwise only the value of the side that has the
// key.
type KeyChange struct {
	Op       Op
	Key      *tree.Node
	From, To *tree.Node
}

// DiffKeys diffs the keys of two mappings in order. Keys present on
// both sides are reported as Equal even when they moved, so that every
// shared key is reported once.
func DiffKeys(from, to *tree.Node) []KeyChange {
	es := Diff(from.Keys, to.Keys)
	res := make([]KeyChange, 0, len(es))
	for _, e := range es {
		switch e.Op {
		case Equal:
			res = append(res, KeyChange{Op: Equal, Key: from.Keys[e.From], From: from.Values[e.From], To: to.Values[e.To]})
		case Delete:
			k := from.Keys[e.From]
			if j := to.Index(k); j >= 0 {
				res = append(res, KeyChange{Op: Equal, Key: k, From: from.Values[e.From], To: to.Values[j]})
				continue
			}
			res = append(res, KeyChange{Op: Delete, Key: k, From: from.Values[e.From]})
		case Insert:
			k := to.Keys[e.To]
			if from.Index(k) >= 0 {
				continue
			}
			res = append(res, KeyChange{Op: Insert, Key: k, To: to.Values[e.To]})
		}
	}
	return res
}
