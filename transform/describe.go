package transform

import (
	"strings"

	"github.com/Totox00/multiarchi-tools/tree"
)

// Describe renders an option value for report notes. Distributions show
// only their live entries, and a distribution with a single live entry
// shows just that candidate.
func Describe(n *tree.Node) string {
	if n == nil {
		return "~"
	}
	switch n.Type {
	case tree.AliasType:
		return "Unknown"
	case tree.SequenceType:
		parts := make([]string, len(n.Values))
		for i, v := range n.Values {
			parts[i] = Describe(v)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case tree.MappingType:
		var live []string
		last := -1
		for i, k := range n.Keys {
			if !tree.Live(n.Values[i]) {
				continue
			}
			last = i
			live = append(live, Describe(k)+": "+Describe(n.Values[i]))
		}
		switch len(live) {
		case 0:
			keys := make([]string, len(n.Keys))
			for i, k := range n.Keys {
				keys[i] = Describe(k)
			}
			return "{" + strings.Join(keys, ", ") + "}"
		case 1:
			return Describe(n.Keys[last])
		}
		return "{" + strings.Join(live, ", ") + "}"
	}
	return n.Text()
}
