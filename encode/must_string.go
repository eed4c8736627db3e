package encode

import (
	"strings"

	"github.com/Totox00/multiarchi-tools/tree"
)

// MustString renders node as a single trimmed document. It panics on
// nodes that cannot be encoded, so it is meant for tests and messages.
func MustString(node *tree.Node) string {
	var b strings.Builder
	if err := Encode(node, &b); err != nil {
		panic(err)
	}
	return strings.TrimSpace(b.String())
}
