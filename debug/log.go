package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Totox00/multiarchi-tools/encode"
	"github.com/Totox00/multiarchi-tools/tree"
)

var out io.Writer = os.Stderr

// Logf writes a debug line to stderr. Tree nodes are rendered as YAML and
// maps or slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, []string:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *tree.Node:
			args[i] = render(x)
		}
	}
	fmt.Fprintf(out, msg, args...)
}

func render(x *tree.Node) string {
	if x == nil {
		return "~"
	}
	if x.Type.IsScalar() {
		return x.Text()
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf); err != nil {
		return fmt.Sprintf("[raw *tree.Node] %s", x.Text())
	}
	return strings.TrimRight(buf.String(), "\n")
}
