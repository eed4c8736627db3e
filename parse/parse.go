package parse

import (
	"fmt"
	"math"
	"strings"

	"github.com/Totox00/multiarchi-tools/tree"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// Parse parses every document of a YAML stream. Empty documents are
// skipped.
func Parse(d []byte, opts ...ParseOption) ([]*tree.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	f, err := parser.ParseBytes(d, 0, pOpts.parserOpts()...)
	if err != nil {
		if pOpts.filename != "" {
			return nil, fmt.Errorf("%w: %s: %w", ErrParse, pOpts.filename, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	res := make([]*tree.Node, 0, len(f.Docs))
	for _, doc := range f.Docs {
		if doc == nil || doc.Body == nil {
			continue
		}
		c := &converter{opts: pOpts, anchors: map[string]*tree.Node{}}
		res = append(res, c.node(doc.Body))
	}
	return res, nil
}

// ParseOne parses a single document. A stream with no documents yields
// null.
func ParseOne(d []byte, opts ...ParseOption) (*tree.Node, error) {
	docs, err := Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return tree.Null(), nil
	}
	return docs[0], nil
}

// Validate reports the first Invalid node in n, keys included.
func Validate(n *tree.Node) error {
	if n == nil {
		return nil
	}
	if n.Type == tree.InvalidType {
		return fmt.Errorf("%w: %s", ErrUnsupported, n.String)
	}
	for _, k := range n.Keys {
		if err := Validate(k); err != nil {
			return err
		}
	}
	for _, v := range n.Values {
		if err := Validate(v); err != nil {
			return err
		}
	}
	return nil
}

type converter struct {
	opts    *parseOpts
	anchors map[string]*tree.Node
}

func (c *converter) node(n ast.Node) *tree.Node {
	switch x := n.(type) {
	case nil:
		return tree.Null()
	case *ast.NullNode:
		return tree.Null()
	case *ast.BoolNode:
		return tree.FromBool(x.Value)
	case *ast.IntegerNode:
		switch v := x.Value.(type) {
		case int64:
			return tree.FromInt(v)
		case uint64:
			if v > math.MaxInt64 {
				return tree.FromFloat(float64(v))
			}
			return tree.FromInt(int64(v))
		}
		return tree.ParseScalar(x.Token.Value)
	case *ast.FloatNode:
		return tree.FromFloat(x.Value)
	case *ast.InfinityNode:
		return tree.FromFloat(x.Value)
	case *ast.NanNode:
		return tree.FromFloat(math.NaN())
	case *ast.StringNode:
		return tree.FromString(x.Value)
	case *ast.LiteralNode:
		if x.Value == nil {
			return tree.FromString("")
		}
		return tree.FromString(x.Value.Value)
	case *ast.MergeKeyNode:
		return tree.FromString("<<")
	case *ast.MappingKeyNode:
		return c.node(x.Value)
	case *ast.MappingValueNode:
		return c.mapping([]*ast.MappingValueNode{x})
	case *ast.MappingNode:
		return c.mapping(x.Values)
	case *ast.SequenceNode:
		vs := make([]*tree.Node, len(x.Values))
		for i, v := range x.Values {
			vs[i] = c.node(v)
		}
		return tree.FromSlice(vs)
	case *ast.AnchorNode:
		v := c.node(x.Value)
		c.anchors[text(x.Name)] = v
		return v
	case *ast.AliasNode:
		name := text(x.Value)
		if a, ok := c.anchors[name]; ok && !c.opts.aliases {
			return a.Clone()
		}
		return tree.Alias(name)
	case *ast.TagNode:
		return c.tagged(x)
	default:
		return tree.Invalid(fmt.Sprintf("%s at %s", n.Type(), pos(n)))
	}
}

func (c *converter) mapping(mvs []*ast.MappingValueNode) *tree.Node {
	kvs := make([]tree.KeyVal, 0, len(mvs))
	for _, mv := range mvs {
		kvs = append(kvs, tree.KeyVal{Key: c.node(mv.Key), Val: c.node(mv.Value)})
	}
	return tree.FromKeyVals(kvs)
}

func (c *converter) tagged(x *ast.TagNode) *tree.Node {
	tag := ""
	if x.Start != nil {
		tag = x.Start.Value
	}
	switch tag {
	case "!!str":
		if isScalar(x.Value) {
			return tree.FromString(text(x.Value))
		}
	case "!!null":
		return tree.Null()
	case "!!bool", "!!int", "!!float":
		if isScalar(x.Value) {
			return tree.ParseScalar(text(x.Value))
		}
	}
	return c.node(x.Value)
}

func isScalar(n ast.Node) bool {
	switch n.(type) {
	case *ast.MappingNode, *ast.MappingValueNode, *ast.SequenceNode, nil:
		return false
	}
	return true
}

func text(n ast.Node) string {
	switch x := n.(type) {
	case nil:
		return ""
	case *ast.StringNode:
		return x.Value
	case *ast.LiteralNode:
		if x.Value != nil {
			return x.Value.Value
		}
		return ""
	}
	if t := n.GetToken(); t != nil {
		return t.Value
	}
	return n.String()
}

func pos(n ast.Node) string {
	t := n.GetToken()
	if t == nil || t.Position == nil {
		return "?"
	}
	return fmt.Sprintf("%d:%d", t.Position.Line, t.Position.Column)
}

// Trim removes the newlines, carriage returns and byte order marks that
// editors leave around a document.
func Trim(text string) string {
	return strings.Trim(text, "\n\r\ufeff")
}
