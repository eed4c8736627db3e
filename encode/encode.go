package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/Totox00/multiarchi-tools/token"
	"github.com/Totox00/multiarchi-tools/tree"
)

type EncState struct {
	depth, indent int
	docStart      bool

	Color func(tree.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent:   2,
		docStart: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes a single document, without a document start marker.
func Encode(node *tree.Node, w io.Writer, opts ...EncodeOption) error {
	return encodeDoc(node, w, newEncState(opts))
}

// EncodeDocuments writes a stream of documents.
func EncodeDocuments(docs []*tree.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	for _, doc := range docs {
		if es.docStart {
			if err := writeString(w, applyColor(es, tree.NullType, DocColor, "---")+"\n"); err != nil {
				return err
			}
		}
		if err := encodeDoc(doc, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeDoc(node *tree.Node, w io.Writer, es *EncState) error {
	es.depth = 0
	if node == nil {
		node = tree.Null()
	}
	switch {
	case node.Type == tree.MappingType && len(node.Keys) != 0:
		return encodeMapping(node, w, es, false)
	case node.Type == tree.SequenceType && len(node.Values) != 0:
		return encodeSequence(node, w, es, false)
	case isBlockLit(node):
		return encodeBlockLit(node, w, es, 1)
	}
	v, err := scalar(node)
	if err != nil {
		return err
	}
	return writeString(w, applyColor(es, node.Type, ValueColor, v)+"\n")
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeIndent(w io.Writer, es *EncState) error {
	if es.depth == 0 {
		return nil
	}
	return writeString(w, strings.Repeat(" ", es.depth*es.indent))
}

func applyColor(es *EncState, t tree.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

// Mapping encoding

// encodeMapping writes the entries of a non-empty mapping at es.depth. If
// inline, the cursor already sits where the first key goes.
func encodeMapping(node *tree.Node, w io.Writer, es *EncState, inline bool) error {
	for i, k := range node.Keys {
		if i > 0 || !inline {
			if err := writeIndent(w, es); err != nil {
				return err
			}
		}
		if err := encodeKey(k, w, es); err != nil {
			return err
		}
		if err := encodeValue(node.Values[i], w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeKey(k *tree.Node, w io.Writer, es *EncState) error {
	sep := applyColor(es, tree.MappingType, SepColor, ":")
	if k.Type.IsScalar() {
		v, err := scalar(k)
		if err != nil {
			return err
		}
		return writeString(w, applyColor(es, k.Type, FieldColor, v)+sep)
	}
	f, err := flow(k)
	if err != nil {
		return err
	}
	q := applyColor(es, k.Type, SepColor, "?")
	if err := writeString(w, q+" "+applyColor(es, k.Type, FieldColor, f)+"\n"); err != nil {
		return err
	}
	if err := writeIndent(w, es); err != nil {
		return err
	}
	return writeString(w, sep)
}

func encodeValue(v *tree.Node, w io.Writer, es *EncState) error {
	if v == nil {
		v = tree.Null()
	}
	switch {
	case v.Type == tree.MappingType && len(v.Keys) != 0:
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		es.depth++
		defer func() { es.depth-- }()
		return encodeMapping(v, w, es, false)
	case v.Type == tree.SequenceType && len(v.Values) != 0:
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		es.depth++
		defer func() { es.depth-- }()
		return encodeSequence(v, w, es, false)
	case isBlockLit(v):
		if err := writeString(w, " "); err != nil {
			return err
		}
		return encodeBlockLit(v, w, es, es.depth+1)
	}
	s, err := scalar(v)
	if err != nil {
		return err
	}
	return writeString(w, " "+applyColor(es, v.Type, ValueColor, s)+"\n")
}

// Sequence encoding

func encodeSequence(node *tree.Node, w io.Writer, es *EncState, inline bool) error {
	marker := applyColor(es, tree.SequenceType, SepColor, "-") + strings.Repeat(" ", es.indent-1)
	for i, item := range node.Values {
		if i > 0 || !inline {
			if err := writeIndent(w, es); err != nil {
				return err
			}
		}
		if err := writeString(w, marker); err != nil {
			return err
		}
		if err := encodeItem(item, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeItem(item *tree.Node, w io.Writer, es *EncState) error {
	if item == nil {
		item = tree.Null()
	}
	es.depth++
	defer func() { es.depth-- }()
	switch {
	case item.Type == tree.MappingType && len(item.Keys) != 0:
		return encodeMapping(item, w, es, true)
	case item.Type == tree.SequenceType && len(item.Values) != 0:
		return encodeSequence(item, w, es, true)
	case isBlockLit(item):
		return encodeBlockLit(item, w, es, es.depth)
	}
	s, err := scalar(item)
	if err != nil {
		return err
	}
	return writeString(w, applyColor(es, item.Type, ValueColor, s)+"\n")
}

// String encoding

func isBlockLit(n *tree.Node) bool {
	if n == nil || n.Type != tree.StringType || !strings.Contains(n.String, "\n") {
		return false
	}
	v := n.String
	if strings.TrimSpace(v) == "" {
		return false
	}
	first := true
	for _, ln := range strings.Split(strings.TrimRight(v, "\n"), "\n") {
		if ln == "" {
			continue
		}
		if strings.TrimSpace(ln) == "" {
			return false
		}
		if first && (ln[0] == ' ' || ln[0] == '\t') {
			return false
		}
		first = false
		for _, r := range ln {
			if r == '\t' {
				continue
			}
			if r == unicode.ReplacementChar || unicode.IsControl(r) {
				return false
			}
		}
	}
	return true
}

// encodeBlockLit writes a literal block header at the cursor and its
// content lines at the given nesting level.
func encodeBlockLit(n *tree.Node, w io.Writer, es *EncState, level int) error {
	v := n.String
	header := "|"
	switch {
	case !strings.HasSuffix(v, "\n"):
		header += "-"
	case strings.HasSuffix(v, "\n\n"):
		header += "+"
	}
	if err := writeString(w, applyColor(es, tree.StringType, SepColor, header)+"\n"); err != nil {
		return err
	}
	v = strings.TrimSuffix(v, "\n")
	pad := strings.Repeat(" ", level*es.indent)
	for _, ln := range strings.Split(v, "\n") {
		if ln == "" {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
			continue
		}
		if err := writeString(w, pad+applyColor(es, tree.StringType, LiteralColor, ln)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func quoteString(v string) string {
	if token.NeedsQuote(v, resolvesToString) {
		return token.Quote(v)
	}
	return v
}

func resolvesToString(v string) bool {
	if tree.ParseScalar(v).Type != tree.StringType {
		return false
	}
	return !numberish(v)
}

// numberish catches text some readers take as a number, such as 1_000.
func numberish(v string) bool {
	v = strings.TrimLeft(v, "+-")
	v = strings.TrimPrefix(v, ".")
	return v != "" && v[0] >= '0' && v[0] <= '9'
}

// Scalars

func scalar(n *tree.Node) (string, error) {
	switch n.Type {
	case tree.NullType:
		return "null", nil
	case tree.BoolType:
		return strconv.FormatBool(n.Bool), nil
	case tree.IntType:
		return strconv.FormatInt(n.Int, 10), nil
	case tree.FloatType:
		return tree.FormatFloat(n.Float), nil
	case tree.StringType:
		return quoteString(n.String), nil
	case tree.AliasType:
		return "*" + n.String, nil
	case tree.SequenceType:
		if len(n.Values) == 0 {
			return "[]", nil
		}
	case tree.MappingType:
		if len(n.Keys) == 0 {
			return "{}", nil
		}
	case tree.InvalidType:
		return "", fmt.Errorf("%w: invalid node %q", ErrEncoding, n.String)
	}
	return "", fmt.Errorf("%w: %s is not a scalar", ErrEncoding, n.Type)
}

// flow renders n on one line, for composite keys.
func flow(n *tree.Node) (string, error) {
	switch n.Type {
	case tree.SequenceType:
		parts := make([]string, len(n.Values))
		for i, v := range n.Values {
			p, err := flow(v)
			if err != nil {
				return "", err
			}
			parts[i] = p
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case tree.MappingType:
		parts := make([]string, len(n.Keys))
		for i, k := range n.Keys {
			kf, err := flow(k)
			if err != nil {
				return "", err
			}
			vf, err := flow(n.Values[i])
			if err != nil {
				return "", err
			}
			parts[i] = kf + ": " + vf
		}
		return "{" + strings.Join(parts, ", ") + "}", nil
	case tree.StringType:
		if strings.ContainsAny(n.String, ",[]{}") {
			return token.Quote(n.String), nil
		}
	}
	return scalar(n)
}
