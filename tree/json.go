package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// MarshalJSON renders the node as plain JSON, keeping mapping order.
// Non-string keys are rendered through their scalar text.
func (n *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, n *Node) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}
	switch n.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType, IntType:
		buf.WriteString(n.Text())
	case FloatType:
		if math.IsInf(n.Float, 0) || math.IsNaN(n.Float) {
			return fmt.Errorf("%w: %s has no json form", ErrInvalid, n.Text())
		}
		d, err := json.Marshal(n.Float)
		if err != nil {
			return err
		}
		buf.Write(d)
	case StringType:
		return writeJSONString(buf, n.String)
	case AliasType:
		return fmt.Errorf("%w: unresolved alias %q", ErrInvalid, n.String)
	case InvalidType:
		return fmt.Errorf("%w: %s", ErrInvalid, n.String)
	case SequenceType:
		buf.WriteByte('[')
		for i, v := range n.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case MappingType:
		buf.WriteByte('{')
		for i, k := range n.Keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if !k.Type.IsScalar() {
				return fmt.Errorf("%w: composite key %s has no json form", ErrInvalid, k.Text())
			}
			if err := writeJSONString(buf, k.Text()); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, n.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: type %s", ErrInvalid, n.Type)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	d, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(d)
	return nil
}
