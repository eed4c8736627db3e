package rules

import (
	"fmt"
	"math"
	"sort"

	"github.com/Totox00/multiarchi-tools/tree"

	"github.com/goccy/go-yaml"
)

// Value is a YAML value inside a rule, such as the from and to candidates
// of a move.
type Value struct {
	Node *tree.Node
}

func (v *Value) UnmarshalYAML(unmarshal func(any) error) error {
	var x any
	if err := unmarshal(&x); err != nil {
		return err
	}
	n, err := fromAny(x)
	if err != nil {
		return err
	}
	v.Node = n
	return nil
}

func (v *Value) node() *tree.Node {
	if v == nil {
		return nil
	}
	return v.Node
}

// fromAny converts a decoded rule value or an expression result into a
// node. Ordered YAML mappings keep their order and key types; Go maps
// are sorted by key.
func fromAny(x any) (*tree.Node, error) {
	switch v := x.(type) {
	case nil:
		return tree.Null(), nil
	case *tree.Node:
		return v.Clone(), nil
	case bool:
		return tree.FromBool(v), nil
	case int:
		return tree.FromInt(int64(v)), nil
	case int64:
		return tree.FromInt(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, fmt.Errorf("%d out of range", v)
		}
		return tree.FromInt(int64(v)), nil
	case float64:
		return tree.FromFloat(v), nil
	case string:
		return tree.FromString(v), nil
	case []any:
		vals := make([]*tree.Node, len(v))
		for i, elt := range v {
			n, err := fromAny(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return tree.FromSlice(vals), nil
	case []string:
		return tree.FromStrings(v...), nil
	case yaml.MapSlice:
		res := tree.FromPairs()
		for _, item := range v {
			k, err := fromAny(item.Key)
			if err != nil {
				return nil, err
			}
			val, err := fromAny(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(k, val)
		}
		return res, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		res := tree.FromPairs()
		for _, k := range keys {
			val, err := fromAny(v[k])
			if err != nil {
				return nil, err
			}
			res.Set(tree.FromString(k), val)
		}
		return res, nil
	}
	return nil, fmt.Errorf("unsupported value %T", x)
}

// toAny converts a node into plain Go values for expressions. Mapping
// keys become their text.
func toAny(n *tree.Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case tree.MappingType:
		res := make(map[string]any, len(n.Keys))
		for i, k := range n.Keys {
			res[k.Text()] = toAny(n.Values[i])
		}
		return res
	case tree.SequenceType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = toAny(v)
		}
		return res
	case tree.StringType:
		return n.String
	case tree.IntType:
		return int(n.Int)
	case tree.FloatType:
		return n.Float
	case tree.BoolType:
		return n.Bool
	}
	return nil
}
