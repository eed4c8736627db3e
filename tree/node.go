package tree

import (
	"math"
	"strconv"
	"strings"
)

// Node is one value of a document tree. Which fields are meaningful depends
// on Type:
//
//   - MappingType: Keys[i] is the key of Values[i]
//   - SequenceType: Values
//   - StringType, AliasType, InvalidType: String
//   - BoolType: Bool
//   - IntType: Int
//   - FloatType: Float
type Node struct {
	Type   Type
	Keys   []*Node
	Values []*Node

	String string
	Bool   bool
	Int    int64
	Float  float64
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntType, Int: v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: FloatType, Float: f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func Alias(name string) *Node {
	return &Node{Type: AliasType, String: name}
}

func Invalid(msg string) *Node {
	return &Node{Type: InvalidType, String: msg}
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals builds a mapping. Later duplicates of a key replace the
// value of the first occurrence.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: MappingType}
	res.Keys = make([]*Node, 0, len(kvs))
	res.Values = make([]*Node, 0, len(kvs))
	for _, kv := range kvs {
		key := kv.Key
		if key == nil {
			key = Null()
		}
		val := kv.Val
		if val == nil {
			val = Null()
		}
		res.Set(key, val)
	}
	return res
}

// FromPairs builds a string keyed mapping from alternating keys and values.
func FromPairs(kvs ...any) *Node {
	res := &Node{Type: MappingType}
	for i := 0; i+1 < len(kvs); i += 2 {
		res.Set(FromAny(kvs[i]), FromAny(kvs[i+1]))
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: SequenceType, Values: make([]*Node, len(vs))}
	copy(res.Values, vs)
	return res
}

func FromStrings(vs ...string) *Node {
	res := &Node{Type: SequenceType, Values: make([]*Node, len(vs))}
	for i, v := range vs {
		res.Values[i] = FromString(v)
	}
	return res
}

// FromAny converts simple Go values. Strings are kept as strings, unlike
// ParseScalar.
func FromAny(v any) *Node {
	switch x := v.(type) {
	case nil:
		return Null()
	case *Node:
		return x
	case string:
		return FromString(x)
	case bool:
		return FromBool(x)
	case int:
		return FromInt(int64(x))
	case int64:
		return FromInt(x)
	case uint64:
		return FromInt(int64(x))
	case float64:
		return FromFloat(x)
	case []*Node:
		return FromSlice(x)
	case []string:
		return FromStrings(x...)
	default:
		return Invalid("unsupported go value")
	}
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{}
	*res = *n
	if n.Keys != nil {
		res.Keys = make([]*Node, len(n.Keys))
		for i, k := range n.Keys {
			res.Keys[i] = k.Clone()
		}
	}
	if n.Values != nil {
		res.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Replace overwrites n in place with the contents of o, so that other
// holders of n observe the change.
func (n *Node) Replace(o *Node) {
	*n = *o.Clone()
}

func (n *Node) IsMapping() bool {
	return n != nil && n.Type == MappingType
}

func (n *Node) IsSequence() bool {
	return n != nil && n.Type == SequenceType
}

func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.Values)
}

// Index returns the position of key in a mapping, or -1.
func (n *Node) Index(key *Node) int {
	if !n.IsMapping() {
		return -1
	}
	for i, k := range n.Keys {
		if Equal(k, key) {
			return i
		}
	}
	return -1
}

func (n *Node) Get(key *Node) *Node {
	i := n.Index(key)
	if i < 0 {
		return nil
	}
	return n.Values[i]
}

// GetString looks up a plain string key.
func (n *Node) GetString(key string) *Node {
	if !n.IsMapping() {
		return nil
	}
	for i, k := range n.Keys {
		if k.Type == StringType && k.String == key {
			return n.Values[i]
		}
	}
	return nil
}

func (n *Node) Has(key *Node) bool {
	return n.Index(key) >= 0
}

// Set replaces the value for key in place, or appends a new entry.
// It returns the previous value if there was one.
func (n *Node) Set(key, val *Node) *Node {
	if n.Type != MappingType {
		return nil
	}
	if i := n.Index(key); i >= 0 {
		old := n.Values[i]
		n.Values[i] = val
		return old
	}
	n.Keys = append(n.Keys, key)
	n.Values = append(n.Values, val)
	return nil
}

func (n *Node) SetString(key string, val *Node) *Node {
	return n.Set(FromString(key), val)
}

// Delete removes key and returns its value.
func (n *Node) Delete(key *Node) *Node {
	i := n.Index(key)
	if i < 0 {
		return nil
	}
	val := n.Values[i]
	n.Keys = append(n.Keys[:i], n.Keys[i+1:]...)
	n.Values = append(n.Values[:i], n.Values[i+1:]...)
	return val
}

func (n *Node) DeleteString(key string) *Node {
	return n.Delete(FromString(key))
}

// DeleteFunc removes every entry for which f returns true and returns the
// number removed.
func (n *Node) DeleteFunc(f func(key, val *Node) bool) int {
	if !n.IsMapping() {
		return 0
	}
	j := 0
	for i := range n.Keys {
		if f(n.Keys[i], n.Values[i]) {
			continue
		}
		n.Keys[j] = n.Keys[i]
		n.Values[j] = n.Values[i]
		j++
	}
	removed := len(n.Keys) - j
	n.Keys = n.Keys[:j]
	n.Values = n.Values[:j]
	return removed
}

// RenameKey moves the value under from to the end of the mapping under
// to, replacing whatever to held.
func (n *Node) RenameKey(from, to *Node) bool {
	val := n.Delete(from)
	if val == nil {
		return false
	}
	n.Delete(to)
	n.Set(to, val)
	return true
}

func (n *Node) Append(vs ...*Node) {
	n.Values = append(n.Values, vs...)
}

// Visit walks the tree depth first. Keys are not visited.
func (n *Node) Visit(f func(n *Node) (bool, error)) error {
	dive, err := f(n)
	if err != nil {
		return err
	}
	if !dive {
		return nil
	}
	for _, v := range n.Values {
		if err := v.Visit(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseScalar resolves plain scalar text the way an untagged YAML plain
// scalar resolves.
func ParseScalar(v string) *Node {
	switch v {
	case "", "~", "null", "Null", "NULL":
		return Null()
	case "true", "True", "TRUE":
		return FromBool(true)
	case "false", "False", "FALSE":
		return FromBool(false)
	case ".inf", ".Inf", ".INF", "+.inf", "+.Inf", "+.INF":
		return FromFloat(math.Inf(1))
	case "-.inf", "-.Inf", "-.INF":
		return FromFloat(math.Inf(-1))
	case ".nan", ".NaN", ".NAN":
		return FromFloat(math.NaN())
	}
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return FromInt(i)
	}
	if i, ok := parsePrefixedInt(v); ok {
		return FromInt(i)
	}
	if strings.ContainsAny(v, "0123456789") && !strings.ContainsAny(v, "xXoObB_") {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return FromFloat(f)
		}
	}
	return FromString(v)
}

func parsePrefixedInt(v string) (int64, bool) {
	var base int
	switch {
	case strings.HasPrefix(v, "0x"):
		base = 16
	case strings.HasPrefix(v, "0o"):
		base = 8
	default:
		return 0, false
	}
	i, err := strconv.ParseInt(v[2:], base, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Text renders a scalar as plain text, with no quoting.
func (n *Node) Text() string {
	if n == nil {
		return "~"
	}
	switch n.Type {
	case NullType:
		return "~"
	case BoolType:
		return strconv.FormatBool(n.Bool)
	case IntType:
		return strconv.FormatInt(n.Int, 10)
	case FloatType:
		return FormatFloat(n.Float)
	case StringType:
		return n.String
	case AliasType:
		return "*" + n.String
	case InvalidType:
		return "Invalid"
	case SequenceType:
		parts := make([]string, len(n.Values))
		for i, v := range n.Values {
			parts[i] = v.Text()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case MappingType:
		parts := make([]string, len(n.Keys))
		for i, k := range n.Keys {
			parts[i] = k.Text() + ": " + n.Values[i].Text()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return ""
}

// FormatFloat formats f so that it reads back as a float.
func FormatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	v := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(v, ".eE") {
		v += ".0"
	}
	return v
}
