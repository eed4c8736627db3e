package tree

import (
	"math"
	"strings"
)

// Weight returns the selection weight carried by n. Only finite numeric
// nodes carry weight; numeric strings do not.
func Weight(n *Node) (float64, bool) {
	if n == nil {
		return 0, false
	}
	switch n.Type {
	case IntType:
		return float64(n.Int), true
	case FloatType:
		if math.IsNaN(n.Float) || math.IsInf(n.Float, 0) {
			return 0, false
		}
		return n.Float, true
	default:
		return 0, false
	}
}

// IntWeight is Weight for integer accumulation: floats are truncated
// toward zero.
func IntWeight(n *Node) (int64, bool) {
	if n == nil {
		return 0, false
	}
	switch n.Type {
	case IntType:
		return n.Int, true
	case FloatType:
		if math.IsNaN(n.Float) || math.IsInf(n.Float, 0) {
			return 0, false
		}
		return int64(n.Float), true
	default:
		return 0, false
	}
}

// Live reports whether a weight node makes its candidate drawable.
func Live(weight *Node) bool {
	w, ok := Weight(weight)
	return ok && w > 0
}

// Normalize maps the strings "true" and "false", in any case, to booleans.
// Every other node is returned as is.
func Normalize(n *Node) *Node {
	if n == nil || n.Type != StringType {
		return n
	}
	switch strings.ToLower(n.String) {
	case "true":
		return FromBool(true)
	case "false":
		return FromBool(false)
	}
	return n
}

// Matches is the candidate equivalence used by every distribution
// operation: structural equality after Normalize.
func Matches(a, b *Node) bool {
	return Equal(Normalize(a), Normalize(b))
}

// AsInt reads an integer out of a scalar, accepting integral strings.
// It is meant for option values, not weights.
func AsInt(n *Node) (int64, bool) {
	if n == nil {
		return 0, false
	}
	switch n.Type {
	case IntType, FloatType:
		return IntWeight(n)
	case StringType:
		p := ParseScalar(strings.TrimSpace(n.String))
		if p.Type == IntType {
			return p.Int, true
		}
	}
	return 0, false
}
