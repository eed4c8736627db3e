package tree

import (
	"cmp"
	"math"
	"strings"
)

// Equal reports structural equality. Mapping entries are compared in order.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntType:
		return cmp.Compare(a.Int, b.Int)
	case FloatType:
		if math.IsNaN(a.Float) && math.IsNaN(b.Float) {
			return 0
		}
		return cmp.Compare(a.Float, b.Float)
	case StringType, AliasType, InvalidType:
		return strings.Compare(a.String, b.String)
	case SequenceType:
		return compareSequences(a, b)
	case MappingType:
		return compareMappings(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Invalid < Null < Bool < Int < Float < String < Alias < Sequence < Mapping
func rank(t Type) int {
	switch t {
	case InvalidType:
		return 0
	case NullType:
		return 1
	case BoolType:
		return 2
	case IntType:
		return 3
	case FloatType:
		return 4
	case StringType:
		return 5
	case AliasType:
		return 6
	case SequenceType:
		return 7
	case MappingType:
		return 8
	}
	return 100
}

func compareSequences(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	for i := range min(lenA, lenB) {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareMappings(a, b *Node) int {
	lenA := len(a.Keys)
	lenB := len(b.Keys)
	for i := range min(lenA, lenB) {
		if c := Compare(a.Keys[i], b.Keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
