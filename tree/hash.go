package tree

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the node, consistent with
// Equal within one process.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("tree: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(n.Type))

	var b [8]byte
	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntType:
		binary.LittleEndian.PutUint64(b[:], uint64(n.Int))
		h.Write(b[:])
	case FloatType:
		bits := math.Float64bits(n.Float)
		switch {
		case math.IsNaN(n.Float):
			bits = math.Float64bits(math.NaN())
		case n.Float == 0:
			bits = 0
		}
		binary.LittleEndian.PutUint64(b[:], bits)
		h.Write(b[:])
	case StringType, AliasType, InvalidType:
		h.WriteString(n.String)
	case SequenceType:
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case MappingType:
		for i, k := range n.Keys {
			binary.LittleEndian.PutUint64(b[:], k.Hash())
			h.Write(b[:])
			binary.LittleEndian.PutUint64(b[:], n.Values[i].Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}

// Set is a set of nodes under structural equality.
type Set struct {
	buckets map[uint64][]*Node
}

func NewSet(ns ...*Node) *Set {
	s := &Set{buckets: map[uint64][]*Node{}}
	for _, n := range ns {
		s.Add(n)
	}
	return s
}

func (s *Set) Add(n *Node) bool {
	if s.Has(n) {
		return false
	}
	h := n.Hash()
	s.buckets[h] = append(s.buckets[h], n)
	return true
}

func (s *Set) Has(n *Node) bool {
	for _, o := range s.buckets[n.Hash()] {
		if Equal(o, n) {
			return true
		}
	}
	return false
}
