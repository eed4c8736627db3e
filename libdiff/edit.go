package libdiff

import (
	"unicode/utf8"

	"github.com/Totox00/multiarchi-tools/tree"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) String() string {
	switch o {
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	}
	return "equal"
}

// Edit is one step of an edit script. From and To index the two
// sequences; the one an edit does not touch is -1.
type Edit struct {
	Op   Op
	From int
	To   int
}

// Diff returns an edit script turning from into to.
func Diff(from, to []*tree.Node) []Edit {
	c := &classes{}
	fromRunes := c.runes(from)
	toRunes := c.runes(to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	res := make([]Edit, 0, max(len(from), len(to)))
	fi, ti := 0, 0
	for i := range diffs {
		n := utf8.RuneCountInString(diffs[i].Text)
		for range n {
			switch diffs[i].Type {
			case diffpatch.DiffDelete:
				res = append(res, Edit{Op: Delete, From: fi, To: -1})
				fi++
			case diffpatch.DiffInsert:
				res = append(res, Edit{Op: Insert, From: -1, To: ti})
				ti++
			case diffpatch.DiffEqual:
				res = append(res, Edit{Op: Equal, From: fi, To: ti})
				fi++
				ti++
			}
		}
	}
	return res
}

// Reverse returns the script turning to back into from.
func Reverse(es []Edit) []Edit {
	res := make([]Edit, len(es))
	for i, e := range es {
		switch e.Op {
		case Delete:
			e.Op = Insert
		case Insert:
			e.Op = Delete
		}
		e.From, e.To = e.To, e.From
		res[i] = e
	}
	return res
}

// classes numbers values by structural equality.
type classes struct {
	byHash map[uint64][]class
	n      int
}

type class struct {
	rep *tree.Node
	r   rune
}

func (c *classes) rune(n *tree.Node) rune {
	if c.byHash == nil {
		c.byHash = map[uint64][]class{}
	}
	h := n.Hash()
	for _, cl := range c.byHash[h] {
		if tree.Equal(cl.rep, n) {
			return cl.r
		}
	}
	r := rune(c.n)
	c.n++
	// skip the surrogate range, which does not survive string conversion.
	if r >= 0xD800 {
		r += 0x800
	}
	c.byHash[h] = append(c.byHash[h], class{rep: n, r: r})
	return r
}

func (c *classes) runes(ns []*tree.Node) []rune {
	rs := make([]rune, len(ns))
	for i, n := range ns {
		rs[i] = c.rune(n)
	}
	return rs
}
