// Package compare reports how player documents changed between two runs
// of the tool, in terms the organisers can check by eye.
package compare

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Totox00/multiarchi-tools/libdiff"
	"github.com/Totox00/multiarchi-tools/transform"
	"github.com/Totox00/multiarchi-tools/tree"
)

var ErrMissing = errors.New("missing")

// Change is one difference. Path holds the option keys leading to it.
type Change struct {
	Path    []string
	Message string
}

func (c Change) String() string {
	if len(c.Path) == 0 {
		return c.Message
	}
	return strings.Join(c.Path, ": ") + ": " + c.Message
}

// Documents compares the game options of two player documents. Both
// must name a game and have options for it.
func Documents(old, cur *tree.Node) ([]Change, error) {
	var res []Change
	oldGame := old.GetString("game")
	if oldGame == nil {
		return nil, fmt.Errorf("old document: %w game", ErrMissing)
	}
	curGame := cur.GetString("game")
	if curGame == nil {
		return nil, fmt.Errorf("new document: %w game", ErrMissing)
	}
	if !tree.Equal(oldGame, curGame) {
		res = append(res, Change{Message: "Game name has been changed"})
	}
	oldOpts := old.Get(oldGame)
	if oldOpts == nil {
		return nil, fmt.Errorf("old document: %w game options", ErrMissing)
	}
	curOpts := cur.Get(curGame)
	if curOpts == nil {
		return nil, fmt.Errorf("new document: %w game options", ErrMissing)
	}
	return append(res, Nodes(oldOpts, curOpts)...), nil
}

// Nodes compares two option trees.
func Nodes(old, cur *tree.Node) []Change {
	c := &comparer{}
	c.compare(nil, old, cur)
	return c.changes
}

type comparer struct {
	changes []Change
}

func (c *comparer) add(path []string, format string, args ...any) {
	c.changes = append(c.changes, Change{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (c *comparer) compare(path []string, old, cur *tree.Node) {
	if old.Type != cur.Type {
		c.add(path, "Type changed")
		return
	}
	switch old.Type {
	case tree.NullType, tree.InvalidType:
	case tree.SequenceType:
		c.sequence(path, old, cur)
	case tree.MappingType:
		c.mapping(path, old, cur)
	case tree.StringType:
		if old.String == cur.String {
			return
		}
		if strings.Contains(old.String, "\n") && strings.Contains(cur.String, "\n") {
			c.add(path, "Text changed: %s", libdiff.Text(old.String, cur.String))
			return
		}
		c.add(path, "Value changed from %s to %s", old.String, cur.String)
	default:
		if !tree.Equal(old, cur) {
			c.add(path, "Value changed from %s to %s", old.Text(), cur.Text())
		}
	}
}

func (c *comparer) sequence(path []string, old, cur *tree.Node) {
	if len(old.Values) != len(cur.Values) {
		c.add(path, "Length changed from %d to %d", len(old.Values), len(cur.Values))
		return
	}
	var removed, added []string
	for _, e := range libdiff.Diff(old.Values, cur.Values) {
		switch e.Op {
		case libdiff.Delete:
			if v := old.Values[e.From]; !contains(cur, v) {
				removed = append(removed, transform.Describe(v))
			}
		case libdiff.Insert:
			if v := cur.Values[e.To]; !contains(old, v) {
				added = append(added, transform.Describe(v))
			}
		}
	}
	for _, r := range removed {
		c.add(path, "`%s` removed", r)
	}
	for _, a := range added {
		c.add(path, "`%s` added", a)
	}
	if len(removed)+len(added) == 0 && !tree.Equal(old, cur) {
		c.add(path, "Order changed from %s to %s", transform.Describe(old), transform.Describe(cur))
	}
}

func (c *comparer) mapping(path []string, old, cur *tree.Node) {
	changes := libdiff.DiffKeys(old, cur)
	for _, kc := range changes {
		switch kc.Op {
		case libdiff.Equal:
			c.compare(sub(path, kc.Key), kc.From, kc.To)
		case libdiff.Delete:
			c.add(path, "Key `%s` removed", transform.Describe(kc.Key))
		}
	}
	for _, kc := range changes {
		if kc.Op == libdiff.Insert {
			c.add(path, "Key `%s` added", transform.Describe(kc.Key))
		}
	}
}

func sub(path []string, key *tree.Node) []string {
	res := make([]string, len(path), len(path)+1)
	copy(res, path)
	return append(res, transform.Describe(key))
}

func contains(seq, v *tree.Node) bool {
	for _, x := range seq.Values {
		if tree.Equal(x, v) {
			return true
		}
	}
	return false
}
