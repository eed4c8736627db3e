package game

import (
	"fmt"

	"github.com/Totox00/multiarchi-tools/debug"
	"github.com/Totox00/multiarchi-tools/tree"
	"github.com/Totox00/multiarchi-tools/weighted"
)

var legacyNames = [][2]string{
	{"PokéPark Wii: Pikachu's Adventure [JP]", "PokePark"},
	{"PokéPark", "PokePark"},
}

// Canonical returns the current name of game.
func Canonical(game string) string {
	for _, l := range legacyNames {
		if l[0] == game {
			return l[1]
		}
	}
	return game
}

// Choose settles the game of doc and stores it back under "game". The
// boolean result is false when doc does not name a game it can use: the
// key is missing or holds neither a string nor a distribution.
//
// Legacy game names are replaced, both as option block keys and as
// candidates. When some candidate that can be drawn is in valid, the
// candidates outside valid are dropped before drawing. A nil selector
// uses weighted.Default.
func Choose(doc *tree.Node, sel *weighted.Selector, valid Set) (string, bool, error) {
	if !doc.IsMapping() {
		return "", false, nil
	}
	for _, l := range legacyNames {
		doc.RenameKey(tree.FromString(l[0]), tree.FromString(l[1]))
	}
	g := doc.GetString("game")
	if g == nil {
		return "", false, nil
	}
	var res string
	switch g.Type {
	case tree.StringType:
		res = Canonical(g.String)
	case tree.MappingType:
		dist := candidates(g, valid)
		if sel == nil {
			sel = weighted.Default()
		}
		v, err := sel.Draw(dist)
		if err != nil {
			return "", false, fmt.Errorf("%w: %w", ErrNoGame, err)
		}
		res = v.String
		if debug.Draw() {
			debug.Logf("game %s from %v\n", res, dist)
		}
	default:
		return "", false, nil
	}
	doc.SetString("game", tree.FromString(res))
	return res, true, nil
}

// candidates collects the game names of dist that carry a numeric
// weight, merging legacy names into their current one.
func candidates(dist *tree.Node, valid Set) *tree.Node {
	res := tree.FromPairs()
	for i, k := range dist.Keys {
		if k.Type != tree.StringType {
			continue
		}
		w, ok := tree.Weight(dist.Values[i])
		if !ok {
			continue
		}
		name := tree.FromString(Canonical(k.String))
		if prev := res.Get(name); prev != nil {
			// only live weights merge; a dead entry never cancels live mass
			p, _ := tree.Weight(prev)
			switch {
			case w <= 0:
				continue
			case p > 0:
				w += p
			}
		}
		res.Set(name, tree.FromFloat(w))
	}
	anyValid := false
	for i, k := range res.Keys {
		if tree.Live(res.Values[i]) && valid.Contains(k.String) {
			anyValid = true
			break
		}
	}
	if anyValid {
		res.DeleteFunc(func(k, _ *tree.Node) bool { return !valid.Contains(k.String) })
	}
	return res
}
