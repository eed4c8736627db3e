package names

import (
	"github.com/Totox00/multiarchi-tools/tree"
)

// SetName sets the name of doc and returns the name it had, or nil. Name
// changes made by triggers are stripped first, both at the top level and
// in the options of game, if game is not empty.
func SetName(doc *tree.Node, name, game string) *tree.Node {
	if !doc.IsMapping() {
		return nil
	}
	if game != "" {
		if opts := doc.GetString(game); opts.IsMapping() {
			StripNameTriggers(opts.GetString("triggers"))
		}
	}
	StripNameTriggers(doc.GetString("triggers"))
	if i := doc.Index(tree.FromString("name")); i >= 0 {
		old := doc.Values[i]
		doc.Values[i] = tree.FromString(name)
		return old
	}
	doc.SetString("name", tree.FromString(name))
	return nil
}

// StripNameTriggers removes name from the top level option sets of
// each trigger. Option sets left empty are removed, and so are triggers
// left without options.
func StripNameTriggers(triggers *tree.Node) {
	if !triggers.IsSequence() {
		return
	}
	kept := triggers.Values[:0]
	for _, tr := range triggers.Values {
		if !stripTrigger(tr) {
			kept = append(kept, tr)
		}
	}
	triggers.Values = kept
}

// stripTrigger reports whether tr is left without options.
func stripTrigger(tr *tree.Node) bool {
	if !tr.IsMapping() {
		return false
	}
	opts := tr.GetString("options")
	if !opts.IsMapping() {
		return false
	}
	// the top level option set is keyed by null, written null or ~.
	root := tree.Null()
	if set := opts.Get(root); set.IsMapping() {
		if set.DeleteString("name") != nil && set.Len() == 0 {
			opts.Delete(root)
		}
	}
	return opts.Len() == 0
}

// RenamePlandoWorlds points plando blocks at the renamed worlds. renames
// maps old player names to new ones. Both the top level plando_items and
// those in the options of the document's game are rewritten.
func RenamePlandoWorlds(renames map[string]string, docs []*tree.Node) {
	if len(renames) == 0 {
		return
	}
	for _, doc := range docs {
		if !doc.IsMapping() {
			continue
		}
		renameWorlds(renames, doc.GetString("plando_items"))
		if g := doc.GetString("game"); g != nil && g.Type == tree.StringType {
			if opts := doc.GetString(g.String); opts.IsMapping() {
				renameWorlds(renames, opts.GetString("plando_items"))
			}
		}
	}
}

func renameWorlds(renames map[string]string, plando *tree.Node) {
	if !plando.IsSequence() {
		return
	}
	for _, blk := range plando.Values {
		if !blk.IsMapping() {
			continue
		}
		i := blk.Index(tree.FromString("world"))
		if i < 0 {
			continue
		}
		w := blk.Values[i]
		switch {
		case w.Type.IsScalar():
			if n, ok := renames[w.Text()]; ok {
				blk.Values[i] = tree.FromString(n)
			}
		case w.IsSequence():
			for j, elt := range w.Values {
				if !elt.Type.IsScalar() {
					continue
				}
				if n, ok := renames[elt.Text()]; ok {
					w.Values[j] = tree.FromString(n)
				}
			}
		}
	}
}
