package names

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Totox00/multiarchi-tools/tree"
)

// GameMapping holds the renamed items and locations of one game.
type GameMapping struct {
	Items     map[string]string
	Locations map[string]string
}

// Mapping maps game names to their renames.
type Mapping map[string]*GameMapping

// ReadMapping reads a name mapping. Lines before the first game header
// are an error.
func ReadMapping(r io.Reader) (Mapping, error) {
	m := Mapping{}
	var (
		cur              *GameMapping
		items, locations bool
	)
	sc := bufio.NewScanner(r)
	for i := 1; sc.Scan(); i++ {
		ln := strings.TrimSpace(sc.Text())
		if ln == "" {
			continue
		}
		if g, ok := strings.CutPrefix(ln, "game "); ok {
			cur = &GameMapping{Items: map[string]string{}, Locations: map[string]string{}}
			m[g] = cur
			items, locations = false, false
			continue
		}
		if cur == nil {
			return nil, fmt.Errorf("%w: line %d: no game set", ErrMapping, i)
		}
		switch ln {
		case "items":
			items = true
			continue
		case "locations":
			locations = true
			continue
		}
		ln = strings.TrimPrefix(ln, "addexact ")
		from, to, ok := strings.Cut(ln, "\t")
		if !ok {
			continue
		}
		if items {
			cur.Items[from] = to
		}
		if locations {
			cur.Locations[from] = to
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func ReadMappingFile(path string) (Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := ReadMapping(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// RemapCommonOptions renames the items and locations named by the
// options every game has: item and location lists, the starting
// inventory and plando entries.
func (m Mapping) RemapCommonOptions(doc *tree.Node, game string) {
	gm := m[game]
	if gm == nil || !doc.IsMapping() {
		return
	}
	opts := doc.GetString(game)
	if !opts.IsMapping() {
		return
	}
	remapList(gm.Items, opts, "local_items")
	remapList(gm.Items, opts, "non_local_items")
	remapKeys(gm.Items, opts, "start_inventory")
	remapList(gm.Items, opts, "start_hints")
	remapList(gm.Locations, opts, "start_location_hints")
	remapList(gm.Locations, opts, "exclude_locations")
	remapList(gm.Locations, opts, "priority_locations")

	plando := opts.GetString("plando_items")
	if !plando.IsSequence() {
		return
	}
	for _, e := range plando.Values {
		if !e.IsMapping() {
			continue
		}
		remapList(gm.Locations, e, "locations")
		remapKeys(gm.Items, e, "items")
		remapString(gm.Items, e, "item")
		remapString(gm.Locations, e, "location")
	}
}

func remapList(names map[string]string, m *tree.Node, key string) {
	l := m.GetString(key)
	if !l.IsSequence() {
		return
	}
	for i, v := range l.Values {
		if v.Type != tree.StringType {
			continue
		}
		if n, ok := names[v.String]; ok {
			l.Values[i] = tree.FromString(n)
		}
	}
}

// remapKeys renames the keys of a mapping option. Renamed entries move
// to the end.
func remapKeys(names map[string]string, m *tree.Node, key string) {
	h := m.GetString(key)
	if !h.IsMapping() {
		return
	}
	var olds []string
	for _, k := range h.Keys {
		if k.Type != tree.StringType {
			continue
		}
		if _, ok := names[k.String]; ok {
			olds = append(olds, k.String)
		}
	}
	for _, old := range olds {
		h.RenameKey(tree.FromString(old), tree.FromString(names[old]))
	}
}

func remapString(names map[string]string, m *tree.Node, key string) {
	i := m.Index(tree.FromString(key))
	if i < 0 || m.Values[i].Type != tree.StringType {
		return
	}
	if n, ok := names[m.Values[i].String]; ok {
		m.Values[i] = tree.FromString(n)
	}
}
