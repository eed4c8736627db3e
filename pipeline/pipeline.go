package pipeline

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/Totox00/multiarchi-tools/comments"
	"github.com/Totox00/multiarchi-tools/diag"
	"github.com/Totox00/multiarchi-tools/encode"
	"github.com/Totox00/multiarchi-tools/game"
	"github.com/Totox00/multiarchi-tools/names"
	"github.com/Totox00/multiarchi-tools/parse"
	"github.com/Totox00/multiarchi-tools/report"
	"github.com/Totox00/multiarchi-tools/rules"
	"github.com/Totox00/multiarchi-tools/tree"
	"github.com/Totox00/multiarchi-tools/weighted"
)

type Mode int

const (
	// Clean chooses games and renames players.
	Clean Mode = iota
	// Reprocess only reruns the rules. Games are already chosen.
	Reprocess
)

func (m Mode) String() string {
	if m == Reprocess {
		return "reprocess"
	}
	return "clean"
}

// MaxDocuments is how many documents a file can hold before it is
// reported.
const MaxDocuments = 8

const (
	keymastersKeep = "Keymaster's Keep"
	ctjot          = "Chrono Trigger Jets of Time"
	finalFantasy   = "Final Fantasy"
)

type Processor struct {
	// Rules to run. Nil runs none.
	Rules *rules.Rules
	// Mapping remaps item and location names in common options. Nil
	// leaves them alone.
	Mapping names.Mapping
	// Selector draws games and resolves options. Nil uses
	// weighted.Default.
	Selector *weighted.Selector
	// Valid is the set of accepted games. Nil accepts every game.
	Valid game.Set
	Sink  diag.Sink
}

type Result struct {
	Text  string
	Games report.Games
	// Renames maps the names documents had to the names they were given.
	Renames map[string]string
}

// ProcessText processes the file of player name. Diagnostics name the
// file name.yaml.
func (p *Processor) ProcessText(name, src string, mode Mode) (*Result, error) {
	return p.process(name, name+".yaml", src, mode)
}

// process reports comments that cannot be kept against label, the file
// they were read from.
func (p *Processor) process(name, label, src string, mode Mode) (*Result, error) {
	source := name + ".yaml"
	src = parse.Trim(src)
	docs, err := parse.Parse([]byte(src), parse.ParseFilename(label))
	if err != nil {
		return nil, err
	}
	for i, doc := range docs {
		if err := parse.Validate(doc); err != nil {
			return nil, fmt.Errorf("%s: document %d: %w", label, i+1, err)
		}
	}
	res := &Result{Renames: map[string]string{}}
	for i, doc := range docs {
		player := name
		if len(docs) > 1 {
			player = name + strconv.Itoa(i+1)
		}
		g, ok := p.game(doc, source, mode)
		if !ok {
			if mode == Clean {
				p.rename(res, doc, player, "")
			}
			continue
		}
		notes, err := p.Rules.Apply(doc, g, rules.Context{
			Name:     name,
			Source:   source,
			Selector: p.Selector,
			Sink:     p.Sink,
		})
		if err != nil {
			diag.Errorf(p.Sink, source, "%v", err)
		}
		if p.Mapping != nil {
			p.Mapping.RemapCommonOptions(doc, g)
		}
		res.Games.Add(g, notes)
		switch {
		case g == ctjot:
			diag.Warnf(p.Sink, source, "contains a %s", ctjot)
		case g == finalFantasy && mode == Clean:
			diag.Warnf(p.Sink, source, "contains a %s", finalFantasy)
		case mode == Clean:
			p.rename(res, doc, player, g)
		}
	}
	names.RenamePlandoWorlds(res.Renames, docs)
	if len(docs) > MaxDocuments {
		diag.Warnf(p.Sink, source, "contains %d games.", len(docs))
	}
	switch n := res.Games.Count(keymastersKeep); {
	case n > 1:
		diag.Warnf(p.Sink, source, "contains %d %ss", n, keymastersKeep)
	case n == 1:
		diag.Warnf(p.Sink, source, "contains a %s", keymastersKeep)
	}
	var buf bytes.Buffer
	if err := encode.EncodeDocuments(docs, &buf); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	res.Text = comments.Restore(src, buf.String(), label, p.Sink)
	return res, nil
}

// game returns the game of doc. Clean mode chooses it; Reprocess mode
// expects it chosen already.
func (p *Processor) game(doc *tree.Node, source string, mode Mode) (string, bool) {
	if mode == Reprocess {
		g := doc.GetString("game")
		if g == nil || g.Type != tree.StringType {
			return "", false
		}
		return g.String, true
	}
	g, ok, err := game.Choose(doc, p.Selector, p.Valid)
	if err != nil {
		diag.Errorf(p.Sink, source, "%v", err)
		return "", false
	}
	return g, ok
}

func (p *Processor) rename(res *Result, doc *tree.Node, player, g string) {
	old := names.SetName(doc, player, g)
	if old != nil && old.Type.IsScalar() && old.Type != tree.NullType {
		res.Renames[old.Text()] = player
	}
}
