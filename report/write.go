package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

func (g GameCount) label() string {
	if g.Count > 1 {
		return g.Game + " *" + strconv.Itoa(g.Count)
	}
	return g.Game
}

// WriteOutputList writes the output list row of one player.
func WriteOutputList(w io.Writer, name string, gs Games) error {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('\t')
	switch len(gs) {
	case 0:
	case 1:
		b.WriteString(gs[0].label())
	default:
		labels := make([]string, len(gs))
		for i, g := range gs {
			labels[i] = g.label()
		}
		b.WriteString(`"` + strings.Join(labels, " AND\n ") + `"`)
	}
	var notes []string
	for _, g := range gs {
		if len(g.Notes) > 0 {
			notes = append(notes, strings.Join(g.Notes, ", "))
		}
	}
	b.WriteByte('\t')
	switch len(notes) {
	case 0:
	case 1:
		b.WriteString(notes[0])
	default:
		b.WriteString(`"` + strings.Join(notes, "\n") + `"`)
	}
	fmt.Fprintf(&b, "\t%d\n", gs.Points())
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteBotOutput writes the bot output of one player: the name, the
// games with their counts, all notes, and the points.
func WriteBotOutput(w io.Writer, name string, gs Games) error {
	games := make([]string, len(gs))
	var notes []string
	for i, g := range gs {
		games[i] = fmt.Sprintf("%s x%d", g.Game, g.Count)
		notes = append(notes, g.Notes...)
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n%d\n", name, strings.Join(games, ", "), strings.Join(notes, ", "), gs.Points())
	return err
}
