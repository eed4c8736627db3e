package report

import (
	"strings"

	"github.com/Totox00/multiarchi-tools/diag"
	"github.com/Totox00/multiarchi-tools/game"
)

// MaxCounted is how many games of one player count towards points.
const MaxCounted = 8

// Games that add nothing and do not use up one of the counted slots.
var skipped = map[string]bool{
	"Clique": true,
}

var pointsOverride = map[string]int{
	"Clique":           0,
	"Autopelago":       0,
	"ArchipIDLE":       0,
	"Archipelago":      0,
	"APBingo":          0,
	"Keymaster's Keep": 2,
	"Stardew Valley":   2,
}

// GameCount is a run of consecutive documents for the same game.
type GameCount struct {
	Game  string
	Count int
	Notes []string
}

// Games is the games of one player file, in document order.
type Games []GameCount

// Add records one more document for game. It extends the last entry when
// that is for the same game.
func (gs *Games) Add(game string, notes []string) {
	if n := len(*gs); n > 0 && (*gs)[n-1].Game == game {
		last := &(*gs)[n-1]
		last.Count++
		last.Notes = append(last.Notes, notes...)
		return
	}
	*gs = append(*gs, GameCount{Game: game, Count: 1, Notes: notes})
}

// Count returns how many documents are for game.
func (gs Games) Count(game string) int {
	n := 0
	for _, g := range gs {
		if g.Game == game {
			n += g.Count
		}
	}
	return n
}

// Points is 1 plus the worth of the first MaxCounted entries that are
// not skipped. Most games are worth 1.
func (gs Games) Points() int {
	points, counted := 1, 0
	for _, g := range gs {
		if counted >= MaxCounted || skipped[g.Game] {
			continue
		}
		counted++
		if p, ok := pointsOverride[g.Game]; ok {
			points += p
		} else {
			points++
		}
	}
	return points
}

// Check reports games missing from valid and players without a game.
func (gs Games) Check(source string, valid game.Set, sink diag.Sink) {
	var invalid []string
	for _, g := range gs {
		if g.Count > 0 && !valid.Contains(g.Game) {
			invalid = append(invalid, g.Game)
		}
	}
	switch len(invalid) {
	case 0:
	case 1:
		diag.Warnf(sink, source, "contains invalid game: %s", invalid[0])
	default:
		diag.Warnf(sink, source, "contains invalid games: [%s]", strings.Join(invalid, ", "))
	}
	if len(gs) == 0 {
		diag.Warnf(sink, source, "has no game specified")
	}
}
