package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/Totox00/multiarchi-tools/parse"
	"github.com/Totox00/multiarchi-tools/tree"
	"github.com/Totox00/multiarchi-tools/weighted"
)

func mustParse(t *testing.T, s string) *tree.Node {
	t.Helper()
	n, err := parse.ParseOne([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestChoose(t *testing.T) {
	valid := Set{}
	valid.Add("A", "B", "PokePark")
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"string", "game: A\n", "A", true},
		{"single live", "game: {A: 0, B: 3}\n", "B", true},
		{"invalid dropped", "game: {A: 1, Zed: 1000000}\n", "A", true},
		{"all invalid", "game: {Zed: 2, Yon: 0}\n", "Zed", true},
		{"legacy string", "game: PokéPark\n", "PokePark", true},
		{"legacy candidate", "game: {\"PokéPark Wii: Pikachu's Adventure [JP]\": 5, A: 0}\n", "PokePark", true},
		{"dead legacy kept apart", "game: {PokéPark: -5, PokePark: 5, A: 0}\n", "PokePark", true},
		{"live legacy after dead", "game: {PokePark: -5, PokéPark: 5, A: 0}\n", "PokePark", true},
		{"missing", "name: x\n", "", false},
		{"list", "game: [A, B]\n", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.in)
			got, ok, err := Choose(doc, weighted.NewSeeded(3), valid)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want || ok != tt.ok {
				t.Errorf("got %q %v want %q %v", got, ok, tt.want, tt.ok)
			}
			if ok && doc.GetString("game").String != tt.want {
				t.Errorf("game key is %s", doc.GetString("game").Text())
			}
		})
	}
}

func TestCandidatesMergeLiveWeights(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"live sum", "{PokePark: 3, PokéPark: 4}", 7},
		{"negative ignored", "{PokePark: 3, PokéPark: -4, \"PokéPark Wii: Pikachu's Adventure [JP]\": 2}", 5},
		{"zero ignored", "{PokéPark: 0, PokePark: 2}", 2},
		{"all dead", "{PokéPark: -1, PokePark: -2}", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := candidates(mustParse(t, tt.in), nil)
			if len(res.Keys) != 1 {
				t.Fatalf("got %d candidates: %s", len(res.Keys), res.Text())
			}
			w, ok := tree.Weight(res.GetString("PokePark"))
			if !ok || w != tt.want {
				t.Errorf("got %v %v want %v", w, ok, tt.want)
			}
		})
	}
}

func TestChooseRenamesOptionBlock(t *testing.T) {
	doc := mustParse(t, "game: PokéPark\nPokéPark:\n  goal: postgame\n")
	if _, _, err := Choose(doc, nil, nil); err != nil {
		t.Fatal(err)
	}
	if doc.GetString("PokePark") == nil || doc.GetString("PokéPark") != nil {
		t.Errorf("option block not renamed: %s", doc.Text())
	}
}

func TestChooseEmpty(t *testing.T) {
	doc := mustParse(t, "game: {A: 0}\n")
	_, _, err := Choose(doc, nil, nil)
	if !errors.Is(err, ErrNoGame) || !errors.Is(err, weighted.ErrEmptyDistribution) {
		t.Errorf("got %v", err)
	}
}

func TestReadSet(t *testing.T) {
	s, err := ReadSet(strings.NewReader("# games\nA\n\n  B  \n"))
	if err != nil {
		t.Fatal(err)
	}
	if !s.Contains("A") || !s.Contains("B") || s.Contains("# games") || len(s) != 2 {
		t.Errorf("got %v", s.Names())
	}
	var none Set
	if !none.Contains("anything") {
		t.Error("nil set should contain every game")
	}
	if !Valid().Contains("Stardew Valley") {
		t.Error("Stardew Valley not valid")
	}
}
