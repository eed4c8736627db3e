package game

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"sort"
	"strings"
)

//go:embed valid_games.txt
var validGames string

// Set is a set of game names.
type Set map[string]struct{}

// Valid returns the embedded list of accepted games.
func Valid() Set {
	s, _ := ReadSet(strings.NewReader(validGames))
	return s
}

// ReadSet reads one game name per line. Blank lines and lines starting
// with '#' are skipped.
func ReadSet(r io.Reader) (Set, error) {
	s := Set{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ln := strings.TrimSpace(sc.Text())
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		s[ln] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func ReadSetFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSet(f)
}

// Contains reports whether game is in s. A nil set contains every game.
func (s Set) Contains(game string) bool {
	if s == nil {
		return true
	}
	_, ok := s[game]
	return ok
}

func (s Set) Add(games ...string) {
	for _, g := range games {
		s[g] = struct{}{}
	}
}

// Names lists the set in sorted order.
func (s Set) Names() []string {
	res := make([]string, 0, len(s))
	for g := range s {
		res = append(res, g)
	}
	sort.Strings(res)
	return res
}
