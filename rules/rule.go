package rules

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"
)

// Rule is one entry of a rule table. Which fields matter depends on Op.
type Rule struct {
	Op      string   `yaml:"op"`
	Option  string   `yaml:"option,omitempty"`
	From    *Value   `yaml:"from,omitempty"`
	To      *Value   `yaml:"to,omitempty"`
	Match   string   `yaml:"match,omitempty"`
	When    string   `yaml:"when,omitempty"`
	Default *Value   `yaml:"default,omitempty"`
	Value   *Value   `yaml:"value,omitempty"`
	Message string   `yaml:"message,omitempty"`
	Targets []string `yaml:"targets,omitempty"`
	Patch   *Value   `yaml:"patch,omitempty"`
	Expr    string   `yaml:"expr,omitempty"`
}

// Table maps game names to their rules, applied in order.
type Table map[string][]Rule

//go:embed default_rules.yaml
var defaultRules []byte

// Load decodes a rule table. Unknown rule fields are an error.
func Load(d []byte) (Table, error) {
	var t Table
	if err := yaml.UnmarshalWithOptions(d, &t, yaml.DisallowUnknownField(), yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadRule, yaml.FormatError(err, false, true))
	}
	return t, nil
}

func LoadFile(path string) (Table, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Load(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// DefaultTable is the embedded rule table.
func DefaultTable() (Table, error) {
	return Load(defaultRules)
}

// Merge returns t with the games of o added. The rules o has for a game
// replace those of t.
func (t Table) Merge(o Table) Table {
	res := make(Table, len(t)+len(o))
	for g, rs := range t {
		res[g] = rs
	}
	for g, rs := range o {
		res[g] = rs
	}
	return res
}

type compiled struct {
	Rule
	op   Op
	when *vm.Program
}

// Rules is a compiled rule table.
type Rules struct {
	games map[string][]*compiled
}

// Compile checks every rule of t and compiles its expressions. All
// problems are reported together.
func Compile(t Table) (*Rules, error) {
	res := &Rules{games: make(map[string][]*compiled, len(t))}
	var errs []error
	for _, game := range sortedGames(t) {
		for i := range t[game] {
			c, err := compile(&t[game][i])
			if err != nil {
				errs = append(errs, fmt.Errorf("%s[%d]: %w", game, i, err))
				continue
			}
			res.games[game] = append(res.games[game], c)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return res, nil
}

func compile(r *Rule) (*compiled, error) {
	sym := Lookup(r.Op)
	if sym == nil {
		return nil, fmt.Errorf("%w: %w %q", ErrBadRule, ErrUnknownOp, r.Op)
	}
	op, err := sym.Instance(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.Op, err)
	}
	res := &compiled{Rule: *r, op: op}
	if r.When != "" {
		prg, err := compileBool(r.When)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: when: %w", ErrBadRule, r.Op, err)
		}
		res.when = prg
	}
	return res, nil
}

// Default compiles the embedded rule table.
func Default() (*Rules, error) {
	t, err := DefaultTable()
	if err != nil {
		return nil, err
	}
	return Compile(t)
}

// Games lists the games that have rules.
func (r *Rules) Games() []string {
	res := make([]string, 0, len(r.games))
	for g := range r.games {
		res = append(res, g)
	}
	sort.Strings(res)
	return res
}

// Len is the number of rules for game.
func (r *Rules) Len(game string) int {
	return len(r.games[game])
}

func sortedGames(t Table) []string {
	res := make([]string, 0, len(t))
	for g := range t {
		res = append(res, g)
	}
	sort.Strings(res)
	return res
}
