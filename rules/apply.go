package rules

import (
	"errors"
	"fmt"

	"github.com/Totox00/multiarchi-tools/debug"
	"github.com/Totox00/multiarchi-tools/diag"
	"github.com/Totox00/multiarchi-tools/tree"
	"github.com/Totox00/multiarchi-tools/weighted"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Context is what applying rules to one document needs besides the
// document.
type Context struct {
	// Name is the player name, visible to expressions.
	Name string
	// Source names the document in diagnostics. It defaults to Name with
	// a .yaml extension.
	Source string
	// Selector resolves options. Nil uses weighted.Default.
	Selector *weighted.Selector
	Sink     diag.Sink
}

func (c *Context) source() string {
	if c.Source != "" {
		return c.Source
	}
	return c.Name + ".yaml"
}

type call struct {
	opts  *tree.Node
	game  string
	ctx   *Context
	notes []string
}

func (c *call) env() env {
	return newEnv(c.opts, c.ctx.Name, c.game)
}

func (c *call) run(prg *vm.Program) (any, error) {
	return expr.Run(prg, c.env())
}

func (c *call) note(ns ...string) {
	c.notes = append(c.notes, ns...)
}

// Apply runs the rules for game on the options block doc[game] and
// returns the notes they produce. A document without an options mapping
// for game is left alone. A failing rule does not stop the ones after
// it; all failures are returned joined. Nil Rules have no rules.
func (r *Rules) Apply(doc *tree.Node, game string, ctx Context) ([]string, error) {
	if r == nil {
		return nil, nil
	}
	rs := r.games[game]
	if len(rs) == 0 || !doc.IsMapping() {
		return nil, nil
	}
	opts := doc.GetString(game)
	if !opts.IsMapping() {
		return nil, nil
	}
	c := &call{opts: opts, game: game, ctx: &ctx}
	var errs []error
	for i, cr := range rs {
		if cr.when != nil {
			ok, err := runBool(cr.when, c.env())
			if err != nil {
				errs = append(errs, fmt.Errorf("%s[%d] %s: when: %w", game, i, cr.Op, err))
				continue
			}
			if !ok {
				continue
			}
		}
		if debug.Rules() {
			debug.Logf("%s: %s[%d] %s %s\n", ctx.source(), game, i, cr.Op, cr.Option)
		}
		if err := cr.op.Apply(c); err != nil {
			errs = append(errs, fmt.Errorf("%s[%d] %s: %w", game, i, cr.Op, err))
		}
	}
	return c.notes, errors.Join(errs...)
}
