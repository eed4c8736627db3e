package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func listRules(cfg *RulesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rules.Parse(cc, args)
	if err != nil {
		cfg.Rules.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: rules takes at most one game, got %v", cli.ErrUsage, args)
	}
	// compile first so that a broken rule file is reported
	rs, err := cfg.Env.LoadRules()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		for _, g := range rs.Games() {
			fmt.Fprintf(cc.Out, "%s\t%d\n", g, rs.Len(g))
		}
		return nil
	}
	t, err := cfg.Env.LoadTable()
	if err != nil {
		return err
	}
	table, ok := t[args[0]]
	if !ok {
		return fmt.Errorf("no rules for %q", args[0])
	}
	for i, r := range table {
		fmt.Fprintf(cc.Out, "%d\t%s", i, r.Op)
		if r.Option != "" {
			fmt.Fprintf(cc.Out, "\t%s", r.Option)
		}
		if r.When != "" {
			fmt.Fprintf(cc.Out, "\twhen %s", r.When)
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}
