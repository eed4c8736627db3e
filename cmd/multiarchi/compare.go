package main

import (
	"fmt"

	"github.com/Totox00/multiarchi-tools/compare"

	"github.com/scott-cotton/cli"
)

func compareDirs(cfg *CompareConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compare.Parse(cc, args)
	if err != nil {
		cfg.Compare.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: compare requires 2 args, got %v", cli.ErrUsage, args)
	}
	return compare.Dirs(args[0], args[1], cfg.sink(cc.Out))
}
