package main

import (
	"github.com/Totox00/multiarchi-tools/config"

	"github.com/scott-cotton/cli"
)

func MainCommand(c *config.Config) *cli.Command {
	cfg := &MainConfig{Env: c}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cOpts, err := cli.StructOpts(c)
	if err != nil {
		panic(err)
	}
	opts = append(opts, cOpts...)

	return cli.NewCommandAt(&cfg.Main, "multiarchi").
		WithSynopsis("multiarchi [opts] command [opts]").
		WithDescription("multiarchi prepares player files for a multiworld.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mainRun(cfg, cc, args)
		}).
		WithSubs(
			CleanCommand(cfg),
			ReprocessCommand(cfg),
			CompareCommand(cfg),
			DrawCommand(cfg),
			RulesCommand(cfg))
}

func CleanCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CleanConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Clean, "clean").
		WithAliases("c").
		WithSynopsis("clean [-move]").
		WithDescription(cleanDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return clean(cfg, cc, args)
		})
}

const cleanDescription = `clean processes the submissions named in the process list.

Each line of the process list holds a player name and a submission id,
separated by a tab. The submission 'bucket (<id>).yaml' is read from the
bucket directory and written to '<name>.yaml' in the dist directory, with
its games chosen, the game rules run and the player renamed.

A row per player is written to the output list and the bot output.`

func ReprocessCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReprocessConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Reprocess, "reprocess").
		WithAliases("r").
		WithSynopsis("reprocess").
		WithDescription("rerun the game rules on the files of the dist directory, in place").
		WithRun(func(cc *cli.Context, args []string) error {
			return reprocess(cfg, cc, args)
		})
}

func CompareCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompareConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Compare, "compare").
		WithSynopsis("compare <olddir> <newdir>").
		WithDescription("report how the game options of each player file changed").
		WithRun(func(cc *cli.Context, args []string) error {
			return compareDirs(cfg, cc, args)
		})
}

func DrawCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DrawConfig{MainConfig: mainCfg, Count: 1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Draw, "draw").
		WithAliases("d").
		WithSynopsis("draw [-n count] <file> [option]").
		WithDescription("draw the game of a player file, or one of its game options").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return draw(cfg, cc, args)
		})
}

func RulesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RulesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Rules, "rules").
		WithSynopsis("rules [game]").
		WithDescription("list the games that have rules, or show the rules of a game").
		WithRun(func(cc *cli.Context, args []string) error {
			return listRules(cfg, cc, args)
		})
}
