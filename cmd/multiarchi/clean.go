package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Totox00/multiarchi-tools/pipeline"

	"github.com/scott-cotton/cli"
)

func clean(cfg *CleanConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Clean.Parse(cc, args)
	if err != nil {
		cfg.Clean.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: clean takes no arguments, got %v", cli.ErrUsage, args)
	}
	entries, err := pipeline.ReadProcessListFile(cfg.Env.ProcessList)
	if err != nil {
		return err
	}
	p, err := cfg.processor(cc.Out)
	if err != nil {
		return err
	}
	out, err := os.Create(cfg.Env.OutputList)
	if err != nil {
		return fmt.Errorf("could not create output list: %w", err)
	}
	defer out.Close()
	bot, err := os.Create(cfg.Env.BotOutput)
	if err != nil {
		return fmt.Errorf("could not create bot output: %w", err)
	}
	defer bot.Close()
	if err := p.CleanAll(cfg.Env, entries, cfg.Move, out, bot); err != nil {
		return err
	}
	return errors.Join(out.Sync(), bot.Sync())
}

func reprocess(cfg *ReprocessConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Reprocess.Parse(cc, args)
	if err != nil {
		cfg.Reprocess.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: reprocess takes no arguments, got %v", cli.ErrUsage, args)
	}
	p, err := cfg.processor(cc.Out)
	if err != nil {
		return err
	}
	out, err := os.Create(cfg.Env.OutputList)
	if err != nil {
		return fmt.Errorf("could not create output list: %w", err)
	}
	defer out.Close()
	if err := p.ReprocessAll(cfg.Env, out); err != nil {
		return err
	}
	return out.Sync()
}
