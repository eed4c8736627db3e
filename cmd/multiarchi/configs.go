package main

import (
	"io"

	"github.com/Totox00/multiarchi-tools/config"
	"github.com/Totox00/multiarchi-tools/diag"
	"github.com/Totox00/multiarchi-tools/pipeline"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	// Env holds the paths and inputs. Its fields are also options.
	Env *config.Config

	Log bool `cli:"name=log desc='report diagnostics as log lines'"`

	Main *cli.Command
}

func (cfg *MainConfig) sink(w io.Writer) diag.Sink {
	if cfg.Log {
		return diag.NewLogSink(newLogger(w))
	}
	return diag.NewConsole(w)
}

// processor builds a processor from the configured rules, name mapping
// and valid games.
func (cfg *MainConfig) processor(w io.Writer) (*pipeline.Processor, error) {
	rs, err := cfg.Env.LoadRules()
	if err != nil {
		return nil, err
	}
	m, err := cfg.Env.LoadMapping()
	if err != nil {
		return nil, err
	}
	valid, err := cfg.Env.LoadValidGames()
	if err != nil {
		return nil, err
	}
	sel, err := cfg.Env.Selector()
	if err != nil {
		return nil, err
	}
	return &pipeline.Processor{
		Rules:    rs,
		Mapping:  m,
		Selector: sel,
		Valid:    valid,
		Sink:     cfg.sink(w),
	}, nil
}

type CleanConfig struct {
	*MainConfig
	Move bool `cli:"name=move aliases=move-files desc='move processed submissions to the used directory'"`

	Clean *cli.Command
}

type ReprocessConfig struct {
	*MainConfig

	Reprocess *cli.Command
}

type CompareConfig struct {
	*MainConfig

	Compare *cli.Command
}

type DrawConfig struct {
	*MainConfig
	Count int `cli:"name=n desc='number of draws'"`

	Draw *cli.Command
}

type RulesConfig struct {
	*MainConfig

	Rules *cli.Command
}
