// Package config holds the locations and inputs of a run. Values come
// from MULTIARCHI_* environment variables and can be overridden by
// command line flags.
package config

import (
	"fmt"
	"strconv"

	"github.com/Totox00/multiarchi-tools/game"
	"github.com/Totox00/multiarchi-tools/names"
	"github.com/Totox00/multiarchi-tools/rules"
	"github.com/Totox00/multiarchi-tools/weighted"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	BucketDir   string `env:"MULTIARCHI_BUCKET_DIR" envDefault:"./bucket" cli:"name=bucket desc='directory of submitted files'"`
	UsedDir     string `env:"MULTIARCHI_USED_DIR" envDefault:"./used" cli:"name=used desc='directory processed submissions are moved to'"`
	DistDir     string `env:"MULTIARCHI_DIST_DIR" envDefault:"./dist" cli:"name=dist desc='directory of cleaned files'"`
	ProcessList string `env:"MULTIARCHI_PROCESS_LIST" envDefault:"./process.tsv" cli:"name=list desc='name and id of each submission'"`
	OutputList  string `env:"MULTIARCHI_OUTPUT_LIST" envDefault:"./output.tsv" cli:"name=out desc='output list'"`
	BotOutput   string `env:"MULTIARCHI_BOT_OUTPUT" envDefault:"./bot_output.txt" cli:"name=bot desc='bot output'"`
	Rules       string `env:"MULTIARCHI_RULES" cli:"name=rules desc='rule table merged over the built in one'"`
	NameMapping string `env:"MULTIARCHI_NAME_MAPPING" cli:"name=names desc='item and location name changes'"`
	ValidGames  string `env:"MULTIARCHI_VALID_GAMES" cli:"name=games desc='extra valid game names, one per line'"`
	Seed        string `env:"MULTIARCHI_SEED" cli:"name=seed desc='seed for random draws'"`
}

// FromEnv reads the configuration from the process environment.
func FromEnv() (*Config, error) {
	return parse(env.Options{})
}

// FromMap reads the configuration from vars only.
func FromMap(vars map[string]string) (*Config, error) {
	if vars == nil {
		vars = map[string]string{}
	}
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return cfg, nil
}

// Selector returns a selector seeded with Seed, or randomly seeded when
// Seed is empty.
func (c *Config) Selector() (*weighted.Selector, error) {
	if c.Seed == "" {
		return weighted.NewRandom()
	}
	seed, err := strconv.ParseInt(c.Seed, 0, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: seed %q: %w", ErrConfig, c.Seed, err)
	}
	return weighted.NewSeeded(seed), nil
}

// LoadTable returns the built in rule table, with the games of the
// Rules file replacing the built in ones.
func (c *Config) LoadTable() (rules.Table, error) {
	t, err := rules.DefaultTable()
	if err != nil {
		return nil, err
	}
	if c.Rules == "" {
		return t, nil
	}
	o, err := rules.LoadFile(c.Rules)
	if err != nil {
		return nil, err
	}
	return t.Merge(o), nil
}

// LoadRules compiles the table of LoadTable.
func (c *Config) LoadRules() (*rules.Rules, error) {
	t, err := c.LoadTable()
	if err != nil {
		return nil, err
	}
	return rules.Compile(t)
}

// LoadMapping reads the name mapping. Without one the result is nil.
func (c *Config) LoadMapping() (names.Mapping, error) {
	if c.NameMapping == "" {
		return nil, nil
	}
	return names.ReadMappingFile(c.NameMapping)
}

// LoadValidGames returns the built in valid games, extended with those
// listed in ValidGames.
func (c *Config) LoadValidGames() (game.Set, error) {
	res := game.Valid()
	if c.ValidGames == "" {
		return res, nil
	}
	extra, err := game.ReadSetFile(c.ValidGames)
	if err != nil {
		return nil, err
	}
	res.Add(extra.Names()...)
	return res, nil
}
