package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Totox00/multiarchi-tools/encode"
	"github.com/Totox00/multiarchi-tools/game"
	"github.com/Totox00/multiarchi-tools/parse"
	"github.com/Totox00/multiarchi-tools/tree"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

// draw shows what a player file resolves to. Without an option it draws
// the game; with one it draws that option of the file's game, which must
// already be chosen.
func draw(cfg *DrawConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Draw.Parse(cc, args)
	if err != nil {
		cfg.Draw.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: draw requires a file and at most one option, got %v", cli.ErrUsage, args)
	}
	doc, err := readDoc(cc, args[0])
	if err != nil {
		return err
	}
	sel, err := cfg.Env.Selector()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		valid, err := cfg.Env.LoadValidGames()
		if err != nil {
			return err
		}
		for range cfg.Count {
			g, ok, err := game.Choose(doc.Clone(), sel, valid)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%s: %w", args[0], game.ErrNoGame)
			}
			fmt.Fprintln(cc.Out, g)
		}
		return nil
	}
	g := doc.GetString("game")
	if g == nil || g.Type != tree.StringType {
		return fmt.Errorf("%s: game is not chosen", args[0])
	}
	opt := doc.GetString(g.String).GetString(args[1])
	if opt == nil {
		return fmt.Errorf("%s: %s has no option %s", args[0], g.String, args[1])
	}
	opts := encOpts(cc.Out)
	for range cfg.Count {
		v, err := sel.Draw(opt)
		if err != nil {
			return err
		}
		if err := encode.Encode(v, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}

func readDoc(cc *cli.Context, path string) (*tree.Node, error) {
	var r io.Reader = cc.In
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	doc, err := parse.ParseOne([]byte(parse.Trim(string(d))), parse.ParseFilename(path))
	if err != nil {
		return nil, err
	}
	if !doc.IsMapping() {
		return nil, fmt.Errorf("%s: not a player file", path)
	}
	return doc, nil
}

func encOpts(w io.Writer) []encode.EncodeOption {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return nil
	}
	return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
}
