package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Totox00/multiarchi-tools/config"
	"github.com/Totox00/multiarchi-tools/diag"
	"github.com/Totox00/multiarchi-tools/report"
)

// ProcessFile processes src as the file of player name and writes the
// result to dst. src and dst may be the same file.
func (p *Processor) ProcessFile(src, dst, name string, mode Mode) (*Result, error) {
	d, err := os.ReadFile(src)
	if err != nil {
		return nil, err
	}
	res, err := p.process(name, filepath.Base(src), string(d), mode)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(dst, []byte(res.Text), 0o644); err != nil {
		return nil, err
	}
	return res, nil
}

// CleanAll cleans the submissions of entries from the bucket into the
// dist directory and writes each player's row to out and bot. A
// submission that cannot be processed is reported and gets a row
// without games. With move set, processed submissions are moved to the
// used directory.
func (p *Processor) CleanAll(cfg *config.Config, entries []Entry, move bool, out, bot io.Writer) error {
	if err := os.MkdirAll(cfg.DistDir, 0o755); err != nil {
		return err
	}
	if move {
		if err := os.MkdirAll(cfg.UsedDir, 0o755); err != nil {
			return err
		}
	}
	for _, e := range entries {
		src := filepath.Join(cfg.BucketDir, e.BucketFile())
		dst := filepath.Join(cfg.DistDir, e.Name+".yaml")
		gs := p.games(p.ProcessFile(src, dst, e.Name, Clean))
		if err := p.writeRow(out, e.Name, gs); err != nil {
			return err
		}
		if err := report.WriteBotOutput(bot, e.Name, gs); err != nil {
			return err
		}
		if !move {
			continue
		}
		if err := os.Rename(src, filepath.Join(cfg.UsedDir, e.BucketFile())); err != nil {
			diag.Errorf(p.Sink, e.BucketFile(), "failed to move to used directory: %v", err)
		}
	}
	return nil
}

// ReprocessAll reruns the rules on every file of the dist directory, in
// place, and writes each player's row to out. The player name is the
// file name without its extension.
func (p *Processor) ReprocessAll(cfg *config.Config, out io.Writer) error {
	ents, err := os.ReadDir(cfg.DistDir)
	if err != nil {
		return err
	}
	var files []string
	for _, e := range ents {
		if e.Type().IsRegular() {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	for _, f := range files {
		name := strings.TrimSuffix(f, filepath.Ext(f))
		path := filepath.Join(cfg.DistDir, f)
		gs := p.games(p.ProcessFile(path, path, name, Reprocess))
		if err := p.writeRow(out, name, gs); err != nil {
			return err
		}
	}
	return nil
}

func (p *Processor) games(res *Result, err error) report.Games {
	if err != nil {
		diag.Errorf(p.Sink, "", "%v", err)
		return nil
	}
	return res.Games
}

func (p *Processor) writeRow(w io.Writer, name string, gs report.Games) error {
	gs.Check(name+".yaml", p.Valid, p.Sink)
	if err := report.WriteOutputList(w, name, gs); err != nil {
		return fmt.Errorf("write output list: %w", err)
	}
	return nil
}
