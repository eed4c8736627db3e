package compare

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Totox00/multiarchi-tools/diag"
	"github.com/Totox00/multiarchi-tools/parse"
	"github.com/Totox00/multiarchi-tools/tree"
)

// Dirs compares the first document of each file in oldDir with the file
// of the same name in newDir. Changes are reported as warnings with the
// file name as source. Files that cannot be read or parsed are reported
// as errors and skipped.
func Dirs(oldDir, newDir string, sink diag.Sink) error {
	ents, err := os.ReadDir(oldDir)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(ents))
	for _, e := range ents {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		old, err := readFirst(filepath.Join(oldDir, name))
		if err != nil {
			diag.Errorf(sink, name, "%v", err)
			continue
		}
		newPath := filepath.Join(newDir, name)
		if _, err := os.Stat(newPath); os.IsNotExist(err) {
			diag.Warnf(sink, name, "No longer exists")
			continue
		}
		cur, err := readFirst(newPath)
		if err != nil {
			diag.Errorf(sink, name, "%v", err)
			continue
		}
		changes, err := Documents(old, cur)
		if err != nil {
			diag.Errorf(sink, name, "%v", err)
			continue
		}
		for _, c := range changes {
			diag.Warnf(sink, name, "%s", c)
		}
	}
	return nil
}

func readFirst(path string) (*tree.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	docs, err := parse.Parse([]byte(parse.Trim(string(d))), parse.ParseFilename(path))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 || !docs[0].IsMapping() {
		return nil, fmt.Errorf("%s: %w document", path, ErrMissing)
	}
	return docs[0], nil
}
