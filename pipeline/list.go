package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry is one line of the process list: a player and the id of their
// submission in the bucket.
type Entry struct {
	Name string
	ID   string
}

// BucketFile is the name of the submission with id in the bucket.
func (e Entry) BucketFile() string {
	return "bucket (" + e.ID + ").yaml"
}

// ReadProcessList reads name<TAB>id lines. Empty lines are skipped.
func ReadProcessList(r io.Reader) ([]Entry, error) {
	var res []Entry
	sc := bufio.NewScanner(r)
	for i := 1; sc.Scan(); i++ {
		ln := strings.TrimSuffix(sc.Text(), "\r")
		if ln == "" {
			continue
		}
		name, id, ok := strings.Cut(ln, "\t")
		if !ok {
			return nil, fmt.Errorf("%w: line %d does not contain a pair of name and id", ErrProcessList, i)
		}
		res = append(res, Entry{Name: name, ID: id})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func ReadProcessListFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	res, err := ReadProcessList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}
