package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Text renders a compact character diff of two texts: removed runs as
// [-x-] and added runs as {+x+}. Texts spanning several lines are
// diffed line by line.
func Text(from, to string) string {
	dmp := diffpatch.New()
	multiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	var diffs []diffpatch.Diff
	if multiLine {
		a, b, lines := dmp.DiffLinesToChars(from, to)
		diffs = dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	} else {
		diffs = dmp.DiffMain(from, to, false)
	}
	diffs = dmp.DiffCleanupSemantic(diffs)
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
