package comments

import (
	"slices"
	"strings"

	"github.com/Totox00/multiarchi-tools/debug"
	"github.com/Totox00/multiarchi-tools/diag"
	"github.com/Totox00/multiarchi-tools/token"
)

// Reinsert puts comments back into newText and returns the resulting
// lines. A cursor moves forward only: each anchored comment is placed at
// the first line at or after the cursor whose key equals its anchor.
// Comments without an anchor are inserted at the cursor.
//
// A comment whose anchor cannot be found is dropped and the cursor stays
// where it was, so later comments can still be placed. The first such
// comment reports "could not preserve all comments from <source>" to
// sink; later ones are dropped silently.
func Reinsert(newText string, comments []Comment, source string, sink diag.Sink) []string {
	var lines []string
	if newText != "" {
		lines = splitLines(strings.TrimSuffix(newText, "\n"))
	}
	cursor := 0
	reported := false
	for i := range comments {
		c := &comments[i]
		group := c.Lines()
		if !c.HasAnchor {
			lines = slices.Insert(lines, cursor, group...)
			cursor += len(group)
			continue
		}
		at, after, ok := findKey(lines, cursor, c.Anchor)
		if !ok {
			if debug.Comments() {
				debug.Logf("comment anchor %q not found after line %d\n", c.Anchor, cursor)
			}
			if !reported {
				diag.Warnf(sink, source, "could not preserve all comments from %s", source)
				reported = true
			}
			continue
		}
		if c.Inline {
			indent := c.Indent
			if indent == "" {
				indent = " "
			}
			lines[at] += indent + "#" + strings.TrimPrefix(group[0], c.Indent+"#")
			group = group[1:]
		}
		lines = slices.Insert(lines, after, group...)
		cursor = after + len(group)
	}
	return lines
}

// Restore re-attaches the comments of original to newText.
func Restore(original, newText, source string, sink diag.Sink) string {
	lines := Reinsert(newText, Extract(original), source, sink)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// findKey returns the index of the first key line at or after from whose
// key is key, and the index just past that line and any block scalar it
// opens.
func findKey(lines []string, from int, key string) (int, int, bool) {
	var blocks blockTracker
	for i := from; i < len(lines); i++ {
		if blocks.content(lines[i]) {
			continue
		}
		l := token.ScanLine(lines[i])
		blocks.observe(l)
		if !l.HasKey || l.Key != key {
			continue
		}
		after := i + 1
		if l.Block {
			for after < len(lines) && blocks.content(lines[after]) {
				after++
			}
		}
		return i, after, true
	}
	return 0, 0, false
}
