// Package comments carries the free-text comments of a YAML document
// across a parse, mutate and re-encode cycle.
//
// [Extract] records each comment with the nearest preceding mapping key as
// its anchor. After the document is encoded again, [Reinsert] walks the
// new text once, finds each anchor key in order and puts the comment back
// next to it. Comments whose anchor key no longer exists are dropped with
// a diagnostic.
package comments

import (
	"strings"

	"github.com/Totox00/multiarchi-tools/debug"
	"github.com/Totox00/multiarchi-tools/token"
)

// Comment is a group of consecutive comment lines sharing an anchor.
type Comment struct {
	// Anchor is the key of the closest key line before the comment. It is
	// unset for comments ahead of the first key.
	Anchor    string
	HasAnchor bool
	// Text is everything after the first comment marker. Continuation
	// lines of a group keep their own indentation and marker.
	Text string
	// Inline is set when the first line of the group shares its line with
	// the anchor key.
	Inline bool
	// Indent is the whitespace before the first comment marker. For an
	// inline comment it is the whitespace between the value and the
	// marker.
	Indent string
}

// Lines renders the group as it appears on its own lines.
func (c *Comment) Lines() []string {
	parts := strings.Split(c.Text, "\n")
	parts[0] = c.Indent + "#" + parts[0]
	return parts
}

// Extract collects the comments of text in order. Comment markers inside
// quoted scalars or block scalars are not comments. A comment that
// follows a sequence item or other non-key content on the same line
// cannot be anchored and is skipped.
func Extract(text string) []Comment {
	var (
		res       []Comment
		anchor    string
		hasAnchor bool
		canExtend = true
		blocks    blockTracker
	)
	for _, ln := range splitLines(text) {
		if blocks.content(ln) {
			continue
		}
		l := token.ScanLine(ln)
		blocks.observe(l)
		if l.HasKey {
			anchor, hasAnchor = l.Key, true
			canExtend = false
		}
		if l.Comment < 0 {
			continue
		}
		prefix, body := ln[:l.Comment], ln[l.Comment+1:]
		inline := false
		indent := prefix
		if !token.IsBlank(prefix) {
			if !l.HasKey {
				continue
			}
			inline = true
			indent = prefix[len(strings.TrimRight(prefix, " \t")):]
		}
		if n := len(res); n > 0 && canExtend && res[n-1].HasAnchor == hasAnchor && res[n-1].Anchor == anchor {
			res[n-1].Text += "\n" + prefix + "#" + body
			continue
		}
		res = append(res, Comment{
			Anchor:    anchor,
			HasAnchor: hasAnchor,
			Text:      body,
			Inline:    inline,
			Indent:    indent,
		})
		canExtend = true
	}
	if debug.Comments() {
		for _, c := range res {
			debug.Logf("comment anchor=%q inline=%v %q\n", c.Anchor, c.Inline, c.Text)
		}
	}
	return res
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}

// blockTracker follows block scalars so that their content lines are not
// read as keys or comments.
type blockTracker struct {
	open   bool
	indent int
}

func (b *blockTracker) content(ln string) bool {
	if !b.open {
		return false
	}
	if token.IsBlank(ln) || len(ln)-len(strings.TrimLeft(ln, " ")) > b.indent {
		return true
	}
	b.open = false
	return false
}

func (b *blockTracker) observe(l token.Line) {
	if l.Block {
		b.open = true
		b.indent = l.Indent
	}
}
