package token

import "strings"

// Line is what the line scanner finds in one line of YAML text.
type Line struct {
	// Key is the mapping key of a key line, with leading whitespace,
	// sequence markers and surrounding quotes removed.
	Key    string
	HasKey bool
	// Comment is the byte offset of the comment marker, or -1.
	Comment int
	// Indent is the number of leading spaces.
	Indent int
	// Block is set when the line's value opens a literal or folded block
	// scalar.
	Block bool
}

// ScanLine scans one line of text. A key is the text before the first
// unquoted ':' that is followed by whitespace or the end of the content.
// A comment marker is an unquoted '#' at the start of the line or after
// whitespace.
func ScanLine(ln string) Line {
	res := Line{Comment: -1, Indent: len(ln) - len(strings.TrimLeft(ln, " "))}
	colon := -1
	var quote byte
	for i := 0; i < len(ln); i++ {
		c := ln[i]
		if quote != 0 {
			switch {
			case quote == '"' && c == '\\':
				i++
			case quote == '\'' && c == '\'' && i+1 < len(ln) && ln[i+1] == '\'':
				i++
			case c == quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			if opensQuote(ln, i) {
				quote = c
			}
		case '#':
			if i == 0 || ln[i-1] == ' ' || ln[i-1] == '\t' {
				res.Comment = i
				goto done
			}
		case ':':
			if colon >= 0 {
				continue
			}
			if i+1 == len(ln) || ln[i+1] == ' ' || ln[i+1] == '\t' {
				colon = i
			}
		}
	}
done:
	end := len(ln)
	if res.Comment >= 0 {
		end = res.Comment
	}
	var value string
	if colon >= 0 {
		res.Key = cleanKey(ln[:colon])
		res.HasKey = true
		value = ln[colon+1 : end]
	} else {
		value = stripMarkers(ln[:end])
	}
	value = strings.TrimSpace(value)
	res.Block = value != "" && (value[0] == '|' || value[0] == '>')
	return res
}

// IsBlank reports whether ln holds only whitespace.
func IsBlank(ln string) bool {
	return strings.TrimSpace(ln) == ""
}

// FindKey returns the key of a key line.
func FindKey(ln string) (string, bool) {
	l := ScanLine(ln)
	return l.Key, l.HasKey
}

// FindComment returns the offset of the comment marker in ln, or -1.
func FindComment(ln string) int {
	return ScanLine(ln).Comment
}

// a quote character starts a quoted scalar only where a scalar can start.
func opensQuote(ln string, i int) bool {
	if i == 0 {
		return true
	}
	switch ln[i-1] {
	case ' ', '\t', '[', '{', ',':
		return true
	}
	return false
}

func stripMarkers(v string) string {
	v = strings.TrimLeft(v, " \t")
	for strings.HasPrefix(v, "- ") || strings.HasPrefix(v, "-\t") {
		v = strings.TrimLeft(v[1:], " \t")
	}
	return v
}

func cleanKey(k string) string {
	k = stripMarkers(k)
	k = strings.TrimRight(k, " \t")
	k = strings.Trim(k, "'")
	k = strings.Trim(k, "\"")
	return k
}
