// Package token scans YAML source text one line at a time.
//
// [ScanLine] finds the mapping key and the comment marker of a line while
// skipping over quoted scalars, so that '#' and ':' inside quotes are not
// mistaken for syntax. [NeedsQuote] and [Quote] are used by the emitter.
package token
