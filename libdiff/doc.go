// Package libdiff computes edit scripts between sequences of nodes and
// between texts.
//
// Sequences are diffed by giving every distinct value a rune and
// running a text diff over the runes, so that values equal under
// tree.Equal line up. Mapping keys are diffed the same way, which
// keeps their order meaningful.
package libdiff
