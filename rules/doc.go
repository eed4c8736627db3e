// Package rules migrates the options of a chosen game with a table of
// declarative rules.
//
// A table maps game names to ordered rule lists:
//
//	Stardew Valley:
//	  - op: move_weight
//	    option: goal
//	    from: perfection
//	    to: random
//	  - op: note
//	    option: mods
//	    default: "[]"
//
// Every rule names an op. Ops move weight between candidates of an option
// distribution, rename, copy, set or remove options, resolve an option to
// a single value, and produce the notes and warnings that end up in the
// output report. Rules may carry a "when" condition and some ops take an
// expression; both are [expr] programs over the game's options:
//
//	value                the candidate under test (match only)
//	options              the game options as plain Go values
//	name, game           the player name and game
//	canBe(k, def, c)     whether option k can resolve to c
//	canBeOtherThan(k, def, c)
//	get(k), has(k)       option lookup
//	describe(k, def)     the report rendering of option k
//	keysOf(k)            the keys of a mapping option, in order
//	num(v), isNumber(v)  numeric reading of scalars and numeric strings
//
// Expressions are compiled by [Compile], so a table with a malformed
// rule is rejected before any document is touched.
//
// [expr]: https://expr-lang.org
package rules
