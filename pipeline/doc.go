// Package pipeline turns submitted player files into cleaned ones.
//
// A file is a YAML stream with one document per game. Processing a file
//
//   - settles the game of each document,
//   - runs the game rules, collecting notes for the output list,
//   - renames the player (and the plando worlds that point at them),
//   - writes the documents back with their comments.
//
// [Clean] mode does all of the above on fresh submissions. [Reprocess]
// mode reruns the rules on files that were already cleaned.
package pipeline
