// Package report writes the per-player summaries the organisers read.
//
// The output list is a tab separated table with one row per player: the
// name, the games, the notes the rules produced, and the points the
// player's games are worth. Cells holding several lines are quoted so
// that spreadsheet software keeps them in one cell.
//
// The bot output carries the same information as four plain lines per
// player.
package report
