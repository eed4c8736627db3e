// Package game settles which game a player document is for.
//
// A document names its game under the key "game", either as a string or
// as a weighted distribution of game names. Choosing the game replaces
// the distribution by the drawn name so that later stages see a string.
package game
