// Package names renames players and the items and locations their
// options refer to.
//
// Player files are written by their authors with whatever name they
// like; the event assigns each document its own name. Triggers that
// would change the name again are stripped, and plando blocks that
// point at another world of the same file follow the rename.
//
// A name mapping lists, per game, item and location names that changed
// between game versions:
//
//	game Some Game
//	items
//	Old Sword	Sword
//	locations
//	Old Cave	Cave
//
// Tab separated lines map an old name to a new one under the current
// section. "addexact old<TAB>new" adds a pair even if it would otherwise
// read as a section header.
package names
