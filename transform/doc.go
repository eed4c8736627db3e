// Package transform rewrites weighted distributions.
//
// Node level operations ([MoveWeight], [MoveWeightMatching], [CanBe],
// [CanBeOtherThan]) work on a single distribution. The keyed operations
// ([Rename], [RenameMatching], [OptionCanBe], [OptionCanBeOtherThan],
// [ResolveNow] and friends) address an option of a game options mapping
// by name and do nothing when the option is absent.
//
// Candidates are compared with [tree.Matches]. A candidate is live when
// [tree.Live] holds for its weight. Moving weight never creates an entry
// whose weight is not live, and the total live weight of a distribution is
// kept, except that a float weight merged into an integer weight is
// truncated toward zero.
package transform
