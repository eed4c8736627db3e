// Package tree provides the schema-less document tree used for player
// option files.
//
// # Node Structure
//
// A Node is a closed tagged union over Type:
//
//   - NullType, BoolType, IntType, FloatType, StringType: scalars
//   - SequenceType: ordered Values
//   - MappingType: insertion ordered entries, Keys[i] is the key for
//     Values[i]; keys are unique under structural equality and may be
//     composite
//   - AliasType: an unresolved alias, name in String
//   - InvalidType: a parse error sentinel, message in String
//
// # Weighted Distributions
//
// An option value is either a scalar, chosen with certainty, or a mapping
// from candidate to weight. The helpers in coerce.go define the single
// coercion rule used everywhere:
//
//   - weights are numeric nodes only (Weight, IntWeight); integer
//     accumulation truncates floats toward zero
//   - an entry is live only when its weight is above zero (Live)
//   - candidates match under structural equality after the strings
//     "true"/"false" (any case) are read as booleans (Matches)
//
// # Equality
//
// Equal and Compare are structural. Hash is consistent with Equal and
// backs Set.
package tree
