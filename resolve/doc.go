// Package resolve decides which alternative of a fixed list a candidate input
// type activates, or rejects the input as ambiguous or unconvertible.
//
// Key functions:
//   - Rank: scores a single (input, alternative) pair into a Tier
//   - Resolve: picks the unique best alternative index for an input type
//   - Explain: reports the verdict for every alternative, for diagnostics
//
// Ranking is a pure function of the types involved: exact identity beats
// information-preserving widenings, which beat registered user conversions.
// A tie inside the winning tier is a hard rejection, never a source-order pick.
package resolve
