// Package bitset provides a fixed-length, byte-addressed bit vector over
// vertex ids, tuned for candidate-set refinement in subgraph matching.
//
// What
//
//   - Bit v of a Bitset of length n lives at byte v>>3 under mask 1<<(v&7);
//     the backing array holds exactly ceil(n/8) bytes.
//   - In-place boolean algebra: And, Or, Xor, AndNot, OrNot, Not, Assign.
//   - Index-list forms used by sparse targets: SetIndices, OrIndices and
//     AndIndices (stage survivors in a caller-owned scratch buffer, clear,
//     re-set survivors).
//   - Queries: Popcount (256-entry lookup table), MinIndex, MaxIndex, Rank,
//     Indices.
//   - Extract: destructive ascending iteration, 64 bits at a time with a
//     byte tail, used to enumerate candidates without extra storage.
//
// Length policy
//
//	Bulk operations are defined over the shorter operand; nothing is resized
//	implicitly. Operations that can raise bits past n (Not, OrNot, Fill) mask
//	the final byte, so Popcount(A) + Popcount(^A) == Len() always holds.
//
// Ownership
//
//	A Bitset is a small value (slice header + length). Copies share the
//	backing array; use Clone for an independent copy. A Bitset is not safe
//	for concurrent mutation; each search worker owns its own.
//
// Complexity (B = ceil(n/8) bytes)
//
//   - Set, Unset, Test: O(1)
//   - bulk algebra, Popcount, Clear, Fill: O(B)
//   - OrIndices, AndIndices: O(len(list)) + O(B) for the clear in AndIndices
//   - Extract: O(B/8 + popcount)
package bitset
