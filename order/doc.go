// Package order computes the visiting schedule used by the matching engine.
//
// What
//
//   - An Order is an immutable, per-pattern plan: a permutation of pattern
//     vertices (Sequence) plus, for every position i, a Condition listing the
//     earlier positions that constrain the candidates for Sequence[i].
//   - Condition.Positions[:Divider] are earlier positions whose pattern vertex
//     is NOT adjacent to Sequence[i] (used to exclude target neighbors in
//     induced matching); Condition.Positions[Divider:] are earlier positions
//     whose pattern vertex IS adjacent (intersected in every mode).
//   - Predecessor and Direction record the spanning-forest edge that reaches
//     each pattern vertex in the order.
//
// Planner
//
//	Plan places highly constrained vertices early: it starts at the vertex of
//	maximum degree, then repeatedly takes the unvisited vertex with the most
//	edges into the visited set (ties: higher degree, then lower id). A
//	disconnected pattern continues from the best remaining vertex. Selection
//	runs on a binary heap with lazy re-insertion.
//
// Complexity (m = pattern vertices, e = pattern edges)
//
//   - Plan:         O((m + e) log(m + e)) heap work + O(m²) for the conditions
//   - FromSequence: O(m²)
//
// An Order is shared read-only by every engine of a bundle.
package order
