// Package match implements backtracking subgraph isomorphism over a target
// and a pattern graph, sequential (Engine) and parallel (Bundle).
//
// What
//
//   - Engine explores all embeddings of the pattern that start from one root
//     target vertex, following a precomputed order.Order. For each order
//     position it refines a candidate bitset:
//
//     cand = ^(∪ N(t_j) for earlier non-neighbors j, induced mode only)
//     cand &= N(t_j) for every earlier neighbor j
//     cand &^= {targets already used}
//
//     and extracts the survivors that pass the vertex predicate (degree and,
//     in semantic mode, attribute equality).
//   - Stack holds the partial assignment and pending candidates of every
//     level in one reusable arena; Solutions stores full assignments in a
//     flat arena with stride m.
//   - Bundle runs N long-lived workers, each owning one Engine, over chunks
//     of root vertices claimed from an atomic cursor, and merges worker
//     solutions into a shared collector under one mutex.
//
// Representations
//
//	A dense target supplies one bitset row per vertex and refinement uses
//	word-level Or/And. A sparse target supplies sorted neighbor lists and
//	refinement uses OrIndices/AndIndices with a scratch buffer sized to the
//	target's maximum degree. The engine binds one representation at
//	construction.
//
// Modes
//
//   - Induced (default): pattern non-edges must map to target non-edges.
//   - NonInduced: only pattern edges are checked.
//
// Solutions are indexed by order position; Order.Sequence maps a position
// back to its pattern vertex.
//
// Complexity
//
//	Exponential in the pattern size in the worst case. Each refinement step
//	costs O(k · n/8) dense or O(n/8 + Σ deg) sparse, where k is the number of
//	constraining positions.
package match
