// SPDX-License-Identifier: MIT
// Package builder provides deterministic topology generators for core.Graph.
//
// Generators are used for fixtures in tests, examples and benchmarks, and by
// the CLI to construct target and pattern graphs from a YAML run file.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:  func(g *core.Graph, cfg builderConfig) error.
//     – BuildGraph:   creates a Graph and applies constructors in order.
//     – FromSpec:     resolves a named Spec ("cycle", "random", ...) to a Constructor.
//   - Topologies (each appends a fresh block of vertices to g):
//     – Complete(n), Path(n), Cycle(n), Star(n), Wheel(n)
//     – Grid(rows, cols), CompleteBipartite(n1, n2)
//     – RandomSparse(n, p), RandomRegular(n, d)
//   - Options (BuilderOption):
//     – WithSeed / WithRand:  RNG for stochastic constructors.
//     – WithAttributeFn:      per-vertex attribute generator.
//     – WithCyclicLabels(k):  attribute i mod k (deterministic).
//     – WithRandomLabels(k):  attribute uniform in [0,k) (needs an RNG).
//
// Composition
//
//	Every constructor allocates its own contiguous id block starting at
//	g.VertexCount(), so applying several constructors yields a disjoint
//	union of the topologies. Attribute functions receive the index inside
//	the block.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed yield identical graphs.
//   - No panics at runtime; option constructors panic on meaningless input.
//   - Sentinel errors (ErrTooFewVertices, ErrInvalidProbability, ...) wrapped
//     with the constructor name for errors.Is branching.
package builder
