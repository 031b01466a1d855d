// Package subiso finds every occurrence of a small pattern graph inside a
// larger target graph, in parallel.
//
// What is inside?
//
//	bitset/  - fixed-length bitsets with word-at-a-time algebra and extraction
//	core/    - thread-safe mutable Graph and its frozen Snapshot (dense or sparse)
//	builder/ - deterministic topology generators (complete, cycle, grid, random…)
//	order/   - matching order planner and per-position pruning conditions
//	match/   - backtracking Engine, partial-assignment Stack, Solutions, Bundle
//	config/  - YAML run configuration for the CLI
//
// The root package ties them together: a Matcher plans the pattern once,
// caches the plan, runs a match.Bundle over every target vertex and returns
// each embedding indexed by pattern vertex id.
//
// Quick example:
//
//	target, _ := builder.BuildSnapshot(nil, nil, builder.Complete(4))
//	pattern, _ := builder.BuildSnapshot(nil, nil, builder.Complete(3))
//	res, _ := subiso.Match(ctx, target, pattern, subiso.DefaultDescriptor())
//	fmt.Println(res.MatchCount) // 24
//
// Embeddings are injective maps from pattern vertices to target vertices that
// preserve edges. Induced matching also preserves non-edges; semantic
// matching also requires equal vertex attributes.
package subiso
