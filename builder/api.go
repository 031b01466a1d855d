// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Topology factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/orazve/subiso/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately.
//
// Complexity:
//   - Σ cost of each constructor; wrapper overhead O(K).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return g, nil
}

// BuildSnapshot is BuildGraph followed by Graph.Snapshot(sopts...).
func BuildSnapshot(bopts []BuilderOption, sopts []core.SnapshotOption, cons ...Constructor) (*core.Snapshot, error) {
	g, err := BuildGraph(nil, bopts, cons...)
	if err != nil {
		return nil, err
	}
	s, err := g.Snapshot(sopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildSnapshot: %w", err)
	}
	return s, nil
}
