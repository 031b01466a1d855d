// Package builder provides internal helpers shared by the constructors.
package builder

import (
	"fmt"

	"github.com/orazve/subiso/core"
)

// addBlock appends n vertices with attributes from cfg and returns the id of
// the first one.
//
// Complexity: O(n) time, O(1) extra space.
func addBlock(method string, g *core.Graph, cfg builderConfig, n int) (int, error) {
	if cfg.attrNeedsRNG && cfg.rng == nil {
		return 0, fmt.Errorf("%s: attribute policy: %w", method, ErrNeedRandSource)
	}
	base := g.VertexCount()
	for i := 0; i < n; i++ {
		g.AddVertex(cfg.attrFn(i, cfg.rng))
	}
	return base, nil
}

// connect adds {u,v} and wraps any core error with the method tag.
func connect(method string, g *core.Graph, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}
	return nil
}
