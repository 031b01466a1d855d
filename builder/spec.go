// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// spec.go - name-based constructor resolution for configuration files.

package builder

import (
	"fmt"
	"strings"
)

// Topology names accepted by FromSpec.
const (
	TopologyComplete  = "complete"
	TopologyPath      = "path"
	TopologyCycle     = "cycle"
	TopologyStar      = "star"
	TopologyWheel     = "wheel"
	TopologyGrid      = "grid"
	TopologyBipartite = "bipartite"
	TopologyRandom    = "random"
	TopologyRegular   = "regular"
)

// Spec describes one constructor by name. Fields not used by the named
// topology are ignored:
//
//	complete, path, cycle, star, wheel   N
//	grid                                 N rows, M cols
//	bipartite                            N left, M right
//	random                               N, P
//	regular                              N, D
type Spec struct {
	Topology string
	N, M, D  int
	P        float64
}

// FromSpec resolves s to a Constructor. Parameter validation happens when the
// constructor runs, so errors surface through BuildGraph.
func FromSpec(s Spec) (Constructor, error) {
	switch strings.ToLower(strings.TrimSpace(s.Topology)) {
	case TopologyComplete:
		return Complete(s.N), nil
	case TopologyPath:
		return Path(s.N), nil
	case TopologyCycle:
		return Cycle(s.N), nil
	case TopologyStar:
		return Star(s.N), nil
	case TopologyWheel:
		return Wheel(s.N), nil
	case TopologyGrid:
		return Grid(s.N, s.M), nil
	case TopologyBipartite:
		return CompleteBipartite(s.N, s.M), nil
	case TopologyRandom:
		return RandomSparse(s.N, s.P), nil
	case TopologyRegular:
		return RandomRegular(s.N, s.D), nil
	default:
		return nil, fmt.Errorf("FromSpec(%q): %w", s.Topology, ErrUnknownTopology)
	}
}

// Topologies lists the names FromSpec accepts.
func Topologies() []string {
	return []string{
		TopologyComplete, TopologyPath, TopologyCycle, TopologyStar, TopologyWheel,
		TopologyGrid, TopologyBipartite, TopologyRandom, TopologyRegular,
	}
}
