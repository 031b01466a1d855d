// Package builder defines shared constants used by the graph constructors,
// ensuring consistent error prefixes and validation bounds.
package builder

// Canonical constructor names, used to prefix errors.
const (
	MethodComplete          = "Complete"
	MethodPath              = "Path"
	MethodCycle             = "Cycle"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodGrid              = "Grid"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomRegular     = "RandomRegular"
)

// Minimum sizes per topology.
const (
	// MinCompleteNodes allows K_1 (a single isolated vertex).
	MinCompleteNodes = 1
	// MinPathNodes is the smallest path with an edge.
	MinPathNodes = 2
	// MinCycleNodes is the smallest simple cycle.
	MinCycleNodes = 3
	// MinStarNodes is one center plus one leaf.
	MinStarNodes = 2
	// MinWheelNodes is a triangle rim plus the hub.
	MinWheelNodes = 4
	// MinGridDim allows a 1×1 grid (no edges).
	MinGridDim = 1
	// MinPartition is the smallest side of K_{n1,n2}.
	MinPartition = 1
	// MinRandomNodes is the smallest random graph.
	MinRandomNodes = 1
)

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// maxStubMatchingAttempts bounds RandomRegular retries.
const maxStubMatchingAttempts = 256
