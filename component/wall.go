package component

import "github.com/lixenwraith/crab-arena/core"

// WallComponent blocks an entire goal mouth
// Spawned for unused sides at round start and for eliminated sides during play
type WallComponent struct {
	Side      core.Side
	HalfDepth float64
}
