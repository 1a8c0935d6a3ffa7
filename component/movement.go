package component

import "github.com/lixenwraith/crab-arena/core"

// MovementComponent carries speed state for anything the MovementSystem integrates
// Balls move along Heading in world space; crabs move along their side tangent
type MovementComponent struct {
	core.Motion
}
