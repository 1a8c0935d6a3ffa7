package component

import "github.com/lixenwraith/crab-arena/vmath"

// TransformComponent is the published world placement
// Y is always 0; Yaw rotates about the Y axis
type TransformComponent struct {
	Position vmath.Vec3F
	Yaw      float64
}
