package core

import "github.com/lixenwraith/crab-arena/vmath"

// Motion is the movement state shared by balls and crabs
// Heading is a unit vector; Speed is signed along it
type Motion struct {
	Heading      vmath.Vec3F
	Speed        float64
	MaxSpeed     float64
	Acceleration float64
	Force        Force
}
