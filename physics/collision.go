package physics

import (
	"math"

	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/parameter"
	"github.com/lixenwraith/crab-arena/vmath"
)

// CircleContact tests a moving ball against a circle collider
// Returns the contact axis (unit, ball toward other) when the two overlap and
// the ball heading approaches the other centre
func CircleContact(ballPos, heading, otherPos vmath.Vec3F, radii float64) (vmath.Vec3F, bool) {
	delta := vmath.V3FSub(otherPos, ballPos)
	distSq := vmath.V3FMagSq(delta)
	if distSq == 0 || distSq > radii*radii {
		return vmath.Vec3F{}, false
	}
	n := vmath.V3FNormalize(delta)
	if vmath.V3FDot(heading, n) <= 0 {
		return vmath.Vec3F{}, false
	}
	return n, true
}

// Band is a slab lying on a side's goal line, centred at Local along the tangent
type Band struct {
	Side      core.Side
	Local     float64
	HalfWidth float64
	HalfDepth float64
}

// BandContact tests a ball against a band
// Returns the lateral offset of the ball from the band centre on contact
// A contact needs the ball within reach of the band face, laterally inside
// the band, and heading toward the goal
func BandContact(b Band, halfExtent float64, ballPos, heading vmath.Vec3F, radius float64) (float64, bool) {
	dist := b.Side.SignedDistance(ballPos, halfExtent)
	if dist > b.HalfDepth+radius || dist <= -b.HalfDepth {
		return 0, false
	}
	offset := b.Side.WorldToLocal(ballPos) - b.Local
	if math.Abs(offset) > b.HalfWidth+radius {
		return 0, false
	}
	// Contact axis ball->band is -axis; approaching means heading·(-axis) > 0
	if vmath.V3FDot(heading, b.Side.Axis()) >= 0 {
		return 0, false
	}
	return offset, true
}

// Reflect mirrors heading about the contact normal and renormalises
func Reflect(heading, normal vmath.Vec3F) vmath.Vec3F {
	return vmath.V3FReflect(heading, normal)
}

// HemisphereDeflect returns the heading a paddle sends a ball back along
// The outward axis is rotated toward the tangent by the normalized lateral
// offset scaled to parameter.MaxDeflectionDegrees; centre hits go straight back
func HemisphereDeflect(side core.Side, offset, halfWidth float64) vmath.Vec3F {
	o := vmath.ClampF(offset/halfWidth, -1, 1)
	theta := o * vmath.DegToRad(parameter.MaxDeflectionDegrees)
	h := vmath.V3FAdd(
		vmath.V3FScale(side.Axis(), math.Cos(theta)),
		vmath.V3FScale(side.Tangent(), math.Sin(theta)),
	)
	return vmath.V3FNormalize(h)
}
