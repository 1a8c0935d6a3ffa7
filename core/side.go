package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/crab-arena/vmath"
)

// Side identifies one of the four cardinal goals of the arena
//
// Arena lies on the XZ plane with Y up. Each side owns an outward axis
// pointing from its goal line into the arena, and a tangent (local 1-D axis)
// equal to the outward axis rotated +90° about Y
type Side uint8

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
	SideCount
)

// Sides lists all sides in iteration order
var Sides = [SideCount]Side{SideTop, SideRight, SideBottom, SideLeft}

var sideNames = [SideCount]string{"top", "right", "bottom", "left"}

var sideAxes = [SideCount]vmath.Vec3F{
	SideTop:    {X: 0, Y: 0, Z: 1},
	SideRight:  {X: -1, Y: 0, Z: 0},
	SideBottom: {X: 0, Y: 0, Z: -1},
	SideLeft:   {X: 1, Y: 0, Z: 0},
}

var sideTangents = [SideCount]vmath.Vec3F{
	SideTop:    {X: 1, Y: 0, Z: 0},
	SideRight:  {X: 0, Y: 0, Z: 1},
	SideBottom: {X: -1, Y: 0, Z: 0},
	SideLeft:   {X: 0, Y: 0, Z: -1},
}

func (s Side) String() string {
	if s >= SideCount {
		return fmt.Sprintf("side(%d)", uint8(s))
	}
	return sideNames[s]
}

// ParseSide resolves a case-insensitive side name
func ParseSide(name string) (Side, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, sn := range sideNames {
		if sn == n {
			return Side(i), nil
		}
	}
	return SideCount, fmt.Errorf("unknown side %q", name)
}

// Axis returns the outward unit axis, pointing from the goal line into the arena
func (s Side) Axis() vmath.Vec3F {
	return sideAxes[s]
}

// Tangent returns the side's local 1-D axis in world space
func (s Side) Tangent() vmath.Vec3F {
	return sideTangents[s]
}

// GoalCentre returns the world position of the middle of the goal line
func (s Side) GoalCentre(halfExtent float64) vmath.Vec3F {
	return vmath.V3FScale(sideAxes[s], -halfExtent)
}

// SignedDistance returns the perpendicular distance from p to the side's
// defensive line; negative values are past the line, outside the arena
func (s Side) SignedDistance(p vmath.Vec3F, halfExtent float64) float64 {
	return vmath.V3FDot(p, sideAxes[s]) + halfExtent
}

// WorldToLocal maps a world position onto the side's local 1-D axis
func (s Side) WorldToLocal(p vmath.Vec3F) float64 {
	return vmath.V3FDot(p, sideTangents[s])
}

// LocalToWorld composes a local 1-D position with the side's goal transform
func (s Side) LocalToWorld(local, halfExtent float64) vmath.Vec3F {
	return vmath.V3FAdd(s.GoalCentre(halfExtent), vmath.V3FScale(sideTangents[s], local))
}

// Yaw returns the facing angle about Y of an occupant looking into the arena
func (s Side) Yaw() float64 {
	a := sideAxes[s]
	return math.Atan2(a.X, a.Z)
}

// Corners returns the four arena corner positions, clockwise from top-left
func Corners(halfExtent float64) [4]vmath.Vec3F {
	h := halfExtent
	return [4]vmath.Vec3F{
		{X: -h, Y: 0, Z: -h},
		{X: h, Y: 0, Z: -h},
		{X: h, Y: 0, Z: h},
		{X: -h, Y: 0, Z: h},
	}
}
