package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector for arena physics
// Arena plane is XZ; Y stays zero for all simulated entities
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FDist(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FReflect returns d reflected off a surface with unit normal n, renormalised
// r = d - 2(d·n)n
func V3FReflect(d, n Vec3F) Vec3F {
	dot2 := 2 * V3FDot(d, n)
	return V3FNormalize(Vec3F{d.X - dot2*n.X, d.Y - dot2*n.Y, d.Z - dot2*n.Z})
}

// V3FFromYaw returns the unit vector on the XZ plane at angle radians from +Z toward +X
func V3FFromYaw(angle float64) Vec3F {
	return Vec3F{X: math.Sin(angle), Y: 0, Z: math.Cos(angle)}
}

// V3FYaw returns the angle of v on the XZ plane measured from +Z toward +X
func V3FYaw(v Vec3F) float64 {
	return math.Atan2(v.X, v.Z)
}

// V3FApproxEqual compares component-wise within eps
func V3FApproxEqual(a, b Vec3F, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}
