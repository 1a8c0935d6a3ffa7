package vmath

import "math"

// ClampF limits v to [lo, hi]
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SignF returns -1, 0 or +1
func SignF(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// ApproxEqual reports |a-b| <= eps
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
