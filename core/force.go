package core

// Force is the resolved directional acceleration signal driving a paddle
// ForceNone means decelerate toward zero
type Force int8

const (
	ForceNone Force = iota
	ForcePositive
	ForceNegative
)

// Sign returns +1, -1 or 0 for the force direction
func (f Force) Sign() float64 {
	switch f {
	case ForcePositive:
		return 1
	case ForceNegative:
		return -1
	default:
		return 0
	}
}

func (f Force) String() string {
	switch f {
	case ForcePositive:
		return "positive"
	case ForceNegative:
		return "negative"
	default:
		return "none"
	}
}

// ForceFromInt maps -1/0/+1 wire values to a Force
func ForceFromInt(v int) Force {
	switch {
	case v > 0:
		return ForcePositive
	case v < 0:
		return ForceNegative
	default:
		return ForceNone
	}
}
