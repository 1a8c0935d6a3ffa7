package component

import "github.com/lixenwraith/crab-arena/core"

// ControllerKind selects the force source for a crab
type ControllerKind uint8

const (
	ControllerInput ControllerKind = iota
	ControllerAI
)

func (k ControllerKind) String() string {
	if k == ControllerAI {
		return "ai"
	}
	return "input"
}

// CrabComponent is a paddle confined to its side's goal mouth
type CrabComponent struct {
	Side       core.Side
	Team       int
	Controller ControllerKind

	// Local is the 1-D position along the side tangent, 0 at the goal centre
	Local float64

	HalfWidth float64
	HalfDepth float64

	// HalfBound limits |Local|
	HalfBound float64

	// StoppingDistance is the predicted coast before speed reaches zero
	// Refreshed by MovementSystem each tick
	StoppingDistance float64
}
