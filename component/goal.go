package component

import "github.com/lixenwraith/crab-arena/core"

// GoalComponent is the per-side scoring record
// Occupant is the crab or wall currently defending the side, or core.NoEntity
type GoalComponent struct {
	Side      core.Side
	Team      int
	HitPoints int
	Occupant  core.Entity

	// Participating is set for sides that started the round with a crab
	Participating bool
	Eliminated    bool
}

// Alive reports whether the side still counts toward its team
func (g GoalComponent) Alive() bool {
	return g.Participating && g.HitPoints > 0
}
