package system

import (
	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/engine"
	"github.com/lixenwraith/crab-arena/event"
	"github.com/lixenwraith/crab-arena/parameter"
)

// GoalSystem swaps an eliminated side's crab for a permanent wall
// The goal keeps exactly one occupant: the wall replaces the crab as soon as
// the crab starts fading out
type GoalSystem struct {
	world *engine.World

	enabled bool
}

func NewGoalSystem(world *engine.World) engine.System {
	s := &GoalSystem{world: world}
	s.Init()
	return s
}

func (s *GoalSystem) Init() {
	s.enabled = true
}

func (s *GoalSystem) Name() string {
	return "goal"
}

func (s *GoalSystem) Priority() int {
	return parameter.PriorityGoal
}

func (s *GoalSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGoalEliminated}
}

func (s *GoalSystem) HandleEvent(ev event.GameEvent) {
	if !s.enabled {
		return
	}
	if payload, ok := ev.Payload.(*event.GoalEliminatedPayload); ok {
		s.eliminate(payload.Side)
	}
}

func (s *GoalSystem) Update() {}

func (s *GoalSystem) eliminate(side core.Side) {
	ge, goal := goalFor(s.world, side)

	if goal.Occupant != core.NoEntity && s.world.Components.Crab.Has(goal.Occupant) {
		s.world.PushEvent(event.EventFadeOutRequest, &event.FadeOutRequestPayload{Entity: goal.Occupant})
	}
	goal.Occupant = SpawnWall(s.world, side)
	s.world.Components.Goal.Set(ge, goal)

	s.world.Resources.Logger.Info("side eliminated", "side", side, "team", goal.Team)
}
