package system

import (
	"sync/atomic"

	"github.com/lixenwraith/crab-arena/component"
	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/engine"
	"github.com/lixenwraith/crab-arena/event"
	"github.com/lixenwraith/crab-arena/parameter"
)

// ScoreSystem detects balls past a defended goal line and keeps hit points
//
// A ball scores against a side when its signed distance is at or below the
// negative half-depth of the side's crab. Hit points saturate at zero and the
// elimination event fires only on the 1 -> 0 transition
type ScoreSystem struct {
	world *engine.World

	statGoals        *atomic.Int64
	statEliminations *atomic.Int64
	statLeaks        *atomic.Int64

	enabled bool
}

func NewScoreSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &ScoreSystem{
		world:            world,
		statGoals:        reg.Ints.Get("score.goals"),
		statEliminations: reg.Ints.Get("score.eliminations"),
		statLeaks:        reg.Ints.Get("score.leaks"),
	}
	s.Init()
	return s
}

func (s *ScoreSystem) Init() {
	s.enabled = true
}

func (s *ScoreSystem) Name() string {
	return "score"
}

func (s *ScoreSystem) Priority() int {
	return parameter.PriorityScore
}

func (s *ScoreSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGoalScored}
}

func (s *ScoreSystem) HandleEvent(ev event.GameEvent) {
	if !s.enabled {
		return
	}
	if payload, ok := ev.Payload.(*event.GoalScoredPayload); ok {
		s.applyGoal(payload.Side, payload.Ball)
	}
}

func (s *ScoreSystem) Update() {
	if !s.enabled {
		return
	}

	h := s.world.Resources.Config.Arena.HalfExtent
	line := s.world.Resources.Config.Crab.HalfDepth

	for _, b := range activeBalls(s.world) {
		tr, ok := s.world.Components.Transform.Get(b)
		if !ok {
			continue
		}
		for _, side := range core.Sides {
			if side.SignedDistance(tr.Position, h) > -line {
				continue
			}
			if s.defended(side) {
				s.world.PushEvent(event.EventGoalScored, &event.GoalScoredPayload{Side: side, Ball: b})
			} else {
				// Undefended side (wall still fading in): retire the ball quietly
				s.statLeaks.Add(1)
				s.world.PushEvent(event.EventFadeOutRequest, &event.FadeOutRequestPayload{Entity: b})
			}
			break
		}
	}
}

// defended reports whether side's occupant is a collidable crab
func (s *ScoreSystem) defended(side core.Side) bool {
	_, goal := goalFor(s.world, side)
	if goal.Occupant == core.NoEntity || !s.world.Components.Crab.Has(goal.Occupant) {
		return false
	}
	return hasCap(s.world, goal.Occupant, component.CapCollider)
}

func (s *ScoreSystem) applyGoal(side core.Side, ball core.Entity) {
	s.world.PushEvent(event.EventFadeOutRequest, &event.FadeOutRequestPayload{Entity: ball})

	ge, goal := goalFor(s.world, side)
	if goal.HitPoints == 0 {
		return
	}
	goal.HitPoints--
	s.statGoals.Add(1)
	s.world.Resources.Status.Ints.Get("hp." + side.String()).Store(int64(goal.HitPoints))
	s.world.Resources.Logger.Debug("goal scored", "side", side, "hit_points", goal.HitPoints, "ball", ball)

	if goal.HitPoints == 0 && !goal.Eliminated {
		goal.Eliminated = true
		s.statEliminations.Add(1)
		s.world.PushEvent(event.EventGoalEliminated, &event.GoalEliminatedPayload{Side: side, Team: goal.Team})
	}
	s.world.Components.Goal.Set(ge, goal)
}
