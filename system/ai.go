package system

import (
	"math"

	"github.com/lixenwraith/crab-arena/component"
	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/engine"
	"github.com/lixenwraith/crab-arena/event"
	"github.com/lixenwraith/crab-arena/parameter"
	"github.com/lixenwraith/crab-arena/physics"
)

// AISystem steers AI crabs with a dead-zone controller
//
// Targeting picks the active ball closest to the crab's own goal line.
// Control compares the ball's local coordinate with the crab's predicted
// stop position and pushes only when the gap exceeds the ideal hit area
type AISystem struct {
	world *engine.World

	enabled bool
}

func NewAISystem(world *engine.World) engine.System {
	s := &AISystem{world: world}
	s.Init()
	return s
}

func (s *AISystem) Init() {
	s.enabled = true
}

func (s *AISystem) Name() string {
	return "ai"
}

func (s *AISystem) Priority() int {
	return parameter.PriorityAI
}

func (s *AISystem) RunsWhilePaused() bool {
	return true
}

func (s *AISystem) EventTypes() []event.EventType {
	return nil
}

func (s *AISystem) HandleEvent(event.GameEvent) {}

func (s *AISystem) Update() {
	if !s.enabled {
		return
	}

	balls := activeBalls(s.world)
	for _, e := range s.world.Components.AI.All() {
		crab, ok := s.world.Components.Crab.Get(e)
		if !ok {
			continue
		}
		mv, ok := s.world.Components.Movement.Get(e)
		if !ok {
			continue
		}

		target := s.selectTarget(crab.Side, balls)
		s.world.Components.AI.Set(e, component.AIComponent{Target: target})

		mv.Force = s.control(crab, mv.Motion, target)
		s.world.Components.Movement.Set(e, mv)
	}
}

// selectTarget returns the ball with the smallest signed distance to side
// Ties keep the first ball found
func (s *AISystem) selectTarget(side core.Side, balls []core.Entity) core.Entity {
	h := s.world.Resources.Config.Arena.HalfExtent
	target := core.NoEntity
	best := math.Inf(1)
	for _, b := range balls {
		tr, ok := s.world.Components.Transform.Get(b)
		if !ok {
			continue
		}
		if d := side.SignedDistance(tr.Position, h); d < best {
			best = d
			target = b
		}
	}
	return target
}

// control derives the force that moves the predicted stop toward the target
func (s *AISystem) control(crab component.CrabComponent, m core.Motion, target core.Entity) core.Force {
	if target == core.NoEntity {
		return core.ForceNone
	}
	tr, ok := s.world.Components.Transform.Get(target)
	if !ok {
		return core.ForceNone
	}

	targetLocal := crab.Side.WorldToLocal(tr.Position)
	stop := crab.Local + physics.StoppingDistance(m.Speed, m.Acceleration)
	gap := targetLocal - stop

	if math.Abs(gap) < s.world.Resources.Config.AI.IdealHitArea*crab.HalfWidth {
		return core.ForceNone
	}
	if gap > 0 {
		return core.ForcePositive
	}
	return core.ForceNegative
}
