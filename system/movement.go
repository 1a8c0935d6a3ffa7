package system

import (
	"github.com/lixenwraith/crab-arena/component"
	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/engine"
	"github.com/lixenwraith/crab-arena/event"
	"github.com/lixenwraith/crab-arena/parameter"
	"github.com/lixenwraith/crab-arena/physics"
	"github.com/lixenwraith/crab-arena/vmath"
)

// MovementSystem integrates speed and position for every entity holding CapMovement
// Crabs move along their side tangent and are restricted to the goal mouth
type MovementSystem struct {
	world *engine.World

	enabled bool
}

func NewMovementSystem(world *engine.World) engine.System {
	s := &MovementSystem{world: world}
	s.Init()
	return s
}

func (s *MovementSystem) Init() {
	s.enabled = true
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) EventTypes() []event.EventType {
	return nil
}

func (s *MovementSystem) HandleEvent(event.GameEvent) {}

func (s *MovementSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.Seconds()
	for _, e := range s.world.Components.Movement.All() {
		if !hasCap(s.world, e, component.CapMovement) {
			continue
		}
		mv, ok := s.world.Components.Movement.Get(e)
		if !ok {
			continue
		}

		if crab, ok := s.world.Components.Crab.Get(e); ok {
			s.moveCrab(e, crab, mv, dt)
			continue
		}
		s.moveFree(e, mv, dt)
	}
}

// moveFree integrates an entity in world space along its heading
func (s *MovementSystem) moveFree(e core.Entity, mv component.MovementComponent, dt float64) {
	tr, ok := s.world.Components.Transform.Get(e)
	if !ok {
		return
	}

	mv.Speed = physics.Accelerate(mv.Speed, mv.Acceleration, mv.MaxSpeed, mv.Force, dt)
	tr.Position = physics.Integrate(tr.Position, mv.Heading, mv.Speed, dt)
	tr.Yaw = vmath.V3FYaw(mv.Heading)

	s.world.Components.Movement.Set(e, mv)
	s.world.Components.Transform.Set(e, tr)
}

// moveCrab integrates a crab along its side and applies the restriction step
//
// Before integration a force toward a bound is dropped when the predicted
// stop already reaches that bound. After integration the position is clamped
// and the speed zeroed if the clamp engaged
func (s *MovementSystem) moveCrab(e core.Entity, crab component.CrabComponent, mv component.MovementComponent, dt float64) {
	stop := crab.Local + physics.StoppingDistance(mv.Speed, mv.Acceleration)
	switch {
	case mv.Force == core.ForcePositive && stop >= crab.HalfBound:
		mv.Force = core.ForceNone
	case mv.Force == core.ForceNegative && stop <= -crab.HalfBound:
		mv.Force = core.ForceNone
	}

	mv.Speed = physics.Accelerate(mv.Speed, mv.Acceleration, mv.MaxSpeed, mv.Force, dt)
	crab.Local += mv.Speed * dt

	if crab.Local > crab.HalfBound {
		crab.Local = crab.HalfBound
		mv.Speed = 0
	} else if crab.Local < -crab.HalfBound {
		crab.Local = -crab.HalfBound
		mv.Speed = 0
	}
	crab.StoppingDistance = physics.StoppingDistance(mv.Speed, mv.Acceleration)

	s.world.Components.Crab.Set(e, crab)
	s.world.Components.Movement.Set(e, mv)
	s.world.Components.Transform.Set(e, component.TransformComponent{
		Position: crab.Side.LocalToWorld(crab.Local, s.world.Resources.Config.Arena.HalfExtent),
		Yaw:      crab.Side.Yaw(),
	})
}
