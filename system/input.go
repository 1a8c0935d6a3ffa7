package system

import (
	"github.com/lixenwraith/crab-arena/component"
	"github.com/lixenwraith/crab-arena/engine"
	"github.com/lixenwraith/crab-arena/event"
	"github.com/lixenwraith/crab-arena/parameter"
)

// InputSystem copies externally resolved forces onto input-controlled crabs
// Device mapping lives outside the simulation; this only consumes the result
type InputSystem struct {
	world *engine.World

	enabled bool
}

func NewInputSystem(world *engine.World) engine.System {
	s := &InputSystem{world: world}
	s.Init()
	return s
}

func (s *InputSystem) Init() {
	s.enabled = true
}

func (s *InputSystem) Name() string {
	return "input"
}

func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

func (s *InputSystem) RunsWhilePaused() bool {
	return true
}

func (s *InputSystem) EventTypes() []event.EventType {
	return nil
}

func (s *InputSystem) HandleEvent(event.GameEvent) {}

func (s *InputSystem) Update() {
	if !s.enabled {
		return
	}

	forces := &s.world.Resources.Input.Forces
	for _, e := range s.world.Components.Crab.All() {
		crab, ok := s.world.Components.Crab.Get(e)
		if !ok || crab.Controller != component.ControllerInput {
			continue
		}
		mv, ok := s.world.Components.Movement.Get(e)
		if !ok {
			continue
		}
		mv.Force = forces[crab.Side]
		s.world.Components.Movement.Set(e, mv)
	}
}
