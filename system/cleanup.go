package system

import (
	"github.com/lixenwraith/crab-arena/engine"
	"github.com/lixenwraith/crab-arena/event"
	"github.com/lixenwraith/crab-arena/parameter"
)

// CleanupSystem destroys entities whose fade-out completed this tick
type CleanupSystem struct {
	world *engine.World

	enabled bool
}

func NewCleanupSystem(world *engine.World) engine.System {
	s := &CleanupSystem{world: world}
	s.Init()
	return s
}

func (s *CleanupSystem) Init() {
	s.enabled = true
}

func (s *CleanupSystem) Name() string {
	return "cleanup"
}

func (s *CleanupSystem) Priority() int {
	return parameter.PriorityCleanup
}

func (s *CleanupSystem) EventTypes() []event.EventType {
	return nil
}

func (s *CleanupSystem) HandleEvent(event.GameEvent) {}

func (s *CleanupSystem) Update() {
	if !s.enabled {
		return
	}
	for _, e := range s.world.Components.Death.All() {
		s.world.DestroyEntity(e)
	}
}
