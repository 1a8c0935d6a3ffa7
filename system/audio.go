package system

import (
	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/engine"
	"github.com/lixenwraith/crab-arena/event"
	"github.com/lixenwraith/crab-arena/parameter"
)

// AudioSystem maps simulation events to sound cues
// Decouples systems from the player; a nil player turns it into a no-op
type AudioSystem struct {
	world *engine.World

	enabled bool
}

func NewAudioSystem(world *engine.World) engine.System {
	s := &AudioSystem{world: world}
	s.Init()
	return s
}

func (s *AudioSystem) Init() {
	s.enabled = true
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) RunsWhilePaused() bool {
	return true
}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventBallDeflected,
		event.EventBallSpawned,
		event.EventGoalScored,
		event.EventGoalEliminated,
		event.EventGameOver,
	}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	player := s.world.Resources.Audio
	if !s.enabled || player == nil {
		return
	}

	switch ev.Type {
	case event.EventBallDeflected:
		if payload, ok := ev.Payload.(*event.BallDeflectedPayload); ok && payload.Contact == event.ContactPaddle {
			player.Play(core.SoundPaddle)
		} else {
			player.Play(core.SoundBounce)
		}
	case event.EventBallSpawned:
		player.Play(core.SoundSpawn)
	case event.EventGoalScored:
		player.Play(core.SoundGoal)
	case event.EventGoalEliminated:
		player.Play(core.SoundEliminated)
	case event.EventGameOver:
		player.Play(core.SoundGameOver)
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}
