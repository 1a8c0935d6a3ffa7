package system

import (
	"github.com/lixenwraith/crab-arena/component"
	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/engine"
	"github.com/lixenwraith/crab-arena/event"
	"github.com/lixenwraith/crab-arena/parameter"
)

// FadeSystem drives the two-phase activation lifecycle
//
// In completion grants the entity's OnActivate capabilities. Out completion
// marks the entity for cleanup. A fade-out requested during a fade-in starts
// at the complement of the fade-in progress so the weight stays continuous
type FadeSystem struct {
	world *engine.World

	enabled bool
}

func NewFadeSystem(world *engine.World) engine.System {
	s := &FadeSystem{world: world}
	s.Init()
	return s
}

func (s *FadeSystem) Init() {
	s.enabled = true
}

func (s *FadeSystem) Name() string {
	return "fade"
}

func (s *FadeSystem) Priority() int {
	return parameter.PriorityFade
}

func (s *FadeSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventFadeOutRequest,
		event.EventRoundReset,
	}
}

func (s *FadeSystem) HandleEvent(ev event.GameEvent) {
	if !s.enabled {
		return
	}

	switch ev.Type {
	case event.EventFadeOutRequest:
		if payload, ok := ev.Payload.(*event.FadeOutRequestPayload); ok {
			s.FadeOut(payload.Entity)
		}

	case event.EventRoundReset:
		for _, e := range s.world.Components.Ball.All() {
			s.FadeOut(e)
		}
		for _, e := range s.world.Components.Crab.All() {
			s.FadeOut(e)
		}
		for _, e := range s.world.Components.Wall.All() {
			s.FadeOut(e)
		}
	}
}

// FadeOut starts or reverses a fade-out on e
// Requests on entities already fading out or gone are ignored
func (s *FadeSystem) FadeOut(e core.Entity) {
	if !s.world.Alive(e) || s.world.Components.Death.Has(e) {
		return
	}

	fade, ok := s.world.Components.Fade.Get(e)
	switch {
	case ok && fade.Phase == component.FadeOut:
		return
	case ok:
		fade = fade.Reversed()
	default:
		fade = component.FadeComponent{Phase: component.FadeOut}
	}
	s.world.Components.Fade.Set(e, fade)

	act, _ := s.world.Components.Activation.Get(e)
	act.OnActivate = component.CapNone
	act.Revoke(component.CapCollider)
	// Balls coast out of the arena; fixtures freeze in place
	if !s.world.Components.Ball.Has(e) {
		act.Revoke(component.CapMovement)
	}
	s.world.Components.Activation.Set(e, act)
}

func (s *FadeSystem) Update() {
	if !s.enabled {
		return
	}

	duration := s.world.Resources.Config.Fade.DurationSeconds
	step := s.world.Resources.Time.Seconds() / duration

	for _, e := range s.world.Components.Fade.All() {
		if s.world.Components.Death.Has(e) {
			continue
		}
		fade, ok := s.world.Components.Fade.Get(e)
		if !ok {
			continue
		}

		fade.Progress += step
		if fade.Progress < 1 {
			s.world.Components.Fade.Set(e, fade)
			continue
		}
		fade.Progress = 1

		if fade.Phase == component.FadeIn {
			s.world.Components.Fade.Remove(e)
			act, _ := s.world.Components.Activation.Get(e)
			act.Grant(act.OnActivate)
			s.world.Components.Activation.Set(e, act)
			continue
		}

		s.world.Components.Fade.Set(e, fade)
		s.world.Components.Death.Set(e, component.DeathComponent{})
	}
}
