package engine

import "github.com/lixenwraith/crab-arena/event"

// System is a per-tick simulation stage
// Systems run in ascending Priority; every system also receives the events
// it declares through EventTypes
type System interface {
	Name() string
	Priority() int
	Init()
	Update()
	EventTypes() []event.EventType
	HandleEvent(ev event.GameEvent)
}

// PauseExempt is implemented by systems that keep running while the match
// is paused or decided (input, AI, transform publication, audio)
type PauseExempt interface {
	RunsWhilePaused() bool
}

func runsWhileHalted(s System) bool {
	pe, ok := s.(PauseExempt)
	return ok && pe.RunsWhilePaused()
}
