package system

import (
	"sync/atomic"

	"github.com/lixenwraith/crab-arena/engine"
	"github.com/lixenwraith/crab-arena/event"
	"github.com/lixenwraith/crab-arena/parameter"
	"github.com/lixenwraith/crab-arena/status"
)

// StatusSystem samples world state into the metrics registry once per tick
type StatusSystem struct {
	world *engine.World

	statTicks   *atomic.Int64
	statBalls   *atomic.Int64
	statCrabs   *atomic.Int64
	statWalls   *atomic.Int64
	statRounds  *atomic.Int64
	statPaused  *atomic.Bool
	statSimTime *status.AtomicFloat
	statDelta   *status.AtomicFloat
	statPhase   *status.AtomicString
	statMatch   *status.AtomicString

	enabled bool
}

func NewStatusSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &StatusSystem{
		world:       world,
		statTicks:   reg.Ints.Get("engine.ticks"),
		statBalls:   reg.Ints.Get("ball.count"),
		statCrabs:   reg.Ints.Get("crab.count"),
		statWalls:   reg.Ints.Get("wall.count"),
		statRounds:  reg.Ints.Get("match.rounds"),
		statPaused:  reg.Bools.Get("match.paused"),
		statSimTime: reg.Floats.Get("engine.sim_seconds"),
		statDelta:   reg.Floats.Get("engine.dt_ms"),
		statPhase:   reg.Strings.Get("match.phase"),
		statMatch:   reg.Strings.Get("match.id"),
	}
	s.Init()
	return s
}

func (s *StatusSystem) Init() {
	s.enabled = true
}

func (s *StatusSystem) Name() string {
	return "status"
}

func (s *StatusSystem) Priority() int {
	return parameter.PriorityStatus
}

func (s *StatusSystem) RunsWhilePaused() bool {
	return true
}

func (s *StatusSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventRoundStart}
}

func (s *StatusSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventRoundStart {
		s.statRounds.Add(1)
	}
}

func (s *StatusSystem) Update() {
	if !s.enabled {
		return
	}

	t := s.world.Resources.Time
	m := s.world.Resources.Match

	s.statTicks.Store(t.FrameNumber)
	s.statSimTime.Set(t.SimTime.Seconds())
	s.statDelta.Set(float64(t.DeltaTime.Microseconds()) / 1000)
	s.statBalls.Store(int64(s.world.Components.Ball.Count()))
	s.statCrabs.Store(int64(s.world.Components.Crab.Count()))
	s.statWalls.Store(int64(s.world.Components.Wall.Count()))
	s.statPaused.Store(m.Paused)
	s.statPhase.Store(m.Phase.String())
	s.statMatch.Store(m.ID)
}
