package system

import (
	"github.com/lixenwraith/crab-arena/engine"
	"github.com/lixenwraith/crab-arena/event"
	"github.com/lixenwraith/crab-arena/parameter"
)

// GameOverSystem decides the round after eliminations
// Evaluation waits until every elimination of the tick has been applied, so
// sides falling on the same tick are judged together
type GameOverSystem struct {
	world *engine.World

	pending bool
	enabled bool
}

func NewGameOverSystem(world *engine.World) engine.System {
	s := &GameOverSystem{world: world}
	s.Init()
	return s
}

func (s *GameOverSystem) Init() {
	s.pending = false
	s.enabled = true
}

func (s *GameOverSystem) Name() string {
	return "gameover"
}

func (s *GameOverSystem) Priority() int {
	return parameter.PriorityGameOver
}

func (s *GameOverSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGoalEliminated,
		event.EventRoundStart,
	}
}

func (s *GameOverSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventRoundStart:
		s.Init()
	case event.EventGoalEliminated:
		s.pending = true
	}
}

func (s *GameOverSystem) Update() {
	if !s.enabled || !s.pending {
		return
	}
	s.pending = false

	teams := make(map[int]bool, 4)
	for _, e := range s.world.Components.Goal.All() {
		if g, ok := s.world.Components.Goal.Get(e); ok && g.Alive() {
			teams[g.Team] = true
		}
	}

	var result engine.Result
	switch len(teams) {
	case 0:
		result = engine.Result{Decided: true, Draw: true}
	case 1:
		for team := range teams {
			result = engine.Result{Decided: true, Team: team}
		}
	default:
		return
	}

	match := s.world.Resources.Match
	match.Result = result
	match.Phase = engine.PhaseOver
	s.world.PushEvent(event.EventGameOver, &event.GameOverPayload{Draw: result.Draw, Team: result.Team})

	if result.Draw {
		s.world.Resources.Logger.Info("round over", "result", "draw", "match", match.ID)
	} else {
		s.world.Resources.Logger.Info("round over", "winner", result.Team, "match", match.ID)
	}
}
