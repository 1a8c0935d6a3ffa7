package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/crab-arena/engine"
	"github.com/lixenwraith/crab-arena/event"
)

// tracer is a passive system logging selected events
type tracer struct {
	types  []event.EventType
	logger *log.Logger
}

func (t *tracer) Name() string                  { return "trace" }
func (t *tracer) Priority() int                 { return 1000 }
func (t *tracer) Init()                         {}
func (t *tracer) Update()                       {}
func (t *tracer) RunsWhilePaused() bool         { return true }
func (t *tracer) EventTypes() []event.EventType { return t.types }

func (t *tracer) HandleEvent(ev event.GameEvent) {
	t.logger.Info(ev.Type.String(), "frame", ev.Frame, "payload", fmt.Sprintf("%+v", payloadValue(ev.Payload)))
}

// payloadValue dereferences pointer payloads for readable output
func payloadValue(p any) any {
	switch v := p.(type) {
	case *event.GoalScoredPayload:
		return *v
	case *event.GoalEliminatedPayload:
		return *v
	case *event.GameOverPayload:
		return *v
	case *event.BallDeflectedPayload:
		return *v
	case *event.BallSpawnedPayload:
		return *v
	case *event.RoundStartPayload:
		return *v
	case *event.FadeOutRequestPayload:
		return *v
	case *event.PauseChangedPayload:
		return *v
	default:
		return p
	}
}

// summary aggregates round outcomes
type summary struct {
	wins     map[int]int
	draws    int
	timeouts int
	ticks    []int
}

func newSummary() *summary {
	return &summary{wins: make(map[int]int)}
}

func (s *summary) add(res engine.Result, ticks int) {
	s.ticks = append(s.ticks, ticks)
	switch {
	case !res.Decided:
		s.timeouts++
	case res.Draw:
		s.draws++
	default:
		s.wins[res.Team]++
	}
}

func (s *summary) print(w io.Writer) {
	teams := make([]int, 0, len(s.wins))
	for team := range s.wins {
		teams = append(teams, team)
	}
	sort.Ints(teams)
	for _, team := range teams {
		fmt.Fprintf(w, "team %d: %d wins\n", team, s.wins[team])
	}
	fmt.Fprintf(w, "draws: %d timeouts: %d\n", s.draws, s.timeouts)

	if len(s.ticks) == 0 {
		return
	}
	sorted := append([]int(nil), s.ticks...)
	sort.Ints(sorted)
	total := 0
	for _, n := range sorted {
		total += n
	}
	fmt.Fprintf(w, "ticks/round: min=%d median=%d max=%d mean=%d\n",
		sorted[0], sorted[len(sorted)/2], sorted[len(sorted)-1], total/len(sorted))
}
