package system

import (
	"sort"

	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/engine"
	"github.com/lixenwraith/crab-arena/event"
	"github.com/lixenwraith/crab-arena/parameter"
)

// TransformSystem publishes an immutable snapshot of the arena each tick
// Renderers and the spectator feed read only this snapshot
type TransformSystem struct {
	world *engine.World

	enabled bool
}

func NewTransformSystem(world *engine.World) engine.System {
	s := &TransformSystem{world: world}
	s.Init()
	return s
}

func (s *TransformSystem) Init() {
	s.enabled = true
}

func (s *TransformSystem) Name() string {
	return "transform"
}

func (s *TransformSystem) Priority() int {
	return parameter.PriorityTransform
}

func (s *TransformSystem) RunsWhilePaused() bool {
	return true
}

func (s *TransformSystem) EventTypes() []event.EventType {
	return nil
}

func (s *TransformSystem) HandleEvent(event.GameEvent) {}

func (s *TransformSystem) Update() {
	if !s.enabled {
		return
	}
	s.world.Resources.Snapshot = BuildSnapshot(s.world)
}

// BuildSnapshot copies the current arena state into a fresh Snapshot
func BuildSnapshot(w *engine.World) *engine.Snapshot {
	cfg := w.Resources.Config
	match := w.Resources.Match

	snap := &engine.Snapshot{
		MatchID:    match.ID,
		Mode:       match.Mode,
		Round:      match.Round,
		Frame:      w.Resources.Time.FrameNumber,
		Phase:      match.Phase.String(),
		Paused:     match.Paused,
		HalfExtent: cfg.Arena.HalfExtent,
		Result: engine.ResultSnapshot{
			Decided: match.Result.Decided,
			Draw:    match.Result.Draw,
			Team:    match.Result.Team,
		},
	}

	for _, e := range w.Components.Goal.All() {
		g, ok := w.Components.Goal.Get(e)
		if !ok {
			continue
		}
		side := engine.SideSnapshot{
			Side:          g.Side.String(),
			Team:          g.Team,
			HitPoints:     g.HitPoints,
			Participating: g.Participating,
			Eliminated:    g.Eliminated,
		}
		if crab, ok := w.Components.Crab.Get(g.Occupant); ok {
			side.Controller = crab.Controller.String()
		}
		snap.Sides = append(snap.Sides, side)
	}
	sort.Slice(snap.Sides, func(i, j int) bool {
		a, _ := core.ParseSide(snap.Sides[i].Side)
		b, _ := core.ParseSide(snap.Sides[j].Side)
		return a < b
	})

	add := func(e core.Entity, kind engine.EntityKind, side int8, size float64) {
		if w.Components.Death.Has(e) {
			return
		}
		tr, ok := w.Components.Transform.Get(e)
		if !ok {
			return
		}
		weight := 1.0
		if f, ok := w.Components.Fade.Get(e); ok {
			weight = f.Weight()
		}
		snap.Entities = append(snap.Entities, engine.EntitySnapshot{
			ID:     uint64(e),
			Kind:   kind,
			Side:   side,
			X:      tr.Position.X,
			Y:      tr.Position.Y,
			Z:      tr.Position.Z,
			Yaw:    tr.Yaw,
			Weight: weight,
			Size:   size,
		})
	}

	for _, e := range w.Components.Barrier.All() {
		b, _ := w.Components.Barrier.Get(e)
		add(e, engine.KindBarrier, -1, b.Radius)
	}
	for _, e := range w.Components.Wall.All() {
		wl, _ := w.Components.Wall.Get(e)
		add(e, engine.KindWall, int8(wl.Side), cfg.Arena.HalfExtent)
	}
	for _, e := range w.Components.Crab.All() {
		c, _ := w.Components.Crab.Get(e)
		add(e, engine.KindCrab, int8(c.Side), c.HalfWidth)
	}
	for _, e := range w.Components.Ball.All() {
		b, _ := w.Components.Ball.Get(e)
		add(e, engine.KindBall, -1, b.Radius)
	}

	return snap
}
