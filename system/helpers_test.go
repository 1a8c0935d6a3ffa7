package system

import (
	"time"

	"github.com/lixenwraith/crab-arena/component"
	"github.com/lixenwraith/crab-arena/config"
	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/engine"
	"github.com/lixenwraith/crab-arena/event"
	"github.com/lixenwraith/crab-arena/vmath"
)

const testFrame = 16 * time.Millisecond

func newTestWorld() *engine.World {
	w := engine.NewWorld(config.Default())
	w.Resources.Match.Phase = engine.PhasePlaying
	w.Resources.Match.MaxBalls = 2
	w.Resources.Time.DeltaTime = testFrame
	return w
}

// activate skips the fade-in of e
func activate(w *engine.World, e core.Entity) {
	w.Components.Fade.Remove(e)
	act, _ := w.Components.Activation.Get(e)
	act.Grant(act.OnActivate)
	w.Components.Activation.Set(e, act)
}

// placeBall spawns an active ball at pos moving along heading at speed
func placeBall(w *engine.World, pos, heading vmath.Vec3F, speed float64) core.Entity {
	e := SpawnBall(w, heading)
	activate(w, e)
	w.Components.Transform.Set(e, component.TransformComponent{Position: pos})
	mv, _ := w.Components.Movement.Get(e)
	mv.Speed = speed
	w.Components.Movement.Set(e, mv)
	return e
}

// defendAll gives every side an active crab goal owned by its own team
func defendAll(w *engine.World, hp int) map[core.Side]core.Entity {
	crabs := make(map[core.Side]core.Entity, core.SideCount)
	for _, side := range core.Sides {
		c := SpawnCrab(w, side, int(side), component.ControllerAI)
		activate(w, c)
		SpawnGoal(w, component.GoalComponent{
			Side:          side,
			Team:          int(side),
			HitPoints:     hp,
			Occupant:      c,
			Participating: true,
		})
		crabs[side] = c
	}
	return crabs
}

// recorder collects routed events
type recorder struct {
	types []event.EventType
	seen  []event.GameEvent
}

func (r *recorder) Name() string                   { return "recorder" }
func (r *recorder) Priority() int                  { return 1000 }
func (r *recorder) Init()                          {}
func (r *recorder) Update()                        {}
func (r *recorder) EventTypes() []event.EventType  { return r.types }
func (r *recorder) HandleEvent(ev event.GameEvent) { r.seen = append(r.seen, ev) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, ev := range r.seen {
		if ev.Type == t {
			n++
		}
	}
	return n
}
