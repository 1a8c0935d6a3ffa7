package arena

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/crab-arena/component"
	"github.com/lixenwraith/crab-arena/config"
	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/engine"
	"github.com/lixenwraith/crab-arena/event"
	"github.com/lixenwraith/crab-arena/parameter"
	"github.com/lixenwraith/crab-arena/system"
	"github.com/lixenwraith/crab-arena/vmath"
)

const frame = 16 * time.Millisecond

// eventLog is a passive system recording routed events
type eventLog struct {
	types []event.EventType
	seen  []event.GameEvent
}

func (l *eventLog) Name() string                   { return "eventlog" }
func (l *eventLog) Priority() int                  { return 1000 }
func (l *eventLog) Init()                          {}
func (l *eventLog) Update()                        {}
func (l *eventLog) RunsWhilePaused() bool          { return true }
func (l *eventLog) EventTypes() []event.EventType  { return l.types }
func (l *eventLog) HandleEvent(ev event.GameEvent) { l.seen = append(l.seen, ev) }

func (l *eventLog) count(t event.EventType) (n int) {
	for _, ev := range l.seen {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func newMatch(t *testing.T, mode string, mutate func(*config.Config)) (*Match, *eventLog) {
	t.Helper()
	cfg := config.Default()
	cfg.Match.Mode = mode
	cfg.Match.HitPoints = 3
	if mutate != nil {
		mutate(cfg)
	}
	require.NoError(t, cfg.Validate())

	m, err := New(cfg, Options{Seed: 42})
	require.NoError(t, err)

	log := &eventLog{types: []event.EventType{
		event.EventGoalScored,
		event.EventGoalEliminated,
		event.EventGameOver,
		event.EventBallSpawned,
		event.EventBallDeflected,
	}}
	m.World().AddSystem(log)
	return m, log
}

// settle runs past the fade-in of every entity created at round start
func settle(m *Match) {
	for i := 0; i < 40; i++ {
		m.Tick(frame)
	}
}

// placeBall creates an already-active ball at local offset along side,
// depth units in front of the goal line (negative = past it), heading into the goal
func placeBall(m *Match, side core.Side, local, depth float64) core.Entity {
	w := m.World()
	h := w.Resources.Config.Arena.HalfExtent
	e := system.SpawnBall(w, vmath.V3FScale(side.Axis(), -1))
	w.Components.Fade.Remove(e)
	w.Components.Activation.Set(e, component.ActivationComponent{Caps: component.CapActive})
	pos := vmath.V3FAdd(side.LocalToWorld(local, h), vmath.V3FScale(side.Axis(), depth))
	w.Components.Transform.Set(e, component.TransformComponent{Position: pos})
	return e
}

func goalOf(t *testing.T, m *Match, side core.Side) component.GoalComponent {
	t.Helper()
	w := m.World()
	for _, e := range w.Components.Goal.All() {
		if g, _ := w.Components.Goal.Get(e); g.Side == side {
			return g
		}
	}
	t.Fatalf("no goal for %v", side)
	return component.GoalComponent{}
}

func TestStartRoundBuildsArena(t *testing.T) {
	m, _ := newMatch(t, "duel", nil)
	m.StartRound()
	w := m.World()

	assert.Equal(t, engine.PhasePlaying, m.Phase())
	assert.NotEmpty(t, m.ID())
	assert.Equal(t, 4, w.Components.Barrier.Count())
	assert.Equal(t, 4, w.Components.Goal.Count())
	assert.Equal(t, 2, w.Components.Crab.Count())
	assert.Equal(t, 2, w.Components.Wall.Count())

	assert.Equal(t, 3, m.HitPoints(core.SideBottom))
	assert.Equal(t, 3, m.HitPoints(core.SideTop))
	assert.Equal(t, 0, m.HitPoints(core.SideLeft))

	// Each side holds exactly one occupant
	for _, side := range core.Sides {
		g := goalOf(t, m, side)
		isCrab := w.Components.Crab.Has(g.Occupant)
		isWall := w.Components.Wall.Has(g.Occupant)
		assert.True(t, isCrab != isWall, "side %v occupant must be crab xor wall", side)
	}

	snap := m.Snapshot()
	require.NotNil(t, snap)
	assert.Len(t, snap.Sides, 4)
	assert.Equal(t, "top", snap.Sides[0].Side)
}

func TestSetForceOnlyForInputSides(t *testing.T) {
	m, _ := newMatch(t, "duel", nil)
	m.StartRound()

	require.NoError(t, m.SetForce(core.SideBottom, core.ForcePositive))
	err := m.SetForce(core.SideTop, core.ForcePositive)
	assert.ErrorIs(t, err, ErrNotInputSide)
	assert.Error(t, m.SetForce(core.SideCount, core.ForceNone))
	assert.Equal(t, []core.Side{core.SideBottom}, m.InputSides())
}

func TestInputForceMovesCrabWithinBounds(t *testing.T) {
	m, _ := newMatch(t, "duel", nil)
	m.StartRound()
	m.World().SetSystemActive("spawn", false)
	settle(m)

	require.NoError(t, m.SetForce(core.SideBottom, core.ForcePositive))
	for i := 0; i < 200; i++ {
		m.Tick(frame)
	}

	w := m.World()
	var crab component.CrabComponent
	for _, e := range w.Components.Crab.All() {
		if c, _ := w.Components.Crab.Get(e); c.Side == core.SideBottom {
			crab = c
		}
	}
	assert.LessOrEqual(t, crab.Local, crab.HalfBound)
	assert.Greater(t, crab.Local, crab.HalfBound-1, "crab should have travelled near the bound")
}

// A side with N hit points is eliminated after exactly N goals and its wall
// then deflects further balls
func TestEliminationAfterHitPointsExhausted(t *testing.T) {
	m, log := newMatch(t, "classic", nil)
	m.StartRound()
	m.World().SetSystemActive("spawn", false)
	settle(m)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 0, log.count(event.EventGoalEliminated), "no elimination before goal %d", i+1)
		placeBall(m, core.SideBottom, 5, -0.3)
		m.Tick(frame)
		assert.Equal(t, 2-i, m.HitPoints(core.SideBottom))
	}

	require.Equal(t, 1, log.count(event.EventGoalEliminated))
	g := goalOf(t, m, core.SideBottom)
	assert.True(t, g.Eliminated)
	assert.True(t, m.World().Components.Wall.Has(g.Occupant), "wall replaces the crab")
	assert.Equal(t, engine.PhasePlaying, m.Phase(), "three teams remain")

	settle(m)
	for _, e := range m.World().Components.Crab.All() {
		c, _ := m.World().Components.Crab.Get(e)
		assert.NotEqual(t, core.SideBottom, c.Side, "eliminated crab is destroyed after fading out")
	}

	ball := placeBall(m, core.SideBottom, 5, 0.4)
	m.Tick(frame)
	mv, ok := m.World().Components.Movement.Get(ball)
	require.True(t, ok)
	assert.Greater(t, vmath.V3FDot(mv.Heading, core.SideBottom.Axis()), 0.99, "ball bounces back off the wall")

	for i := 0; i < 20; i++ {
		m.Tick(frame)
	}
	assert.Equal(t, 0, m.HitPoints(core.SideBottom))
	assert.Equal(t, 3, log.count(event.EventGoalScored))
	assert.Equal(t, 1, log.count(event.EventGoalEliminated))
}

func eliminate(t *testing.T, m *Match, sides ...core.Side) {
	t.Helper()
	w := m.World()
	for _, side := range sides {
		for _, e := range w.Components.Goal.All() {
			if g, _ := w.Components.Goal.Get(e); g.Side == side {
				g.HitPoints = 1
				w.Components.Goal.Set(e, g)
			}
		}
		placeBall(m, side, 5, -0.3)
	}
	m.Tick(frame)
}

func TestLastTeamStandingWins(t *testing.T) {
	m, log := newMatch(t, "classic", nil)
	m.StartRound()
	m.World().SetSystemActive("spawn", false)
	settle(m)

	eliminate(t, m, core.SideRight)
	assert.Equal(t, engine.PhasePlaying, m.Phase())
	eliminate(t, m, core.SideTop)
	assert.Equal(t, engine.PhasePlaying, m.Phase())
	eliminate(t, m, core.SideLeft)

	assert.Equal(t, engine.PhaseOver, m.Phase())
	assert.Equal(t, engine.Result{Decided: true, Team: 0}, m.Result())
	assert.Equal(t, 1, log.count(event.EventGameOver))
	assert.True(t, m.Snapshot().Result.Decided)
}

func TestSimultaneousFinalEliminationsDraw(t *testing.T) {
	m, log := newMatch(t, "classic", nil)
	m.StartRound()
	m.World().SetSystemActive("spawn", false)
	settle(m)

	eliminate(t, m, core.SideRight)
	eliminate(t, m, core.SideTop)
	eliminate(t, m, core.SideLeft, core.SideBottom)

	assert.Equal(t, engine.PhaseOver, m.Phase())
	assert.Equal(t, engine.Result{Decided: true, Draw: true}, m.Result())
	assert.Equal(t, 1, log.count(event.EventGameOver))
}

func TestTeamsModeNeedsWholeTeamEliminated(t *testing.T) {
	m, _ := newMatch(t, "teams", nil)
	m.StartRound()
	m.World().SetSystemActive("spawn", false)
	settle(m)

	eliminate(t, m, core.SideLeft)
	assert.Equal(t, engine.PhasePlaying, m.Phase(), "right still defends team 1")
	eliminate(t, m, core.SideRight)
	assert.Equal(t, engine.Result{Decided: true, Team: 0}, m.Result())
}

func TestGameOverFreezesSimulation(t *testing.T) {
	m, _ := newMatch(t, "duel", nil)
	m.StartRound()
	m.World().SetSystemActive("spawn", false)
	settle(m)
	eliminate(t, m, core.SideTop)
	require.Equal(t, engine.PhaseOver, m.Phase())

	before := m.Snapshot().Frame
	ball := placeBall(m, core.SideLeft, 0, 5)
	pos, _ := m.World().Components.Transform.Get(ball)
	m.Tick(frame)
	after, _ := m.World().Components.Transform.Get(ball)
	assert.Equal(t, pos.Position, after.Position)
	assert.Greater(t, m.Snapshot().Frame, before, "snapshots keep publishing")
}

// Spawning never has more than one ball fading in at a time
func TestSpawnIsSerialized(t *testing.T) {
	m, log := newMatch(t, "demo", func(c *config.Config) {
		for i := range c.Modes {
			if c.Modes[i].Name == "demo" {
				c.Modes[i].MaxBalls = 3
			}
		}
	})
	m.StartRound()
	w := m.World()

	maxLive := 0
	for i := 0; i < 300; i++ {
		m.Tick(frame)
		fadingIn := 0
		live := 0
		for _, e := range w.Components.Ball.All() {
			f, ok := w.Components.Fade.Get(e)
			if ok && f.Phase == component.FadeIn {
				fadingIn++
			}
			if !ok || f.Phase == component.FadeIn {
				live++
			}
		}
		require.LessOrEqual(t, fadingIn, 1, "tick %d", i)
		require.LessOrEqual(t, live, 3, "tick %d", i)
		if live > maxLive {
			maxLive = live
		}
	}
	assert.Equal(t, 3, maxLive)
	assert.GreaterOrEqual(t, log.count(event.EventBallSpawned), 3)
}

func TestPauseFreezesSimulation(t *testing.T) {
	m, _ := newMatch(t, "demo", nil)
	m.StartRound()
	for i := 0; i < 80; i++ {
		m.Tick(frame)
	}

	m.Pause()
	assert.True(t, m.Paused())
	before := m.Tick(frame)
	for i := 0; i < 30; i++ {
		m.Tick(frame)
	}
	after := m.Snapshot()
	require.Equal(t, len(before.Entities), len(after.Entities))
	for i := range before.Entities {
		assert.Equal(t, before.Entities[i].X, after.Entities[i].X)
		assert.Equal(t, before.Entities[i].Z, after.Entities[i].Z)
		assert.Equal(t, before.Entities[i].Weight, after.Entities[i].Weight)
	}
	assert.True(t, after.Paused)
	assert.Equal(t, before.Frame+30, after.Frame, "snapshots keep publishing while paused")

	assert.False(t, m.TogglePause())
	m.Tick(frame)
	assert.False(t, m.Snapshot().Paused)
}

func TestRestartRoundKeepsBarriers(t *testing.T) {
	m, _ := newMatch(t, "classic", nil)
	m.StartRound()
	settle(m)
	firstID := m.ID()
	w := m.World()
	barriers := w.Components.Barrier.All()

	m.RestartRound()
	assert.NotEqual(t, firstID, m.ID())
	assert.Equal(t, barriers, w.Components.Barrier.All())
	assert.Equal(t, 4, w.Components.Goal.Count())
	for _, side := range core.Sides {
		assert.Equal(t, 3, m.HitPoints(side))
	}

	// Old crabs fade out alongside the new ones fading in
	assert.Equal(t, 8, w.Components.Crab.Count())
	settle(m)
	assert.Equal(t, 4, w.Components.Crab.Count())
	assert.Equal(t, 2, m.Snapshot().Round)
}

// Long AI-only run checking the per-tick invariants
func TestDemoInvariants(t *testing.T) {
	m, _ := newMatch(t, "demo", func(c *config.Config) { c.Match.HitPoints = 50 })
	m.StartRound()
	w := m.World()

	lastHP := map[core.Side]int{}
	for _, s := range core.Sides {
		lastHP[s] = m.HitPoints(s)
	}
	fades := map[core.Entity]component.FadeComponent{}

	for i := 0; i < 3000 && m.Phase() == engine.PhasePlaying; i++ {
		m.Tick(frame)

		for _, e := range w.Components.Ball.All() {
			mv, _ := w.Components.Movement.Get(e)
			require.InDelta(t, 1, vmath.V3FMag(mv.Heading), parameter.HeadingEpsilon*1e3, "tick %d ball %d", i, e)
		}
		for _, e := range w.Components.Crab.All() {
			c, _ := w.Components.Crab.Get(e)
			require.LessOrEqual(t, math.Abs(c.Local), c.HalfBound+1e-12, "tick %d crab %d", i, e)
		}
		for _, s := range core.Sides {
			hp := m.HitPoints(s)
			require.GreaterOrEqual(t, hp, 0)
			require.LessOrEqual(t, hp, lastHP[s], "hit points never increase")
			lastHP[s] = hp
		}
		for _, e := range w.Components.Fade.All() {
			f, _ := w.Components.Fade.Get(e)
			require.GreaterOrEqual(t, f.Progress, 0.0)
			require.LessOrEqual(t, f.Progress, 1.0)
			if prev, ok := fades[e]; ok && prev.Phase == f.Phase {
				require.GreaterOrEqual(t, f.Progress, prev.Progress, "fade progress is monotone")
			}
			fades[e] = f
		}
	}
}
