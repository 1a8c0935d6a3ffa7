// Package arena assembles the simulation for a configured mode and owns the
// round lifecycle. It is the only entry point external collaborators use
package arena

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lixenwraith/crab-arena/component"
	"github.com/lixenwraith/crab-arena/config"
	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/engine"
	"github.com/lixenwraith/crab-arena/event"
	"github.com/lixenwraith/crab-arena/status"
	"github.com/lixenwraith/crab-arena/system"
)

// ErrNotInputSide is returned when a force targets a side without a human crab
var ErrNotInputSide = errors.New("side is not input-controlled")

// Options carries the optional collaborators of a Match
type Options struct {
	Logger *log.Logger
	Audio  engine.SoundPlayer
	Status *status.Registry

	// Seed overrides config match.seed; both zero seeds from the clock
	Seed int64
}

// Match is a running arena: world, systems and round state
// All methods are safe for concurrent use; the simulation itself runs only
// inside Tick
type Match struct {
	mu    sync.Mutex
	cfg   *config.Config
	mode  config.ModeConfig
	world *engine.World
	seed  int64

	inputSides [core.SideCount]bool
	started    bool
}

// New builds a match for the configured mode
// The round does not start until StartRound
func New(cfg *config.Config, opts Options) (*Match, error) {
	mode, err := cfg.ActiveMode()
	if err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = cfg.Match.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w := engine.NewWorld(cfg)
	w.Resources.Rand = rand.New(rand.NewSource(seed))
	w.Resources.Match.Mode = mode.Name
	w.Resources.Match.MaxBalls = mode.MaxBalls
	if opts.Logger != nil {
		w.Resources.Logger = opts.Logger
	}
	if opts.Status != nil {
		w.Resources.Status = opts.Status
	}
	w.Resources.Audio = opts.Audio

	m := &Match{cfg: cfg, mode: mode, world: w, seed: seed}
	for _, sc := range mode.Sides {
		side, err := core.ParseSide(sc.Side)
		if err != nil {
			return nil, fmt.Errorf("arena: mode %q: %w", mode.Name, err)
		}
		m.inputSides[side] = sc.Controller == config.ControllerInput
	}

	for _, ctor := range []func(*engine.World) engine.System{
		system.NewInputSystem,
		system.NewAISystem,
		system.NewMovementSystem,
		system.NewCollisionSystem,
		system.NewScoreSystem,
		system.NewGoalSystem,
		system.NewGameOverSystem,
		system.NewFadeSystem,
		system.NewSpawnSystem,
		system.NewTransformSystem,
		system.NewCleanupSystem,
		system.NewAudioSystem,
		system.NewStatusSystem,
	} {
		w.AddSystem(ctor(w))
	}

	return m, nil
}

// StartRound clears the arena and builds a fresh round: corner barriers,
// goals, crabs on configured sides and walls on the rest
func (m *Match) StartRound() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.world.Clear()
	system.SpawnBarriers(m.world)
	m.buildSides()
	m.begin()
}

// RestartRound fades out every crab, wall and ball and builds new sides
// Barriers persist. Before the first round this is StartRound
func (m *Match) RestartRound() {
	m.mu.Lock()
	if !m.started {
		m.mu.Unlock()
		m.StartRound()
		return
	}
	defer m.mu.Unlock()

	m.world.PushEvent(event.EventRoundReset, nil)
	m.world.DispatchEvents()

	for _, e := range m.world.Components.Goal.All() {
		m.world.DestroyEntity(e)
	}
	m.buildSides()
	m.begin()
}

func (m *Match) buildSides() {
	hp := m.cfg.Match.HitPoints
	for _, side := range core.Sides {
		sc, ok := m.sideConfig(side)
		if !ok {
			system.SpawnGoal(m.world, component.GoalComponent{
				Side:     side,
				Team:     -1,
				Occupant: system.SpawnWall(m.world, side),
			})
			continue
		}

		ctl := component.ControllerAI
		if sc.Controller == config.ControllerInput {
			ctl = component.ControllerInput
		}
		system.SpawnGoal(m.world, component.GoalComponent{
			Side:          side,
			Team:          sc.Team,
			HitPoints:     hp,
			Occupant:      system.SpawnCrab(m.world, side, sc.Team, ctl),
			Participating: true,
		})
		m.world.Resources.Status.Ints.Get("hp." + side.String()).Store(int64(hp))
	}
}

func (m *Match) sideConfig(side core.Side) (config.SideConfig, bool) {
	for _, sc := range m.mode.Sides {
		if s, err := core.ParseSide(sc.Side); err == nil && s == side {
			return sc, true
		}
	}
	return config.SideConfig{}, false
}

// begin stamps a new round id and switches to playing
func (m *Match) begin() {
	mr := m.world.Resources.Match
	mr.ID = uuid.NewString()
	mr.Round++
	mr.Phase = engine.PhasePlaying
	mr.Paused = false
	mr.Result = engine.Result{}
	m.world.Resources.Input.Forces = [core.SideCount]core.Force{}
	m.started = true

	m.world.PushEvent(event.EventRoundStart, &event.RoundStartPayload{
		MatchID: mr.ID,
		Mode:    mr.Mode,
		Round:   mr.Round,
	})
	m.world.DispatchEvents()
	m.world.Resources.Snapshot = system.BuildSnapshot(m.world)

	m.world.Resources.Logger.Info("round started", "match", mr.ID, "mode", mr.Mode, "round", mr.Round, "seed", m.seed)
}

// Tick advances the simulation by dt and returns the published snapshot
func (m *Match) Tick(dt time.Duration) *engine.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.world.Update(dt)
	return m.world.Resources.Snapshot
}

// Pause suspends movement, collision, scoring, fade and spawn
func (m *Match) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setPausedLocked(true)
}

// Resume continues a paused round
func (m *Match) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setPausedLocked(false)
}

// TogglePause flips the pause state and returns the new value
func (m *Match) TogglePause() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	paused := !m.world.Resources.Match.Paused
	m.setPausedLocked(paused)
	return paused
}

func (m *Match) setPausedLocked(paused bool) {
	mr := m.world.Resources.Match
	if mr.Paused == paused {
		return
	}
	mr.Paused = paused
	m.world.PushEvent(event.EventPauseChanged, &event.PauseChangedPayload{Paused: paused})
	m.world.Resources.Logger.Debug("pause changed", "paused", paused)
}

// SetForce records the resolved force for a human-controlled side
// The value holds until replaced
func (m *Match) SetForce(side core.Side, f core.Force) error {
	if side >= core.SideCount {
		return fmt.Errorf("arena: invalid side %d", side)
	}
	if !m.inputSides[side] {
		return fmt.Errorf("arena: %v: %w", side, ErrNotInputSide)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.world.Resources.Input.Forces[side] = f
	return nil
}

// InputSides lists the sides accepting SetForce, in side order
func (m *Match) InputSides() []core.Side {
	var out []core.Side
	for _, s := range core.Sides {
		if m.inputSides[s] {
			out = append(out, s)
		}
	}
	return out
}

// HitPoints returns the remaining hit points of side, 0 for unused sides
func (m *Match) HitPoints(side core.Side) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.world.Components.Goal.All() {
		if g, ok := m.world.Components.Goal.Get(e); ok && g.Side == side {
			return g.HitPoints
		}
	}
	return 0
}

// Result returns the decision of the current round
func (m *Match) Result() engine.Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.world.Resources.Match.Result
}

// Phase returns the current round phase
func (m *Match) Phase() engine.Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.world.Resources.Match.Phase
}

// Paused reports the pause state
func (m *Match) Paused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.world.Resources.Match.Paused
}

// ID returns the current round id
func (m *Match) ID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.world.Resources.Match.ID
}

// Snapshot returns the last published snapshot
func (m *Match) Snapshot() *engine.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.world.Resources.Snapshot
}

// Mode returns the active mode definition
func (m *Match) Mode() config.ModeConfig {
	return m.mode
}

// Status returns the metrics registry fed by the simulation
func (m *Match) Status() *status.Registry {
	return m.world.Resources.Status
}

// World exposes the underlying world for tests and tooling
// Callers must not use it concurrently with Tick
func (m *Match) World() *engine.World {
	return m.world
}
