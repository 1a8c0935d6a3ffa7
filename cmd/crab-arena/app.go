package main

import (
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/crab-arena/arena"
	"github.com/lixenwraith/crab-arena/audio"
	"github.com/lixenwraith/crab-arena/config"
	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/engine"
	"github.com/lixenwraith/crab-arena/input"
	"github.com/lixenwraith/crab-arena/network"
	"github.com/lixenwraith/crab-arena/render"
	"github.com/lixenwraith/crab-arena/status"
)

var errNoMatch = errors.New("no match running")

// matchSink forwards spectator forces to whichever match is current
type matchSink struct {
	mu    sync.RWMutex
	match *arena.Match
}

func (s *matchSink) set(m *arena.Match) {
	s.mu.Lock()
	s.match = m
	s.mu.Unlock()
}

func (s *matchSink) SetForce(side core.Side, f core.Force) error {
	s.mu.RLock()
	m := s.match
	s.mu.RUnlock()
	if m == nil {
		return errNoMatch
	}
	return m.SetForce(side, f)
}

// app is the terminal front end: menu, running match and overlays
type app struct {
	cfg    *config.Config
	logger *log.Logger
	seed   int64

	renderer *render.TerminalRenderer
	machine  *input.Machine
	clock    *engine.FrameClock
	status   *status.Registry

	// Optional collaborators
	player *audio.Player
	hub    *network.Hub
	sink   *matchSink

	screen   render.Screen
	modes    []string
	selected int
	message  string

	match *arena.Match
	snap  *engine.Snapshot

	// Last keyboard force sent per side; spectator forces persist until the
	// keyboard changes its mind
	sent map[core.Side]core.Force
}

type appOptions struct {
	Logger *log.Logger
	Seed   int64
	Player *audio.Player
	Hub    *network.Hub
	Sink   *matchSink
	Status *status.Registry
	Clock  engine.TimeProvider
}

func newApp(cfg *config.Config, canvas render.Canvas, opts appOptions) *app {
	a := &app{
		cfg:      cfg,
		logger:   opts.Logger,
		seed:     opts.Seed,
		renderer: render.NewTerminalRenderer(canvas),
		machine:  input.NewMachine(nil),
		clock:    engine.NewFrameClock(opts.Clock),
		status:   opts.Status,
		player:   opts.Player,
		hub:      opts.Hub,
		sink:     opts.Sink,
		screen:   render.ScreenMenu,
		sent:     make(map[core.Side]core.Force),
	}
	if a.logger == nil {
		a.logger = engine.DiscardLogger()
	}
	if a.status == nil {
		a.status = status.NewRegistry()
	}
	for i, m := range cfg.Modes {
		a.modes = append(a.modes, m.Name)
		if m.Name == cfg.Match.Mode {
			a.selected = i
		}
	}
	a.machine.SetMenu(true)
	return a
}

// startMatch builds a match for the selected mode and starts its first round
func (a *app) startMatch() error {
	cfg := a.cfg.Clone()
	cfg.Match.Mode = a.modes[a.selected]

	opts := arena.Options{Logger: a.logger, Status: a.status, Seed: a.seed}
	if a.player != nil {
		opts.Audio = a.player
	}
	m, err := arena.New(cfg, opts)
	if err != nil {
		return err
	}
	m.StartRound()

	a.match = m
	a.snap = m.Snapshot()
	a.screen = render.ScreenPlaying
	a.message = ""
	a.sent = make(map[core.Side]core.Force)
	a.machine.SetSides(m.InputSides())
	a.machine.SetMenu(false)
	if a.sink != nil {
		a.sink.set(m)
	}
	return nil
}

// stopMatch returns to the menu
func (a *app) stopMatch() {
	a.match = nil
	a.snap = nil
	a.screen = render.ScreenMenu
	a.machine.SetSides(nil)
	a.machine.SetMenu(true)
	if a.sink != nil {
		a.sink.set(nil)
	}
}

// handle applies one terminal event; returns false to quit
func (a *app) handle(ev tcell.Event, now time.Time) bool {
	intent := a.machine.Process(ev, now)
	if intent == nil {
		return true
	}

	switch intent.Type {
	case input.IntentQuit:
		return false

	case input.IntentEscape:
		if a.screen == render.ScreenMenu {
			return false
		}
		a.stopMatch()

	case input.IntentToggleMute:
		if a.player == nil {
			a.message = "audio unavailable"
			break
		}
		a.player.ToggleMute()

	case input.IntentMenuUp:
		a.selected = (a.selected + len(a.modes) - 1) % len(a.modes)

	case input.IntentMenuDown:
		a.selected = (a.selected + 1) % len(a.modes)

	case input.IntentConfirm:
		switch {
		case a.screen == render.ScreenMenu:
			if err := a.startMatch(); err != nil {
				a.message = err.Error()
				a.logger.Error("start match failed", "err", err)
			}
		case a.match.Phase() == engine.PhaseOver:
			a.restart()
		}

	case input.IntentRestart:
		if a.match != nil {
			a.restart()
		}

	case input.IntentPause:
		if a.match != nil && a.match.Phase() == engine.PhasePlaying {
			a.match.TogglePause()
		}

	case input.IntentMove:
		// Applied once per frame from the held forces
	}
	return true
}

func (a *app) restart() {
	a.match.RestartRound()
	a.machine.Reset()
	a.sent = make(map[core.Side]core.Force)
}

// frame advances the simulation by the elapsed wall time and draws
func (a *app) frame(now time.Time) {
	dt := a.clock.Tick()

	if a.match != nil {
		for side, f := range a.machine.Forces(now) {
			if prev, ok := a.sent[side]; ok && prev == f {
				continue
			}
			if err := a.match.SetForce(side, f); err != nil {
				a.logger.Warn("set force failed", "side", side, "err", err)
				continue
			}
			a.sent[side] = f
		}
		a.snap = a.match.Tick(dt)
		if a.hub != nil {
			if err := a.hub.Broadcast(a.snap); err != nil {
				a.logger.Warn("broadcast failed", "err", err)
			}
		}
	}

	a.renderer.RenderFrame(a.snap, a.view())
}

func (a *app) view() render.View {
	v := render.View{
		Screen:   a.screen,
		Modes:    a.modes,
		Selected: a.selected,
		Message:  a.message,
	}
	if a.player != nil {
		v.Muted = a.player.Muted()
	}
	if a.hub != nil {
		v.Watchers = a.hub.Count()
	}
	return v
}
