package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/crab-arena/arena"
	"github.com/lixenwraith/crab-arena/audio"
	"github.com/lixenwraith/crab-arena/config"
	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/network"
	"github.com/lixenwraith/crab-arena/parameter"
	"github.com/lixenwraith/crab-arena/status"
)

var (
	configFlag   = flag.String("config", "", "TOML config file (default: built-in)")
	envFlag      = flag.String("env", ".env", ".env file with CRAB_ARENA_* overrides")
	modeFlag     = flag.String("mode", "", "Mode to preselect: classic, teams, duel, demo")
	seedFlag     = flag.Int64("seed", 0, "RNG seed (0 = config or clock)")
	debugFlag    = flag.Bool("debug", false, "Write debug log to logs/crab-arena.log")
	dumpFlag     = flag.Bool("dump-config", false, "Print the effective config as TOML and exit")
	serveFlag    = flag.Bool("serve", false, "Enable the spectator websocket server")
	headlessFlag = flag.Bool("headless", false, "Run the selected mode without a terminal (implies -serve)")
	muteFlag     = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(config.LoadOptions{Path: *configFlag, EnvFile: *envFlag})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *modeFlag != "" {
		if _, err := cfg.Mode(*modeFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		cfg.Match.Mode = *modeFlag
	}
	if *serveFlag || *headlessFlag {
		cfg.Server.Enabled = true
	}

	if *dumpFlag {
		if err := toml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Encode config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	reg := status.NewRegistry()
	sink := &matchSink{}

	var hub *network.Hub
	if cfg.Server.Enabled {
		netCfg := network.FromServerConfig(cfg.Server)
		hub = network.NewHub(netCfg, sink, reg, logger)
		server := network.NewServer(netCfg, hub, reg, logger)
		if err := server.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Spectator server: %v\n", err)
			os.Exit(1)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			server.Shutdown(ctx)
		}()
	}

	if *headlessFlag {
		if err := runHeadless(cfg, logger, reg, hub, sink); err != nil {
			fmt.Fprintf(os.Stderr, "Headless run failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runTerminal(cfg, logger, reg, hub, sink)
}

// runTerminal owns the tcell screen for the lifetime of the session
func runTerminal(cfg *config.Config, logger *log.Logger, reg *status.Registry, hub *network.Hub, sink *matchSink) {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing the stack
	crash := func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRAB-ARENA CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
	core.SetCrashHandler(crash)
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	var player *audio.Player
	if cfg.Audio.Enabled {
		p := audio.NewPlayer(cfg.Audio.Volume)
		if err := p.Init(); err != nil {
			// Non-fatal, the arena runs silent
			logger.Warn("audio unavailable", "err", err)
		} else {
			p.SetMuted(*muteFlag)
			player = p
			defer p.Close()
		}
	}

	a := newApp(cfg, screen, appOptions{
		Logger: logger,
		Seed:   *seedFlag,
		Player: player,
		Hub:    hub,
		Sink:   sink,
		Status: reg,
	})

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			if !a.handle(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			a.frame(now)
		}
	}
}

// runHeadless plays the configured mode with no terminal, restarting decided
// rounds, until interrupted
func runHeadless(cfg *config.Config, logger *log.Logger, reg *status.Registry, hub *network.Hub, sink *matchSink) error {
	m, err := arena.New(cfg, arena.Options{Logger: logger, Status: reg, Seed: *seedFlag})
	if err != nil {
		return err
	}
	sink.set(m)
	m.StartRound()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	var overSince time.Time
	for {
		select {
		case <-sigCh:
			return nil
		case now := <-ticker.C:
			snap := m.Tick(parameter.FrameInterval)
			if hub != nil {
				if err := hub.Broadcast(snap); err != nil {
					logger.Warn("broadcast failed", "err", err)
				}
			}
			if !snap.Result.Decided {
				overSince = time.Time{}
				continue
			}
			// Let spectators see the result before the next round
			if overSince.IsZero() {
				overSince = now
			} else if now.Sub(overSince) >= headlessResultHold {
				m.RestartRound()
			}
		}
	}
}

const headlessResultHold = 3 * time.Second
