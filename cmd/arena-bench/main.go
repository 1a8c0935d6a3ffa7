// arena-bench plays AI-only rounds as fast as possible and reports outcomes
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/crab-arena/arena"
	"github.com/lixenwraith/crab-arena/config"
	"github.com/lixenwraith/crab-arena/event"
	"github.com/lixenwraith/crab-arena/parameter"
)

var (
	configFlag = flag.String("config", "", "TOML config file (default: built-in)")
	modeFlag   = flag.String("mode", "demo", "Mode to run; every side is AI-controlled")
	roundsFlag = flag.Int("rounds", 10, "Rounds to play")
	seedFlag   = flag.Int64("seed", 1, "RNG seed for the first round; later rounds continue the stream")
	hpFlag     = flag.Int("hp", 0, "Hit points override (0 = config)")
	maxTicks   = flag.Int("max-ticks", 200_000, "Abort a round after this many ticks")
	traceFlag  = flag.String("trace", "", "Comma-separated events to log, e.g. GoalScored,GameOver")
)

func main() {
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel, Prefix: "bench"})

	cfg, err := config.Load(config.LoadOptions{Path: *configFlag})
	if err != nil {
		logger.Fatal("config", "err", err)
	}
	cfg.Match.Mode = *modeFlag
	if *hpFlag > 0 {
		cfg.Match.HitPoints = *hpFlag
	}
	if err := allAI(cfg); err != nil {
		logger.Fatal("config", "err", err)
	}

	traced, err := parseTrace(*traceFlag)
	if err != nil {
		logger.Fatal("trace", "err", err)
	}

	m, err := arena.New(cfg, arena.Options{Logger: logger.WithPrefix("arena"), Seed: *seedFlag})
	if err != nil {
		logger.Fatal("arena", "err", err)
	}
	if len(traced) > 0 {
		m.World().AddSystem(&tracer{types: traced, logger: logger.WithPrefix("trace")})
	}

	stats := newSummary()
	start := time.Now()
	m.StartRound()
	for round := 1; round <= *roundsFlag; round++ {
		if round > 1 {
			m.RestartRound()
		}
		ticks := 0
		for ; ticks < *maxTicks; ticks++ {
			if m.Tick(parameter.FrameInterval).Result.Decided {
				ticks++
				break
			}
		}
		res := m.Result()
		stats.add(res, ticks)
		logger.Info("round",
			"n", round,
			"ticks", ticks,
			"sim", (time.Duration(ticks) * parameter.FrameInterval).Round(time.Second),
			"result", resultLabel(res.Decided, res.Draw, res.Team),
		)
	}

	reg := m.Status()
	fmt.Printf("mode=%s rounds=%d wall=%s\n", *modeFlag, *roundsFlag, time.Since(start).Round(time.Millisecond))
	fmt.Printf("goals=%d leaks=%d deflections=%d\n",
		reg.Ints.Get("score.goals").Load(),
		reg.Ints.Get("score.leaks").Load(),
		reg.Ints.Get("collision.deflections").Load(),
	)
	stats.print(os.Stdout)
}

// allAI hands every side of the selected mode to the AI
func allAI(cfg *config.Config) error {
	for i := range cfg.Modes {
		if cfg.Modes[i].Name != cfg.Match.Mode {
			continue
		}
		for j := range cfg.Modes[i].Sides {
			cfg.Modes[i].Sides[j].Controller = config.ControllerAI
		}
		return nil
	}
	return fmt.Errorf("unknown mode %q", cfg.Match.Mode)
}

func parseTrace(list string) ([]event.EventType, error) {
	var out []event.EventType
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		t, ok := event.ParseEventType(name)
		if !ok {
			return nil, fmt.Errorf("unknown event %q", name)
		}
		out = append(out, t)
	}
	return out, nil
}

func resultLabel(decided, draw bool, team int) string {
	switch {
	case !decided:
		return "timeout"
	case draw:
		return "draw"
	default:
		return fmt.Sprintf("team %d", team)
	}
}
