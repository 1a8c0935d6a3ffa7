package config

import (
	"errors"
	"fmt"
	"strings"
)

var validSides = map[string]bool{"top": true, "right": true, "bottom": true, "left": true}

// Validate reports every violated constraint
// Zero or negative acceleration inputs would make stopping-distance prediction
// non-terminating, so they are rejected here rather than in the simulation
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", name, v))
		}
	}

	positive("arena.half_extent", c.Arena.HalfExtent)
	positive("arena.barrier_radius", c.Arena.BarrierRadius)
	positive("arena.wall_half_depth", c.Arena.WallHalfDepth)
	positive("crab.half_width", c.Crab.HalfWidth)
	positive("crab.half_depth", c.Crab.HalfDepth)
	positive("crab.max_speed", c.Crab.MaxSpeed)
	positive("crab.seconds_to_max_speed", c.Crab.SecondsToMaxSpeed)
	positive("ball.radius", c.Ball.Radius)
	positive("ball.max_speed", c.Ball.MaxSpeed)
	positive("ball.seconds_to_max_speed", c.Ball.SecondsToMaxSpeed)
	positive("fade.duration_seconds", c.Fade.DurationSeconds)

	if c.AI.IdealHitArea <= 0 || c.AI.IdealHitArea > 1 {
		errs = append(errs, fmt.Errorf("ai.ideal_hit_area must be in (0,1], got %v", c.AI.IdealHitArea))
	}
	if c.Match.HitPoints < 1 {
		errs = append(errs, fmt.Errorf("match.hit_points must be >= 1, got %d", c.Match.HitPoints))
	}
	if c.Arena.HalfExtent > 0 && c.CrabHalfBound() <= 0 {
		errs = append(errs, fmt.Errorf("crab does not fit the goal mouth: half bound %v", c.CrabHalfBound()))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0,1], got %v", c.Audio.Volume))
	}

	seenModes := make(map[string]bool, len(c.Modes))
	for _, m := range c.Modes {
		errs = append(errs, validateMode(m)...)
		if seenModes[m.Name] {
			errs = append(errs, fmt.Errorf("mode %q defined twice", m.Name))
		}
		seenModes[m.Name] = true
	}
	if !seenModes[c.Match.Mode] {
		errs = append(errs, fmt.Errorf("match.mode %q is not defined", c.Match.Mode))
	}

	return errors.Join(errs...)
}

func validateMode(m ModeConfig) []error {
	var errs []error
	if strings.TrimSpace(m.Name) == "" {
		errs = append(errs, errors.New("mode name is empty"))
	}
	if m.MaxBalls < 1 {
		errs = append(errs, fmt.Errorf("mode %q: max_balls must be >= 1, got %d", m.Name, m.MaxBalls))
	}
	if len(m.Sides) < 2 {
		errs = append(errs, fmt.Errorf("mode %q: needs at least two sides, got %d", m.Name, len(m.Sides)))
	}

	seen := make(map[string]bool, len(m.Sides))
	teams := make(map[int]bool, len(m.Sides))
	for _, s := range m.Sides {
		name := strings.ToLower(s.Side)
		if !validSides[name] {
			errs = append(errs, fmt.Errorf("mode %q: unknown side %q", m.Name, s.Side))
		}
		if seen[name] {
			errs = append(errs, fmt.Errorf("mode %q: side %q assigned twice", m.Name, s.Side))
		}
		seen[name] = true
		if s.Controller != ControllerInput && s.Controller != ControllerAI {
			errs = append(errs, fmt.Errorf("mode %q: side %q has unknown controller %q", m.Name, s.Side, s.Controller))
		}
		if s.Team < 0 {
			errs = append(errs, fmt.Errorf("mode %q: side %q has negative team %d", m.Name, s.Side, s.Team))
		}
		teams[s.Team] = true
	}
	if len(m.Sides) >= 2 && len(teams) < 2 {
		errs = append(errs, fmt.Errorf("mode %q: needs at least two teams", m.Name))
	}
	return errs
}
