// Package config holds the immutable tunables consumed by the arena simulation
// and the loaders that produce them (TOML file, .env, environment)
package config

import (
	"fmt"
	"time"
)

// Controller names accepted in mode side assignments
const (
	ControllerInput = "input"
	ControllerAI    = "ai"
)

// Config is the root configuration object
// The simulation treats it as read-only; validation happens in the loader
type Config struct {
	Arena  ArenaConfig  `toml:"arena"`
	Crab   CrabConfig   `toml:"crab"`
	Ball   BallConfig   `toml:"ball"`
	Fade   FadeConfig   `toml:"fade"`
	AI     AIConfig     `toml:"ai"`
	Match  MatchConfig  `toml:"match"`
	Modes  []ModeConfig `toml:"modes"`
	Server ServerConfig `toml:"server"`
	Audio  AudioConfig  `toml:"audio"`
}

// ArenaConfig describes the static geometry
type ArenaConfig struct {
	HalfExtent    float64 `toml:"half_extent"`     // Centre to goal line distance
	BarrierRadius float64 `toml:"barrier_radius"`  // Corner pole radius
	WallHalfDepth float64 `toml:"wall_half_depth"` // Elimination wall thickness / 2
}

// CrabConfig describes paddle shape and motion
type CrabConfig struct {
	HalfWidth         float64 `toml:"half_width"`
	HalfDepth         float64 `toml:"half_depth"`
	MaxSpeed          float64 `toml:"max_speed"`
	SecondsToMaxSpeed float64 `toml:"seconds_to_max_speed"`
}

// BallConfig describes ball shape and motion
type BallConfig struct {
	Radius            float64 `toml:"radius"`
	MaxSpeed          float64 `toml:"max_speed"`
	SecondsToMaxSpeed float64 `toml:"seconds_to_max_speed"`
}

// FadeConfig controls the activation lifecycle timer
type FadeConfig struct {
	DurationSeconds float64 `toml:"duration_seconds"`
}

// AIConfig tunes the dead-zone controller
type AIConfig struct {
	// IdealHitArea is the fraction of paddle half-width inside which the AI stops pushing
	IdealHitArea float64 `toml:"ideal_hit_area"`
}

// MatchConfig selects the mode and round parameters
type MatchConfig struct {
	Mode      string `toml:"mode"`
	HitPoints int    `toml:"hit_points"`
	Seed      int64  `toml:"seed"` // 0 = seed from clock
}

// ModeConfig defines one playable arrangement of sides
type ModeConfig struct {
	Name     string       `toml:"name"`
	MaxBalls int          `toml:"max_balls"`
	Sides    []SideConfig `toml:"sides"`
}

// SideConfig assigns a controller and team to a side; unlisted sides get a wall
type SideConfig struct {
	Side       string `toml:"side"`
	Controller string `toml:"controller"`
	Team       int    `toml:"team"`
}

// ServerConfig controls the spectator websocket feed
type ServerConfig struct {
	Enabled        bool     `toml:"enabled"`
	Addr           string   `toml:"addr"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// AudioConfig controls the audio cues
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // Linear gain in [0,1]
}

// Default returns the compiled-in configuration, identical to default.toml
func Default() *Config {
	return &Config{
		Arena: ArenaConfig{
			HalfExtent:    10,
			BarrierRadius: 1,
			WallHalfDepth: 0.25,
		},
		Crab: CrabConfig{
			HalfWidth:         1.5,
			HalfDepth:         0.25,
			MaxSpeed:          12,
			SecondsToMaxSpeed: 0.25,
		},
		Ball: BallConfig{
			Radius:            0.35,
			MaxSpeed:          9,
			SecondsToMaxSpeed: 1,
		},
		Fade: FadeConfig{
			DurationSeconds: 0.5,
		},
		AI: AIConfig{
			IdealHitArea: 0.4,
		},
		Match: MatchConfig{
			Mode:      "classic",
			HitPoints: 5,
		},
		Modes: []ModeConfig{
			{
				Name:     "classic",
				MaxBalls: 2,
				Sides: []SideConfig{
					{Side: "bottom", Controller: ControllerInput, Team: 0},
					{Side: "right", Controller: ControllerAI, Team: 1},
					{Side: "top", Controller: ControllerAI, Team: 2},
					{Side: "left", Controller: ControllerAI, Team: 3},
				},
			},
			{
				Name:     "teams",
				MaxBalls: 3,
				Sides: []SideConfig{
					{Side: "bottom", Controller: ControllerInput, Team: 0},
					{Side: "top", Controller: ControllerAI, Team: 0},
					{Side: "left", Controller: ControllerAI, Team: 1},
					{Side: "right", Controller: ControllerAI, Team: 1},
				},
			},
			{
				Name:     "duel",
				MaxBalls: 1,
				Sides: []SideConfig{
					{Side: "bottom", Controller: ControllerInput, Team: 0},
					{Side: "top", Controller: ControllerAI, Team: 1},
				},
			},
			{
				Name:     "demo",
				MaxBalls: 2,
				Sides: []SideConfig{
					{Side: "top", Controller: ControllerAI, Team: 0},
					{Side: "right", Controller: ControllerAI, Team: 1},
					{Side: "bottom", Controller: ControllerAI, Team: 2},
					{Side: "left", Controller: ControllerAI, Team: 3},
				},
			},
		},
		Server: ServerConfig{
			Enabled: false,
			Addr:    ":8089",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
	}
}

// Mode returns the named mode
func (c *Config) Mode(name string) (ModeConfig, error) {
	for _, m := range c.Modes {
		if m.Name == name {
			return m, nil
		}
	}
	return ModeConfig{}, fmt.Errorf("unknown mode %q", name)
}

// ActiveMode returns the mode selected by Match.Mode
func (c *Config) ActiveMode() (ModeConfig, error) {
	return c.Mode(c.Match.Mode)
}

// CrabAcceleration derives paddle acceleration from max speed and ramp time
func (c *Config) CrabAcceleration() float64 {
	return c.Crab.MaxSpeed / c.Crab.SecondsToMaxSpeed
}

// BallAcceleration derives ball acceleration from max speed and ramp time
func (c *Config) BallAcceleration() float64 {
	return c.Ball.MaxSpeed / c.Ball.SecondsToMaxSpeed
}

// FadeDuration returns the fade timer length
func (c *Config) FadeDuration() time.Duration {
	return time.Duration(c.Fade.DurationSeconds * float64(time.Second))
}

// CrabHalfBound is the largest |local position| a paddle centre may reach
// The goal mouth spans the side minus the corner barriers
func (c *Config) CrabHalfBound() float64 {
	return c.Arena.HalfExtent - c.Arena.BarrierRadius - c.Crab.HalfWidth
}

// Clone returns a deep copy so callers can override fields without sharing slices
func (c *Config) Clone() *Config {
	out := *c
	out.Modes = make([]ModeConfig, len(c.Modes))
	for i, m := range c.Modes {
		m.Sides = append([]SideConfig(nil), m.Sides...)
		out.Modes[i] = m
	}
	out.Server.AllowedOrigins = append([]string(nil), c.Server.AllowedOrigins...)
	return &out
}
