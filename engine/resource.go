package engine

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/crab-arena/config"
	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/status"
)

// Resource holds singleton simulation resources, accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Config *config.Config
	Match  *MatchResource
	Input  *InputResource
	Rand   *rand.Rand

	// Published render state, replaced by TransformSystem every tick
	Snapshot *Snapshot

	// Telemetry
	Status *status.Registry
	Logger *log.Logger

	// Optional; nil when audio is disabled or failed to initialize
	Audio SoundPlayer
}

// SoundPlayer plays a cue without blocking the simulation
// Play reports false when the cue was dropped
type SoundPlayer interface {
	Play(sound core.SoundType) bool
}

// TimeResource is updated by World.Update at the start of each tick
type TimeResource struct {
	// DeltaTime is the variable frame delta supplied by the caller
	DeltaTime time.Duration

	// SimTime accumulates delta while the simulation runs (excludes pauses)
	SimTime time.Duration

	// FrameNumber counts every Update call, paused or not
	FrameNumber int64
}

// Seconds returns DeltaTime in seconds for the float simulation
func (tr *TimeResource) Seconds() float64 {
	return tr.DeltaTime.Seconds()
}

// Phase is the round state
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "idle"
	}
}

// Result is the decision of a finished round
type Result struct {
	Decided bool
	Draw    bool
	Team    int
}

// MatchResource is the round state shared by systems
type MatchResource struct {
	ID       string
	Mode     string
	Round    int
	MaxBalls int
	Phase    Phase
	Paused   bool
	Result   Result
}

// Halted reports whether pausable systems should skip this tick
func (m *MatchResource) Halted() bool {
	return m.Paused || m.Phase != PhasePlaying
}

// InputResource holds the externally resolved force per side
// Written by arena.Match between ticks, read by InputSystem
type InputResource struct {
	Forces [core.SideCount]core.Force
}

// DiscardLogger returns a logger that drops everything
func DiscardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
