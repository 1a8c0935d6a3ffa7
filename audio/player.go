// Package audio synthesizes and plays the arena's sound cues through the
// system speaker
package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/parameter"
)

// Player mixes cues onto a single speaker stream
// Play never blocks the caller; cues beyond the voice limit are dropped
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewPlayer creates a player at linear volume in [0,1]
// No device is opened until Init
func NewPlayer(volume float64) *Player {
	return &Player{
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker and starts the mixer
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the cue for sound
// Returns false when uninitialized, muted, saturated or the sound is unknown
func (p *Player) Play(sound core.SoundType) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return false
	}
	cue := NewCue(sound, p.volume, p.rate)
	if cue == nil {
		return false
	}

	speaker.Lock()
	defer speaker.Unlock()
	if p.mixer.Len() >= parameter.AudioMaxVoices {
		return false
	}
	p.mixer.Add(cue)
	return true
}

// SetMuted silences future cues without closing the device
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// ToggleMute flips the mute state and returns the new value
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Muted reports the mute state
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close drops pending cues and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.mixer.Clear()
	p.initialized = false
}
