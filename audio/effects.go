package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite streamer of the given wave
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a finite stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

// NewEnvelope shapes s over duration with linear attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		release:      rate.N(release),
		totalSamples: rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.release
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with linear gain; zero gain is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, parameter.CueAttack, parameter.CueRelease, rate)
}

// CueDuration returns the length of the cue for sound
func CueDuration(sound core.SoundType) time.Duration {
	switch sound {
	case core.SoundBounce:
		return parameter.BounceDuration
	case core.SoundPaddle:
		return parameter.PaddleDuration
	case core.SoundGoal:
		return 2 * parameter.GoalNoteDuration
	case core.SoundEliminated:
		return parameter.EliminatedDuration
	case core.SoundSpawn:
		return parameter.SpawnDuration
	case core.SoundGameOver:
		return time.Duration(len(parameter.GameOverFreqs)) * parameter.GameOverNoteDuration
	default:
		return 0
	}
}

// NewCue builds the streamer for sound at linear volume
// Returns nil for unknown sounds
func NewCue(sound core.SoundType, volume float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch sound {
	case core.SoundBounce:
		s = tone(parameter.BounceFreq, parameter.BounceDuration, WaveSine, rate)

	case core.SoundPaddle:
		s = beep.Mix(
			newVolume(tone(parameter.PaddleFreq, parameter.PaddleDuration, WaveSquare, rate), 0.6),
			newVolume(tone(parameter.PaddleFreq*2, parameter.PaddleDuration, WaveSine, rate), 0.4),
		)

	case core.SoundGoal:
		s = beep.Seq(
			tone(parameter.GoalFreqHigh, parameter.GoalNoteDuration, WaveSaw, rate),
			tone(parameter.GoalFreqLow, parameter.GoalNoteDuration, WaveSaw, rate),
		)

	case core.SoundEliminated:
		d := parameter.EliminatedDuration
		s = beep.Mix(
			newVolume(NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.CueAttack, d/2, rate), 0.5),
			newVolume(tone(parameter.EliminatedFreq, d, WaveSaw, rate), 0.5),
		)

	case core.SoundSpawn:
		s = tone(parameter.SpawnFreq, parameter.SpawnDuration, WaveSine, rate)

	case core.SoundGameOver:
		notes := make([]beep.Streamer, 0, len(parameter.GameOverFreqs))
		for _, f := range parameter.GameOverFreqs {
			notes = append(notes, tone(f, parameter.GameOverNoteDuration, WaveSquare, rate))
		}
		s = beep.Seq(notes...)

	default:
		return nil
	}
	return newVolume(s, volume)
}
