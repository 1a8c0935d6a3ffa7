package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMaxVoices caps concurrently mixed cues; further cues are dropped
	AudioMaxVoices = 8
)

// Shared envelope edges
const (
	CueAttack  = 5 * time.Millisecond
	CueRelease = 30 * time.Millisecond
)

// Bounce (ball, barrier, wall)
const (
	BounceDuration = 40 * time.Millisecond
	BounceFreq     = 660.0
)

// Paddle hit
const (
	PaddleDuration = 70 * time.Millisecond
	PaddleFreq     = 440.0
)

// Goal against a side: falling two-note
const (
	GoalNoteDuration = 120 * time.Millisecond
	GoalFreqHigh     = 392.0
	GoalFreqLow      = 196.0
)

// Elimination: noise burst under a low saw
const (
	EliminatedDuration = 400 * time.Millisecond
	EliminatedFreq     = 110.0
)

// Ball spawn
const (
	SpawnDuration = 90 * time.Millisecond
	SpawnFreq     = 880.0
)

// Game over: rising three-note arpeggio
const (
	GameOverNoteDuration = 150 * time.Millisecond
)

var GameOverFreqs = [3]float64{523.25, 659.25, 783.99}
