package core

// SoundType represents different sound cues emitted by the arena
type SoundType int

const (
	SoundBounce     SoundType = iota // Ball deflected off ball, barrier or wall
	SoundPaddle                      // Ball deflected off a crab
	SoundGoal                        // Goal scored against a side
	SoundEliminated                  // Side eliminated, wall raised
	SoundSpawn                       // Ball spawned at centre
	SoundGameOver                    // Match decided
	SoundTypeCount
)
