package event

import "github.com/lixenwraith/crab-arena/core"

// RoundStartPayload identifies the round that just started
type RoundStartPayload struct {
	MatchID string
	Mode    string
	Round   int
}

// PauseChangedPayload carries the new pause state
type PauseChangedPayload struct {
	Paused bool
}

// BallSpawnedPayload identifies the ball entering the arena
type BallSpawnedPayload struct {
	Ball core.Entity
}

// BallDeflectedPayload describes a resolved contact
// Other is the ball, crab, barrier or wall that was hit
type BallDeflectedPayload struct {
	Ball    core.Entity
	Other   core.Entity
	Contact ContactKind
}

// GoalScoredPayload identifies the side that conceded and the scoring ball
type GoalScoredPayload struct {
	Side core.Side
	Ball core.Entity
}

// GoalEliminatedPayload identifies the side whose hit points reached zero
type GoalEliminatedPayload struct {
	Side core.Side
	Team int
}

// GameOverPayload is the round decision; Team is meaningless on a draw
type GameOverPayload struct {
	Draw bool
	Team int
}

// FadeOutRequestPayload names the entity to fade out
type FadeOutRequestPayload struct {
	Entity core.Entity
}
