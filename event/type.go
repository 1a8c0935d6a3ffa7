package event

// EventType represents the type of arena event
type EventType int

const (
	eventNone EventType = iota

	// === Round Events ===

	// EventRoundStart signals a freshly built round
	// Trigger: arena.Match StartRound/RestartRound
	// Consumer: AudioSystem, logging | Payload: *RoundStartPayload
	EventRoundStart

	// EventRoundReset requests teardown of all round entities
	// Trigger: arena.Match RestartRound
	// Consumer: FadeSystem | Payload: nil
	EventRoundReset

	// EventPauseChanged signals the pause flag flipped
	// Trigger: arena.Match Pause/Resume
	// Consumer: AudioSystem | Payload: *PauseChangedPayload
	EventPauseChanged

	// === Ball Events ===

	// EventBallSpawned signals a new ball started fading in at the centre
	// Trigger: SpawnSystem
	// Consumer: AudioSystem | Payload: *BallSpawnedPayload
	EventBallSpawned

	// EventBallDeflected signals a heading rewrite from a contact
	// Trigger: CollisionSystem
	// Consumer: AudioSystem | Payload: *BallDeflectedPayload
	EventBallDeflected

	// === Goal Events ===

	// EventGoalScored signals a ball fully passed a defended side
	// Trigger: ScoreSystem
	// Consumer: ScoreSystem (hit points), AudioSystem | Payload: *GoalScoredPayload
	EventGoalScored

	// EventGoalEliminated signals a side's hit points reached zero
	// Emitted exactly once per side per round
	// Trigger: ScoreSystem
	// Consumer: GoalSystem, GameOverSystem, AudioSystem | Payload: *GoalEliminatedPayload
	EventGoalEliminated

	// EventGameOver signals the round is decided
	// Trigger: GameOverSystem
	// Consumer: arena.Match, AudioSystem | Payload: *GameOverPayload
	EventGameOver

	// === Lifecycle Events ===

	// EventFadeOutRequest starts (or reverses) a fade-out on an entity
	// Trigger: ScoreSystem, GoalSystem, round reset
	// Consumer: FadeSystem | Payload: *FadeOutRequestPayload
	EventFadeOutRequest

	eventTypeCount
)

// GameEvent is a queued event with its frame of origin
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// ContactKind identifies which collider deflected a ball
type ContactKind uint8

const (
	ContactBall ContactKind = iota
	ContactPaddle
	ContactBarrier
	ContactWall
)

func (k ContactKind) String() string {
	switch k {
	case ContactBall:
		return "ball"
	case ContactPaddle:
		return "paddle"
	case ContactBarrier:
		return "barrier"
	case ContactWall:
		return "wall"
	default:
		return "unknown"
	}
}
