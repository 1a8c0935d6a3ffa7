package event

var typeNames = [eventTypeCount]string{
	eventNone:           "None",
	EventRoundStart:     "RoundStart",
	EventRoundReset:     "RoundReset",
	EventPauseChanged:   "PauseChanged",
	EventBallSpawned:    "BallSpawned",
	EventBallDeflected:  "BallDeflected",
	EventGoalScored:     "GoalScored",
	EventGoalEliminated: "GoalEliminated",
	EventGameOver:       "GameOver",
	EventFadeOutRequest: "FadeOutRequest",
}

// String returns the registry name used in logs
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return typeNames[t]
}

// ParseEventType resolves a registry name, used by the bench event filter
func ParseEventType(name string) (EventType, bool) {
	for i := EventType(1); i < eventTypeCount; i++ {
		if typeNames[i] == name {
			return i, true
		}
	}
	return eventNone, false
}
