package component

// FadePhase is the direction of an activation transition
type FadePhase uint8

const (
	FadeIn FadePhase = iota
	FadeOut
)

func (p FadePhase) String() string {
	if p == FadeOut {
		return "out"
	}
	return "in"
}

// FadeComponent drives the fade-in/fade-out lifecycle
// Progress is in [0,1] and never decreases within a phase
type FadeComponent struct {
	Phase    FadePhase
	Progress float64
}

// Weight is the render scale/opacity for the current phase
func (f FadeComponent) Weight() float64 {
	if f.Phase == FadeOut {
		return 1 - f.Progress
	}
	return f.Progress
}

// Reversed returns the Out phase that continues visually from an In phase
// An In at progress p becomes an Out at 1-p
func (f FadeComponent) Reversed() FadeComponent {
	if f.Phase == FadeOut {
		return f
	}
	return FadeComponent{Phase: FadeOut, Progress: 1 - f.Progress}
}
