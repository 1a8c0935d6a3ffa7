package input

import "github.com/lixenwraith/crab-arena/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Ctrl+C, q on the menu
	IntentEscape     // ESC key (context-dependent)
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Round control
	IntentConfirm // Enter: start or restart after game over
	IntentPause   // p, Space
	IntentRestart // r

	// Menu navigation
	IntentMenuUp
	IntentMenuDown

	// Crab movement; Side and Force are set
	IntentMove
)

// Intent is the parsed action of one terminal event
type Intent struct {
	Type  IntentType
	Side  core.Side
	Force core.Force
}
