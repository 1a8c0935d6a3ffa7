package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/crab-arena/vmath"
)

// Direction is a screen-space push direction
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// World returns the arena-plane vector of d; screen up is -Z
func (d Direction) World() vmath.Vec3F {
	switch d {
	case DirLeft:
		return vmath.Vec3F{X: -1}
	case DirRight:
		return vmath.Vec3F{X: 1}
	case DirUp:
		return vmath.Vec3F{Z: -1}
	case DirDown:
		return vmath.Vec3F{Z: 1}
	default:
		return vmath.Vec3F{}
	}
}

// Player slot driven by a key group
const (
	SlotPrimary   = 0 // Arrow keys
	SlotSecondary = 1 // WASD
)

// KeyEntry describes a key's action
type KeyEntry struct {
	IntentType IntentType
	Direction  Direction
	Slot       int
}

// KeyTable maps keys to entries
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
			tcell.KeyEscape: {IntentType: IntentEscape},
			tcell.KeyEnter:  {IntentType: IntentConfirm},
			tcell.KeyLeft:   {IntentType: IntentMove, Direction: DirLeft, Slot: SlotPrimary},
			tcell.KeyRight:  {IntentType: IntentMove, Direction: DirRight, Slot: SlotPrimary},
			tcell.KeyUp:     {IntentType: IntentMove, Direction: DirUp, Slot: SlotPrimary},
			tcell.KeyDown:   {IntentType: IntentMove, Direction: DirDown, Slot: SlotPrimary},
		},
		Runes: map[rune]KeyEntry{
			'q': {IntentType: IntentQuit},
			'p': {IntentType: IntentPause},
			' ': {IntentType: IntentPause},
			'r': {IntentType: IntentRestart},
			'm': {IntentType: IntentToggleMute},
			'a': {IntentType: IntentMove, Direction: DirLeft, Slot: SlotSecondary},
			'd': {IntentType: IntentMove, Direction: DirRight, Slot: SlotSecondary},
			'w': {IntentType: IntentMove, Direction: DirUp, Slot: SlotSecondary},
			's': {IntentType: IntentMove, Direction: DirDown, Slot: SlotSecondary},
		},
	}
}
