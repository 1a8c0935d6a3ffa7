// Package input turns terminal key events into arena intents and per-side
// forces
package input

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/parameter"
	"github.com/lixenwraith/crab-arena/vmath"
)

// hold is the last force requested for a side
type hold struct {
	force core.Force
	at    time.Time
}

// Machine parses terminal events into Intents and resolves held forces
//
// Terminals report key presses and auto-repeats but no releases, so a force
// stays held for parameter.InputHoldWindow after the last press
type Machine struct {
	keyTable *KeyTable
	slots    []core.Side
	holds    [core.SideCount]hold
	menu     bool
}

// NewMachine creates a machine driving the given input sides
// The first side takes the arrow keys, the second WASD; on a single-side
// layout both groups drive it
func NewMachine(sides []core.Side) *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
		slots:    append([]core.Side(nil), sides...),
	}
}

// SetSides replaces the controlled sides and drops held forces
func (m *Machine) SetSides(sides []core.Side) {
	m.slots = append(m.slots[:0], sides...)
	m.Reset()
}

// SetMenu switches arrow keys between menu navigation and movement
func (m *Machine) SetMenu(menu bool) {
	m.menu = menu
	m.Reset()
}

// Reset releases all held forces
func (m *Machine) Reset() {
	m.holds = [core.SideCount]hold{}
}

// Process parses a terminal event at time now
// Returns nil for unbound keys and events without meaning
func (m *Machine) Process(ev tcell.Event, now time.Time) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.ProcessKey(ev.Key(), ev.Rune(), now)
	}
	return nil
}

// ProcessKey parses one key press
func (m *Machine) ProcessKey(key tcell.Key, r rune, now time.Time) *Intent {
	var (
		entry KeyEntry
		ok    bool
	)
	if key == tcell.KeyRune {
		entry, ok = m.keyTable.Runes[unicode.ToLower(r)]
	} else {
		entry, ok = m.keyTable.SpecialKeys[key]
	}
	if !ok {
		return nil
	}

	if entry.IntentType != IntentMove {
		return &Intent{Type: entry.IntentType}
	}

	if m.menu {
		switch entry.Direction {
		case DirUp:
			return &Intent{Type: IntentMenuUp}
		case DirDown:
			return &Intent{Type: IntentMenuDown}
		}
		return nil
	}

	side, ok := m.sideFor(entry.Slot)
	if !ok {
		return nil
	}
	force := ForceFor(side, entry.Direction)
	if force == core.ForceNone {
		// Key perpendicular to the side's travel
		return nil
	}
	m.holds[side] = hold{force: force, at: now}
	return &Intent{Type: IntentMove, Side: side, Force: force}
}

func (m *Machine) sideFor(slot int) (core.Side, bool) {
	switch {
	case len(m.slots) == 0:
		return core.SideCount, false
	case len(m.slots) == 1:
		return m.slots[0], true
	case slot < len(m.slots):
		return m.slots[slot], true
	default:
		return core.SideCount, false
	}
}

// Forces returns the resolved force per controlled side at time now
// Holds older than the hold window resolve to ForceNone
func (m *Machine) Forces(now time.Time) map[core.Side]core.Force {
	out := make(map[core.Side]core.Force, len(m.slots))
	for _, side := range m.slots {
		h := m.holds[side]
		if h.force != core.ForceNone && now.Sub(h.at) <= parameter.InputHoldWindow {
			out[side] = h.force
		} else {
			out[side] = core.ForceNone
		}
	}
	return out
}

// ForceFor maps a screen direction onto side's local axis
// Returns ForceNone when the direction is perpendicular to the side
func ForceFor(side core.Side, d Direction) core.Force {
	dot := vmath.V3FDot(d.World(), side.Tangent())
	switch {
	case dot > 0:
		return core.ForcePositive
	case dot < 0:
		return core.ForceNegative
	default:
		return core.ForceNone
	}
}
