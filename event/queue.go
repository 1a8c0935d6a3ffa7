package event

import "github.com/lixenwraith/crab-arena/parameter"

// EventQueue is a FIFO of pending events
// Thread-Safety: none; the simulation pushes and drains on one goroutine
// External producers (input, network) go through arena.Match, never the queue
type EventQueue struct {
	events []GameEvent
	spare  []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]GameEvent, 0, parameter.EventQueueInitialCap),
		spare:  make([]GameEvent, 0, parameter.EventQueueInitialCap),
	}
}

// Push appends an event
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events = append(eq.events, ev)
}

// Consume returns all pending events in FIFO order and empties the queue
// The returned slice is valid until the next Consume call
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	out := eq.events
	eq.events = eq.spare[:0]
	eq.spare = out
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return len(eq.events)
}

// Clear drops every pending event
func (eq *EventQueue) Clear() {
	eq.events = eq.events[:0]
}
