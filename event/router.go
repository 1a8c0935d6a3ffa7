package event

import (
	"fmt"

	"github.com/lixenwraith/crab-arena/parameter"
)

// Handler processes specific event types
// Systems implement this interface to receive routed events
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Events emitted by handlers are dispatched in the same call
type Router struct {
	handlers map[EventType][]Handler
	queue    *EventQueue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *EventQueue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll drains the queue until empty, routing in FIFO order
// Returns the number of events delivered
func (r *Router) DispatchAll() int {
	delivered := 0
	for pass := 0; r.queue.Len() > 0; pass++ {
		if pass >= parameter.MaxDispatchPasses {
			panic(fmt.Sprintf("event: dispatch did not settle after %d passes", pass))
		}
		for _, ev := range r.queue.Consume() {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
			delivered++
		}
	}
	return delivered
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
