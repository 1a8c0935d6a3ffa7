package engine

import (
	"math/rand"
	"sort"
	"time"

	"github.com/lixenwraith/crab-arena/config"
	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/event"
	"github.com/lixenwraith/crab-arena/status"
)

// World contains all entities, their components and the ordered systems
// Not safe for concurrent use; arena.Match serializes access
type World struct {
	nextEntityID core.Entity

	Components ComponentStore
	Resources  Resource

	allStores []AnyStore
	queue     *event.EventQueue
	router    *event.Router
	systems   []System
	inactive  map[string]bool
}

// NewWorld creates a world bound to cfg with default resources
// Callers replace Logger, Audio and Rand before adding systems as needed
func NewWorld(cfg *config.Config) *World {
	cs, all := newComponentStore()
	queue := event.NewEventQueue()
	w := &World{
		nextEntityID: 1,
		Components:   cs,
		allStores:    all,
		queue:        queue,
		router:       event.NewRouter(queue),
		inactive:     make(map[string]bool),
		Resources: Resource{
			Time:     &TimeResource{},
			Config:   cfg,
			Match:    &MatchResource{},
			Input:    &InputResource{},
			Rand:     rand.New(rand.NewSource(1)),
			Snapshot: &Snapshot{},
			Status:   status.NewRegistry(),
			Logger:   DiscardLogger(),
		},
	}
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.allStores {
		s.Remove(e)
	}
}

// Alive reports whether any store still holds e
func (w *World) Alive(e core.Entity) bool {
	for _, s := range w.allStores {
		if s.Has(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities, components and pending events
func (w *World) Clear() {
	for _, s := range w.allStores {
		s.Clear()
	}
	w.queue.Clear()
	w.nextEntityID = 1
}

// AddSystem adds a system, keeps the list ordered by priority and routes
// its declared events
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
	w.router.Register(s)
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// SetSystemActive toggles a system's Update by name
// Inactive systems still receive their routed events
func (w *World) SetSystemActive(name string, active bool) {
	if active {
		delete(w.inactive, name)
		return
	}
	w.inactive[name] = true
}

// PushEvent queues an event stamped with the current frame
func (w *World) PushEvent(t event.EventType, payload any) {
	w.queue.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   w.Resources.Time.FrameNumber,
	})
}

// DispatchEvents drains the queue through the router
func (w *World) DispatchEvents() int {
	return w.router.DispatchAll()
}

// Update runs one tick with the given frame delta
// Events emitted by a system are delivered before the next system runs;
// pausable systems are skipped while the match is halted
func (w *World) Update(dt time.Duration) {
	t := w.Resources.Time
	t.DeltaTime = dt
	t.FrameNumber++

	halted := w.Resources.Match.Halted()
	if !halted {
		t.SimTime += dt
	}

	// Events queued between ticks (round start, pause toggles)
	w.DispatchEvents()

	for _, s := range w.systems {
		if halted && !runsWhileHalted(s) {
			continue
		}
		if w.inactive[s.Name()] {
			continue
		}
		s.Update()
		w.DispatchEvents()
		// A system may end the round mid-tick; later pausable systems stop too
		if !halted && w.Resources.Match.Halted() {
			halted = true
		}
	}
}
