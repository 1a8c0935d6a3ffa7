package engine

import (
	"fmt"

	"github.com/lixenwraith/crab-arena/component"
	"github.com/lixenwraith/crab-arena/core"
)

// ComponentStore holds the typed store of every component kind
// Systems read fields directly; pointers remain valid for the world lifetime
type ComponentStore struct {
	// Actors
	Ball *Store[component.BallComponent]
	Crab *Store[component.CrabComponent]
	AI   *Store[component.AIComponent]

	// Arena fixtures
	Goal    *Store[component.GoalComponent]
	Barrier *Store[component.BarrierComponent]
	Wall    *Store[component.WallComponent]

	// Simulation state
	Movement   *Store[component.MovementComponent]
	Transform  *Store[component.TransformComponent]
	Activation *Store[component.ActivationComponent]

	// Lifecycle
	Fade  *Store[component.FadeComponent]
	Death *Store[component.DeathComponent]
}

func newComponentStore() (ComponentStore, []AnyStore) {
	cs := ComponentStore{
		Ball:       NewStore[component.BallComponent](),
		Crab:       NewStore[component.CrabComponent](),
		AI:         NewStore[component.AIComponent](),
		Goal:       NewStore[component.GoalComponent](),
		Barrier:    NewStore[component.BarrierComponent](),
		Wall:       NewStore[component.WallComponent](),
		Movement:   NewStore[component.MovementComponent](),
		Transform:  NewStore[component.TransformComponent](),
		Activation: NewStore[component.ActivationComponent](),
		Fade:       NewStore[component.FadeComponent](),
		Death:      NewStore[component.DeathComponent](),
	}
	all := []AnyStore{
		cs.Ball, cs.Crab, cs.AI,
		cs.Goal, cs.Barrier, cs.Wall,
		cs.Movement, cs.Transform, cs.Activation,
		cs.Fade, cs.Death,
	}
	return cs, all
}

func missingComponent(e core.Entity, zero any) string {
	return fmt.Sprintf("engine: entity %d has no %T", e, zero)
}
