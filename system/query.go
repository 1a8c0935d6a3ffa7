package system

import (
	"fmt"

	"github.com/lixenwraith/crab-arena/component"
	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/engine"
)

// hasCap reports whether e currently holds every capability in c
func hasCap(w *engine.World, e core.Entity, c component.Capability) bool {
	a, ok := w.Components.Activation.Get(e)
	return ok && a.Caps.Has(c)
}

// fadingOut reports whether e is in the Out phase or already marked dead
func fadingOut(w *engine.World, e core.Entity) bool {
	if w.Components.Death.Has(e) {
		return true
	}
	f, ok := w.Components.Fade.Get(e)
	return ok && f.Phase == component.FadeOut
}

// activeBalls returns balls that can collide and score, in spawn order
func activeBalls(w *engine.World) []core.Entity {
	all := w.Components.Ball.All()
	out := all[:0]
	for _, e := range all {
		if hasCap(w, e, component.CapCollider) {
			out = append(out, e)
		}
	}
	return out
}

// goalFor returns the goal record of side
// Every round creates all four goals, so a miss is a logic defect
func goalFor(w *engine.World, side core.Side) (core.Entity, component.GoalComponent) {
	for _, e := range w.Components.Goal.All() {
		g, ok := w.Components.Goal.Get(e)
		if ok && g.Side == side {
			return e, g
		}
	}
	panic(fmt.Sprintf("system: no goal for side %v", side))
}
