package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/crab-arena/component"
	"github.com/lixenwraith/crab-arena/vmath"
)

func TestSpawnHeadingAvoidsDiagonals(t *testing.T) {
	diagonals := []vmath.Vec3F{
		vmath.V3FNormalize(vmath.Vec3F{X: 1, Z: 1}),
		vmath.V3FNormalize(vmath.Vec3F{X: 1, Z: -1}),
		vmath.V3FNormalize(vmath.Vec3F{X: -1, Z: 1}),
		vmath.V3FNormalize(vmath.Vec3F{X: -1, Z: -1}),
	}
	limit := math.Cos(vmath.DegToRad(15) - 1e-9)

	for q := 0; q < 4; q++ {
		for i := 0; i <= 100; i++ {
			u := float64(i) / 100
			h := SpawnHeading(u, q)
			if math.Abs(vmath.V3FMag(h)-1) > 1e-12 {
				t.Fatalf("Quadrant %d u=%v: expected unit heading, got %+v", q, u, h)
			}
			if h.Y != 0 {
				t.Fatalf("Quadrant %d u=%v: expected planar heading, got %+v", q, u, h)
			}
			for _, d := range diagonals {
				if vmath.V3FDot(h, d) > limit {
					t.Errorf("Quadrant %d u=%v: heading %+v within 15 degrees of diagonal", q, u, h)
				}
			}
		}
	}
}

func TestSpawnHeadingCentresOnQuadrantAxis(t *testing.T) {
	axes := []vmath.Vec3F{{Z: 1}, {X: 1}, {Z: -1}, {X: -1}}
	for q, axis := range axes {
		h := SpawnHeading(0.5, q)
		if !vmath.V3FApproxEqual(h, axis, 1e-12) {
			t.Errorf("Quadrant %d: expected %+v, got %+v", q, axis, h)
		}
	}
}

func TestSpawnOneBallAtATime(t *testing.T) {
	w := newTestWorld()
	spawn := NewSpawnSystem(w)

	spawn.Update()
	spawn.Update()
	if n := w.Components.Ball.Count(); n != 1 {
		t.Fatalf("Expected 1 ball while the first fades in, got %d", n)
	}

	first := w.Components.Ball.All()[0]
	activate(w, first)
	spawn.Update()
	if n := w.Components.Ball.Count(); n != 2 {
		t.Fatalf("Expected a second ball once the first is active, got %d", n)
	}

	for _, e := range w.Components.Ball.All() {
		activate(w, e)
	}
	spawn.Update()
	if n := w.Components.Ball.Count(); n != 2 {
		t.Errorf("Expected spawning to stop at max balls, got %d", n)
	}

	if got := w.Resources.Status.Ints.Get("spawn.balls").Load(); got != 2 {
		t.Errorf("Expected spawn metric 2, got %d", got)
	}
}

func TestSpawnReplacesFadingOutBall(t *testing.T) {
	w := newTestWorld()
	w.Resources.Match.MaxBalls = 1
	spawn := NewSpawnSystem(w)

	e := placeBall(w, vmath.Vec3F{}, vmath.Vec3F{X: 1}, 1)
	spawn.Update()
	if n := w.Components.Ball.Count(); n != 1 {
		t.Fatalf("Expected no spawn at capacity, got %d balls", n)
	}

	w.Components.Fade.Set(e, component.FadeComponent{Phase: component.FadeOut})
	spawn.Update()
	if n := w.Components.Ball.Count(); n != 2 {
		t.Errorf("Expected replacement while the old ball fades out, got %d balls", n)
	}
}

func TestSpawnedBallStartsAtRest(t *testing.T) {
	w := newTestWorld()
	NewSpawnSystem(w).Update()

	e := w.Components.Ball.All()[0]
	mv, _ := w.Components.Movement.Get(e)
	tr, _ := w.Components.Transform.Get(e)
	if mv.Speed != 0 || tr.Position != (vmath.Vec3F{}) {
		t.Errorf("Expected ball at rest in the centre, got speed %v at %+v", mv.Speed, tr.Position)
	}
	if hasCap(w, e, component.CapMovement) {
		t.Error("Expected spawned ball inactive until faded in")
	}
}
