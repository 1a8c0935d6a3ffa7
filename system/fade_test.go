package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/crab-arena/component"
	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/event"
	"github.com/lixenwraith/crab-arena/vmath"
)

func TestFadeOutReversesFadeIn(t *testing.T) {
	w := newTestWorld()
	fade := NewFadeSystem(w).(*FadeSystem)

	e := SpawnCrab(w, core.SideTop, 0, component.ControllerAI)
	w.Components.Fade.Set(e, component.FadeComponent{Phase: component.FadeIn, Progress: 0.3})

	fade.FadeOut(e)

	f, ok := w.Components.Fade.Get(e)
	if !ok || f.Phase != component.FadeOut {
		t.Fatalf("Expected fade-out phase, got %+v (present=%v)", f, ok)
	}
	if math.Abs(f.Progress-0.7) > 1e-12 {
		t.Errorf("Expected progress 0.7, got %v", f.Progress)
	}
	if math.Abs(f.Weight()-0.3) > 1e-12 {
		t.Errorf("Expected weight to stay 0.3, got %v", f.Weight())
	}

	act, _ := w.Components.Activation.Get(e)
	if act.OnActivate != component.CapNone {
		t.Errorf("Expected pending activation cleared, got %v", act.OnActivate)
	}
}

func TestFadeOutIgnoresRepeatRequests(t *testing.T) {
	w := newTestWorld()
	fade := NewFadeSystem(w).(*FadeSystem)

	e := SpawnCrab(w, core.SideLeft, 0, component.ControllerAI)
	w.Components.Fade.Set(e, component.FadeComponent{Phase: component.FadeOut, Progress: 0.4})

	fade.FadeOut(e)

	f, _ := w.Components.Fade.Get(e)
	if f.Phase != component.FadeOut || f.Progress != 0.4 {
		t.Errorf("Expected fade-out at 0.4 untouched, got %+v", f)
	}
}

func TestFadeOutActiveEntities(t *testing.T) {
	w := newTestWorld()
	fade := NewFadeSystem(w).(*FadeSystem)

	ball := placeBall(w, vmath.Vec3F{}, vmath.Vec3F{X: 1}, 3)
	crab := SpawnCrab(w, core.SideRight, 1, component.ControllerAI)
	activate(w, crab)

	fade.FadeOut(ball)
	fade.FadeOut(crab)

	for _, e := range []core.Entity{ball, crab} {
		f, ok := w.Components.Fade.Get(e)
		if !ok || f.Phase != component.FadeOut || f.Progress != 0 {
			t.Errorf("Entity %d: expected fresh fade-out, got %+v", e, f)
		}
		if hasCap(w, e, component.CapCollider) {
			t.Errorf("Entity %d: expected collider revoked", e)
		}
	}

	if !hasCap(w, ball, component.CapMovement) {
		t.Error("Expected fading ball to keep moving")
	}
	if hasCap(w, crab, component.CapMovement) {
		t.Error("Expected fading crab to stop moving")
	}
}

func TestFadeOutIgnoresDestroyedEntity(t *testing.T) {
	w := newTestWorld()
	fade := NewFadeSystem(w).(*FadeSystem)

	e := placeBall(w, vmath.Vec3F{}, vmath.Vec3F{X: 1}, 0)
	w.DestroyEntity(e)
	fade.FadeOut(e)

	if w.Alive(e) {
		t.Error("Expected destroyed entity to stay gone")
	}
}

func TestFadeInCompletionGrantsCapabilities(t *testing.T) {
	w := newTestWorld()
	fade := NewFadeSystem(w)

	ball := SpawnBall(w, vmath.Vec3F{Z: 1})
	wall := SpawnWall(w, core.SideBottom)

	// 0.5s fade at 16ms per tick needs 32 ticks
	for i := 0; i < 31; i++ {
		fade.Update()
	}
	if hasCap(w, ball, component.CapMovement) {
		t.Fatal("Expected ball inactive before the fade completes")
	}
	f, _ := w.Components.Fade.Get(ball)
	if f.Progress <= 0.9 || f.Progress >= 1 {
		t.Errorf("Expected progress just below 1, got %v", f.Progress)
	}

	fade.Update()

	if w.Components.Fade.Has(ball) {
		t.Error("Expected fade removed after completion")
	}
	if !hasCap(w, ball, component.CapActive) {
		t.Error("Expected ball to gain movement and collider")
	}
	if !hasCap(w, wall, component.CapCollider) || hasCap(w, wall, component.CapMovement) {
		t.Error("Expected wall to gain only the collider")
	}
}

func TestFadeOutCompletionMarksDeath(t *testing.T) {
	w := newTestWorld()
	fade := NewFadeSystem(w)
	cleanup := NewCleanupSystem(w)

	e := SpawnCrab(w, core.SideTop, 0, component.ControllerAI)
	w.Components.Fade.Set(e, component.FadeComponent{Phase: component.FadeOut, Progress: 0.98})

	fade.Update()

	if !w.Components.Death.Has(e) {
		t.Fatal("Expected death marker after fade-out")
	}
	f, _ := w.Components.Fade.Get(e)
	if f.Progress != 1 {
		t.Errorf("Expected progress clamped to 1, got %v", f.Progress)
	}

	cleanup.Update()
	if w.Alive(e) {
		t.Error("Expected cleanup to destroy the entity")
	}
}

func TestRoundResetFadesOutPlayfield(t *testing.T) {
	w := newTestWorld()
	w.AddSystem(NewFadeSystem(w))

	barriers := SpawnBarriers(w)
	ball := placeBall(w, vmath.Vec3F{}, vmath.Vec3F{X: 1}, 1)
	crab := SpawnCrab(w, core.SideTop, 0, component.ControllerInput)
	activate(w, crab)
	wall := SpawnWall(w, core.SideLeft)

	w.PushEvent(event.EventRoundReset, nil)
	w.DispatchEvents()

	for _, e := range []core.Entity{ball, crab, wall} {
		if !fadingOut(w, e) {
			t.Errorf("Entity %d: expected fading out", e)
		}
	}
	for _, e := range barriers {
		if w.Components.Fade.Has(e) || !hasCap(w, e, component.CapCollider) {
			t.Errorf("Barrier %d: expected untouched", e)
		}
	}
}
