package system

import (
	"testing"

	"github.com/lixenwraith/crab-arena/component"
	"github.com/lixenwraith/crab-arena/core"
)

func TestInputAppliesOnlyToInputCrabs(t *testing.T) {
	w := newTestWorld()
	input := NewInputSystem(w)

	human := SpawnCrab(w, core.SideBottom, 0, component.ControllerInput)
	bot := SpawnCrab(w, core.SideTop, 1, component.ControllerAI)

	w.Resources.Input.Forces[core.SideBottom] = core.ForceNegative
	w.Resources.Input.Forces[core.SideTop] = core.ForcePositive
	input.Update()

	mv, _ := w.Components.Movement.Get(human)
	if mv.Force != core.ForceNegative {
		t.Errorf("Expected negative force on the input crab, got %v", mv.Force)
	}
	mv, _ = w.Components.Movement.Get(bot)
	if mv.Force != core.ForceNone {
		t.Errorf("Expected AI crab untouched, got %v", mv.Force)
	}

	w.Resources.Input.Forces[core.SideBottom] = core.ForceNone
	input.Update()
	mv, _ = w.Components.Movement.Get(human)
	if mv.Force != core.ForceNone {
		t.Errorf("Expected released force, got %v", mv.Force)
	}
}
