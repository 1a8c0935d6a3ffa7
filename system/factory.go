package system

import (
	"github.com/lixenwraith/crab-arena/component"
	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/engine"
	"github.com/lixenwraith/crab-arena/vmath"
)

// SpawnBall creates a ball at the arena centre fading in along heading
// It starts at rest with a positive force so it ramps up once active
func SpawnBall(w *engine.World, heading vmath.Vec3F) core.Entity {
	cfg := w.Resources.Config
	heading = vmath.V3FNormalize(heading)

	e := w.CreateEntity()
	w.Components.Ball.Set(e, component.BallComponent{Radius: cfg.Ball.Radius})
	w.Components.Transform.Set(e, component.TransformComponent{Yaw: vmath.V3FYaw(heading)})
	w.Components.Movement.Set(e, component.MovementComponent{Motion: core.Motion{
		Heading:      heading,
		MaxSpeed:     cfg.Ball.MaxSpeed,
		Acceleration: cfg.BallAcceleration(),
		Force:        core.ForcePositive,
	}})
	w.Components.Activation.Set(e, component.ActivationComponent{OnActivate: component.CapActive})
	w.Components.Fade.Set(e, component.FadeComponent{Phase: component.FadeIn})
	return e
}

// SpawnCrab creates a paddle fading in at the centre of side's goal mouth
func SpawnCrab(w *engine.World, side core.Side, team int, ctl component.ControllerKind) core.Entity {
	cfg := w.Resources.Config

	e := w.CreateEntity()
	w.Components.Crab.Set(e, component.CrabComponent{
		Side:       side,
		Team:       team,
		Controller: ctl,
		HalfWidth:  cfg.Crab.HalfWidth,
		HalfDepth:  cfg.Crab.HalfDepth,
		HalfBound:  cfg.CrabHalfBound(),
	})
	w.Components.Transform.Set(e, component.TransformComponent{
		Position: side.LocalToWorld(0, cfg.Arena.HalfExtent),
		Yaw:      side.Yaw(),
	})
	w.Components.Movement.Set(e, component.MovementComponent{Motion: core.Motion{
		Heading:      side.Tangent(),
		MaxSpeed:     cfg.Crab.MaxSpeed,
		Acceleration: cfg.CrabAcceleration(),
	}})
	w.Components.Activation.Set(e, component.ActivationComponent{OnActivate: component.CapActive})
	w.Components.Fade.Set(e, component.FadeComponent{Phase: component.FadeIn})
	if ctl == component.ControllerAI {
		w.Components.AI.Set(e, component.AIComponent{})
	}
	return e
}

// SpawnWall creates a full-width wall fading in across side's goal
// Walls never move; activation only grants the collider
func SpawnWall(w *engine.World, side core.Side) core.Entity {
	cfg := w.Resources.Config

	e := w.CreateEntity()
	w.Components.Wall.Set(e, component.WallComponent{Side: side, HalfDepth: cfg.Arena.WallHalfDepth})
	w.Components.Transform.Set(e, component.TransformComponent{
		Position: side.GoalCentre(cfg.Arena.HalfExtent),
		Yaw:      side.Yaw(),
	})
	w.Components.Activation.Set(e, component.ActivationComponent{OnActivate: component.CapCollider})
	w.Components.Fade.Set(e, component.FadeComponent{Phase: component.FadeIn})
	return e
}

// SpawnBarriers creates the four permanent corner poles, already active
func SpawnBarriers(w *engine.World) [4]core.Entity {
	cfg := w.Resources.Config
	var out [4]core.Entity
	for i, pos := range core.Corners(cfg.Arena.HalfExtent) {
		e := w.CreateEntity()
		w.Components.Barrier.Set(e, component.BarrierComponent{Corner: i, Radius: cfg.Arena.BarrierRadius})
		w.Components.Transform.Set(e, component.TransformComponent{Position: pos})
		w.Components.Activation.Set(e, component.ActivationComponent{Caps: component.CapCollider})
		out[i] = e
	}
	return out
}

// SpawnGoal creates the scoring record of side
func SpawnGoal(w *engine.World, goal component.GoalComponent) core.Entity {
	e := w.CreateEntity()
	w.Components.Goal.Set(e, goal)
	w.Components.Transform.Set(e, component.TransformComponent{
		Position: goal.Side.GoalCentre(w.Resources.Config.Arena.HalfExtent),
		Yaw:      goal.Side.Yaw(),
	})
	return e
}
