package system

import (
	"sync/atomic"

	"github.com/lixenwraith/crab-arena/component"
	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/engine"
	"github.com/lixenwraith/crab-arena/event"
	"github.com/lixenwraith/crab-arena/parameter"
	"github.com/lixenwraith/crab-arena/physics"
	"github.com/lixenwraith/crab-arena/vmath"
)

// CollisionSystem rewrites ball headings on contact
//
// Each collidable ball is tested against other balls, then crabs, then corner
// barriers, then walls. The first contact found wins and ends the ball's
// tests for this tick. Speeds are never touched
type CollisionSystem struct {
	world *engine.World

	statDeflections *atomic.Int64

	enabled bool
}

func NewCollisionSystem(world *engine.World) engine.System {
	s := &CollisionSystem{
		world:           world,
		statDeflections: world.Resources.Status.Ints.Get("collision.deflections"),
	}
	s.Init()
	return s
}

func (s *CollisionSystem) Init() {
	s.enabled = true
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) EventTypes() []event.EventType {
	return nil
}

func (s *CollisionSystem) HandleEvent(event.GameEvent) {}

func (s *CollisionSystem) Update() {
	if !s.enabled {
		return
	}

	balls := activeBalls(s.world)
	for _, b := range balls {
		ball, ok := s.world.Components.Ball.Get(b)
		if !ok {
			continue
		}
		tr, ok := s.world.Components.Transform.Get(b)
		if !ok {
			continue
		}
		mv, ok := s.world.Components.Movement.Get(b)
		if !ok {
			continue
		}

		heading, other, kind, hit := s.resolve(b, ball, tr.Position, mv.Heading, balls)
		if !hit {
			continue
		}

		mv.Heading = heading
		s.world.Components.Movement.Set(b, mv)
		s.statDeflections.Add(1)
		s.world.PushEvent(event.EventBallDeflected, &event.BallDeflectedPayload{
			Ball:    b,
			Other:   other,
			Contact: kind,
		})
	}
}

// resolve runs the contact tests in precedence order and returns the first hit
func (s *CollisionSystem) resolve(
	self core.Entity,
	ball component.BallComponent,
	pos, heading vmath.Vec3F,
	balls []core.Entity,
) (vmath.Vec3F, core.Entity, event.ContactKind, bool) {
	h := s.world.Resources.Config.Arena.HalfExtent

	for _, o := range balls {
		if o == self {
			continue
		}
		other, ok := s.world.Components.Ball.Get(o)
		if !ok {
			continue
		}
		otr, ok := s.world.Components.Transform.Get(o)
		if !ok {
			continue
		}
		if n, hit := physics.CircleContact(pos, heading, otr.Position, ball.Radius+other.Radius); hit {
			return physics.Reflect(heading, n), o, event.ContactBall, true
		}
	}

	for _, c := range s.world.Components.Crab.All() {
		if !hasCap(s.world, c, component.CapCollider) {
			continue
		}
		crab, ok := s.world.Components.Crab.Get(c)
		if !ok {
			continue
		}
		band := physics.Band{Side: crab.Side, Local: crab.Local, HalfWidth: crab.HalfWidth, HalfDepth: crab.HalfDepth}
		if offset, hit := physics.BandContact(band, h, pos, heading, ball.Radius); hit {
			return physics.HemisphereDeflect(crab.Side, offset, crab.HalfWidth), c, event.ContactPaddle, true
		}
	}

	for _, p := range s.world.Components.Barrier.All() {
		if !hasCap(s.world, p, component.CapCollider) {
			continue
		}
		barrier, ok := s.world.Components.Barrier.Get(p)
		if !ok {
			continue
		}
		ptr, ok := s.world.Components.Transform.Get(p)
		if !ok {
			continue
		}
		if n, hit := physics.CircleContact(pos, heading, ptr.Position, ball.Radius+barrier.Radius); hit {
			return physics.Reflect(heading, n), p, event.ContactBarrier, true
		}
	}

	for _, wl := range s.world.Components.Wall.All() {
		if !hasCap(s.world, wl, component.CapCollider) {
			continue
		}
		wall, ok := s.world.Components.Wall.Get(wl)
		if !ok {
			continue
		}
		band := physics.Band{Side: wall.Side, HalfWidth: h, HalfDepth: wall.HalfDepth}
		if _, hit := physics.BandContact(band, h, pos, heading, ball.Radius); hit {
			return physics.Reflect(heading, wall.Side.Axis()), wl, event.ContactWall, true
		}
	}

	return heading, core.NoEntity, 0, false
}
