package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/crab-arena/component"
	"github.com/lixenwraith/crab-arena/engine"
	"github.com/lixenwraith/crab-arena/event"
	"github.com/lixenwraith/crab-arena/parameter"
	"github.com/lixenwraith/crab-arena/vmath"
)

// SpawnSystem keeps the arena stocked with balls, one at a time
// A ball is created only when the live count is below the mode maximum and
// no other ball is still fading in
type SpawnSystem struct {
	world *engine.World

	statSpawned *atomic.Int64

	enabled bool
}

func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{
		world:       world,
		statSpawned: world.Resources.Status.Ints.Get("spawn.balls"),
	}
	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	s.enabled = true
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) EventTypes() []event.EventType {
	return nil
}

func (s *SpawnSystem) HandleEvent(event.GameEvent) {}

func (s *SpawnSystem) Update() {
	if !s.enabled {
		return
	}

	live := 0
	for _, e := range s.world.Components.Ball.All() {
		if fadingOut(s.world, e) {
			continue
		}
		if f, ok := s.world.Components.Fade.Get(e); ok && f.Phase == component.FadeIn {
			return
		}
		live++
	}
	if live >= s.world.Resources.Match.MaxBalls {
		return
	}

	e := SpawnBall(s.world, SpawnHeading(s.world.Resources.Rand.Float64(), s.world.Resources.Rand.Intn(4)))
	s.statSpawned.Add(1)
	s.world.PushEvent(event.EventBallSpawned, &event.BallSpawnedPayload{Ball: e})
}

// SpawnHeading maps a uniform sample u in [0,1) and a quadrant index to a
// heading around that quadrant's axis direction, kept at least
// parameter.SpawnDiagonalAvoidDegrees away from the corner diagonals
func SpawnHeading(u float64, quadrant int) vmath.Vec3F {
	spread := vmath.DegToRad(45 - parameter.SpawnDiagonalAvoidDegrees)
	yaw := float64(quadrant)*math.Pi/2 + (2*u-1)*spread
	return vmath.V3FFromYaw(yaw)
}
