package physics

import (
	"math"

	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/parameter"
	"github.com/lixenwraith/crab-arena/vmath"
)

// Accelerate advances a signed speed under the given force for dt seconds
// With a force the speed ramps toward ±maxSpeed; without one it decays to zero
func Accelerate(speed, accel, maxSpeed float64, force core.Force, dt float64) float64 {
	if force == core.ForceNone {
		return Decelerate(speed, accel, dt)
	}
	return vmath.ClampF(speed+force.Sign()*accel*dt, -maxSpeed, maxSpeed)
}

// Decelerate moves speed toward zero by accel*dt without crossing zero
func Decelerate(speed, accel, dt float64) float64 {
	step := accel * dt
	switch {
	case speed > step:
		return speed - step
	case speed < -step:
		return speed + step
	default:
		return 0
	}
}

// Integrate returns pos advanced along heading at speed for dt seconds
func Integrate(pos, heading vmath.Vec3F, speed, dt float64) vmath.Vec3F {
	return vmath.V3FAdd(pos, vmath.V3FScale(heading, speed*dt))
}

// StoppingDistance predicts the signed displacement before speed reaches zero
// under pure deceleration
func StoppingDistance(speed, accel float64) float64 {
	d, _ := StoppingSteps(speed, accel)
	return d
}

// StoppingSteps forward-simulates deceleration at parameter.StopSimStep
// Returns the summed displacement and the number of sub-steps taken
// Step count is bounded by ceil(|speed| / (accel*StopSimStep)); zero accel or
// a non-finite speed yields no prediction
func StoppingSteps(speed, accel float64) (float64, int) {
	if !(accel > 0) || speed == 0 || math.IsInf(speed, 0) || math.IsNaN(speed) {
		return 0, 0
	}

	dt := parameter.StopSimStep
	limit := int(math.Ceil(math.Abs(speed)/(accel*dt))) + 1

	dist := 0.0
	steps := 0
	for speed != 0 && steps < limit {
		speed = Decelerate(speed, accel, dt)
		dist += speed * dt
		steps++
	}
	return dist, steps
}
