package parameter

// StopSimStep is the fixed sub-step in seconds used to forward-simulate
// deceleration when predicting stopping distance
const StopSimStep = 0.01

// MaxDeflectionDegrees is the paddle deflection angle at the paddle edge
const MaxDeflectionDegrees = 45.0

// SpawnDiagonalAvoidDegrees excludes spawn headings within this angle of a
// corner diagonal so fresh balls do not fly straight into a barrier
const SpawnDiagonalAvoidDegrees = 15.0

// HeadingEpsilon is the tolerance for unit-length heading checks
const HeadingEpsilon = 1e-9
