package parameter

// System Execution Priorities (lower runs first)
// Order is the per-tick pipeline: input/AI, movement, collision, scoring,
// elimination, game over, fade, spawn, publication, cleanup
const (
	PriorityInput     = 10
	PriorityAI        = 20  // After input, reads ball positions from previous tick
	PriorityMovement  = 30  // Includes crab restriction step
	PriorityCollision = 40  // After movement, writes headings only
	PriorityScore     = 50  // After collision
	PriorityGoal      = 55  // Elimination walls, after score events are dispatched
	PriorityGameOver  = 60  // After eliminations are applied
	PriorityFade      = 70  // After game logic
	PrioritySpawn     = 80  // After fade, sees fade-in completion of this tick
	PriorityTransform = 90  // Publishes render snapshot
	PriorityCleanup   = 100 // Destroys fully faded entities
	PriorityAudio     = 110 // Event sink only
	PriorityStatus    = 120 // Telemetry collection
)
