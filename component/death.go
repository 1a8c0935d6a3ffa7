package component

// DeathComponent marks an entity for destruction by CleanupSystem at the end of the tick
type DeathComponent struct{}
