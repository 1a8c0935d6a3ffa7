package core

// Entity is a unique identifier for an entity in the arena world
// Zero is never issued and marks "no entity"
type Entity uint64

// NoEntity is the zero value used for empty occupant and target slots
const NoEntity Entity = 0
