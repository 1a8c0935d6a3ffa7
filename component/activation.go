package component

// Capability is a bitmask of simulation features an entity currently holds
// Replaces adding and removing marker components at runtime
type Capability uint8

const (
	CapNone Capability = 0

	// CapMovement lets MovementSystem integrate the entity
	CapMovement Capability = 1 << iota

	// CapCollider makes the entity visible to collision and scoring
	CapCollider

	CapActive = CapMovement | CapCollider
)

// Has checks if every flag in c is set
func (m Capability) Has(c Capability) bool {
	return m&c == c
}

// ActivationComponent holds current capabilities and the set granted when fade-in completes
type ActivationComponent struct {
	Caps       Capability
	OnActivate Capability
}

func (a *ActivationComponent) Grant(c Capability)  { a.Caps |= c }
func (a *ActivationComponent) Revoke(c Capability) { a.Caps &^= c }
