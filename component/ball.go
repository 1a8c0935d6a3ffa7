package component

// BallComponent marks a ball and its collider size
type BallComponent struct {
	Radius float64
}
