package component

// BarrierComponent is a static corner pole
type BarrierComponent struct {
	Corner int
	Radius float64
}
