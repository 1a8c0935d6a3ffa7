package engine

// EntityKind tags a published entity for renderers
type EntityKind uint8

const (
	KindBall EntityKind = iota
	KindCrab
	KindWall
	KindBarrier
)

func (k EntityKind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindCrab:
		return "crab"
	case KindWall:
		return "wall"
	case KindBarrier:
		return "barrier"
	default:
		return "unknown"
	}
}

// EntitySnapshot is the published render state of one entity
// Side is -1 for entities not bound to a side
type EntitySnapshot struct {
	ID     uint64     `msgpack:"id" json:"id"`
	Kind   EntityKind `msgpack:"kind" json:"kind"`
	Side   int8       `msgpack:"side" json:"side"`
	X      float64    `msgpack:"x" json:"x"`
	Y      float64    `msgpack:"y" json:"y"`
	Z      float64    `msgpack:"z" json:"z"`
	Yaw    float64    `msgpack:"yaw" json:"yaw"`
	Weight float64    `msgpack:"w" json:"weight"`
	Size   float64    `msgpack:"size" json:"size"` // Radius or half-width
}

// SideSnapshot is the published score state of one side
type SideSnapshot struct {
	Side          string `msgpack:"side" json:"side"`
	Team          int    `msgpack:"team" json:"team"`
	HitPoints     int    `msgpack:"hp" json:"hit_points"`
	Participating bool   `msgpack:"in" json:"participating"`
	Eliminated    bool   `msgpack:"out" json:"eliminated"`
	Controller    string `msgpack:"ctl" json:"controller,omitempty"`
}

// ResultSnapshot mirrors Result for the wire
type ResultSnapshot struct {
	Decided bool `msgpack:"decided" json:"decided"`
	Draw    bool `msgpack:"draw" json:"draw"`
	Team    int  `msgpack:"team" json:"team"`
}

// Snapshot is an immutable copy of the arena for one tick
// Consumers on other goroutines may hold it indefinitely
type Snapshot struct {
	MatchID    string           `msgpack:"match" json:"match_id"`
	Mode       string           `msgpack:"mode" json:"mode"`
	Round      int              `msgpack:"round" json:"round"`
	Frame      int64            `msgpack:"frame" json:"frame"`
	Phase      string           `msgpack:"phase" json:"phase"`
	Paused     bool             `msgpack:"paused" json:"paused"`
	HalfExtent float64          `msgpack:"h" json:"half_extent"`
	Result     ResultSnapshot   `msgpack:"result" json:"result"`
	Sides      []SideSnapshot   `msgpack:"sides" json:"sides"`
	Entities   []EntitySnapshot `msgpack:"entities" json:"entities"`
}

// Count returns the number of published entities of kind k
func (s *Snapshot) Count(k EntityKind) int {
	n := 0
	for i := range s.Entities {
		if s.Entities[i].Kind == k {
			n++
		}
	}
	return n
}
