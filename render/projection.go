package render

import "math"

// arenaMargin is the world-space border drawn around the goal lines
const arenaMargin = 1.0

// cellAspect is the height/width ratio of a terminal cell
const cellAspect = 2.0

// Projection maps arena XZ coordinates onto terminal cells
// +X runs right, +Z runs down; columns are scaled by cellAspect so the arena
// stays square on screen
type Projection struct {
	OriginX, OriginY int
	ScaleX, ScaleY   float64
}

// NewProjection fits an arena of halfExtent into a width x height area whose
// top-left corner is (left, top)
func NewProjection(left, top, width, height int, halfExtent float64) Projection {
	span := 2 * (halfExtent + arenaMargin)
	sy := float64(height-1) / span
	sx := float64(width-1) / span
	// Keep the aspect; the smaller fit wins
	if sx < sy*cellAspect {
		sy = sx / cellAspect
	} else {
		sx = sy * cellAspect
	}
	return Projection{
		OriginX: left + width/2,
		OriginY: top + height/2,
		ScaleX:  sx,
		ScaleY:  sy,
	}
}

// Cell returns the terminal cell of world point (x, z)
func (p Projection) Cell(x, z float64) (int, int) {
	col := p.OriginX + int(math.Round(x*p.ScaleX))
	row := p.OriginY + int(math.Round(z*p.ScaleY))
	return col, row
}
