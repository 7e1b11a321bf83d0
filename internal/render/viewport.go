package render

import (
	"math"

	"github.com/vovakirdan/horde-arcade/internal/sim"
)

// HUDRows is the number of screen rows above the playfield.
const HUDRows = 1

// Viewport maps world units onto the playfield cells of a screen.
type Viewport struct {
	Cols, Rows int
	Top        int // screen row of the first playfield row

	sx, sy float64 // world units per cell
}

// NewViewport fits bounds into a cols×rows screen below the HUD.
func NewViewport(b sim.Bounds, cols, rows int) Viewport {
	v := Viewport{Cols: cols, Rows: max(rows-HUDRows, 1), Top: HUDRows}
	if cols <= 0 || b.W <= 0 || b.H <= 0 {
		v.sx, v.sy = 1, 1
		return v
	}
	v.sx = b.W / float64(cols)
	v.sy = b.H / float64(v.Rows)
	return v
}

// Cell returns the screen cell of a world point.
func (v Viewport) Cell(x, y float64) (int, int) {
	return int(math.Floor(x / v.sx)), v.Top + int(math.Floor(y/v.sy))
}

// Span returns how many cells a world distance covers on each axis,
// rounded to the nearest cell.
func (v Viewport) Span(wx, wy float64) (int, int) {
	return int(math.Round(wx / v.sx)), int(math.Round(wy / v.sy))
}

// Inside reports whether a screen cell lies on the playfield.
func (v Viewport) Inside(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= v.Top && row < v.Top+v.Rows
}
