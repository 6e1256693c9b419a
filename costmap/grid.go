package costmap

import "github.com/vtrgo/lookahead/costmodel"

// grid is a row-major flat-slice 2-D array of cost entries for one
// wire-segment type, addressed by the signed (Δx, Δy) offset it was
// observed at. (ox, oy) is the origin (always ≤ 0, §3); cells are stored
// at local index (Δx-ox, Δy-oy). Modelled on the teacher's flat-slice
// Dense matrix, specialised to this package's fixed-size Entry cell and
// signed addressing.
type grid struct {
	ox, oy int
	w, h   int
	cells  []costmodel.Entry
}

func newGrid(ox, oy, w, h int) *grid {
	return &grid{ox: ox, oy: oy, w: w, h: h, cells: make([]costmodel.Entry, w*h)}
}

// inBounds reports whether the signed (Δx, Δy) offset falls within this
// grid's extent.
func (g *grid) inBounds(dx, dy int) bool {
	x, y := dx-g.ox, dy-g.oy

	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// at returns the entry stored at signed offset (Δx, Δy). The caller must
// have checked inBounds; at does not bounds-check.
func (g *grid) at(dx, dy int) costmodel.Entry {
	x, y := dx-g.ox, dy-g.oy

	return g.cells[y*g.w+x]
}

// lookup is the bounds-checked counterpart of at.
func (g *grid) lookup(dx, dy int) (costmodel.Entry, bool) {
	if !g.inBounds(dx, dy) {
		return costmodel.Entry{}, false
	}

	return g.at(dx, dy), true
}

// set stores an entry at signed offset (Δx, Δy). The caller must have
// checked inBounds.
func (g *grid) set(dx, dy int, e costmodel.Entry) {
	x, y := dx-g.ox, dy-g.oy
	g.cells[y*g.w+x] = e
}

// clampIndex maps an arbitrary signed offset into this grid's local index
// space, clamping to the nearest in-range cell on each axis independently
// (FindCost's deliberate saturating lookup, §4.5).
func (g *grid) clampIndex(dx, dy int) (x, y int) {
	x = dx - g.ox
	if x < 0 {
		x = 0
	} else if x >= g.w {
		x = g.w - 1
	}

	y = dy - g.oy
	if y < 0 {
		y = 0
	} else if y >= g.h {
		y = g.h - 1
	}

	return x, y
}
