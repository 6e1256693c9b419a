package costmap

import (
	"math"

	"github.com/vtrgo/lookahead/costmodel"
	"github.com/vtrgo/lookahead/explorer"
	"github.com/vtrgo/lookahead/rrg"
)

// SetCostMap reduces one segment's accumulated routing-cost samples into a
// populated grid (C5's namesake operation). origin/extent are derived from
// the observed Δ range (always including (0,0)); each bucket is reduced via
// a fresh costmodel.Expansion under rule; any cell left invalid by
// reduction (no sample ever landed there) is filled by nearbyCostEntry. A
// cell whose walk reaches an invalid (0,0) stays invalid, so the grid is
// fully valid only when (0,0) itself is valid.
func (c *CostMap) SetCostMap(seg rrg.SegmentID, samples *explorer.RoutingCostMap, rule costmodel.Rule) {
	minDx, minDy, maxDx, maxDy := 0, 0, 0, 0 // origin/extent always include (0,0)

	for _, s := range samples.Samples() {
		if s.Dx < minDx {
			minDx = s.Dx
		}
		if s.Dy < minDy {
			minDy = s.Dy
		}
		if s.Dx > maxDx {
			maxDx = s.Dx
		}
		if s.Dy > maxDy {
			maxDy = s.Dy
		}
	}

	w := maxDx - minDx + 1
	h := maxDy - minDy + 1
	g := newGrid(minDx, minDy, w, h)

	buckets := make(map[[2]int]*costmodel.Expansion, len(samples.Samples()))
	for _, s := range samples.Samples() {
		key := [2]int{s.Dx, s.Dy}
		acc, ok := buckets[key]
		if !ok {
			acc = &costmodel.Expansion{}
			buckets[key] = acc
		}
		acc.Add(s.Entry.Delay, s.Entry.Congestion)
	}

	for key, acc := range buckets {
		g.set(key[0], key[1], acc.Representative(rule))
	}

	for dx := minDx; dx <= maxDx; dx++ {
		for dy := minDy; dy <= maxDy; dy++ {
			if g.at(dx, dy).Valid {
				continue
			}
			g.set(dx, dy, nearbyCostEntry(g, dx, dy))
		}
	}

	c.grids[seg] = g
}

// nearbyCostEntry fills an invalid cell at signed offset (x, y) by walking
// toward the origin, one axis-aligned or slope-projected step at a time,
// until a valid cell is found or (0,0) is reached still invalid (§4.5,
// §9's bounded-recursion note). Each step strictly decreases |x|+|y|,
// guaranteeing termination.
func nearbyCostEntry(g *grid, x, y int) costmodel.Entry {
	if e, ok := g.lookup(x, y); ok && e.Valid {
		return e
	}
	if x == 0 && y == 0 {
		return costmodel.InvalidEntry
	}

	nx, ny := stepTowardOrigin(x, y)

	return nearbyCostEntry(g, nx, ny)
}

// stepTowardOrigin computes the next (x', y') the extrapolation procedure
// should consult. When one axis is already 0, only the other axis steps.
// Otherwise the axis with |slope| >= 1 steps toward 0 by one unit and the
// other axis is re-derived from the *pre-step* coordinate on that axis
// (e.g. x' = round(y/slope), using the original y, not the already-stepped
// y'). That choice isn't what a literal reading of "step then recompute"
// would suggest, but it is what makes the cross-axis coordinate round-trip
// back to the unstepped value instead of collapsing toward the origin
// along both axes at once — without it, a cell like (1,1) would extrapolate
// from (0,0) instead of from its true nearest populated neighbour. Ported
// directly from the reference implementation's nearby-cell lookup.
func stepTowardOrigin(x, y int) (int, int) {
	if x == 0 || y == 0 {
		return stepSign(x), stepSign(y)
	}

	slope := float64(y) / float64(x)
	if math.Abs(slope) >= 1 {
		ny := stepSign(y)
		nx := roundHalfAwayFromZero(float64(y) / slope)

		return nx, ny
	}

	nx := stepSign(x)
	ny := roundHalfAwayFromZero(float64(x) * slope)

	return nx, ny
}

// stepSign moves v one unit toward 0; signum(0) = 0 so a zero input is
// left unchanged (stepTowardOrigin relies on this when one axis is already
// 0 and it steps both axes).
func stepSign(v int) int {
	switch {
	case v > 0:
		return v - 1
	case v < 0:
		return v + 1
	default:
		return v
	}
}

// roundHalfAwayFromZero rounds v to the nearest integer, ties away from
// zero. The extrapolation is not precision-sensitive (§4.5); any
// consistent rounding that guarantees monotone progress toward (0,0) is
// acceptable, and math.Round already rounds half away from zero.
func roundHalfAwayFromZero(v float64) int {
	return int(math.Round(v))
}
