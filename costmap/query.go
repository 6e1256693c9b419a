package costmap

import (
	"fmt"
	"io"

	"github.com/vtrgo/lookahead/costmodel"
	"github.com/vtrgo/lookahead/rrg"
)

// FindCost returns the cost entry for segment seg at signed offset
// (Δx, Δy), clamping each axis independently into the populated grid's
// range (§4.5: negative Δ's beyond the origin collapse to column/row 0,
// overlarge Δ's collapse to the far edge). A segment that was never
// populated by SetCostMap answers InvalidEntry.
func (c *CostMap) FindCost(seg rrg.SegmentID, dx, dy int) costmodel.Entry {
	g, ok := c.grids[seg]
	if !ok {
		return costmodel.InvalidEntry
	}

	x, y := g.clampIndex(dx, dy)

	return g.cells[y*g.w+x]
}

// DebugDump writes a human-readable rendering of every populated segment's
// grid to w: one block per segment, one line per Δy row, delay/congestion
// pairs separated by whitespace, invalid cells rendered as "x". This is
// the supplemented equivalent of the original build tool's print_cost_map
// debug dump (§ supplemented features).
func (c *CostMap) DebugDump(w io.Writer) error {
	for _, seg := range c.Segments() {
		g := c.grids[seg]

		if _, err := fmt.Fprintf(w, "segment %d: origin=(%d,%d) extent=%dx%d\n", seg, g.ox, g.oy, g.w, g.h); err != nil {
			return err
		}

		for dy := g.oy + g.h - 1; dy >= g.oy; dy-- {
			for dx := g.ox; dx < g.ox+g.w; dx++ {
				e := g.at(dx, dy)
				if !e.Valid {
					if _, err := fmt.Fprint(w, "x "); err != nil {
						return err
					}
					continue
				}
				if _, err := fmt.Fprintf(w, "(%.3g,%.3g) ", e.Delay, e.Congestion); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}

	return nil
}
