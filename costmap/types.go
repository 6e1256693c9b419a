package costmap

import (
	"errors"

	"github.com/vtrgo/lookahead/rrg"
)

// Sentinel errors for costmap package operations.
var (
	// ErrMagicMismatch indicates a persisted file does not begin with the
	// expected magic bytes.
	ErrMagicMismatch = errors.New("costmap: bad magic, not a cost map file")

	// ErrVersionMismatch indicates a persisted file's version tag does not
	// match the version this build understands.
	ErrVersionMismatch = errors.New("costmap: version mismatch")

	// ErrTruncated indicates a persisted file ended before a declared
	// section was fully read.
	ErrTruncated = errors.New("costmap: truncated file")
)

// CostMap holds one 2-D grid per wire-segment type, as built by SetCostMap
// or restored by Read. It carries no internal lock: per §5 the router
// guarantees a build-then-query discipline externally, so reads are safe
// from many goroutines only once construction has finished and no writer
// is concurrently executing.
type CostMap struct {
	grids map[rrg.SegmentID]*grid
}

// New returns an empty CostMap with no segments populated.
func New() *CostMap {
	return &CostMap{grids: make(map[rrg.SegmentID]*grid)}
}

// Segments returns the set of segment types currently populated, in
// ascending order.
func (c *CostMap) Segments() []rrg.SegmentID {
	segs := make([]rrg.SegmentID, 0, len(c.grids))
	for s := range c.grids {
		segs = append(segs, s)
	}
	sortSegments(segs)

	return segs
}

// Origin returns the (Δx, Δy) origin recorded for seg, or (0, 0), false if
// seg has never been populated.
func (c *CostMap) Origin(seg rrg.SegmentID) (dx, dy int, ok bool) {
	g, ok := c.grids[seg]
	if !ok {
		return 0, 0, false
	}

	return g.ox, g.oy, true
}

// Extent returns the grid dimensions recorded for seg, or (0, 0), false if
// seg has never been populated.
func (c *CostMap) Extent(seg rrg.SegmentID) (w, h int, ok bool) {
	g, ok := c.grids[seg]
	if !ok {
		return 0, 0, false
	}

	return g.w, g.h, true
}

func sortSegments(segs []rrg.SegmentID) {
	for i := 1; i < len(segs); i++ {
		for j := i; j > 0 && segs[j-1] > segs[j]; j-- {
			segs[j-1], segs[j] = segs[j], segs[j-1]
		}
	}
}
