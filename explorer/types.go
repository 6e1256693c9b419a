package explorer

import (
	"errors"

	"github.com/vtrgo/lookahead/costmodel"
)

// Sentinel errors for explorer package operations.
var (
	// ErrNoCanonicalLoc indicates a start node has no canonical location to
	// measure Δ against. A hard build error (§7).
	ErrNoCanonicalLoc = errors.New("explorer: start node has no canonical location")

	// ErrNoConnectionBox indicates an input pin reached during traversal
	// has no connection box. A hard build error (§7).
	ErrNoConnectionBox = errors.New("explorer: input pin has no connection box")
)

// Sample is one (Δx, Δy) → cost record emitted when the explorer reaches an
// input pin.
type Sample struct {
	Dx, Dy int
	Entry  costmodel.Entry
}

// RoutingCostMap is the transient, append-only sequence of Samples emitted
// across one or more Explore calls for a single segment type (§3). It is
// owned by the profiling driver for the duration of one segment's
// profiling pass and handed to costmap.SetCostMap once profiling ends.
type RoutingCostMap struct {
	samples []Sample
}

// Add appends one observed sample.
func (m *RoutingCostMap) Add(dx, dy int, delay, congestion float64) {
	m.samples = append(m.samples, Sample{
		Dx: dx, Dy: dy,
		Entry: costmodel.Entry{Delay: delay, Congestion: congestion, Valid: true},
	})
}

// Samples returns the accumulated samples. The returned slice is owned by
// the RoutingCostMap and must not be mutated by the caller.
func (m *RoutingCostMap) Samples() []Sample {
	return m.samples
}

// Len reports the number of samples accumulated so far.
func (m *RoutingCostMap) Len() int {
	return len(m.samples)
}
