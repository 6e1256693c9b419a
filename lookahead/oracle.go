package lookahead

import (
	"errors"
	"fmt"
	"math"

	"github.com/vtrgo/lookahead/costmap"
	"github.com/vtrgo/lookahead/rrg"
)

// Sentinel errors for lookahead package operations.
var (
	// ErrNoCanonicalLoc indicates a wire/source node queried as from or to
	// has no canonical location. A hard query error (§7).
	ErrNoCanonicalLoc = errors.New("lookahead: node has no canonical location")

	// ErrNoConnectionBox indicates an input pin queried as to has no
	// connection box. A hard query error (§7).
	ErrNoConnectionBox = errors.New("lookahead: input pin has no connection box")
)

// Oracle is the process-wide query surface (§9: re-architected as an owned
// value rather than the original's process-level global). It holds one
// read-only CostMap and the device collaborators needed to resolve
// locations and segments; construct once at build or load time, then
// query freely — ExpectedCost takes no lock, matching the build-then-query
// discipline of §5.
type Oracle struct {
	graph    *rrg.Graph
	cboxes   rrg.ConnectionBoxes
	basecost rrg.BaseCoster
	costMap  *costmap.CostMap

	sinkCostIndexBase float64
}

// Option mutates an Oracle under construction.
type Option func(*Oracle)

// WithSinkCostIndexBase sets the base cost returned for an input-pin from
// node (the tool's SINK_COST_INDEX base cost, §4.6). Defaults to 0.
func WithSinkCostIndexBase(v float64) Option {
	return func(o *Oracle) { o.sinkCostIndexBase = v }
}

// New returns an Oracle backed by the given device graph, connection-box
// database, and cost map.
func New(graph *rrg.Graph, cboxes rrg.ConnectionBoxes, basecost rrg.BaseCoster, cm *costmap.CostMap, opts ...Option) *Oracle {
	o := &Oracle{graph: graph, cboxes: cboxes, basecost: basecost, costMap: cm}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// ExpectedCost answers the router's lookahead query: the expected
// (criticality-blended) cost of routing from from to to (C6). from and to
// must be valid nodes of the Oracle's graph.
//
// from == to always returns 0 first, ahead of any type dispatch. Otherwise
// dispatch happens on from's type, mirroring the reference split between an
// outer dispatch and an inner sink/ipin/wire resolution: CHANX or CHANY
// nodes fall through to the full Δ-lookup logic below; an IPIN from returns
// the fixed sink-cost-index base cost (route-throughs via input pins are
// out of scope, §1); anything else returns 0 (reserved for future
// route-through handling).
func (o *Oracle) ExpectedCost(from, to rrg.NodeID, criticality float64) (float64, error) {
	if from == to {
		return 0, nil
	}

	fromNode, ok := o.graph.Node(from)
	if !ok {
		return 0, fmt.Errorf("%w: %s", rrg.ErrUnknownNode, from)
	}

	switch fromNode.Type {
	case rrg.ChanX, rrg.ChanY:
		return o.expectedCostFromChan(from, fromNode, to, criticality)
	case rrg.Ipin:
		return o.sinkCostIndexBase, nil
	default:
		return 0, nil
	}
}

// expectedCostFromChan is the inner resolution reached only when from is a
// channel-wire node: identity shortcut, sink→ipin fan-out, ipin/wire
// location resolution, Δ lookup, criticality blend.
func (o *Oracle) expectedCostFromChan(from rrg.NodeID, fromNode rrg.Node, to rrg.NodeID, criticality float64) (float64, error) {
	if from == to {
		return 0, nil
	}

	toNode, ok := o.graph.Node(to)
	if !ok {
		return 0, fmt.Errorf("%w: %s", rrg.ErrUnknownNode, to)
	}

	if toNode.Type == rrg.Sink {
		ipins := o.cboxes.SinkToIpins(to)
		switch len(ipins) {
		case 0:
			return math.Inf(1), nil
		case 1:
			to = ipins[0]
			if from == to {
				return 0, nil
			}
			toNode, ok = o.graph.Node(to)
			if !ok {
				return 0, fmt.Errorf("%w: %s", rrg.ErrUnknownNode, to)
			}
		default:
			best := math.Inf(1)
			for _, ipin := range ipins {
				cost, err := o.expectedCostFromChan(from, fromNode, ipin, criticality)
				if err != nil {
					return 0, err
				}
				if cost < best {
					best = cost
				}
			}

			return best, nil
		}
	}

	var toX, toY int
	if toNode.Type == rrg.Ipin {
		_, bx, by, _, ok := o.cboxes.ConnectionBox(to)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrNoConnectionBox, to)
		}
		toX, toY = bx, by
	} else {
		x, y, ok := o.cboxes.CanonicalLoc(to)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrNoCanonicalLoc, to)
		}
		toX, toY = x, y
	}

	fromX, fromY, ok := o.cboxes.CanonicalLoc(from)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoCanonicalLoc, from)
	}

	dx, dy := fromX-toX, fromY-toY
	seg := o.graph.SegmentOf(from)
	entry := o.costMap.FindCost(seg, dx, dy)

	return criticality*entry.Delay + (1-criticality)*entry.Congestion, nil
}
