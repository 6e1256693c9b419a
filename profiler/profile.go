package profiler

import (
	"github.com/vtrgo/lookahead/explorer"
	"github.com/vtrgo/lookahead/rrg"
)

// Logger is the minimal surface the profiling driver needs to warn about an
// empty segment pass; telemetry.Logger satisfies it.
type Logger interface {
	Warn(msg string, fields ...interface{})
}

// channelOrientations are scanned at every (dx, dy) offset, in this order,
// matching the original horizontal-then-vertical enumeration.
var channelOrientations = [2]rrg.NodeType{rrg.ChanX, rrg.ChanY}

// Result is the outcome of profiling one wire-segment type.
type Result struct {
	Segment rrg.SegmentID
	Samples *explorer.RoutingCostMap
	Count   int // number of source nodes actually profiled
}

// Profile runs the diagonal-neighbourhood scan for a single segment type
// and returns the accumulated routing cost map (C4). count == 0 on return
// means no source node was found before MaxProfile was reached; the caller
// (ProfileAll, or costmap.SetCostMap) must still accept the empty map and
// produce an all-invalid grid rather than treat this as fatal (§7).
func Profile(
	g *rrg.Graph,
	switches rrg.SwitchCatalogue,
	cboxes rrg.ConnectionBoxes,
	basecost rrg.BaseCoster,
	seg rrg.SegmentID,
	opts Options,
	logger Logger,
) (Result, error) {
	out := &explorer.RoutingCostMap{}
	scratch := explorer.NewScratch(g.NumNodes())

	count := 0
	dx, dy := 0, 0

	for (count == 0 && dx < opts.MaxProfile) || dy <= opts.MinProfile {
		for _, orientation := range channelOrientations {
			nodes := g.NodesAt(orientation, opts.RefX+dx, opts.RefY+dy)
			for _, n := range nodes {
				if g.SegmentOf(n) != seg {
					continue
				}
				node, ok := g.Node(n)
				if !ok || node.Capacity == 0 {
					continue
				}
				if _, _, ok := cboxes.CanonicalLoc(n); !ok {
					continue
				}

				if err := explorer.Explore(g, switches, cboxes, basecost, n, scratch, out); err != nil {
					return Result{}, err
				}
				count++
			}
		}

		if dy < dx {
			dy++
		} else {
			dx++
		}
	}

	if count == 0 && logger != nil {
		logger.Warn("profiling found no source nodes for segment", "segment", int32(seg))
	}

	return Result{Segment: seg, Samples: out, Count: count}, nil
}

// ProfileAll runs Profile for every segment in segments, in order, and
// returns one Result per segment.
func ProfileAll(
	g *rrg.Graph,
	switches rrg.SwitchCatalogue,
	cboxes rrg.ConnectionBoxes,
	basecost rrg.BaseCoster,
	segments []rrg.SegmentID,
	opts Options,
	logger Logger,
) ([]Result, error) {
	results := make([]Result, 0, len(segments))

	for _, seg := range segments {
		r, err := Profile(g, switches, cboxes, basecost, seg, opts, logger)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	return results, nil
}
