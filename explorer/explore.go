package explorer

import (
	"container/heap"
	"fmt"

	"github.com/vtrgo/lookahead/costmodel"
	"github.com/vtrgo/lookahead/rrg"
)

// Explore runs a single best-first Dijkstra traversal of g from start,
// appending a sample to out for every input pin reached (C3). scratch must
// be sized for g.NumNodes() and is Reset at the top of every call so it can
// be reused, without zero-filling, across every start node profiled within
// one segment's pass.
//
// Returns ErrNoCanonicalLoc if start has no canonical location, or
// ErrNoConnectionBox if traversal reaches an input pin lacking one — both
// hard build errors per §7.
func Explore(
	g *rrg.Graph,
	switches rrg.SwitchCatalogue,
	cboxes rrg.ConnectionBoxes,
	basecost rrg.BaseCoster,
	start rrg.NodeID,
	scratch *Scratch,
	out *RoutingCostMap,
) error {
	startX, startY, ok := cboxes.CanonicalLoc(start)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoCanonicalLoc, start)
	}

	scratch.Reset()

	pq := make(frontier, 0, g.NumNodes())
	heap.Init(&pq)

	seed := costmodel.NewCombinedEntry(start, costmodel.Transition{Starting: true})
	heap.Push(&pq, frontierItem{entry: seed})
	scratch.setVisitedCost(start, seed.Cost())

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(frontierItem)
		n := item.entry.Node

		if scratch.isExpanded(n) {
			continue
		}
		scratch.setExpanded(n)

		node, ok := g.Node(n)
		if !ok {
			continue
		}

		if node.Type == rrg.Ipin {
			_, bx, by, _, ok := cboxes.ConnectionBox(n)
			if !ok {
				return fmt.Errorf("%w: %s", ErrNoConnectionBox, n)
			}
			out.Add(startX-bx, startY-by, item.entry.Delay, item.entry.Congestion)
		}

		for _, e := range g.Out(n) {
			sw, ok := switches.Switch(e.Switch)
			if !ok {
				return fmt.Errorf("%w: %d", rrg.ErrUnknownSwitch, e.Switch)
			}

			target, ok := g.Node(e.To)
			if !ok {
				return fmt.Errorf("%w: %s", rrg.ErrUnknownNode, e.To)
			}

			var bc float64
			if sw.Configurable {
				bc = basecost.BaseCost(e.To)
			}

			cand := costmodel.NewCombinedEntry(e.To, costmodel.Transition{
				Target:           target,
				Switch:           sw,
				ParentDelay:      item.entry.Delay,
				ParentRUpstream:  item.entry.RUpstream,
				ParentCongestion: item.entry.Congestion,
				BaseCost:         bc,
			})

			if cur, seen := scratch.visitedCost(e.To); !seen || cand.Cost() < cur {
				scratch.setVisitedCost(e.To, cand.Cost())
				heap.Push(&pq, frontierItem{entry: cand})
			}
		}
	}

	return nil
}
