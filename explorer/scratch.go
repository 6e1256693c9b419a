package explorer

import "github.com/vtrgo/lookahead/rrg"

// Scratch holds the Dijkstra Explorer's two working arrays, sized once by
// node count and reused across every start node profiled within one
// segment's pass (§5, §9). Reuse is by generation counter: Reset bumps the
// generation instead of zero-filling, so a stale per-node entry reads as
// "unseen this round" without ever touching it.
type Scratch struct {
	gen uint64

	expandedAt []uint64
	visitedAt  []uint64
	cost       []float64
}

// NewScratch allocates a Scratch sized for a graph of n nodes.
func NewScratch(n int) *Scratch {
	return &Scratch{
		expandedAt: make([]uint64, n),
		visitedAt:  make([]uint64, n),
		cost:       make([]float64, n),
	}
}

// Reset starts a fresh traversal: every node reads as neither expanded nor
// visited until touched again this generation.
func (s *Scratch) Reset() {
	s.gen++
}

func (s *Scratch) isExpanded(id rrg.NodeID) bool {
	return s.expandedAt[id] == s.gen
}

func (s *Scratch) setExpanded(id rrg.NodeID) {
	s.expandedAt[id] = s.gen
}

func (s *Scratch) visitedCost(id rrg.NodeID) (float64, bool) {
	if s.visitedAt[id] != s.gen {
		return 0, false
	}

	return s.cost[id], true
}

func (s *Scratch) setVisitedCost(id rrg.NodeID, cost float64) {
	s.visitedAt[id] = s.gen
	s.cost[id] = cost
}
