package costmodel

import "github.com/vtrgo/lookahead/rrg"

// Transition describes one candidate edge the Dijkstra Explorer is
// considering: moving from a popped parent state onto Target via Switch.
// BaseCost is the target node's router-context congestion base cost,
// already resolved by the caller (the explorer holds the rrg.BaseCoster);
// it is only applied when Switch.Configurable is true.
type Transition struct {
	Target rrg.Node
	Switch rrg.Switch

	ParentDelay      float64
	ParentRUpstream  float64
	ParentCongestion float64

	Starting  bool
	TswAdjust float64
	BaseCost  float64
}

// linearDelay computes T_linear for this transition: Tsw + Rsw·Cn +
// 0.5·Rn·Cn for a buffered switch, Tsw + 0.5·Rsw·Cn for a pass-transistor
// one. Tsw is adjusted by TswAdjust before either formula is applied.
func (t Transition) linearDelay() float64 {
	tsw := t.Switch.Tdel + t.TswAdjust
	cn := t.Target.C

	if t.Switch.Buffered {
		return tsw + t.Switch.R*cn + 0.5*t.Target.R*cn
	}

	return tsw + 0.5*t.Switch.R*cn
}

// congestionContribution is the base cost added by this transition: the
// target's base cost if the switch is configurable, zero otherwise.
func (t Transition) congestionContribution() float64 {
	if t.Switch.Configurable {
		return t.BaseCost
	}

	return 0
}

// CombinedEntry is the explorer's frontier record: it tracks the full
// additive state (delay, upstream resistance, upstream congestion) and
// orders by delay alone, exactly as the Dijkstra Explorer (C3) requires.
// RUpstream is carried through unchanged by every transition; it exists for
// structural parity with the upstream-state record a future Elmore
// refinement could thread through it, but today's linear model never reads
// it back.
type CombinedEntry struct {
	Node       rrg.NodeID
	Delay      float64
	RUpstream  float64
	Congestion float64
}

// Cost is the heap ordering key: delay.
func (e CombinedEntry) Cost() float64 { return e.Delay }

// NewCombinedEntry builds the frontier record for node, given the
// transition that reaches it. Panics if the transition would yield a
// negative linear delay or congestion contribution (§4.2's invariant —
// these indicate a caller/data bug, never a legitimate sample).
func NewCombinedEntry(node rrg.NodeID, t Transition) CombinedEntry {
	e := CombinedEntry{
		Node:       node,
		Delay:      t.ParentDelay,
		RUpstream:  t.ParentRUpstream,
		Congestion: t.ParentCongestion,
	}

	if t.Starting {
		return e
	}

	tLinear := t.linearDelay()
	congestion := t.congestionContribution()
	assertNonNegative(tLinear, congestion)

	e.Delay += tLinear
	e.Congestion += congestion

	return e
}

// DelayEntry tracks only accumulated delay, ordered by delay.
type DelayEntry struct {
	Node  rrg.NodeID
	Delay float64
}

// Cost is the heap ordering key: delay.
func (e DelayEntry) Cost() float64 { return e.Delay }

// NewDelayEntry builds the delay-only frontier record for node.
func NewDelayEntry(node rrg.NodeID, t Transition) DelayEntry {
	e := DelayEntry{Node: node, Delay: t.ParentDelay}
	if t.Starting {
		return e
	}

	tLinear := t.linearDelay()
	assertNonNegative(tLinear, 0)
	e.Delay += tLinear

	return e
}

// BaseCostEntry tracks only accumulated congestion base cost, ordered by
// base cost.
type BaseCostEntry struct {
	Node     rrg.NodeID
	BaseCost float64
}

// Cost is the heap ordering key: base cost.
func (e BaseCostEntry) Cost() float64 { return e.BaseCost }

// NewBaseCostEntry builds the base-cost-only frontier record for node.
func NewBaseCostEntry(node rrg.NodeID, t Transition) BaseCostEntry {
	e := BaseCostEntry{Node: node, BaseCost: t.ParentCongestion}
	if t.Starting {
		return e
	}

	congestion := t.congestionContribution()
	assertNonNegative(0, congestion)
	e.BaseCost += congestion

	return e
}

func assertNonNegative(tLinear, congestion float64) {
	if tLinear < 0 {
		panic(ErrNegativeDelay)
	}
	if congestion < 0 {
		panic(ErrNegativeCongestion)
	}
}
