package lookahead_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vtrgo/lookahead/costmap"
	"github.com/vtrgo/lookahead/costmodel"
	"github.com/vtrgo/lookahead/explorer"
	"github.com/vtrgo/lookahead/lookahead"
	"github.com/vtrgo/lookahead/rrg"
)

func TestExpectedCost_TrivialIdenticalNodes(t *testing.T) {
	g := rrg.NewGraph()
	n := g.AddNode(rrg.Node{Type: rrg.ChanX})
	require.NoError(t, g.Finalize())

	cboxes := rrg.NewInMemoryConnectionBoxes()
	basecost := rrg.NewStaticBaseCost()
	cm := costmap.New()

	o := lookahead.New(g, cboxes, basecost, cm)
	got, err := o.ExpectedCost(n, n, 0.5)
	require.NoError(t, err)
	require.Zero(t, got)
}

func TestExpectedCost_WireToWireDeltaLookup(t *testing.T) {
	g := rrg.NewGraph()
	from := g.AddNode(rrg.Node{Type: rrg.ChanX, CostIndex: 0})
	to := g.AddNode(rrg.Node{Type: rrg.ChanX, CostIndex: 0})
	g.SetCostIndexSegment(0, 7)
	require.NoError(t, g.Finalize())

	cboxes := rrg.NewInMemoryConnectionBoxes()
	cboxes.SetCanonicalLoc(from, 5, 5)
	cboxes.SetCanonicalLoc(to, 3, 5)

	cm := costmap.New()
	var samples explorer.RoutingCostMap
	samples.Add(2, 0, 4.0, 1.0)
	cm.SetCostMap(rrg.SegmentID(7), &samples, costmodel.RuleSmallestDelay)

	o := lookahead.New(g, cboxes, rrg.NewStaticBaseCost(), cm)

	got, err := o.ExpectedCost(from, to, 1.0)
	require.NoError(t, err)
	require.InDelta(t, 4.0, got, 1e-9) // criticality 1.0 -> pure delay

	got, err = o.ExpectedCost(from, to, 0.0)
	require.NoError(t, err)
	require.InDelta(t, 1.0, got, 1e-9) // criticality 0.0 -> pure congestion
}

func TestExpectedCost_CriticalityIsAffine(t *testing.T) {
	g := rrg.NewGraph()
	from := g.AddNode(rrg.Node{Type: rrg.ChanX, CostIndex: 0})
	to := g.AddNode(rrg.Node{Type: rrg.ChanX, CostIndex: 0})
	g.SetCostIndexSegment(0, 0)
	require.NoError(t, g.Finalize())

	cboxes := rrg.NewInMemoryConnectionBoxes()
	cboxes.SetCanonicalLoc(from, 1, 0)
	cboxes.SetCanonicalLoc(to, 0, 0)

	cm := costmap.New()
	var samples explorer.RoutingCostMap
	samples.Add(1, 0, 10.0, 2.0)
	cm.SetCostMap(rrg.SegmentID(0), &samples, costmodel.RuleSmallestDelay)

	o := lookahead.New(g, cboxes, rrg.NewStaticBaseCost(), cm)

	prev, err := o.ExpectedCost(from, to, 0.0)
	require.NoError(t, err)
	for _, c := range []float64{0.25, 0.5, 0.75, 1.0} {
		got, err := o.ExpectedCost(from, to, c)
		require.NoError(t, err)
		// Affine in c: expected = c*delay + (1-c)*congestion.
		expected := c*10.0 + (1-c)*2.0
		require.InDelta(t, expected, got, 1e-9)
		require.Greater(t, got, prev-1e-9)
		prev = got
	}
}

func TestExpectedCost_SinkRoutedThroughCheapestIpin(t *testing.T) {
	// §8 scenario 5: sink S fed by ipins A (cost 7) and B (cost 4); expect 4.
	g := rrg.NewGraph()
	from := g.AddNode(rrg.Node{Type: rrg.ChanX, CostIndex: 0})
	ipinA := g.AddNode(rrg.Node{Type: rrg.Ipin})
	ipinB := g.AddNode(rrg.Node{Type: rrg.Ipin})
	sink := g.AddNode(rrg.Node{Type: rrg.Sink})
	g.SetCostIndexSegment(0, 0)
	require.NoError(t, g.Finalize())

	cboxes := rrg.NewInMemoryConnectionBoxes()
	cboxes.SetCanonicalLoc(from, 10, 0)
	cboxes.SetConnectionBox(ipinA, rrg.BoxID(0), 3, 0, 0)
	cboxes.SetConnectionBox(ipinB, rrg.BoxID(1), 6, 0, 0)
	cboxes.AddSinkIpin(sink, ipinA)
	cboxes.AddSinkIpin(sink, ipinB)

	cm := costmap.New()
	var samples explorer.RoutingCostMap
	samples.Add(7, 0, 7.0, 7.0) // from(10)-ipinA(3) = 7
	samples.Add(4, 0, 4.0, 4.0) // from(10)-ipinB(6) = 4
	cm.SetCostMap(rrg.SegmentID(0), &samples, costmodel.RuleSmallestDelay)

	o := lookahead.New(g, cboxes, rrg.NewStaticBaseCost(), cm)

	got, err := o.ExpectedCost(from, sink, 1.0)
	require.NoError(t, err)
	require.InDelta(t, 4.0, got, 1e-9)
}

func TestExpectedCost_SinkWithNoIpinsIsInfinite(t *testing.T) {
	g := rrg.NewGraph()
	from := g.AddNode(rrg.Node{Type: rrg.ChanX})
	sink := g.AddNode(rrg.Node{Type: rrg.Sink})
	require.NoError(t, g.Finalize())

	o := lookahead.New(g, rrg.NewInMemoryConnectionBoxes(), rrg.NewStaticBaseCost(), costmap.New())
	got, err := o.ExpectedCost(from, sink, 0.5)
	require.NoError(t, err)
	require.True(t, math.IsInf(got, 1))
}

func TestExpectedCost_SinkWithSingleIpinSubstitutes(t *testing.T) {
	g := rrg.NewGraph()
	from := g.AddNode(rrg.Node{Type: rrg.ChanX, CostIndex: 0})
	ipin := g.AddNode(rrg.Node{Type: rrg.Ipin})
	sink := g.AddNode(rrg.Node{Type: rrg.Sink})
	g.SetCostIndexSegment(0, 0)
	require.NoError(t, g.Finalize())

	cboxes := rrg.NewInMemoryConnectionBoxes()
	cboxes.SetCanonicalLoc(from, 2, 0)
	cboxes.SetConnectionBox(ipin, rrg.BoxID(0), 0, 0, 0)
	cboxes.AddSinkIpin(sink, ipin)

	cm := costmap.New()
	var samples explorer.RoutingCostMap
	samples.Add(2, 0, 6.0, 0)
	cm.SetCostMap(rrg.SegmentID(0), &samples, costmodel.RuleSmallestDelay)

	o := lookahead.New(g, cboxes, rrg.NewStaticBaseCost(), cm)
	got, err := o.ExpectedCost(from, sink, 1.0)
	require.NoError(t, err)
	require.InDelta(t, 6.0, got, 1e-9)
}

func TestExpectedCost_IpinFromReturnsSinkCostIndexBase(t *testing.T) {
	g := rrg.NewGraph()
	from := g.AddNode(rrg.Node{Type: rrg.Ipin})
	to := g.AddNode(rrg.Node{Type: rrg.ChanX})
	require.NoError(t, g.Finalize())

	o := lookahead.New(g, rrg.NewInMemoryConnectionBoxes(), rrg.NewStaticBaseCost(), costmap.New(),
		lookahead.WithSinkCostIndexBase(0.9))

	got, err := o.ExpectedCost(from, to, 0.5)
	require.NoError(t, err)
	require.Equal(t, 0.9, got)
}

func TestExpectedCost_OtherNonWireFromReturnsZero(t *testing.T) {
	g := rrg.NewGraph()
	from := g.AddNode(rrg.Node{Type: rrg.Source})
	to := g.AddNode(rrg.Node{Type: rrg.ChanX})
	require.NoError(t, g.Finalize())

	o := lookahead.New(g, rrg.NewInMemoryConnectionBoxes(), rrg.NewStaticBaseCost(), costmap.New())
	got, err := o.ExpectedCost(from, to, 0.5)
	require.NoError(t, err)
	require.Zero(t, got)
}

func TestExpectedCost_MissingCanonicalLocIsHardError(t *testing.T) {
	g := rrg.NewGraph()
	from := g.AddNode(rrg.Node{Type: rrg.ChanX})
	to := g.AddNode(rrg.Node{Type: rrg.ChanX})
	require.NoError(t, g.Finalize())

	o := lookahead.New(g, rrg.NewInMemoryConnectionBoxes(), rrg.NewStaticBaseCost(), costmap.New())
	_, err := o.ExpectedCost(from, to, 0.5)
	require.ErrorIs(t, err, lookahead.ErrNoCanonicalLoc)
}

func TestExpectedCost_MissingConnectionBoxIsHardError(t *testing.T) {
	g := rrg.NewGraph()
	from := g.AddNode(rrg.Node{Type: rrg.ChanX})
	ipin := g.AddNode(rrg.Node{Type: rrg.Ipin})
	require.NoError(t, g.Finalize())

	cboxes := rrg.NewInMemoryConnectionBoxes()
	cboxes.SetCanonicalLoc(from, 0, 0)

	o := lookahead.New(g, cboxes, rrg.NewStaticBaseCost(), costmap.New())
	_, err := o.ExpectedCost(from, ipin, 0.5)
	require.ErrorIs(t, err, lookahead.ErrNoConnectionBox)
}
