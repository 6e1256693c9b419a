package profiler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vtrgo/lookahead/profiler"
	"github.com/vtrgo/lookahead/rrg"
)

type stubLogger struct {
	warnings []string
}

func (s *stubLogger) Warn(msg string, fields ...interface{}) {
	s.warnings = append(s.warnings, msg)
}

func newGridFixture(t *testing.T, segAt map[[2]int]rrg.SegmentID) (*rrg.Graph, rrg.SwitchTable, *rrg.InMemoryConnectionBoxes, *rrg.StaticBaseCost) {
	g := rrg.NewGraph()
	switches := rrg.SwitchTable{{Buffered: true}}
	cboxes := rrg.NewInMemoryConnectionBoxes()
	basecost := rrg.NewStaticBaseCost()

	costIndexForSeg := map[rrg.SegmentID]int{}
	nextCostIndex := 0

	for loc, seg := range segAt {
		ci, ok := costIndexForSeg[seg]
		if !ok {
			ci = nextCostIndex
			nextCostIndex++
			costIndexForSeg[seg] = ci
			g.SetCostIndexSegment(ci, seg)
		}

		node := g.AddNode(rrg.Node{Type: rrg.ChanX, CostIndex: ci, Capacity: 1, X: loc[0], Y: loc[1]})
		cboxes.SetCanonicalLoc(node, loc[0], loc[1])
		ipin := g.AddNode(rrg.Node{Type: rrg.Ipin})
		_ = g.AddEdge(node, ipin, 0)
		cboxes.SetConnectionBox(ipin, rrg.BoxID(0), loc[0], loc[1], 0)
	}
	require.NoError(t, g.Finalize())

	return g, switches, cboxes, basecost
}

func TestProfile_FindsSourceAtReference(t *testing.T) {
	g, switches, cboxes, basecost := newGridFixture(t, map[[2]int]rrg.SegmentID{
		{0, 0}: 1,
	})

	opts := profiler.DefaultOptions(profiler.WithReference(0, 0), profiler.WithProfileBounds(1, 7))
	result, err := profiler.Profile(g, switches, cboxes, basecost, rrg.SegmentID(1), opts, nil)
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	require.Equal(t, 1, result.Samples.Len())
}

func TestProfile_StopsAtMinProfileEvenWithoutFinding(t *testing.T) {
	g, switches, cboxes, basecost := newGridFixture(t, map[[2]int]rrg.SegmentID{
		{5, 5}: 1, // far outside the scanned neighbourhood
	})

	logger := &stubLogger{}
	opts := profiler.DefaultOptions(profiler.WithReference(0, 0), profiler.WithProfileBounds(1, 2))
	result, err := profiler.Profile(g, switches, cboxes, basecost, rrg.SegmentID(1), opts, logger)
	require.NoError(t, err)
	require.Zero(t, result.Count)
	require.NotEmpty(t, logger.warnings)
}

func TestProfile_KeepsGrowingUntilFoundOrMaxProfile(t *testing.T) {
	// The diagonal walk visits (0,0),(1,0),(1,1),(2,1),(2,2),... ; (2,2) is
	// the fifth point it reaches, well past MinProfile, so finding it here
	// exercises the "keep growing while count==0" clause of the stop rule.
	g, switches, cboxes, basecost := newGridFixture(t, map[[2]int]rrg.SegmentID{
		{2, 2}: 1,
	})

	opts := profiler.DefaultOptions(profiler.WithReference(0, 0), profiler.WithProfileBounds(1, 7))
	result, err := profiler.Profile(g, switches, cboxes, basecost, rrg.SegmentID(1), opts, nil)
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
}

func TestProfile_SegmentMismatchIsIgnored(t *testing.T) {
	g, switches, cboxes, basecost := newGridFixture(t, map[[2]int]rrg.SegmentID{
		{0, 0}: 2, // registered under segment 2, queried under segment 1
	})

	logger := &stubLogger{}
	opts := profiler.DefaultOptions(profiler.WithReference(0, 0), profiler.WithProfileBounds(1, 2))
	result, err := profiler.Profile(g, switches, cboxes, basecost, rrg.SegmentID(1), opts, logger)
	require.NoError(t, err)
	require.Zero(t, result.Count)
}

func TestProfileAll_RunsEverySegment(t *testing.T) {
	g, switches, cboxes, basecost := newGridFixture(t, map[[2]int]rrg.SegmentID{
		{0, 0}: 1,
		{1, 0}: 2,
	})

	opts := profiler.DefaultOptions(profiler.WithReference(0, 0), profiler.WithProfileBounds(1, 2))
	results, err := profiler.ProfileAll(g, switches, cboxes, basecost, []rrg.SegmentID{1, 2}, opts, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, rrg.SegmentID(1), results[0].Segment)
	require.Equal(t, rrg.SegmentID(2), results[1].Segment)
}
