package rrg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vtrgo/lookahead/rrg"
)

func TestDeviceBuilder_AddNamedSwitchDedupsByName(t *testing.T) {
	b := rrg.NewDeviceBuilder()

	id1 := b.AddNamedSwitch("buf1", rrg.Switch{Tdel: 1, Buffered: true})
	id2 := b.AddNamedSwitch("buf1", rrg.Switch{Tdel: 99, Buffered: false})

	require.Equal(t, id1, id2)
}

func TestDeviceBuilder_AddNamedSwitchAnonymousNeverCollides(t *testing.T) {
	b := rrg.NewDeviceBuilder()

	id1 := b.AddNamedSwitch("", rrg.Switch{Tdel: 1})
	id2 := b.AddNamedSwitch("", rrg.Switch{Tdel: 2})

	require.NotEqual(t, id1, id2)
}

func TestDeviceBuilder_AddConnectionBoxDedupsByName(t *testing.T) {
	b := rrg.NewDeviceBuilder()

	id1 := b.AddConnectionBox("boxA", 1, 2)
	id2 := b.AddConnectionBox("boxA", 9, 9)

	require.Equal(t, id1, id2)
}

func TestDeviceBuilder_FinalizeReturnsUsableCollaborators(t *testing.T) {
	b := rrg.NewDeviceBuilder()

	sw := b.AddNamedSwitch("buf", rrg.Switch{Tdel: 1.0, Buffered: true})
	from := b.AddNode(rrg.Node{Type: rrg.ChanX, CostIndex: 0})
	to := b.AddNode(rrg.Node{Type: rrg.ChanX, CostIndex: 0})
	require.NoError(t, b.AddEdge(from, to, sw))
	b.SetCostIndexSegment(0, 5)
	b.SetCanonicalLoc(from, 0, 0)
	b.SetCanonicalLoc(to, 1, 0)

	g, switches, cboxes, err := b.Finalize()
	require.NoError(t, err)

	require.Equal(t, rrg.SegmentID(5), g.SegmentOf(from))
	gotSw, ok := switches.Switch(sw)
	require.True(t, ok)
	require.Equal(t, 1.0, gotSw.Tdel)

	x, y, ok := cboxes.CanonicalLoc(to)
	require.True(t, ok)
	require.Equal(t, 1, x)
	require.Equal(t, 0, y)
}
