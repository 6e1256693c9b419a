package main

import (
	"fmt"

	"github.com/vtrgo/lookahead/rrg"
)

// demoDevice is a small, fully deterministic routing-resource graph used by
// compute/write/query when no real device description reader is wired in
// (device-file parsing is out of scope). It lays out a width×height mesh of
// horizontal and vertical channel wires, one pair per cell, for two
// wire-segment types ("short", cost index 0, segment 0; "long", cost index
// 1, segment 1) each driving one IPIN/SINK pair at its own cell — enough to
// exercise every stage of the build pipeline end to end.
type demoDevice struct {
	Graph    *rrg.Graph
	Switches rrg.SwitchCatalogue
	CBoxes   *rrg.InMemoryConnectionBoxes
	Segments []rrg.SegmentID
}

func buildDemoDevice(width, height int) (*demoDevice, error) {
	b := rrg.NewDeviceBuilder()

	const (
		segShort rrg.SegmentID = 0
		segLong  rrg.SegmentID = 1
	)
	b.SetCostIndexSegment(0, segShort)
	b.SetCostIndexSegment(1, segLong)

	bufShort := b.AddNamedSwitch("buf-short", rrg.Switch{Tdel: 0.3, R: 20, Buffered: true, Configurable: true})
	bufLong := b.AddNamedSwitch("buf-long", rrg.Switch{Tdel: 0.8, R: 50, Buffered: true, Configurable: true})
	toIpin := b.AddNamedSwitch("to-ipin", rrg.Switch{Tdel: 0.1, Buffered: true, Configurable: false})
	toSink := b.AddNamedSwitch("to-sink", rrg.Switch{Tdel: 0, Buffered: false, Configurable: false})

	type cellNodes struct {
		chanX, chanY rrg.NodeID
	}
	short := make(map[[2]int]cellNodes, width*height)
	long := make(map[[2]int]cellNodes, width*height)

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			sx := b.AddNode(rrg.Node{Type: rrg.ChanX, CostIndex: 0, R: 10, C: 1.0, Capacity: 1, X: x, Y: y})
			sy := b.AddNode(rrg.Node{Type: rrg.ChanY, CostIndex: 0, R: 10, C: 1.0, Capacity: 1, X: x, Y: y})
			b.SetCanonicalLoc(sx, x, y)
			b.SetCanonicalLoc(sy, x, y)
			short[[2]int{x, y}] = cellNodes{sx, sy}

			lx := b.AddNode(rrg.Node{Type: rrg.ChanX, CostIndex: 1, R: 5, C: 2.0, Capacity: 1, X: x, Y: y})
			ly := b.AddNode(rrg.Node{Type: rrg.ChanY, CostIndex: 1, R: 5, C: 2.0, Capacity: 1, X: x, Y: y})
			b.SetCanonicalLoc(lx, x, y)
			b.SetCanonicalLoc(ly, x, y)
			long[[2]int{x, y}] = cellNodes{lx, ly}

			if err := attachSinkIpin(b, sx, toIpin, toSink, fmt.Sprintf("short-%d-%d", x, y), x, y); err != nil {
				return nil, err
			}
			if err := attachSinkIpin(b, lx, toIpin, toSink, fmt.Sprintf("long-%d-%d", x, y), x, y); err != nil {
				return nil, err
			}
		}
	}

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if x+1 < width {
				if err := b.AddEdge(short[[2]int{x, y}].chanX, short[[2]int{x + 1, y}].chanX, bufShort); err != nil {
					return nil, err
				}
				if err := b.AddEdge(long[[2]int{x, y}].chanX, long[[2]int{x + 1, y}].chanX, bufLong); err != nil {
					return nil, err
				}
			}
			if y+1 < height {
				if err := b.AddEdge(short[[2]int{x, y}].chanY, short[[2]int{x, y + 1}].chanY, bufShort); err != nil {
					return nil, err
				}
				if err := b.AddEdge(long[[2]int{x, y}].chanY, long[[2]int{x, y + 1}].chanY, bufLong); err != nil {
					return nil, err
				}
			}
		}
	}

	graph, switches, cboxes, err := b.Finalize()
	if err != nil {
		return nil, err
	}

	return &demoDevice{
		Graph:    graph,
		Switches: switches,
		CBoxes:   cboxes,
		Segments: []rrg.SegmentID{segShort, segLong},
	}, nil
}

// attachSinkIpin wires source -> IPIN -> SINK at (x, y), registering the
// IPIN's connection box at the same location (the demo device has no
// canonical/box offset of its own, unlike a real device's pin stagger).
func attachSinkIpin(b *rrg.DeviceBuilder, source rrg.NodeID, toIpin, toSink rrg.SwitchID, name string, x, y int) error {
	ipin := b.AddNode(rrg.Node{Type: rrg.Ipin, X: x, Y: y})
	sink := b.AddNode(rrg.Node{Type: rrg.Sink, X: x, Y: y})

	box := b.AddConnectionBox(name, x, y)
	b.SetConnectionBox(ipin, box, x, y, 0)
	b.AddSinkIpin(sink, ipin)

	if err := b.AddEdge(source, ipin, toIpin); err != nil {
		return err
	}

	return b.AddEdge(ipin, sink, toSink)
}
