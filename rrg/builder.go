package rrg

import (
	"fmt"

	"github.com/google/uuid"
)

// DeviceBuilder assembles a Graph, switch table, and ConnectionBoxes from a
// device description in one deterministic pass, mirroring the teacher's
// builder package: a thin orchestrator plus named, dedup-safe factories
// rather than raw positional calls. Switches and connection boxes are
// registered under a caller-supplied name so the same external record
// (e.g. re-emitted by a device-description reader run twice, or merged
// from more than one partial description) resolves to the same internal
// ID; an empty name gets a fresh collision-free tag from uuid.New() so
// anonymous records never accidentally dedup against one another.
type DeviceBuilder struct {
	graph  *Graph
	cboxes *InMemoryConnectionBoxes

	switches     []Switch
	switchByName map[string]SwitchID

	boxByName map[string]BoxID
	nextBox   BoxID
}

// NewDeviceBuilder returns an empty DeviceBuilder ready for AddNode,
// AddNamedSwitch, and AddConnectionBox calls.
func NewDeviceBuilder() *DeviceBuilder {
	return &DeviceBuilder{
		graph:        NewGraph(),
		cboxes:       NewInMemoryConnectionBoxes(),
		switchByName: make(map[string]SwitchID),
		boxByName:    make(map[string]BoxID),
	}
}

// AddNode delegates to the underlying Graph.
func (b *DeviceBuilder) AddNode(n Node) NodeID {
	return b.graph.AddNode(n)
}

// AddEdge delegates to the underlying Graph.
func (b *DeviceBuilder) AddEdge(from, to NodeID, sw SwitchID) error {
	return b.graph.AddEdge(from, to, sw)
}

// SetCostIndexSegment delegates to the underlying Graph.
func (b *DeviceBuilder) SetCostIndexSegment(costIndex int, seg SegmentID) {
	b.graph.SetCostIndexSegment(costIndex, seg)
}

// SetCanonicalLoc delegates to the underlying ConnectionBoxes.
func (b *DeviceBuilder) SetCanonicalLoc(node NodeID, x, y int) {
	b.cboxes.SetCanonicalLoc(node, x, y)
}

// AddSinkIpin delegates to the underlying ConnectionBoxes.
func (b *DeviceBuilder) AddSinkIpin(sink, ipin NodeID) {
	b.cboxes.AddSinkIpin(sink, ipin)
}

// AddNamedSwitch registers sw under name, returning its SwitchID. A second
// call with the same name and the repo's build-once discipline in mind
// returns the previously assigned ID unchanged rather than appending a
// duplicate row; name == "" synthesizes a fresh uuid-tagged name so
// anonymous switches never collide.
func (b *DeviceBuilder) AddNamedSwitch(name string, sw Switch) SwitchID {
	if name == "" {
		name = uuid.New().String()
	}
	if id, ok := b.switchByName[name]; ok {
		return id
	}

	id := SwitchID(len(b.switches))
	b.switches = append(b.switches, sw)
	b.switchByName[name] = id

	return id
}

// AddConnectionBox registers a connection box under name, returning its
// BoxID with the same dedup-by-name semantics as AddNamedSwitch. x and y
// are not recorded; the location an IPIN reports is the one passed to
// SetConnectionBox. It does not itself attach the box to an IPIN; call
// SetConnectionBox with the returned ID.
func (b *DeviceBuilder) AddConnectionBox(name string, x, y int) BoxID {
	if name == "" {
		name = uuid.New().String()
	}
	if id, ok := b.boxByName[name]; ok {
		return id
	}

	id := b.nextBox
	b.nextBox++
	b.boxByName[name] = id

	return id
}

// SetConnectionBox attaches a previously registered box (see
// AddConnectionBox) to an IPIN node.
func (b *DeviceBuilder) SetConnectionBox(ipin NodeID, box BoxID, x, y int, sitePinDelay float64) {
	b.cboxes.SetConnectionBox(ipin, box, x, y, sitePinDelay)
}

// Finalize freezes the graph (see Graph.Finalize) and returns the three
// read-only collaborators the rest of the pipeline consumes.
func (b *DeviceBuilder) Finalize() (*Graph, SwitchCatalogue, *InMemoryConnectionBoxes, error) {
	if err := b.graph.Finalize(); err != nil {
		return nil, nil, nil, fmt.Errorf("rrg: DeviceBuilder.Finalize: %w", err)
	}

	table := make(SwitchTable, len(b.switches))
	copy(table, b.switches)

	return b.graph, table, b.cboxes, nil
}
