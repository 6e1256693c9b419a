package rrg

import "errors"

// Sentinel errors for rrg package operations.
var (
	// ErrEmptyGraph indicates an operation that requires at least one node.
	ErrEmptyGraph = errors.New("rrg: graph has no nodes")

	// ErrUnknownNode indicates a NodeID outside the graph's allocated range.
	ErrUnknownNode = errors.New("rrg: unknown node")

	// ErrUnknownSwitch indicates a SwitchID not present in a switch catalogue.
	ErrUnknownSwitch = errors.New("rrg: unknown switch")

	// ErrNotFinalized indicates SegmentOf or NodesAt was called before Finalize.
	ErrNotFinalized = errors.New("rrg: graph not finalized")
)

// NodeType classifies a routing-resource node the way VPR's rr_node does.
type NodeType int

const (
	// Source is a logic-block output aggregation point feeding OPINs.
	Source NodeType = iota
	// Sink is a logic-block input aggregation point fed by IPINs.
	Sink
	// Ipin is an input pin of a logic block, fed by channel wires.
	Ipin
	// Opin is an output pin of a logic block, feeding channel wires.
	Opin
	// ChanX is a horizontal routing channel wire segment.
	ChanX
	// ChanY is a vertical routing channel wire segment.
	ChanY
)

// String renders a NodeType for logs and test failure messages.
func (t NodeType) String() string {
	switch t {
	case Source:
		return "SOURCE"
	case Sink:
		return "SINK"
	case Ipin:
		return "IPIN"
	case Opin:
		return "OPIN"
	case ChanX:
		return "CHANX"
	case ChanY:
		return "CHANY"
	default:
		return "UNKNOWN"
	}
}

// NodeID indexes a node within a Graph. Valid IDs are dense, starting at 0.
type NodeID int32

// SwitchID indexes a switch within a SwitchCatalogue.
type SwitchID int32

// SegmentID indexes a wire-segment type. NoSegment marks non-wire nodes.
type SegmentID int32

// NoSegment is the sentinel segment index for nodes with no wire-segment type
// (SOURCE, SINK, OPIN are never profiled as lookahead sources).
const NoSegment SegmentID = -1

// Node is one vertex of the routing-resource graph.
//
// X, Y is the device grid cell the node occupies; for channel nodes this is
// the cell used to enumerate profiling sources (§4.4), not necessarily the
// node's canonical location (§9's deliberate canonical/box asymmetry lives in
// the ConnectionBoxes contract, not here).
type Node struct {
	Type      NodeType
	CostIndex int
	R, C      float64
	Capacity  int
	X, Y      int
}

// edge is one outgoing connection of a node, labelled with the switch that
// implements it.
type edge struct {
	To     NodeID
	Switch SwitchID
}

// Switch describes one entry of the switch catalogue (§6.2).
type Switch struct {
	Tdel         float64
	R            float64
	Buffered     bool
	Configurable bool
}
