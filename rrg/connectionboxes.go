package rrg

import "sync"

// BoxID identifies one connection box instance (§6.3).
type BoxID int32

// ConnectionBoxes is the "Connection-box database" collaborator of §6.3.
//
// Implementations deliberately distinguish a node's canonical location from
// an IPIN's connection-box location (§9, "mixing canonical and box
// locations"): CanonicalLoc answers "where is this node, in general", while
// ConnectionBox answers "where does this pin's connection box sit" — the two
// need not agree, and callers must not normalise them to a single notion of
// location.
type ConnectionBoxes interface {
	// CanonicalLoc returns the representative (x, y) of a wire or input-pin
	// node, or ok=false if none is known.
	CanonicalLoc(node NodeID) (x, y int, ok bool)

	// ConnectionBox returns the connection box feeding an IPIN: its id,
	// location, and the pin's intrinsic site delay. ok=false if the IPIN has
	// no connection box (a hard build/query error per §7).
	ConnectionBox(ipin NodeID) (box BoxID, x, y int, sitePinDelay float64, ok bool)

	// SinkToIpins returns every IPIN feeding a SINK, in a stable order.
	SinkToIpins(sink NodeID) []NodeID
}

// InMemoryConnectionBoxes is a concrete, mutable ConnectionBoxes built up by
// a device description (see DeviceBuilder) and then treated as read-only.
type InMemoryConnectionBoxes struct {
	mu sync.RWMutex

	canonical map[NodeID][2]int
	boxes     map[NodeID]connectionBoxEntry
	sinkIpins map[NodeID][]NodeID
}

type connectionBoxEntry struct {
	Box          BoxID
	X, Y         int
	SitePinDelay float64
}

// NewInMemoryConnectionBoxes returns an empty, mutable ConnectionBoxes.
func NewInMemoryConnectionBoxes() *InMemoryConnectionBoxes {
	return &InMemoryConnectionBoxes{
		canonical: make(map[NodeID][2]int),
		boxes:     make(map[NodeID]connectionBoxEntry),
		sinkIpins: make(map[NodeID][]NodeID),
	}
}

// SetCanonicalLoc records the canonical location of a wire or IPIN node.
func (b *InMemoryConnectionBoxes) SetCanonicalLoc(node NodeID, x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.canonical[node] = [2]int{x, y}
}

// SetConnectionBox records the connection box feeding an IPIN.
func (b *InMemoryConnectionBoxes) SetConnectionBox(ipin NodeID, box BoxID, x, y int, sitePinDelay float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.boxes[ipin] = connectionBoxEntry{Box: box, X: x, Y: y, SitePinDelay: sitePinDelay}
}

// AddSinkIpin registers ipin as one of the input pins feeding sink.
// Order of registration is preserved (SinkToIpins returns it verbatim),
// which the profiling/query code depends on for determinism.
func (b *InMemoryConnectionBoxes) AddSinkIpin(sink, ipin NodeID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.sinkIpins[sink] = append(b.sinkIpins[sink], ipin)
}

// CanonicalLoc implements ConnectionBoxes.
func (b *InMemoryConnectionBoxes) CanonicalLoc(node NodeID) (int, int, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	loc, ok := b.canonical[node]

	return loc[0], loc[1], ok
}

// ConnectionBox implements ConnectionBoxes.
func (b *InMemoryConnectionBoxes) ConnectionBox(ipin NodeID) (BoxID, int, int, float64, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.boxes[ipin]

	return e.Box, e.X, e.Y, e.SitePinDelay, ok
}

// SinkToIpins implements ConnectionBoxes.
func (b *InMemoryConnectionBoxes) SinkToIpins(sink NodeID) []NodeID {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ipins := b.sinkIpins[sink]
	out := make([]NodeID, len(ipins))
	copy(out, ipins)

	return out
}
