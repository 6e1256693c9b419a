// Package explorer implements the Dijkstra Explorer (C3): a single
// best-first traversal of the routing-resource graph from one start node,
// recording a (Δx, Δy, delay, congestion) sample at every input pin it
// reaches.
//
// The explorer is deliberately low-level and allocation-conscious, in the
// style of the teacher's dijkstra package: a Scratch holds the two
// per-node working arrays (expanded flags, best cost seen) and is reused
// across every start node profiled for one segment type, via a generation
// counter rather than a per-call zero-fill.
package explorer
