// Package costmodel holds the cost arithmetic shared by the explorer and
// cost-map build pipeline: the Elmore linearised delay model used to price a
// single routing-graph transition, the three priority-queue entry builders
// that order a Dijkstra frontier by one scalar key, and the Expansion
// accumulator that reduces many observed samples for one (segment, Δx, Δy)
// bucket into a single representative Entry.
//
// Nothing in this package touches the graph itself or does any traversal;
// it is pure arithmetic over the values a caller hands it, in the spirit of
// the teacher's matrix package being a flat numeric layer beneath the graph
// types that use it.
package costmodel
