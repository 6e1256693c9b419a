// Package costmap implements the Cost Map (C5): a per-wire-segment-type 2-D
// grid of representative cost entries addressed by (Δx, Δy), with a
// per-segment origin offset, nearest-valid-neighbour extrapolation of
// sparsity holes, and bit-exact binary persistence.
package costmap
