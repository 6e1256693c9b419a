// Package rrg models the routing-resource graph (RRG) of an FPGA device and
// the three external catalogues the lookahead build needs alongside it: the
// switch catalogue, the connection-box database, and the router's per-node
// base (congestion) cost.
//
// Building the real device model — parsing an architecture file, deriving
// switch timing from SPICE decks, placing connection boxes — is out of
// scope for this module.
// What lives here is the *shape* those four collaborators must have, plus a
// concrete, in-memory implementation of each so the rest of the module is
// buildable, testable, and runnable end to end without a real VPR device.
//
// Graph follows the same thread-safety discipline as a device context that
// may be inspected by tooling (echo files, visualizers) while a build is
// staged: a single sync.RWMutex guards mutation, exactly as in a simple
// adjacency-list graph. Once Finalize has run, the graph is expected to be
// read-only for the remainder of the process, matching the lookahead's own
// build-then-query lifecycle.
package rrg
