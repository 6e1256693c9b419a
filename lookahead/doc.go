// Package lookahead implements the Query Oracle (C6): the top-level
// expected_cost(from, to, criticality) dispatch an A*-style router calls
// to estimate the remaining (delay, congestion) cost between two routing
// nodes, built on a costmap.CostMap.
package lookahead
