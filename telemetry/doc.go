// Package telemetry provides the structured logger and build-pipeline
// metrics used by profiler and cmd/lookaheadctl. It observes the lookahead
// build itself — per-segment sample counts and build duration —
// and never touches the router's own congestion base-cost accounting.
package telemetry
