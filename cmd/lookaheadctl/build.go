package main

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vtrgo/lookahead/config"
	"github.com/vtrgo/lookahead/costmap"
	"github.com/vtrgo/lookahead/profiler"
	"github.com/vtrgo/lookahead/rrg"
	"github.com/vtrgo/lookahead/telemetry"
)

// demoWidth/demoHeight size the synthetic device compute/write/query build
// against (see demo.go); large enough to exercise both wire-segment types
// across several profiling passes, and to contain the default profiling
// reference (25, 23) plus the scan's neighbourhood around it.
const (
	demoWidth  = 32
	demoHeight = 32
)

// buildCostMap runs the full build pipeline — demo device, profiling, and
// per-segment reduction — reporting progress through logger and metrics.
func buildCostMap(cfg *config.Config, logger *telemetry.Logger, metrics *telemetry.Metrics) (*rrg.Graph, *costmap.CostMap, error) {
	start := time.Now()
	defer func() {
		if metrics != nil {
			metrics.BuildDuration.Observe(time.Since(start).Seconds())
		}
	}()

	device, err := buildDemoDevice(demoWidth, demoHeight)
	if err != nil {
		return nil, nil, fmt.Errorf("build demo device: %w", err)
	}

	rule, err := cfg.ReductionRule()
	if err != nil {
		return nil, nil, err
	}

	opts := profiler.DefaultOptions(
		profiler.WithReference(cfg.Profiling.RefX, cfg.Profiling.RefY),
		profiler.WithProfileBounds(cfg.Profiling.MinProfile, cfg.Profiling.MaxProfile),
	)
	basecost := rrg.NewStaticBaseCost()

	results, err := profiler.ProfileAll(device.Graph, device.Switches, device.CBoxes, basecost, device.Segments, opts, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("profile: %w", err)
	}

	cm := costmap.New()
	for _, r := range results {
		cm.SetCostMap(r.Segment, r.Samples, rule)
		logger.Info("segment reduced", "segment", int32(r.Segment), "sources", r.Count, "samples", r.Samples.Len())
		if metrics != nil {
			metrics.ObserveSegment(fmt.Sprint(int32(r.Segment)), r.Samples.Len())
		}
	}

	return device.Graph, cm, nil
}

// nodeSegmentTable derives the dense node-to-segment table Write expects
// from a finalized graph.
func nodeSegmentTable(g *rrg.Graph) []rrg.SegmentID {
	table := make([]rrg.SegmentID, g.NumNodes())
	for i := range table {
		table[i] = g.SegmentOf(rrg.NodeID(i))
	}

	return table
}

// defaultRegisterer is the metrics registry used by compute/write; tests of
// this package would supply their own, but the CLI always wants the process
// default so a scrape endpoint could observe it if one were ever mounted.
var defaultRegisterer = prometheus.DefaultRegisterer
