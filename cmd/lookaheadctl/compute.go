package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vtrgo/lookahead/telemetry"
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Args:  cobra.NoArgs,
	Short: "Build a cost map in memory and print a summary",
	Long:  `Runs the full profiling/reduction pipeline and prints a debug dump of the resulting cost map, without persisting it.`,
	RunE:  runCompute,
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	metrics := telemetry.NewMetrics(defaultRegisterer)

	_, cm, err := buildCostMap(cfg, logger, metrics)
	if err != nil {
		return err
	}

	if err := cm.DebugDump(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("dump cost map: %w", err)
	}

	return nil
}
