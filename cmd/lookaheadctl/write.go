package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vtrgo/lookahead/telemetry"
)

var writePath string

var writeCmd = &cobra.Command{
	Use:   "write",
	Args:  cobra.NoArgs,
	Short: "Build a cost map and persist it to disk",
	RunE:  runWrite,
}

func init() {
	writeCmd.Flags().StringVar(&writePath, "out", "", "output path (default: persistence.path from config)")
}

func runWrite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	metrics := telemetry.NewMetrics(defaultRegisterer)

	graph, cm, err := buildCostMap(cfg, logger, metrics)
	if err != nil {
		return err
	}

	path := writePath
	if path == "" {
		path = cfg.Persistence.Path
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := cm.Write(f, nodeSegmentTable(graph)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logger.Info("cost map written", "path", path, "segments", len(cm.Segments()))

	return nil
}
