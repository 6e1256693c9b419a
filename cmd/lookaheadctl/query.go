package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vtrgo/lookahead/costmap"
	"github.com/vtrgo/lookahead/lookahead"
	"github.com/vtrgo/lookahead/rrg"
)

var (
	queryPath        string
	queryFrom        int32
	queryTo          int32
	queryCriticality float64
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Args:  cobra.NoArgs,
	Short: "Answer an expected_cost query against a persisted cost map",
	Long: `Rebuilds the same demo device compute/write used and loads a persisted
cost map, then answers expected_cost(from, to, criticality) against it.`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryPath, "in", "", "cost map path (default: persistence.path from config)")
	queryCmd.Flags().Int32Var(&queryFrom, "from", 0, "source node ID")
	queryCmd.Flags().Int32Var(&queryTo, "to", 0, "destination node ID")
	queryCmd.Flags().Float64Var(&queryCriticality, "criticality", 0.5, "criticality in [0,1]")
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := queryPath
	if path == "" {
		path = cfg.Persistence.Path
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cm, _, err := costmap.Read(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	device, err := buildDemoDevice(demoWidth, demoHeight)
	if err != nil {
		return fmt.Errorf("rebuild demo device: %w", err)
	}

	oracle := lookahead.New(device.Graph, device.CBoxes, rrg.NewStaticBaseCost(), cm)

	cost, err := oracle.ExpectedCost(rrg.NodeID(queryFrom), rrg.NodeID(queryTo), queryCriticality)
	if err != nil {
		return fmt.Errorf("expected_cost: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%g\n", cost)

	return nil
}
