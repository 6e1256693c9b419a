package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vtrgo/lookahead/costmap"
)

var readPath string

var readCmd = &cobra.Command{
	Use:   "read",
	Args:  cobra.NoArgs,
	Short: "Read a persisted cost map and print a summary",
	RunE:  runRead,
}

func init() {
	readCmd.Flags().StringVar(&readPath, "in", "", "input path (default: persistence.path from config)")
}

func runRead(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := readPath
	if path == "" {
		path = cfg.Persistence.Path
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cm, nodeSegment, err := costmap.Read(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d nodes, %d segments\n", len(nodeSegment), len(cm.Segments()))

	return cm.DebugDump(cmd.OutOrStdout())
}
