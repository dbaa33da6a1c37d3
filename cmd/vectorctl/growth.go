package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/huynhanx03/go-vector/pkg/datastructs/vector"
)

var growthCount int

func init() {
	cmd := newGrowthCmd()
	cmd.Flags().IntVarP(&growthCount, "count", "n", 16, "Number of elements to append")
	rootCmd.AddCommand(cmd)
}

func newGrowthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "growth",
		Short: "Show the capacity after each reallocation",
		Long: `The growth command appends 1..N to an empty array and prints a line
every time the capacity changes.

Example:
  vectorctl growth --count 100
  vectorctl growth -n 20 --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrowth(cmd, growthCount)
		},
	}
}

func runGrowth(cmd *cobra.Command, count int) error {
	if count < 0 {
		return errors.Errorf("count must not be negative, got %d", count)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	arr := vector.New[int](
		vector.WithLogger(log),
		vector.WithMemoryLimit(cfg.Vector.MemoryLimit),
	)
	out := cmd.OutOrStdout()
	last := arr.Cap()
	for v := 1; v <= count; v++ {
		if err := arr.PushBack(v); err != nil {
			return errors.Wrapf(err, "append %d", v)
		}
		if arr.Cap() != last {
			last = arr.Cap()
			fmt.Fprintf(out, "length=%d capacity=%d\n", arr.Len(), last)
		}
	}
	return nil
}
