package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/huynhanx03/go-vector/pkg/datastructs/vector"
)

func init() {
	rootCmd.AddCommand(newRenderCmd())
}

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <int>...",
		Short: "Print the rendering of an integer array",
		Long: `The render command builds an array from its arguments and prints it
in the diagnostic "[e0, e1, ...]" form.

Example:
  vectorctl render 1 2 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args)
		},
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	values := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return errors.Wrapf(err, "argument %d", i+1)
		}
		values[i] = v
	}
	arr, err := vector.FromSlice(values)
	if err != nil {
		return err
	}
	if _, err := arr.WriteTo(cmd.OutOrStdout()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
