package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "blockbench",
		Short:         "Benchmark sequential vs parallel block matrix multiplication",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newMultiplyCmd(), newHostCmd())

	return root
}
