package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blockmat/bench"
)

func newHostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "host",
		Short: "Print the CPU and runtime details recorded with benchmark runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), bench.Host())
			return err
		},
	}
}
