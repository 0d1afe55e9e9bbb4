package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rmbsgrade/rmbsgrade/pkg/scoring"
)

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available risk strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			printStrategies(cmd.OutOrStdout(), scoring.DefaultStrategies())
			return nil
		},
	}
}

func printStrategies(w io.Writer, strategies []scoring.Strategy) {
	for _, s := range strategies {
		fmt.Fprintf(w, "%-15s %s\n", s.Key(), s.Name())
	}
}
