// Package main provides the rmbsgrade CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "rmbsgrade",
		Short: "Credit ratings for mortgage pools",
		Long: `rmbsgrade scores every mortgage in a pool against a set of risk
strategies, adjusts for the pool's average credit score and assigns
a rating of AAA, BBB or C.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newRateCmd(),
		newValidateCmd(),
		newStrategiesCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
