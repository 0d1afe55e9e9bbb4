package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rmbsgrade/rmbsgrade/pkg/scoring"
)

func newValidateCmd() *cobra.Command {
	var opts commonOpts

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a pool document can be rated",
		Long:  `Loads and validates a pool document without rating it. Fails on missing fields, unknown enum values, non-positive divisors and empty pools.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	addCommonFlags(cmd, &opts)
	return cmd
}

func runValidate(ctx context.Context, opts commonOpts, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, opts, stderr)
	if err != nil {
		return err
	}

	pool, err := loadPool(ctx, opts.input, cfg, logger)
	if err != nil {
		return err
	}
	if pool.Len() == 0 {
		return fmt.Errorf("%s: %w", opts.input, scoring.ErrEmptyPool)
	}

	fmt.Fprintf(stdout, "%s: %d mortgages OK\n", opts.input, pool.Len())
	return nil
}
