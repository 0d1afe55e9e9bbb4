package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rmbsgrade/rmbsgrade/pkg/scoring"
	"github.com/rmbsgrade/rmbsgrade/pkg/surface"
)

type rateOpts struct {
	commonOpts
	outputFmt  string
	strategies string
}

func newRateCmd() *cobra.Command {
	var opts rateOpts

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Rate a mortgage pool",
		Long:  `Loads a pool document, scores every mortgage, applies the pool-level credit adjustment and prints the rating.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRate(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	addCommonFlags(cmd, &opts.commonOpts)
	cmd.Flags().StringVarP(&opts.outputFmt, "output", "o", "", "Output format: text, json or markdown (default from config: text)")
	cmd.Flags().StringVar(&opts.strategies, "strategies", "", "Comma-separated strategy keys (default from config: all)")

	return cmd
}

func runRate(ctx context.Context, opts rateOpts, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, opts.commonOpts, stderr)
	if err != nil {
		return err
	}

	keys := cfg.Rating.Strategies
	if opts.strategies != "" {
		keys = splitKeys(opts.strategies)
		if len(keys) == 0 {
			return fmt.Errorf("--strategies %q names no strategy", opts.strategies)
		}
	}
	strategies, err := scoring.StrategiesByKey(keys)
	if err != nil {
		return fmt.Errorf("selecting strategies: %w", err)
	}

	renderer, err := surface.ForFormat(firstNonEmpty(opts.outputFmt, cfg.Output.Format))
	if err != nil {
		return err
	}

	pool, err := loadPool(ctx, opts.input, cfg, logger)
	if err != nil {
		return err
	}

	calc := scoring.NewCalculator(strategies...)
	result, err := calc.Evaluate(pool.Mortgages)
	if err != nil {
		return fmt.Errorf("rating %s: %w", opts.input, err)
	}

	logger.WithFields(logrus.Fields{
		"rating":          result.Rating,
		"total_score":     result.TotalScore,
		"pool_adjustment": result.PoolAdjustment,
	}).Info("pool rated")

	if err := renderer.Render(stdout, surface.NewReport(opts.input, result, time.Now())); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return nil
}
