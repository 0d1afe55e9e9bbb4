package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rmbsgrade/rmbsgrade/internal/logging"
	"github.com/rmbsgrade/rmbsgrade/internal/source"
	"github.com/rmbsgrade/rmbsgrade/pkg/config"
	"github.com/rmbsgrade/rmbsgrade/pkg/mortgage"
)

// defaultInput is the pool file read when --input is not given.
const defaultInput = "rmbs.json"

// commonOpts are the flags shared by commands that read a pool.
type commonOpts struct {
	input      string
	configPath string
	logLevel   string
	logFormat  string
}

func addCommonFlags(cmd *cobra.Command, opts *commonOpts) {
	cmd.Flags().StringVarP(&opts.input, "input", "i", defaultInput, "Pool document: local path, file://, s3://bucket/key or gs://bucket/key")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config file (default: search for .rmbsgrade/config.yaml)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "", "Log format: text or json")
}

// loadConfig reads the config at path, or discovers one from the working
// directory when path is empty. A missing file yields defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return config.DefaultConfig(), nil
		}
		path = config.FindConfigFile(wd)
		if path == "" {
			return config.DefaultConfig(), nil
		}
	}
	return config.Load(path)
}

func newLogger(cfg *config.Config, opts commonOpts, w io.Writer) (*logrus.Logger, error) {
	return logging.New(
		firstNonEmpty(opts.logLevel, cfg.Log.Level, "info"),
		firstNonEmpty(opts.logFormat, cfg.Log.Format, "text"),
		w,
	)
}

// loadPool fetches and parses the pool document at uri.
func loadPool(ctx context.Context, uri string, cfg *config.Config, logger *logrus.Logger) (*mortgage.Pool, error) {
	if cfg.Source.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.Source.Timeout)*time.Second)
		defer cancel()
	}

	data, err := source.Fetch(ctx, uri, source.Options{
		S3: source.S3Config{
			Region:    cfg.Source.S3.Region,
			Endpoint:  cfg.Source.S3.Endpoint,
			AccessKey: cfg.Source.S3.AccessKey,
			SecretKey: cfg.Source.S3.SecretKey,
		},
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	pool, err := mortgage.ParsePool(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", uri, err)
	}

	logger.WithFields(logrus.Fields{
		"source":    uri,
		"mortgages": pool.Len(),
	}).Info("pool loaded")

	return pool, nil
}

// splitKeys parses a comma-separated strategy list.
func splitKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
