// Package logging builds the logrus logger used by the rmbsgrade CLI.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// New creates a logger writing to w at the given level.
// Format is "json" or "text"; anything else is rejected.
func New(level, format string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)

	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	default:
		return nil, fmt.Errorf("log format must be text or json, got %q", format)
	}

	return logger, nil
}
