// Package config handles loading and managing rmbsgrade configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rmbsgrade/rmbsgrade/pkg/scoring"
)

// Config is the top-level configuration for rmbsgrade.
type Config struct {
	Rating RatingConfig `yaml:"rating"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
	Source SourceConfig `yaml:"source"`
}

// RatingConfig controls which strategies score each mortgage.
type RatingConfig struct {
	Strategies []string `yaml:"strategies"` // strategy keys in evaluation order
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json or markdown
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// SourceConfig controls fetching pool documents.
type SourceConfig struct {
	Timeout int      `yaml:"timeout"` // seconds, remote fetches only
	S3      S3Config `yaml:"s3"`
}

// S3Config holds S3 connection overrides. Empty fields fall back to the
// AWS default credential chain.
type S3Config struct {
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"` // S3-compatible endpoint, e.g. MinIO
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	strategies := scoring.DefaultStrategies()
	keys := make([]string, 0, len(strategies))
	for _, s := range strategies {
		keys = append(keys, s.Key())
	}

	return &Config{
		Rating: RatingConfig{
			Strategies: keys,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Source: SourceConfig{
			Timeout: 30,
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enumerated values and strategy keys.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "text", "json", "markdown":
	default:
		return fmt.Errorf("output.format must be text, json or markdown, got %q", c.Output.Format)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	if c.Source.Timeout < 0 {
		return fmt.Errorf("source.timeout must not be negative, got %d", c.Source.Timeout)
	}

	if _, err := scoring.StrategiesByKey(c.Rating.Strategies); err != nil {
		return fmt.Errorf("rating.strategies: %w", err)
	}

	return nil
}

// FindConfigFile looks for .rmbsgrade/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".rmbsgrade", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
