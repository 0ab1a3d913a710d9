// Package config loads quotewatch configuration with koanf, layering
// defaults, an optional quotewatch.yaml, QUOTEWATCH_* environment variables,
// and explicitly set CLI flags (highest priority).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config file names searched in the working directory.
const (
	ConfigFileName    = "quotewatch.yaml"
	ConfigFileNameAlt = "quotewatch.yml"
)

// Defaults mirror the fixed folder layout of the watcher.
const (
	DefaultUploadDir  = "upload"
	DefaultArchiveDir = "archive"
	DefaultOutputDir  = "."
	DefaultLogsDir    = "logs"
)

// Config holds the runtime configuration.
type Config struct {
	UploadDir  string `koanf:"upload_dir"`
	ArchiveDir string `koanf:"archive_dir"`
	OutputDir  string `koanf:"output_dir"`
	LogsDir    string `koanf:"logs_dir"`

	// SettleMillis is the initial wait after a file appears.
	SettleMillis int `koanf:"settle_ms"`
	// PollMillis is the interval between stability checks.
	PollMillis int `koanf:"poll_ms"`
	// SettleAttempts bounds the stability checks per file.
	SettleAttempts int `koanf:"settle_attempts"`

	// MarginPercent uplifts sell prices; 0 leaves net prices untouched.
	MarginPercent float64 `koanf:"margin_percent"`

	Verbose bool `koanf:"verbose"`
}

// SettleInterval returns the settle wait as a duration.
func (c *Config) SettleInterval() time.Duration {
	return time.Duration(c.SettleMillis) * time.Millisecond
}

// PollInterval returns the stability poll interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollMillis) * time.Millisecond
}

// Load builds a Config. cfgFile may be empty, in which case quotewatch.yaml
// or quotewatch.yml in the working directory is used when present. flags may
// be nil; only flags the user explicitly set override the other layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults.
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"upload_dir":      DefaultUploadDir,
		"archive_dir":     DefaultArchiveDir,
		"output_dir":      DefaultOutputDir,
		"logs_dir":        DefaultLogsDir,
		"settle_ms":       1000,
		"poll_ms":         500,
		"settle_attempts": 20,
		"margin_percent":  0.0,
		"verbose":         false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file.
	if cfgFile == "" {
		cfgFile = findConfigFile(".")
	}
	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); err != nil {
			return nil, fmt.Errorf("config file %s: %w", cfgFile, err)
		}
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. Environment (QUOTEWATCH_UPLOAD_DIR -> upload_dir).
	if err := k.Load(env.Provider("QUOTEWATCH_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "QUOTEWATCH_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, explicitly set only.
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// EnsureDirs creates the upload, archive, logs, and output directories.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.UploadDir, c.ArchiveDir, c.LogsDir, c.OutputDir} {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// findConfigFile returns the config file path in dir, or "".
func findConfigFile(dir string) string {
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
