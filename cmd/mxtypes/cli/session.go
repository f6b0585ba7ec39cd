// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/mxtypes/lib/config"
)

// CommonFlags holds the flags shared by every leaf command. Embed it in
// a command's parameters and call AddFlags from the command's Flags
// function.
type CommonFlags struct {
	// ConfigPath overrides MXTYPES_CONFIG.
	ConfigPath string

	// Verbose enables debug logging on stderr.
	Verbose bool

	// Format and Color override output.format and output.color when
	// non-empty.
	Format string
	Color  string
}

// AddFlags registers --config, --verbose and --color on flagSet, and
// --format when the command prints structured values.
func (c *CommonFlags) AddFlags(flagSet *pflag.FlagSet, withFormat bool) {
	flagSet.StringVar(&c.ConfigPath, "config", "", "path to mxtypes.yaml (default: $MXTYPES_CONFIG)")
	flagSet.BoolVarP(&c.Verbose, "verbose", "v", false, "log debug details to stderr")
	flagSet.StringVar(&c.Color, "color", "", "color output: auto, always, never (default: from config)")
	if withFormat {
		flagSet.StringVarP(&c.Format, "format", "f", "", "output format: json, yaml, cbor, diag (default: from config)")
	}
}

// Session bundles what a running command needs: the effective
// configuration, an Output on the command's stdout, and a scoped
// logger.
type Session struct {
	Config *config.Config
	Output *Output
	Logger *slog.Logger
}

// Open loads configuration and prepares a Session writing to stdout.
// Without --config and MXTYPES_CONFIG the built-in defaults apply.
// Flag overrides are validated together with the file's values.
func (c *CommonFlags) Open(stdout io.Writer, command string) (*Session, error) {
	logger := NewCommandLogger(c.Verbose).With("command", command)
	return c.open(stdout, logger)
}

func (c *CommonFlags) open(stdout io.Writer, logger *slog.Logger) (*Session, error) {
	cfg, source, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	if c.Format != "" {
		cfg.Output.Format = c.Format
	}
	if c.Color != "" {
		cfg.Output.Color = c.Color
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration:\n%w", err)
	}
	logger.Debug("configuration loaded", "source", source, "format", cfg.Output.Format, "color", cfg.Output.Color)

	return &Session{
		Config: cfg,
		Output: NewOutput(stdout, cfg.Output.Format, cfg.Output.Color),
		Logger: logger,
	}, nil
}

func (c *CommonFlags) loadConfig() (*config.Config, string, error) {
	if c.ConfigPath != "" {
		cfg, err := config.LoadFile(c.ConfigPath)
		return cfg, c.ConfigPath, err
	}
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNotConfigured) {
		return config.Default(), "defaults", nil
	}
	if err != nil {
		return nil, "", err
	}
	return cfg, "$" + config.EnvironmentVariable, nil
}
