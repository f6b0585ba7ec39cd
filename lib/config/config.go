// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/mxtypes/lib/ref"
)

// EnvironmentVariable names the variable Load reads the config path
// from.
const EnvironmentVariable = "MXTYPES_CONFIG"

// ErrNotConfigured is returned by Load when MXTYPES_CONFIG is unset.
var ErrNotConfigured = errors.New(EnvironmentVariable + " environment variable not set")

// Output formats accepted in output.format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCBOR = "cbor"
	FormatDiag = "diag"
)

// Color modes accepted in output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the mxtypes configuration.
type Config struct {
	// Output configures how decoded content is printed.
	Output OutputConfig `yaml:"output"`

	// MatrixTo configures generated matrix.to links.
	MatrixTo MatrixToConfig `yaml:"matrix_to"`

	// Generate configures identifier generation.
	Generate GenerateConfig `yaml:"generate"`
}

// OutputConfig configures printed output.
type OutputConfig struct {
	// Format is one of json, yaml, cbor (raw bytes) or diag (CBOR
	// diagnostic notation).
	// Default: json
	Format string `yaml:"format"`

	// Color controls syntax highlighting of json and yaml output:
	// auto (only on a terminal), always, or never.
	// Default: auto
	Color string `yaml:"color"`
}

// MatrixToConfig configures matrix.to links.
type MatrixToConfig struct {
	// Via lists the servers added as routing hints to room links when
	// none are given on the command line.
	Via []string `yaml:"via"`
}

// GenerateConfig configures identifier generation.
type GenerateConfig struct {
	// Server is the server name for generated room IDs when none is
	// given on the command line.
	Server string `yaml:"server"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: FormatJSON,
			Color:  ColorAuto,
		},
	}
}

// Load loads configuration from the file named by MXTYPES_CONFIG. It
// returns ErrNotConfigured when the variable is unset; there is no
// fallback search.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%w; set it to the path of your mxtypes.yaml config file, or use --config", ErrNotConfigured)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. Values in
// the file are merged over Default, then ${VAR} patterns in server
// names are expanded. Unknown keys are rejected.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	cfg.expandVariables()

	return cfg, nil
}

// loadFile merges a single YAML file into the current config. An empty
// file leaves the config unchanged.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in the
// server-name fields.
func (c *Config) expandVariables() {
	c.Generate.Server = expandVars(c.Generate.Server)
	for i, server := range c.MatrixTo.Via {
		c.MatrixTo.Via[i] = expandVars(server)
	}
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		if len(parts) >= 3 {
			return parts[2]
		}
		return ""
	})
}

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []error

	formats := []string{FormatJSON, FormatYAML, FormatCBOR, FormatDiag}
	if !slices.Contains(formats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format %q must be one of: %v", c.Output.Format, formats))
	}

	colors := []string{ColorAuto, ColorAlways, ColorNever}
	if !slices.Contains(colors, c.Output.Color) {
		errs = append(errs, fmt.Errorf("output.color %q must be one of: %v", c.Output.Color, colors))
	}

	for i, server := range c.MatrixTo.Via {
		if _, err := ref.ParseServerName(server); err != nil {
			errs = append(errs, fmt.Errorf("matrix_to.via[%d]: %w", i, err))
		}
	}

	if c.Generate.Server != "" {
		if _, err := ref.ParseServerName(c.Generate.Server); err != nil {
			errs = append(errs, fmt.Errorf("generate.server: %w", err))
		}
	}

	return errors.Join(errs...)
}

// ViaServers returns matrix_to.via as parsed server names.
func (c *Config) ViaServers() ([]ref.ServerName, error) {
	servers := make([]ref.ServerName, 0, len(c.MatrixTo.Via))
	for i, raw := range c.MatrixTo.Via {
		server, err := ref.ParseServerName(raw)
		if err != nil {
			return nil, fmt.Errorf("matrix_to.via[%d]: %w", i, err)
		}
		servers = append(servers, server)
	}
	return servers, nil
}

// GenerateServer returns generate.server as a parsed server name, or
// the zero ServerName when unset.
func (c *Config) GenerateServer() (ref.ServerName, error) {
	if c.Generate.Server == "" {
		return ref.ServerName{}, nil
	}
	server, err := ref.ParseServerName(c.Generate.Server)
	if err != nil {
		return ref.ServerName{}, fmt.Errorf("generate.server: %w", err)
	}
	return server, nil
}
