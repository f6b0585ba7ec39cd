// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/mxtypes/lib/ref"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mxtypes.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.Format != FormatJSON {
		t.Errorf("expected format=json, got %s", cfg.Output.Format)
	}
	if cfg.Output.Color != ColorAuto {
		t.Errorf("expected color=auto, got %s", cfg.Output.Color)
	}
	if len(cfg.MatrixTo.Via) != 0 || cfg.Generate.Server != "" {
		t.Errorf("expected no servers by default, got %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() should validate: %v", err)
	}
}

func TestLoad_RequiresEnvironmentVariable(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	_, err := Load()
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("Load() error = %v, want %v", err, ErrNotConfigured)
	}
}

func TestLoad_WithEnvironmentVariable(t *testing.T) {
	path := writeConfig(t, `
output:
  format: yaml
matrix_to:
  via:
    - notareal.hs
    - example.org:8448
generate:
  server: example.com
`)
	t.Setenv(EnvironmentVariable, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Output.Format != FormatYAML {
		t.Errorf("expected format=yaml, got %s", cfg.Output.Format)
	}
	// Unset fields keep their defaults.
	if cfg.Output.Color != ColorAuto {
		t.Errorf("expected color=auto, got %s", cfg.Output.Color)
	}

	via, err := cfg.ViaServers()
	if err != nil {
		t.Fatalf("ViaServers: %v", err)
	}
	want := []ref.ServerName{ref.MustParseServerName("notareal.hs"), ref.MustParseServerName("example.org:8448")}
	if len(via) != len(want) || via[0] != want[0] || via[1] != want[1] {
		t.Errorf("ViaServers() = %v, want %v", via, want)
	}

	server, err := cfg.GenerateServer()
	if err != nil {
		t.Fatalf("GenerateServer: %v", err)
	}
	if server.String() != "example.com" {
		t.Errorf("GenerateServer() = %q, want example.com", server)
	}
}

func TestLoadFile_Empty(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadFile(empty): %v", err)
	}
	if cfg.Output.Format != FormatJSON {
		t.Errorf("empty file should keep defaults, got format=%s", cfg.Output.Format)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestLoadFile_RejectsUnknownKeys(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "output:\n  formt: yaml\n"))
	if err == nil {
		t.Fatal("LoadFile should reject misspelled keys")
	}
	if !strings.Contains(err.Error(), "formt") {
		t.Errorf("error %q should name the unknown key", err)
	}
}

func TestLoadFile_ExpandsVariables(t *testing.T) {
	t.Setenv("MXTYPES_TEST_SERVER", "matrix.example.net")
	t.Setenv("MXTYPES_TEST_UNSET", "")

	cfg, err := LoadFile(writeConfig(t, `
matrix_to:
  via:
    - ${MXTYPES_TEST_SERVER}
    - ${MXTYPES_TEST_UNSET:-fallback.example.org}
generate:
  server: ${MXTYPES_TEST_SERVER}:8448
`))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if got := cfg.MatrixTo.Via; len(got) != 2 || got[0] != "matrix.example.net" || got[1] != "fallback.example.org" {
		t.Errorf("via = %v", got)
	}
	if cfg.Generate.Server != "matrix.example.net:8448" {
		t.Errorf("generate.server = %q", cfg.Generate.Server)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*Config)
		wantText []string
	}{
		{
			name:     "bad format",
			modify:   func(c *Config) { c.Output.Format = "xml" },
			wantText: []string{"output.format"},
		},
		{
			name:     "bad color",
			modify:   func(c *Config) { c.Output.Color = "sometimes" },
			wantText: []string{"output.color"},
		},
		{
			name:     "bad via",
			modify:   func(c *Config) { c.MatrixTo.Via = []string{"ok.example.com", "bad_host"} },
			wantText: []string{"matrix_to.via[1]"},
		},
		{
			name:     "bad generate server",
			modify:   func(c *Config) { c.Generate.Server = "example.com:0" },
			wantText: []string{"generate.server"},
		},
		{
			name: "all errors reported together",
			modify: func(c *Config) {
				c.Output.Format = "xml"
				c.Output.Color = "sometimes"
			},
			wantText: []string{"output.format", "output.color"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			for _, text := range test.wantText {
				if !strings.Contains(err.Error(), text) {
					t.Errorf("error %q does not mention %s", err, text)
				}
			}
		})
	}
}

func TestValidate_ServerErrorsAreMatchable(t *testing.T) {
	cfg := Default()
	cfg.Generate.Server = "bad_host"
	if err := cfg.Validate(); !errors.Is(err, ref.ErrInvalidServerName) {
		t.Errorf("Validate() error = %v, want %v", err, ref.ErrInvalidServerName)
	}
	if _, err := cfg.GenerateServer(); !errors.Is(err, ref.ErrInvalidServerName) {
		t.Errorf("GenerateServer() error = %v, want %v", err, ref.ErrInvalidServerName)
	}
}
