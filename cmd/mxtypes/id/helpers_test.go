// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package id

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/bureau-foundation/mxtypes/cmd/mxtypes/cli"
	"github.com/bureau-foundation/mxtypes/lib/config"
)

type testSession struct {
	*cli.Session
	stdout *bytes.Buffer
	logs   *bytes.Buffer
}

func newTestSession(t *testing.T, cfg *config.Config) testSession {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	stdout := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	return testSession{
		Session: &cli.Session{
			Config: cfg,
			Output: cli.NewOutput(stdout, config.FormatJSON, config.ColorNever),
			Logger: slog.New(slog.NewTextHandler(logs, nil)),
		},
		stdout: stdout,
		logs:   logs,
	}
}
