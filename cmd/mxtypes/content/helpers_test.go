// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/bureau-foundation/mxtypes/cmd/mxtypes/cli"
	"github.com/bureau-foundation/mxtypes/lib/config"
)

// messageEventJSONC is a hand-written fixture in the style users keep
// in repositories: comments and trailing commas included.
const messageEventJSONC = `{
	// A formatted reply.
	"content": {
		"org.matrix.msc1767.message": [
			{"body": "<b>Hello</b>", "mimetype": "text/html"},
			{"body": "Hello", "mimetype": "text/plain"},
		],
		"m.relates_to": {"m.in_reply_to": {"event_id": "$previous:notareal.hs"}},
	},
	"event_id": "$event:notareal.hs",
	"origin_server_ts": 134829848,
	"room_id": "!roomid:notareal.hs",
	"sender": "@user:notareal.hs",
	"type": "m.message", /* trailing comment */
}`

const bareFileContentJSON = `{
	"org.matrix.msc1767.text": "Upload: report.pdf",
	"org.matrix.msc1767.file": {
		"url": "mxc://notareal.hs/abcdef",
		"name": "report.pdf",
		"mimetype": "application/pdf",
		"size": 1024
	}
}`

type testSession struct {
	*cli.Session
	stdout *bytes.Buffer
	logs   *bytes.Buffer
}

func newTestSession(t *testing.T, format string) testSession {
	t.Helper()
	stdout := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	return testSession{
		Session: &cli.Session{
			Config: config.Default(),
			Output: cli.NewOutput(stdout, format, config.ColorNever),
			Logger: slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
		},
		stdout: stdout,
		logs:   logs,
	}
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
