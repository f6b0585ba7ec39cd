// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogger_JSONWhenPiped(t *testing.T) {
	var buffer bytes.Buffer
	logger := newLogger(&buffer, false, false)

	logger.Warn("facet ignored", "key", "org.example.unknown")

	var record map[string]any
	if err := json.Unmarshal(buffer.Bytes(), &record); err != nil {
		t.Fatalf("piped log line is not JSON: %v (%q)", err, buffer.String())
	}
	if record["msg"] != "facet ignored" || record["key"] != "org.example.unknown" {
		t.Errorf("record = %v", record)
	}
}

func TestLogger_TextOnTerminal(t *testing.T) {
	var buffer bytes.Buffer
	logger := newLogger(&buffer, true, false)

	logger.Warn("facet ignored")

	if !strings.Contains(buffer.String(), "msg=\"facet ignored\"") {
		t.Errorf("terminal log line = %q, want text handler output", buffer.String())
	}
}

func TestLogger_VerboseEnablesDebug(t *testing.T) {
	var quiet, verbose bytes.Buffer
	newLogger(&quiet, false, false).Debug("decoding")
	newLogger(&verbose, false, true).Debug("decoding")

	if quiet.Len() != 0 {
		t.Errorf("debug record written without verbose: %q", quiet.String())
	}
	if verbose.Len() == 0 {
		t.Error("debug record missing with verbose")
	}
}
