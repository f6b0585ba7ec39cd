// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime"
	"strings"
	"testing"
)

func setStamp(t *testing.T, commit, dirty, built string) {
	t.Helper()
	savedCommit, savedDirty, savedBuilt := GitCommit, GitDirty, BuildTime
	t.Cleanup(func() {
		GitCommit, GitDirty, BuildTime = savedCommit, savedDirty, savedBuilt
	})
	GitCommit, GitDirty, BuildTime = commit, dirty, built
}

func TestInfo(t *testing.T) {
	setStamp(t, "abc1234", "false", "2026-03-01T12:00:00Z")

	want := Version + " (abc1234, 2026-03-01T12:00:00Z)"
	if got := Info(); got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}

func TestInfo_Dirty(t *testing.T) {
	setStamp(t, "abc1234", "true", "2026-03-01T12:00:00Z")

	if got := Info(); !strings.Contains(got, "abc1234-dirty") {
		t.Errorf("Info() = %q, want a -dirty commit", got)
	}
}

func TestFull(t *testing.T) {
	setStamp(t, "abc1234", "false", "now")

	full := Full()
	if !strings.HasPrefix(full, Info()) {
		t.Errorf("Full() = %q, should start with Info()", full)
	}
	if !strings.Contains(full, runtime.Version()) {
		t.Errorf("Full() = %q, missing Go version", full)
	}
	if !strings.Contains(full, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("Full() = %q, missing platform", full)
	}
}

func TestShort(t *testing.T) {
	if Short() != Version {
		t.Errorf("Short() = %q, want %q", Short(), Version)
	}
}
