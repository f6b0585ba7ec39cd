// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the mxtypes
// command.
//
// Configuration is loaded from a single file specified by either the
// MXTYPES_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no ~/.config discovery and no automatic
// file search. Without either, callers run on [Default].
//
// Variable expansion is performed on server-name fields after loading:
// ${VAR} and ${VAR:-default} patterns are replaced from the environment,
// so one file can serve several homeservers. No other environment
// variables override config values.
//
// Key exports:
//
//   - [Config] -- output preferences, matrix.to routing, ID generation
//   - [Default] -- returns a Config with built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.Validate] -- reports every invalid field at once
package config
