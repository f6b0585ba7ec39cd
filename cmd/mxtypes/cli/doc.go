// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the mxtypes CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree in
// cmd/mxtypes/commands and dispatched via [Command.Execute], which
// handles flag parsing, subcommand routing, and structured help output
// with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3).
//
// [Output] prints command results in the configured format (json, yaml,
// cbor, diag). JSON and YAML are syntax-highlighted with Chroma when
// color is enabled; [Output.Fields] prints aligned key/value listings
// styled with lipgloss. Color follows the termenv profile of the
// destination, so piped output is always plain.
//
// [ExitError] lets a command choose its exit code after printing its
// own diagnostics.
package cli
