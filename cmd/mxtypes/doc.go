// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Mxtypes is a command-line front end for the Matrix type libraries.
// It validates identifiers and builds matrix.to links (id), decodes
// and converts extensible-event content between JSON and CBOR
// (content), and encrypts or decrypts media attachments (attachment).
//
// Defaults for output format, color, and matrix.to routing come from
// the YAML file named by MXTYPES_CONFIG or passed with --config.
package main
