// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package id implements the "mxtypes id" command group: validating
// Matrix identifiers, rendering matrix.to links, and generating room
// IDs.
//
// Every command parses through lib/ref, so the CLI rejects exactly what
// the library rejects. "id parse" exits 1 on invalid input and names
// the failure kind (missing_leading_sigil, invalid_server_name, ...),
// which makes it usable as a validator in shell scripts.
package id
