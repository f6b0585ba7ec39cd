// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ref provides strongly typed, immutable Matrix identifiers.
// Every identifier kind (room ID, room alias, user ID, event ID, server
// name, MXC content URI) is represented by a value type with an
// unexported field, so the only way to obtain one is through a
// validating constructor.
//
// Identifier grammar follows the Matrix appendices:
//
//   - Room IDs: !localpart:server_name
//   - Room aliases: #localpart:server_name
//   - User IDs: @localpart:server_name
//   - Event IDs: $localpart:server_name (room versions 1 and 2) or
//     $opaque (room version 3 and later)
//   - Server names: host[:port], where host is a DNS name, an IPv4
//     literal, or a bracketed IPv6 literal
//
// Validation is deterministic and first-failure-wins: a missing sigil
// is reported before a missing delimiter, which is reported before an
// invalid server name, which is reported before invalid localpart
// characters. Each failure wraps one of the sentinel errors declared in
// errors.go; use errors.Is to test for a kind.
//
// The validated text is stored verbatim. Nothing is normalized, so
// String returns exactly what was parsed. Accessors such as Localpart
// and ServerName slice the stored string and never re-validate.
//
// JSON and CBOR marshaling use the canonical string form via
// encoding.TextMarshaler. Unmarshaling validates; an empty input
// produces the zero value.
//
// matrix.to references are built with the MatrixToURL methods and
// rendered through MatrixToRef.String.
package ref
