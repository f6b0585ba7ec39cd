// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the encoding configuration shared by mxtypes
// packages.
//
// Event content has two wire forms:
//
//   - JSON, the Matrix client-server and federation format, and the
//     form fixtures and CLI input are written in.
//   - CBOR, a compact binary form of the same object for internal
//     storage and IPC. Keys, nesting and omission rules are identical;
//     only the encoding differs.
//
// The CBOR encoder uses Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, smallest integer encoding, no indefinite-length
// items. The same logical content always produces identical bytes.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// When the format is chosen at runtime (CLI flags, configuration):
//
//	format, err := codec.ParseFormat("cbor")
//	data, err := format.Marshal(value)
//
// # Struct Tag Rules
//
// Types that appear on the Matrix wire carry `json` tags only.
// fxamacker/cbor v2 reads `json` tags as a fallback when `cbor` tags
// are absent, so one tag controls field naming and omitempty for both
// formats. Identifier types from lib/ref encode as text strings through
// encoding.TextMarshaler in both formats.
package codec
