// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package content implements the "mxtypes content" command group:
// decoding and re-encoding extensible-event content through lib/schema.
//
// Input is either a complete message-like event (content plus envelope)
// or, with --type, bare content. JSON input may carry comments and
// trailing commas (JSONC), which is convenient for hand-written
// fixtures. CBOR input is accepted as raw bytes or, with --hex, as
// hex text.
//
// Every document goes through the schema codec, so decoding doubles as
// validation: a missing mandatory facet or malformed facet fails with
// the same error a library caller would see.
package content
