// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

// EventType identifies a Matrix event type ("m.image", "m.file",
// "m.room.message"). It is the "type" discriminator of an event
// envelope; lib/schema uses it to pick the content variant.
//
// EventType is a named string type, not a struct wrapper: event types
// are opaque identifiers that need no parsing or validation. The type
// exists purely for compile-time safety.
type EventType string

// String returns the event type string (e.g., "m.image").
func (t EventType) String() string { return string(t) }
