// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"fmt"
	"strings"
)

// EventID is a validated Matrix event ID.
//
// Room versions 1 and 2 use "$localpart:server_name"; from room version
// 3 onward event IDs are "$" followed by an opaque hash with no server
// name. Both forms are accepted: text containing a ':' is held to the
// delimited grammar (including a valid server name), text without one
// only needs the sigil and a non-empty opaque part.
//
// EventID is an immutable value type. The zero value is not valid;
// use IsZero to check.
type EventID struct {
	id    string
	colon int // 0 for the opaque form
}

// ParseEventID validates and wraps a raw Matrix event ID string.
func ParseEventID(raw string) (EventID, error) {
	if strings.IndexByte(raw, ':') >= 0 {
		colon, err := validateDelimitedID(raw, '$', "event ID")
		if err != nil {
			return EventID{}, err
		}
		if err := validateOpaqueLocalpart(raw[1:colon], "event ID"); err != nil {
			return EventID{}, fmt.Errorf("event ID %q: %w", raw, err)
		}
		return EventID{id: raw, colon: colon}, nil
	}

	if raw == "" || raw[0] != '$' {
		return EventID{}, fmt.Errorf("event ID %q must start with '$': %w", raw, ErrMissingLeadingSigil)
	}
	if len(raw) > maxIdentifierLength {
		return EventID{}, fmt.Errorf("event ID is %d bytes, maximum is %d: %w", len(raw), maxIdentifierLength, ErrMaximumLengthExceeded)
	}
	if len(raw) < 2 {
		return EventID{}, fmt.Errorf("event ID %q has no content after '$': %w", raw, ErrInvalidCharacters)
	}
	if err := validateOpaqueLocalpart(raw[1:], "event ID"); err != nil {
		return EventID{}, fmt.Errorf("event ID %q: %w", raw, err)
	}
	return EventID{id: raw}, nil
}

// MustParseEventID is like ParseEventID but panics on error. Use in
// tests and static initialization where the input is known-valid.
func MustParseEventID(raw string) EventID {
	e, err := ParseEventID(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParseEventID(%q): %v", raw, err))
	}
	return e
}

// String returns the full event ID string.
func (e EventID) String() string { return e.id }

// IsZero reports whether the EventID is the zero value (uninitialized).
func (e EventID) IsZero() bool { return e.id == "" }

// Localpart returns the text between '$' and the delimiter, or the
// whole opaque part for room version 3+ event IDs.
func (e EventID) Localpart() string {
	if e.id == "" {
		return ""
	}
	if e.colon == 0 {
		return e.id[1:]
	}
	return e.id[1:e.colon]
}

// ServerName returns the embedded server name and true for the legacy
// delimited form. Opaque event IDs have none.
func (e EventID) ServerName() (ServerName, bool) {
	if e.colon == 0 {
		return ServerName{}, false
	}
	return ServerName{name: e.id[e.colon+1:]}, true
}

// Compare orders event IDs by their exact text.
func (e EventID) Compare(other EventID) int {
	return strings.Compare(e.id, other.id)
}

// MatrixToURL returns a matrix.to reference to this event inside room,
// rendered as https://matrix.to/#/<room>/<event>.
func (e EventID) MatrixToURL(room RoomID, via ...ServerName) MatrixToRef {
	return MatrixToRef{id: room.id, event: e.id, via: via}
}

// MarshalText implements encoding.TextMarshaler for JSON and other
// text-based serialization formats.
func (e EventID) MarshalText() ([]byte, error) {
	if e.id == "" {
		return []byte{}, nil
	}
	return []byte(e.id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON and other
// text-based serialization formats. Validates the event ID format.
// An empty input produces the zero value (unset event ID).
func (e *EventID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*e = EventID{}
		return nil
	}
	parsed, err := ParseEventID(string(data))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
