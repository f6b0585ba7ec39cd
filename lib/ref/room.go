// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
)

// roomLocalpartLength is the number of random characters in a
// generated room ID localpart.
const roomLocalpartLength = 18

// RoomID is a validated Matrix room ID (e.g., "!n8f893n9:example.com").
//
// Room IDs always start with '!' and contain a ':' separating the
// opaque localpart from the server name of the room's creator. The
// localpart may be empty ("!:example.com" is valid) and may contain any
// byte except control characters.
//
// RoomID is an immutable value type. The zero value is not valid;
// use IsZero to check.
type RoomID struct {
	id    string
	colon int
}

// ParseRoomID validates and wraps a raw Matrix room ID string.
func ParseRoomID(raw string) (RoomID, error) {
	colon, err := validateDelimitedID(raw, '!', "room ID")
	if err != nil {
		return RoomID{}, err
	}
	if err := validateOpaqueLocalpart(raw[1:colon], "room ID"); err != nil {
		return RoomID{}, fmt.Errorf("room ID %q: %w", raw, err)
	}
	return RoomID{id: raw, colon: colon}, nil
}

// MustParseRoomID is like ParseRoomID but panics on error. Use in tests
// and static initialization where the input is known-valid.
func MustParseRoomID(raw string) RoomID {
	r, err := ParseRoomID(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParseRoomID(%q): %v", raw, err))
	}
	return r
}

// NewRoomID generates a room ID on the given server with a localpart of
// 18 random alphanumeric characters read from random. The result is
// valid by construction. A server name too long to fit the identifier
// length limit fails with ErrMaximumLengthExceeded. Pass
// crypto/rand.Reader in production, or use GenerateRoomID.
func NewRoomID(server ServerName, random io.Reader) (RoomID, error) {
	if server.IsZero() {
		return RoomID{}, fmt.Errorf("generating room ID: server name is zero value")
	}
	if length := 1 + roomLocalpartLength + 1 + len(server.name); length > maxIdentifierLength {
		return RoomID{}, fmt.Errorf("generating room ID on %q: would be %d bytes, maximum is %d: %w",
			server.name, length, maxIdentifierLength, ErrMaximumLengthExceeded)
	}
	localpart, err := generateLocalpart(roomLocalpartLength, random)
	if err != nil {
		return RoomID{}, fmt.Errorf("generating room ID: %w", err)
	}
	id := "!" + localpart + ":" + server.name
	return RoomID{id: id, colon: 1 + len(localpart)}, nil
}

// GenerateRoomID is NewRoomID using crypto/rand.
func GenerateRoomID(server ServerName) (RoomID, error) {
	return NewRoomID(server, rand.Reader)
}

// String returns the full room ID string (e.g., "!n8f893n9:example.com").
func (r RoomID) String() string { return r.id }

// IsZero reports whether the RoomID is the zero value (uninitialized).
func (r RoomID) IsZero() bool { return r.id == "" }

// Localpart returns the opaque part between '!' and the delimiter.
func (r RoomID) Localpart() string {
	if r.id == "" {
		return ""
	}
	return r.id[1:r.colon]
}

// ServerName returns the server name after the delimiter.
func (r RoomID) ServerName() ServerName {
	if r.id == "" {
		return ServerName{}
	}
	return ServerName{name: r.id[r.colon+1:]}
}

// Compare orders room IDs by their exact text.
func (r RoomID) Compare(other RoomID) int {
	return strings.Compare(r.id, other.id)
}

// MatrixToURL returns a matrix.to reference to the room. via lists
// servers that can route to it; they are rendered in order.
func (r RoomID) MatrixToURL(via ...ServerName) MatrixToRef {
	return newMatrixToRef(r.id, via)
}

// MarshalText implements encoding.TextMarshaler for JSON and other
// text-based serialization formats.
func (r RoomID) MarshalText() ([]byte, error) {
	if r.id == "" {
		return []byte{}, nil
	}
	return []byte(r.id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON and other
// text-based serialization formats. Validates the room ID format.
// An empty input produces the zero value (unset room ID).
func (r *RoomID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*r = RoomID{}
		return nil
	}
	parsed, err := ParseRoomID(string(data))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
