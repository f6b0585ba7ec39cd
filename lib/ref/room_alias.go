// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"fmt"
	"strings"
)

// RoomAlias is a validated Matrix room alias (e.g., "#lobby:example.com").
//
// Room aliases are human-readable names that resolve to opaque RoomIDs.
// They always start with '#' and contain a ':' separating the localpart
// from the server name.
//
// RoomAlias is an immutable value type. The zero value is not valid;
// use IsZero to check.
type RoomAlias struct {
	alias string
	colon int
}

// ParseRoomAlias validates and wraps a raw Matrix room alias string.
func ParseRoomAlias(raw string) (RoomAlias, error) {
	colon, err := validateDelimitedID(raw, '#', "room alias")
	if err != nil {
		return RoomAlias{}, err
	}
	if err := validateOpaqueLocalpart(raw[1:colon], "room alias"); err != nil {
		return RoomAlias{}, fmt.Errorf("room alias %q: %w", raw, err)
	}
	return RoomAlias{alias: raw, colon: colon}, nil
}

// MustParseRoomAlias is like ParseRoomAlias but panics on error. Use in
// tests and static initialization where the input is known-valid.
func MustParseRoomAlias(raw string) RoomAlias {
	a, err := ParseRoomAlias(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParseRoomAlias(%q): %v", raw, err))
	}
	return a
}

// String returns the full room alias string (e.g., "#lobby:example.com").
func (a RoomAlias) String() string { return a.alias }

// IsZero reports whether the RoomAlias is the zero value (uninitialized).
func (a RoomAlias) IsZero() bool { return a.alias == "" }

// Localpart returns the alias localpart without the '#' prefix or ':server' suffix.
func (a RoomAlias) Localpart() string {
	if a.alias == "" {
		return ""
	}
	return a.alias[1:a.colon]
}

// ServerName returns the server name from the alias.
func (a RoomAlias) ServerName() ServerName {
	if a.alias == "" {
		return ServerName{}
	}
	return ServerName{name: a.alias[a.colon+1:]}
}

// Compare orders room aliases by their exact text.
func (a RoomAlias) Compare(other RoomAlias) int {
	return strings.Compare(a.alias, other.alias)
}

// MatrixToURL returns a matrix.to reference to the alias. Aliases are
// resolvable on their own server, so no routing hints are attached.
func (a RoomAlias) MatrixToURL() MatrixToRef {
	return newMatrixToRef(a.alias, nil)
}

// MarshalText implements encoding.TextMarshaler for JSON and other
// text-based serialization formats.
func (a RoomAlias) MarshalText() ([]byte, error) {
	if a.alias == "" {
		return []byte{}, nil
	}
	return []byte(a.alias), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON and other
// text-based serialization formats. Validates the room alias format.
// An empty input produces the zero value (unset room alias).
func (a *RoomAlias) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*a = RoomAlias{}
		return nil
	}
	parsed, err := ParseRoomAlias(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
