// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"fmt"
	"strings"
)

// UserID is a validated Matrix user ID (e.g., "@alice:example.com").
//
// A user ID starts with '@' and contains a ':' separating a non-empty
// localpart from the server name. New user IDs are limited to a-z, 0-9
// and . _ = - / +; older homeservers issued localparts from the wider
// printable-ASCII range, and those historical IDs still parse (see
// IsHistorical). Anything outside printable ASCII is rejected with
// ErrInvalidCharacters.
//
// UserID is an immutable value type. The zero value is not valid;
// use IsZero to check.
type UserID struct {
	id         string
	colon      int
	historical bool
}

// ParseUserID validates and wraps a raw Matrix user ID string.
func ParseUserID(raw string) (UserID, error) {
	colon, err := validateDelimitedID(raw, '@', "user ID")
	if err != nil {
		return UserID{}, err
	}
	historical, err := validateUserLocalpart(raw[1:colon])
	if err != nil {
		return UserID{}, fmt.Errorf("user ID %q: %w", raw, err)
	}
	return UserID{id: raw, colon: colon, historical: historical}, nil
}

// MustParseUserID is like ParseUserID but panics on error. Use in tests
// and static initialization where the input is known-valid.
func MustParseUserID(raw string) UserID {
	u, err := ParseUserID(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParseUserID(%q): %v", raw, err))
	}
	return u
}

// NewUserID builds a user ID from a localpart and a server name. The
// localpart is validated with the same rules as ParseUserID, including
// the overall length limit.
func NewUserID(localpart string, server ServerName) (UserID, error) {
	if server.IsZero() {
		return UserID{}, fmt.Errorf("user ID: server name is zero value")
	}
	if strings.IndexByte(localpart, ':') >= 0 {
		return UserID{}, fmt.Errorf("user ID localpart %q contains ':': %w", localpart, ErrInvalidCharacters)
	}
	return ParseUserID("@" + localpart + ":" + server.name)
}

// String returns the full user ID string (e.g., "@alice:example.com").
func (u UserID) String() string { return u.id }

// IsZero reports whether the UserID is the zero value (uninitialized).
func (u UserID) IsZero() bool { return u.id == "" }

// Localpart returns the localpart portion of the user ID (without the
// '@' prefix or ':server' suffix).
func (u UserID) Localpart() string {
	if u.id == "" {
		return ""
	}
	return u.id[1:u.colon]
}

// ServerName returns the server portion of the user ID (after the ':').
func (u UserID) ServerName() ServerName {
	if u.id == "" {
		return ServerName{}
	}
	return ServerName{name: u.id[u.colon+1:]}
}

// IsHistorical reports whether the localpart uses characters outside
// the set allowed for newly registered users.
func (u UserID) IsHistorical() bool { return u.historical }

// Compare orders user IDs by their exact text.
func (u UserID) Compare(other UserID) int {
	return strings.Compare(u.id, other.id)
}

// MatrixToURL returns a matrix.to reference to the user.
func (u UserID) MatrixToURL() MatrixToRef {
	return newMatrixToRef(u.id, nil)
}

// MarshalText implements encoding.TextMarshaler for JSON and other
// text-based serialization formats.
func (u UserID) MarshalText() ([]byte, error) {
	if u.id == "" {
		return []byte{}, nil
	}
	return []byte(u.id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON and other
// text-based serialization formats. Validates the user ID format.
// An empty input produces the zero value (unset user ID).
func (u *UserID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*u = UserID{}
		return nil
	}
	parsed, err := ParseUserID(string(data))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
