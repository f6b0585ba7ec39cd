// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"fmt"
	"strings"
)

const mxcScheme = "mxc://"

// MxcURI is a validated Matrix content URI (e.g.,
// "mxc://example.com/SEsfnsuifSDFSSEF").
//
// Content URIs name media held by a homeserver: the server name of the
// origin server, a '/', and a media ID of letters, digits, '_' and '-'.
// File and thumbnail facets carry their location as an MxcURI.
//
// MxcURI is an immutable value type. The zero value is not valid;
// use IsZero to check.
type MxcURI struct {
	uri   string
	slash int
}

// ParseMxcURI validates and wraps a raw content URI. Failures wrap
// ErrInvalidMxcURI; a malformed server name additionally wraps
// ErrInvalidServerName.
func ParseMxcURI(raw string) (MxcURI, error) {
	if !strings.HasPrefix(raw, mxcScheme) {
		return MxcURI{}, fmt.Errorf("content URI %q must start with %q: %w", raw, mxcScheme, ErrInvalidMxcURI)
	}
	rest := raw[len(mxcScheme):]
	slash := strings.IndexByte(rest, '/')
	if slash < 0 {
		return MxcURI{}, fmt.Errorf("content URI %q has no media ID: %w", raw, ErrInvalidMxcURI)
	}
	if _, _, _, err := splitServerName(rest[:slash]); err != nil {
		return MxcURI{}, fmt.Errorf("content URI %q: %w: %w", raw, ErrInvalidMxcURI, err)
	}
	mediaID := rest[slash+1:]
	if mediaID == "" {
		return MxcURI{}, fmt.Errorf("content URI %q has an empty media ID: %w", raw, ErrInvalidMxcURI)
	}
	for i := 0; i < len(mediaID); i++ {
		c := mediaID[i]
		if !isASCIIAlphanumeric(c) && c != '_' && c != '-' {
			return MxcURI{}, fmt.Errorf("content URI %q: invalid media ID character %q: %w", raw, c, ErrInvalidMxcURI)
		}
	}
	return MxcURI{uri: raw, slash: len(mxcScheme) + slash}, nil
}

// MustParseMxcURI is like ParseMxcURI but panics on error. Use in tests
// and static initialization where the input is known-valid.
func MustParseMxcURI(raw string) MxcURI {
	m, err := ParseMxcURI(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParseMxcURI(%q): %v", raw, err))
	}
	return m
}

// String returns the full content URI.
func (m MxcURI) String() string { return m.uri }

// IsZero reports whether the MxcURI is the zero value (uninitialized).
func (m MxcURI) IsZero() bool { return m.uri == "" }

// ServerName returns the origin server of the media.
func (m MxcURI) ServerName() ServerName {
	if m.uri == "" {
		return ServerName{}
	}
	return ServerName{name: m.uri[len(mxcScheme):m.slash]}
}

// MediaID returns the server-local media identifier.
func (m MxcURI) MediaID() string {
	if m.uri == "" {
		return ""
	}
	return m.uri[m.slash+1:]
}

// MarshalText implements encoding.TextMarshaler for JSON and other
// text-based serialization formats.
func (m MxcURI) MarshalText() ([]byte, error) {
	if m.uri == "" {
		return []byte{}, nil
	}
	return []byte(m.uri), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON and other
// text-based serialization formats. Validates the URI.
// An empty input produces the zero value.
func (m *MxcURI) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*m = MxcURI{}
		return nil
	}
	parsed, err := ParseMxcURI(string(data))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
