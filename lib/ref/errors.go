// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import "errors"

// Identifier validation failures. Parse functions wrap exactly one of
// these with the offending input, so callers can branch with errors.Is:
//
//	if errors.Is(err, ref.ErrInvalidServerName) { ... }
var (
	// ErrMissingLeadingSigil: the text does not start with the sigil
	// for its kind ('!', '#', '@', '$'). The empty string fails here.
	ErrMissingLeadingSigil = errors.New("missing leading sigil")

	// ErrMissingDelimiter: no ':' separates the localpart from the
	// server name.
	ErrMissingDelimiter = errors.New("missing ':' delimiter")

	// ErrInvalidServerName: the host or port is malformed. Covers bad
	// DNS names, out-of-range ports, and malformed IPv6 literals
	// including unbalanced brackets.
	ErrInvalidServerName = errors.New("invalid server name")

	// ErrInvalidCharacters: the localpart contains characters the
	// identifier kind does not allow.
	ErrInvalidCharacters = errors.New("invalid characters")

	// ErrMaximumLengthExceeded: the identifier is longer than 255 bytes.
	ErrMaximumLengthExceeded = errors.New("maximum length exceeded")

	// ErrInvalidMxcURI: the text is not an mxc://server/media_id URI.
	ErrInvalidMxcURI = errors.New("invalid mxc URI")
)
