// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"fmt"
	"strings"
)

// maxIdentifierLength is the maximum length in bytes of any Matrix
// identifier, sigil and server name included.
const maxIdentifierLength = 255

// Localpart character classes. conformingUserChars is the set the
// Matrix protocol allows in newly registered user IDs; historicalUserChars
// is the wider set older homeservers handed out and that must still be
// accepted on the wire.
var (
	conformingUserChars [256]bool
	historicalUserChars [256]bool
)

func init() {
	for c := byte('a'); c <= 'z'; c++ {
		conformingUserChars[c] = true
	}
	for c := byte('0'); c <= '9'; c++ {
		conformingUserChars[c] = true
	}
	for _, c := range []byte("._=-/+") {
		conformingUserChars[c] = true
	}

	for c := byte(0x21); c <= 0x7E; c++ {
		historicalUserChars[c] = c != ':'
	}
}

// validateDelimitedID checks the shared <sigil><localpart>:<server_name>
// shape and returns the index of the delimiting colon. The steps run in
// a fixed order and the first failure is returned:
//
//  1. leading sigil
//  2. overall length
//  3. a ':' after the sigil (the first one is the delimiter)
//  4. the remainder parses as a server name
//
// Localpart character rules are kind-specific and checked by the
// caller after this returns.
func validateDelimitedID(raw string, sigil byte, kind string) (int, error) {
	if raw == "" || raw[0] != sigil {
		return 0, fmt.Errorf("%s %q must start with '%c': %w", kind, raw, sigil, ErrMissingLeadingSigil)
	}
	if len(raw) > maxIdentifierLength {
		return 0, fmt.Errorf("%s is %d bytes, maximum is %d: %w", kind, len(raw), maxIdentifierLength, ErrMaximumLengthExceeded)
	}

	colonIndex := strings.IndexByte(raw[1:], ':')
	if colonIndex < 0 {
		return 0, fmt.Errorf("%s %q has no ':server_name' suffix: %w", kind, raw, ErrMissingDelimiter)
	}
	colonIndex++ // adjust for [1:] offset

	if _, _, _, err := splitServerName(raw[colonIndex+1:]); err != nil {
		return 0, fmt.Errorf("%s %q: %w", kind, raw, err)
	}
	return colonIndex, nil
}

// validateOpaqueLocalpart accepts any byte except ASCII control
// characters. Room IDs, room aliases, and event IDs use this rule; their
// localparts are server-assigned and otherwise opaque.
func validateOpaqueLocalpart(localpart, kind string) error {
	for i := 0; i < len(localpart); i++ {
		if c := localpart[i]; c < 0x20 || c == 0x7F {
			return fmt.Errorf("%s localpart: control character %#02x at position %d: %w", kind, c, i, ErrInvalidCharacters)
		}
	}
	return nil
}

// validateUserLocalpart checks a user ID localpart and reports whether
// it only passes under the historical character set.
func validateUserLocalpart(localpart string) (historical bool, err error) {
	if localpart == "" {
		return false, fmt.Errorf("user ID localpart is empty: %w", ErrInvalidCharacters)
	}
	for i := 0; i < len(localpart); i++ {
		c := localpart[i]
		if conformingUserChars[c] {
			continue
		}
		if !historicalUserChars[c] {
			return false, fmt.Errorf("user ID localpart: invalid character %q at position %d: %w", c, i, ErrInvalidCharacters)
		}
		historical = true
	}
	return historical, nil
}
