// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
)

// Base64 is binary data written on the wire as unpadded standard
// base64, as Matrix uses for initialization vectors and hashes. Decoding
// also accepts padded input.
//
// The zero value holds no bytes.
type Base64 struct {
	data []byte
}

// NewBase64 wraps data. The slice is copied.
func NewBase64(data []byte) Base64 {
	return Base64{data: bytes.Clone(data)}
}

// ParseBase64 decodes standard base64, padded or not.
func ParseBase64(encoded string) (Base64, error) {
	data, err := decodeUnpadded(base64.RawStdEncoding, encoded)
	if err != nil {
		return Base64{}, err
	}
	return Base64{data: data}, nil
}

// Bytes returns a copy of the decoded data.
func (b Base64) Bytes() []byte { return bytes.Clone(b.data) }

// Equal reports whether both values hold the same bytes.
func (b Base64) Equal(other Base64) bool { return bytes.Equal(b.data, other.data) }

// String returns the unpadded encoding.
func (b Base64) String() string { return base64.RawStdEncoding.EncodeToString(b.data) }

// MarshalText implements encoding.TextMarshaler.
func (b Base64) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Base64) UnmarshalText(data []byte) error {
	parsed, err := ParseBase64(string(data))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Base64URL is binary data written as unpadded URL-safe base64, the
// encoding JSON Web Keys use for key material. Decoding also accepts
// padded input.
type Base64URL struct {
	data []byte
}

// NewBase64URL wraps data. The slice is copied.
func NewBase64URL(data []byte) Base64URL {
	return Base64URL{data: bytes.Clone(data)}
}

// ParseBase64URL decodes URL-safe base64, padded or not.
func ParseBase64URL(encoded string) (Base64URL, error) {
	data, err := decodeUnpadded(base64.RawURLEncoding, encoded)
	if err != nil {
		return Base64URL{}, err
	}
	return Base64URL{data: data}, nil
}

// Bytes returns a copy of the decoded data.
func (b Base64URL) Bytes() []byte { return bytes.Clone(b.data) }

// Equal reports whether both values hold the same bytes.
func (b Base64URL) Equal(other Base64URL) bool { return bytes.Equal(b.data, other.data) }

// String returns the unpadded encoding.
func (b Base64URL) String() string { return base64.RawURLEncoding.EncodeToString(b.data) }

// MarshalText implements encoding.TextMarshaler.
func (b Base64URL) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Base64URL) UnmarshalText(data []byte) error {
	parsed, err := ParseBase64URL(string(data))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

func decodeUnpadded(encoding *base64.Encoding, encoded string) ([]byte, error) {
	data, err := encoding.DecodeString(strings.TrimRight(encoded, "="))
	if err != nil {
		return nil, fmt.Errorf("invalid base64 %q: %w", encoded, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return data, nil
}
