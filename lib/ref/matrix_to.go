// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import "strings"

const matrixToBaseURL = "https://matrix.to/#/"

// MatrixToRef is a reference to a user, room, room alias, or event in
// a room. Its String method renders a matrix.to URL:
//
//	https://matrix.to/#/<percent-encoded-id>[?via=<server>[&via=<server>]...]
//
// Every byte that is not an ASCII letter or digit is percent-encoded,
// including '!', '@', '$', ':' and '.'. That is stricter than RFC 3986
// component encoding and matches what Matrix clients emit. The
// reference trusts its identifiers; they were validated when parsed.
type MatrixToRef struct {
	id    string
	event string
	via   []ServerName
}

func newMatrixToRef(id string, via []ServerName) MatrixToRef {
	return MatrixToRef{id: id, via: via}
}

// String renders the matrix.to URL. Routing hints appear in the order
// they were supplied.
func (r MatrixToRef) String() string {
	var builder strings.Builder
	builder.WriteString(matrixToBaseURL)
	percentEncode(&builder, r.id)
	if r.event != "" {
		builder.WriteByte('/')
		percentEncode(&builder, r.event)
	}
	for i, server := range r.via {
		if i == 0 {
			builder.WriteString("?via=")
		} else {
			builder.WriteString("&via=")
		}
		builder.WriteString(server.name)
	}
	return builder.String()
}

// MarshalText renders the URL, so a MatrixToRef can sit directly in a
// JSON document.
func (r MatrixToRef) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

const upperHex = "0123456789ABCDEF"

// percentEncode writes text with every non-alphanumeric byte escaped.
func percentEncode(builder *strings.Builder, text string) {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isASCIIAlphanumeric(c) {
			builder.WriteByte(c)
			continue
		}
		builder.WriteByte('%')
		builder.WriteByte(upperHex[c>>4])
		builder.WriteByte(upperHex[c&0x0F])
	}
}

func isASCIIAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
