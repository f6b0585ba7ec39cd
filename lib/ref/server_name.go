// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// maxHostLength bounds DNS names in server names.
const maxHostLength = 255

// ServerName is a validated Matrix server name (e.g., "example.com",
// "matrix.example.com:8448", "[::1]:6167").
//
// Server names identify homeservers. They appear after the delimiting
// colon in room IDs, room aliases, user IDs, and legacy event IDs, and
// as routing hints in matrix.to references.
//
// ServerName is an immutable value type. The zero value is not valid;
// use IsZero to check.
type ServerName struct {
	name string
}

// ParseServerName validates and wraps a raw server name. The grammar is
// host[:port]:
//
//   - host is a DNS name (A-Z, a-z, 0-9, '-', '.'), an IPv4 literal, or
//     an IPv6 literal in mandatory square brackets;
//   - port is a decimal integer in 1-65535 without leading zeros.
//
// The port is found by scanning from the right for the last ':' and is
// only treated as a port if the suffix parses as one. Bracketed IPv6
// literals are matched before the port scan, so the colons inside them
// are never mistaken for the port delimiter. Any failure wraps
// ErrInvalidServerName.
func ParseServerName(raw string) (ServerName, error) {
	if _, _, _, err := splitServerName(raw); err != nil {
		return ServerName{}, err
	}
	return ServerName{name: raw}, nil
}

// MustParseServerName is like ParseServerName but panics on error. Use
// in tests and static initialization where the input is known-valid.
func MustParseServerName(raw string) ServerName {
	s, err := ParseServerName(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParseServerName(%q): %v", raw, err))
	}
	return s
}

// String returns the server name exactly as parsed.
func (s ServerName) String() string { return s.name }

// IsZero reports whether the ServerName is the zero value (uninitialized).
func (s ServerName) IsZero() bool { return s.name == "" }

// Host returns the host part, including the brackets of an IPv6 literal.
func (s ServerName) Host() string {
	host, _, _, _ := splitServerName(s.name)
	return host
}

// Port returns the explicit port and true, or 0 and false when the
// server name has no port.
func (s ServerName) Port() (uint16, bool) {
	_, port, hasPort, _ := splitServerName(s.name)
	return port, hasPort
}

// IsIPLiteral reports whether the host is an IPv4 or IPv6 address
// rather than a DNS name.
func (s ServerName) IsIPLiteral() bool {
	host := s.Host()
	if host == "" {
		return false
	}
	if host[0] == '[' {
		return true
	}
	address, err := netip.ParseAddr(host)
	return err == nil && address.Is4()
}

// Compare orders server names by their exact text.
func (s ServerName) Compare(other ServerName) int {
	return strings.Compare(s.name, other.name)
}

// MarshalText implements encoding.TextMarshaler for JSON and other
// text-based serialization formats.
func (s ServerName) MarshalText() ([]byte, error) {
	if s.name == "" {
		return []byte{}, nil
	}
	return []byte(s.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON and other
// text-based serialization formats. Validates the server name.
// An empty input produces the zero value (unset server name).
func (s *ServerName) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*s = ServerName{}
		return nil
	}
	parsed, err := ParseServerName(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// splitServerName parses host[:port]. host keeps IPv6 brackets.
func splitServerName(raw string) (host string, port uint16, hasPort bool, err error) {
	if raw == "" {
		return "", 0, false, fmt.Errorf("server name is empty: %w", ErrInvalidServerName)
	}

	if raw[0] == '[' {
		closing := strings.IndexByte(raw, ']')
		if closing < 0 {
			return "", 0, false, fmt.Errorf("server name %q: unbalanced '[': %w", raw, ErrInvalidServerName)
		}
		if !isIPv6Literal(raw[1:closing]) {
			return "", 0, false, fmt.Errorf("server name %q: malformed IPv6 literal: %w", raw, ErrInvalidServerName)
		}
		host = raw[:closing+1]
		rest := raw[closing+1:]
		if rest == "" {
			return host, 0, false, nil
		}
		if rest[0] != ':' {
			return "", 0, false, fmt.Errorf("server name %q: unexpected %q after IPv6 literal: %w", raw, rest, ErrInvalidServerName)
		}
		port, ok := parsePort(rest[1:])
		if !ok {
			return "", 0, false, fmt.Errorf("server name %q: invalid port %q: %w", raw, rest[1:], ErrInvalidServerName)
		}
		return host, port, true, nil
	}

	host = raw
	if index := strings.LastIndexByte(raw, ':'); index >= 0 {
		if parsed, ok := parsePort(raw[index+1:]); ok {
			host = raw[:index]
			port = parsed
			hasPort = true
		}
	}
	if !isDNSHost(host) {
		return "", 0, false, fmt.Errorf("server name %q: invalid host %q: %w", raw, host, ErrInvalidServerName)
	}
	return host, port, hasPort, nil
}

// isIPv6Literal reports whether text (without brackets) is an IPv6
// address. Zones are not part of the Matrix grammar.
func isIPv6Literal(text string) bool {
	if text == "" || strings.ContainsAny(text, "[]%") {
		return false
	}
	address, err := netip.ParseAddr(text)
	return err == nil && address.Is6()
}

// isDNSHost checks the dns-name production: 1-255 characters from
// A-Z, a-z, 0-9, '-' and '.'. IPv4 literals satisfy it as well.
func isDNSHost(host string) bool {
	if host == "" || len(host) > maxHostLength {
		return false
	}
	for i := 0; i < len(host); i++ {
		c := host[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '.':
		default:
			return false
		}
	}
	return true
}

// parsePort accepts 1-65535 in plain decimal with no sign and no
// leading zeros.
func parsePort(text string) (uint16, bool) {
	if text == "" || len(text) > 5 {
		return 0, false
	}
	if len(text) > 1 && text[0] == '0' {
		return 0, false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return 0, false
		}
	}
	value, err := strconv.ParseUint(text, 10, 16)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint16(value), true
}
