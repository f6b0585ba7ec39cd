// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"errors"
	"strings"
	"testing"
)

func TestParseServerName(t *testing.T) {
	tests := []struct {
		input       string
		wantHost    string
		wantPort    uint16
		wantHasPort bool
		wantIP      bool
	}{
		{"example.com", "example.com", 0, false, false},
		{"example.com:443", "example.com", 443, true, false},
		{"example.com:65535", "example.com", 65535, true, false},
		{"EXAMPLE.com", "EXAMPLE.com", 0, false, false},
		{"localhost", "localhost", 0, false, false},
		{"matrix-1.example.com:8448", "matrix-1.example.com", 8448, true, false},
		{"1.2.3.4", "1.2.3.4", 0, false, true},
		{"1.2.3.4:1", "1.2.3.4", 1, true, true},
		{"[::1]", "[::1]", 0, false, true},
		{"[::1]:5000", "[::1]", 5000, true, true},
		{"[2001:db8::ff00:42:8329]", "[2001:db8::ff00:42:8329]", 0, false, true},
		{"[1234:5678::abcd]:5678", "[1234:5678::abcd]", 5678, true, true},
		{"[::ffff:192.0.2.1]", "[::ffff:192.0.2.1]", 0, false, true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			server, err := ParseServerName(test.input)
			if err != nil {
				t.Fatalf("ParseServerName(%q): %v", test.input, err)
			}
			if server.String() != test.input {
				t.Errorf("String() = %q, want %q", server.String(), test.input)
			}
			if got := server.Host(); got != test.wantHost {
				t.Errorf("Host() = %q, want %q", got, test.wantHost)
			}
			port, hasPort := server.Port()
			if port != test.wantPort || hasPort != test.wantHasPort {
				t.Errorf("Port() = (%d, %v), want (%d, %v)", port, hasPort, test.wantPort, test.wantHasPort)
			}
			if got := server.IsIPLiteral(); got != test.wantIP {
				t.Errorf("IsIPLiteral() = %v, want %v", got, test.wantIP)
			}
		})
	}
}

func TestParseServerNameInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"slash", "/"},
		{"underscore", "exa_mple.com"},
		{"space", "example .com"},
		{"non-numeric port", "example.com:notaport"},
		{"empty port", "example.com:"},
		{"port zero", "example.com:0"},
		{"port too large", "example.com:65536"},
		{"port leading zero", "example.com:0443"},
		{"port with sign", "example.com:+443"},
		{"port six digits", "example.com:100000"},
		{"port only", ":443"},
		{"two ports", "example.com:443:443"},
		{"bare ipv6", "::1"},
		{"unclosed bracket", "[::1"},
		{"unclosed bracket with port", "[::1:8448"},
		{"stray closing bracket", "::1]"},
		{"double closing bracket", "[::1]]"},
		{"nested brackets", "[[::1]]"},
		{"empty brackets", "[]"},
		{"ipv4 in brackets", "[1.2.3.4]"},
		{"ipv6 zone", "[fe80::1%eth0]"},
		{"garbage after literal", "[::1]x"},
		{"bad port after literal", "[::1]:port"},
		{"missing port after literal", "[::1]:"},
		{"bracket inside dns name", "exam[ple.com"},
		{"too long host", strings.Repeat("a", 256)},
		{"non-ascii", "exämple.com"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseServerName(test.input)
			if !errors.Is(err, ErrInvalidServerName) {
				t.Fatalf("ParseServerName(%q) error = %v, want %v", test.input, err, ErrInvalidServerName)
			}
		})
	}
}

func TestServerNameTextRoundTrip(t *testing.T) {
	original := MustParseServerName("[::1]:8448")
	data, err := original.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var decoded ServerName
	if err := decoded.UnmarshalText(data); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if decoded != original {
		t.Errorf("round-trip: got %q, want %q", decoded, original)
	}

	if err := decoded.UnmarshalText(nil); err != nil {
		t.Fatalf("UnmarshalText(empty): %v", err)
	}
	if !decoded.IsZero() {
		t.Error("empty input should produce the zero value")
	}

	if err := decoded.UnmarshalText([]byte("bad host")); !errors.Is(err, ErrInvalidServerName) {
		t.Errorf("UnmarshalText(bad) error = %v, want %v", err, ErrInvalidServerName)
	}
}

func TestMustParseServerNamePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseServerName should panic on invalid input")
		}
	}()
	MustParseServerName("[::1")
}
