// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseEventID(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
	}{
		// Room version 3+ opaque IDs.
		{"$abc123xyz", nil},
		{"$acR1l0raoZnm60CBwAVgqbZqoO/mYU81xysh1u7XcJk", nil},
		// Room version 1 and 2 IDs with a server name.
		{"$replyevent:example.com", nil},
		{"$event:notareal.hs:8448", nil},
		{"$:example.com", nil},
		{"", ErrMissingLeadingSigil},
		{"!abc123", ErrMissingLeadingSigil},
		{"abc:example.com", ErrMissingLeadingSigil},
		{"$", ErrInvalidCharacters},
		{"$abc:/", ErrInvalidServerName},
		{"$abc:example.com:notaport", ErrInvalidServerName},
		{"$ab\x00c", ErrInvalidCharacters},
	}

	for _, test := range tests {
		_, err := ParseEventID(test.input)
		if test.wantErr == nil {
			if err != nil {
				t.Errorf("ParseEventID(%q): unexpected error %v", test.input, err)
			}
			continue
		}
		if !errors.Is(err, test.wantErr) {
			t.Errorf("ParseEventID(%q): error = %v, want %v", test.input, err, test.wantErr)
		}
	}
}

func TestEventIDForms(t *testing.T) {
	legacy := MustParseEventID("$replyevent:example.com")
	if legacy.Localpart() != "replyevent" {
		t.Errorf("Localpart() = %q, want %q", legacy.Localpart(), "replyevent")
	}
	server, ok := legacy.ServerName()
	if !ok || server.String() != "example.com" {
		t.Errorf("ServerName() = (%q, %v), want (example.com, true)", server, ok)
	}

	opaque := MustParseEventID("$abc123xyz")
	if opaque.Localpart() != "abc123xyz" {
		t.Errorf("Localpart() = %q, want %q", opaque.Localpart(), "abc123xyz")
	}
	if _, ok := opaque.ServerName(); ok {
		t.Error("opaque event ID should have no server name")
	}
}

func TestEventIDRoundTrip(t *testing.T) {
	original := MustParseEventID("$abc123xyz")

	if original.String() != "$abc123xyz" {
		t.Errorf("String() = %q, want %q", original.String(), "$abc123xyz")
	}
	if original.IsZero() {
		t.Error("IsZero() = true for valid EventID")
	}

	type wrapper struct {
		EventID EventID `json:"event_id"`
	}
	data, err := json.Marshal(wrapper{EventID: original})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"event_id":"$abc123xyz"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var decoded wrapper
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.EventID != original {
		t.Errorf("round-trip: got %q, want %q", decoded.EventID, original)
	}
}

func TestEventIDZeroValue(t *testing.T) {
	var zero EventID
	if !zero.IsZero() {
		t.Error("zero value should be IsZero()")
	}
	if zero.String() != "" {
		t.Errorf("zero String() = %q, want empty", zero.String())
	}

	type wrapper struct {
		EventID EventID `json:"event_id"`
	}
	var decoded wrapper
	if err := json.Unmarshal([]byte(`{"event_id":""}`), &decoded); err != nil {
		t.Fatalf("Unmarshal empty: %v", err)
	}
	if !decoded.EventID.IsZero() {
		t.Error("empty string should unmarshal to zero value")
	}
}

func TestMustParseEventIDPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseEventID should panic on invalid input")
		}
	}()
	MustParseEventID("")
}
