// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/bureau-foundation/mxtypes/lib/ref"
)

// assertJSONEqual compares got against the JSON document want,
// ignoring key order and whitespace.
func assertJSONEqual(t *testing.T, got []byte, want string) {
	t.Helper()
	var gotValue, wantValue any
	if err := json.Unmarshal(got, &gotValue); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, got)
	}
	if err := json.Unmarshal([]byte(want), &wantValue); err != nil {
		t.Fatalf("expected value is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(gotValue, wantValue) {
		t.Errorf("JSON mismatch\ngot:  %s\nwant: %s", got, want)
	}
}

// toMap serializes content to JSON and unmarshals it into a generic
// map for field-level inspection.
func toMap(t *testing.T, value any) map[string]any {
	t.Helper()
	data, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Unmarshal to map: %v", err)
	}
	return result
}

func assertField(t *testing.T, object map[string]any, key string, want any) {
	t.Helper()
	got, ok := object[key]
	if !ok {
		t.Errorf("field %q missing from JSON", key)
		return
	}
	// JSON numbers are float64, booleans are bool, strings are string.
	if got != want {
		t.Errorf("field %q = %v (%T), want %v (%T)", key, got, got, want, want)
	}
}

func uint64Pointer(value uint64) *uint64 { return &value }

func mustBase64(t *testing.T, encoded string) Base64 {
	t.Helper()
	value, err := ParseBase64(encoded)
	if err != nil {
		t.Fatalf("ParseBase64(%q): %v", encoded, err)
	}
	return value
}

func mustBase64URL(t *testing.T, encoded string) Base64URL {
	t.Helper()
	value, err := ParseBase64URL(encoded)
	if err != nil {
		t.Fatalf("ParseBase64URL(%q): %v", encoded, err)
	}
	return value
}

// sampleEncryption is the encryption bundle used across file and image
// tests.
func sampleEncryption(t *testing.T) EncryptedFile {
	t.Helper()
	return EncryptedFile{
		Key: JSONWebKey{
			Kty:    "oct",
			KeyOps: []string{"encrypt", "decrypt"},
			Alg:    "A256CTR",
			K:      mustBase64URL(t, "TLlG_OpX807zzQuuwv4QZGJ21_u7weemFGYJFszMn9A"),
			Ext:    true,
		},
		IV: mustBase64(t, "S22dq3NAX8wAAAAAAAAAAA"),
		Hashes: map[string]Base64{
			"sha256": mustBase64(t, "aWOHudBnDkJ9IwaR1Nd8XKoI7DOrqDTwt6xDPfVGN6Q"),
		},
		Version: "v2",
	}
}

var sampleMxc = ref.MustParseMxcURI("mxc://notareal.hs/abcdef")
