// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrDuplicateKey is returned when an object carries the same key
// twice. Both formats reject duplicates instead of letting one entry
// win.
var ErrDuplicateKey = errors.New("duplicate object key")

// Format selects a wire encoding for event content.
type Format string

const (
	// JSON is the Matrix wire format.
	JSON Format = "json"
	// CBOR is the deterministic binary form of the same objects.
	CBOR Format = "cbor"
)

// ParseFormat converts a user-supplied name into a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case JSON, CBOR:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unknown format %q (expected %q or %q)", name, JSON, CBOR)
	}
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Marshal encodes v in this format. JSON output is compact.
func (f Format) Marshal(v any) ([]byte, error) {
	switch f {
	case JSON:
		return json.Marshal(v)
	case CBOR:
		return Marshal(v)
	default:
		return nil, fmt.Errorf("marshal: unknown format %q", string(f))
	}
}

// Unmarshal decodes data in this format into v.
func (f Format) Unmarshal(data []byte, v any) error {
	switch f {
	case JSON:
		return json.Unmarshal(data, v)
	case CBOR:
		return Unmarshal(data, v)
	default:
		return fmt.Errorf("unmarshal: unknown format %q", string(f))
	}
}

// DecodeObject splits an encoded object into its top-level entries
// without decoding the values. Each value stays in this format's
// encoding, ready for Format.Unmarshal. It fails if data is not an
// object, and with ErrDuplicateKey if any object in data repeats a
// key. For CBOR, nested duplicates surface when the entry is
// unmarshaled.
func (f Format) DecodeObject(data []byte) (map[string][]byte, error) {
	switch f {
	case JSON:
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		if raw == nil {
			return nil, fmt.Errorf("expected an object, got null")
		}
		if err := checkDuplicateKeys(data); err != nil {
			return nil, err
		}
		fields := make(map[string][]byte, len(raw))
		for key, value := range raw {
			fields[key] = value
		}
		return fields, nil
	case CBOR:
		var raw map[string]RawMessage
		if err := Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		if raw == nil {
			return nil, fmt.Errorf("expected a map, got null")
		}
		fields := make(map[string][]byte, len(raw))
		for key, value := range raw {
			fields[key] = value
		}
		return fields, nil
	default:
		return nil, fmt.Errorf("decode object: unknown format %q", string(f))
	}
}

// IsNull reports whether raw is an encoded null (JSON null, or CBOR
// null or undefined). Readers treat a null entry like an absent one.
func (f Format) IsNull(raw []byte) bool {
	switch f {
	case JSON:
		return string(bytes.TrimSpace(raw)) == "null"
	case CBOR:
		return len(raw) == 1 && (raw[0] == 0xf6 || raw[0] == 0xf7)
	default:
		return false
	}
}

// checkDuplicateKeys walks a well-formed JSON document and fails on
// the first object that repeats a key.
func checkDuplicateKeys(data []byte) error {
	type frame struct {
		object    bool
		expectKey bool
		keys      map[string]struct{}
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var stack []*frame
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if depth := len(stack); depth > 0 {
			top := stack[depth-1]
			if key, ok := token.(string); ok && top.object && top.expectKey {
				if _, seen := top.keys[key]; seen {
					return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
				}
				top.keys[key] = struct{}{}
				top.expectKey = false
				continue
			}
		}

		switch token {
		case json.Delim('{'):
			stack = append(stack, &frame{object: true, expectKey: true, keys: map[string]struct{}{}})
			continue
		case json.Delim('['):
			stack = append(stack, &frame{})
			continue
		case json.Delim('}'), json.Delim(']'):
			stack = stack[:len(stack)-1]
		}
		// A value just ended; the enclosing object expects a key next.
		if depth := len(stack); depth > 0 && stack[depth-1].object {
			stack[depth-1].expectKey = true
		}
	}
}
