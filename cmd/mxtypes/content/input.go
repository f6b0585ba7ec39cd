// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/mxtypes/lib/codec"
)

// Input format names for --input.
const (
	inputAuto = "auto"
	inputJSON = "json"
	inputCBOR = "cbor"
)

// readInput reads the file at path, or stdin when path is empty or "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty input: expected a JSON or CBOR document")
	}
	return data, nil
}

// prepareInput resolves the wire format of data and returns the bytes
// to decode. JSON input has comments and trailing commas stripped. With
// hexMode the input is hex text and always CBOR.
func prepareInput(data []byte, inputName string, hexMode bool) (codec.Format, []byte, error) {
	if hexMode {
		if inputName == inputJSON {
			return "", nil, fmt.Errorf("--hex applies only to CBOR input")
		}
		decoded, err := decodeHexInput(data)
		if err != nil {
			return "", nil, err
		}
		return codec.CBOR, decoded, nil
	}

	switch inputName {
	case inputAuto, "":
		if looksLikeJSON(data) {
			return codec.JSON, jsonc.ToJSON(data), nil
		}
		return codec.CBOR, data, nil
	case inputJSON:
		return codec.JSON, jsonc.ToJSON(data), nil
	case inputCBOR:
		return codec.CBOR, data, nil
	default:
		return "", nil, fmt.Errorf("unknown input format %q (expected %s, %s or %s)", inputName, inputAuto, inputJSON, inputCBOR)
	}
}

// looksLikeJSON reports whether data starts, after whitespace, with an
// object or a JSONC comment. A CBOR map never starts with '{' or '/'.
func looksLikeJSON(data []byte) bool {
	trimmed := bytes.TrimLeftFunc(data, unicode.IsSpace)
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '/')
}

// decodeHexInput strips whitespace from hex-encoded input and decodes
// it to binary bytes. Whitespace between hex digit pairs is allowed
// (e.g., "a1 63 6b 65 79" or "a1636b6579").
func decodeHexInput(data []byte) ([]byte, error) {
	cleaned := bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)

	if len(cleaned) == 0 {
		return nil, fmt.Errorf("empty input after stripping whitespace from hex")
	}

	decoded := make([]byte, hex.DecodedLen(len(cleaned)))
	count, err := hex.Decode(decoded, cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded[:count], nil
}
