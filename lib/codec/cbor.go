// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// encMode encodes with Core Deterministic Encoding. Identifier types
// (ref.RoomID, ref.MxcURI, ...) have only unexported fields; without
// TextMarshalerTextString they would encode as empty maps.
var encMode cbor.EncMode

// decMode accepts standard CBOR. Any-typed targets decode maps as
// map[string]any so decoded values interoperate with encoding/json.
// Duplicate map keys are rejected: a content object with two "url"
// entries is malformed, not last-wins.
var decMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DefaultMapType:  reflect.TypeOf(map[string]any(nil)),
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
		DupMapKey:       cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v. A map with a repeated key fails
// with ErrDuplicateKey.
func Unmarshal(data []byte, v any) error {
	err := decMode.Unmarshal(data, v)
	var duplicate *cbor.DupMapKeyError
	if errors.As(err, &duplicate) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, duplicate.Key)
	}
	return err
}

// RawMessage is a raw encoded CBOR value, used to delay decoding of a
// map entry until the reader knows its shape.
type RawMessage = cbor.RawMessage

// Encoder is a CBOR stream encoder.
type Encoder = cbor.Encoder

// NewEncoder returns a CBOR encoder that writes to w using Core
// Deterministic Encoding.
func NewEncoder(w io.Writer) *Encoder {
	return encMode.NewEncoder(w)
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) for the
// entire contents of data.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
