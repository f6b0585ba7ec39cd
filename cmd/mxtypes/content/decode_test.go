// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/bureau-foundation/mxtypes/lib/codec"
	"github.com/bureau-foundation/mxtypes/lib/config"
	"github.com/bureau-foundation/mxtypes/lib/ref"
	"github.com/bureau-foundation/mxtypes/lib/schema"
)

func TestDecodeEventJSONC(t *testing.T) {
	session := newTestSession(t, config.FormatJSON)

	path := writeFile(t, "event.jsonc", []byte(messageEventJSONC))
	if err := runDecode(session.Session, nil, path, decodeParams{Input: inputAuto}); err != nil {
		t.Fatalf("runDecode: %v", err)
	}

	var event schema.MessageLikeEvent
	if err := json.Unmarshal(session.stdout.Bytes(), &event); err != nil {
		t.Fatalf("output does not decode as an event: %v\n%s", err, session.stdout.String())
	}
	content, ok := event.Content.(schema.MessageEventContent)
	if !ok {
		t.Fatalf("content is %T, want MessageEventContent", event.Content)
	}
	want := schema.HTMLMessage("Hello", "<b>Hello</b>")
	if !reflect.DeepEqual(content.Message, want) {
		t.Errorf("message = %#v, want %#v", content.Message, want)
	}
	reply, ok := content.RelatesTo.(schema.Reply)
	if !ok || reply.InReplyTo != ref.MustParseEventID("$previous:notareal.hs") {
		t.Errorf("relation = %#v", content.RelatesTo)
	}
	if !strings.Contains(session.logs.String(), "decoded event") {
		t.Errorf("expected a debug record, logs: %q", session.logs.String())
	}
}

func TestDecodeBareContent(t *testing.T) {
	session := newTestSession(t, config.FormatYAML)

	err := runDecode(session.Session, strings.NewReader(bareFileContentJSON), "", decodeParams{Type: "m.file", Input: inputJSON})
	if err != nil {
		t.Fatalf("runDecode: %v", err)
	}
	output := session.stdout.String()
	for _, want := range []string{
		"org.matrix.msc1767.file:",
		"url: mxc://notareal.hs/abcdef",
		"size: 1024",
		"Upload: report.pdf",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("YAML output missing %q:\n%s", want, output)
		}
	}
}

func TestDecodeCBORInput(t *testing.T) {
	var original schema.MessageLikeEvent
	if err := codec.JSON.Unmarshal(mustStripJSONC(t, messageEventJSONC), &original); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	cborData, err := codec.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	tests := []struct {
		name   string
		input  string
		params decodeParams
	}{
		{name: "raw", input: string(cborData), params: decodeParams{Input: inputAuto}},
		{name: "hex", input: hex.EncodeToString(cborData), params: decodeParams{Input: inputAuto, Hex: true}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			session := newTestSession(t, config.FormatCBOR)
			if err := runDecode(session.Session, strings.NewReader(test.input), "", test.params); err != nil {
				t.Fatalf("runDecode: %v", err)
			}
			if session.stdout.String() != string(cborData) {
				t.Error("CBOR re-encoding of a decoded CBOR event should be byte-identical")
			}
		})
	}
}

func TestDecodeDiag(t *testing.T) {
	session := newTestSession(t, config.FormatDiag)

	err := runDecode(session.Session, strings.NewReader(bareFileContentJSON), "", decodeParams{Type: "m.file"})
	if err != nil {
		t.Fatalf("runDecode: %v", err)
	}
	if !strings.Contains(session.stdout.String(), `"size": 1024`) {
		t.Errorf("diagnostic output should keep size as an integer:\n%s", session.stdout.String())
	}
}

func TestDecodeCustomType(t *testing.T) {
	session := newTestSession(t, config.FormatJSON)

	err := runDecode(session.Session, strings.NewReader(`{"org.example.field": 3}`), "", decodeParams{Type: "org.example.custom"})
	if err != nil {
		t.Fatalf("runDecode: %v", err)
	}
	if !strings.Contains(session.stdout.String(), `"org.example.field": 3`) {
		t.Errorf("output = %s", session.stdout.String())
	}
	if !strings.Contains(session.logs.String(), "unrecognized event type") {
		t.Errorf("expected a note about custom content, logs: %q", session.logs.String())
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		params  decodeParams
		wantErr error
	}{
		{
			name:    "missing mandatory facet",
			input:   `{"org.matrix.msc1767.text": "no file here"}`,
			params:  decodeParams{Type: "m.file"},
			wantErr: schema.ErrMissingMandatoryFacet,
		},
		{
			name:    "malformed facet",
			input:   `{"org.matrix.msc1767.text": 42}`,
			params:  decodeParams{Type: "m.message"},
			wantErr: schema.ErrMalformedContent,
		},
		{
			name:    "event without sender",
			input:   `{"content": {}, "event_id": "$e", "origin_server_ts": 1, "room_id": "!r:x", "type": "org.example"}`,
			wantErr: schema.ErrMalformedEvent,
		},
		{
			name:    "invalid identifier in event",
			input:   `{"content": {}, "event_id": "$e", "origin_server_ts": 1, "room_id": "r:x", "sender": "@u:x", "type": "org.example"}`,
			wantErr: ref.ErrMissingLeadingSigil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			session := newTestSession(t, config.FormatJSON)
			err := runDecode(session.Session, strings.NewReader(test.input), "", test.params)
			if !errors.Is(err, test.wantErr) {
				t.Errorf("error = %v, want %v", err, test.wantErr)
			}
			if session.stdout.Len() != 0 {
				t.Errorf("nothing should be printed on failure, got %q", session.stdout.String())
			}
		})
	}
}

func mustStripJSONC(t *testing.T, text string) []byte {
	t.Helper()
	_, data, err := prepareInput([]byte(text), inputJSON, false)
	if err != nil {
		t.Fatalf("prepareInput: %v", err)
	}
	return data
}
