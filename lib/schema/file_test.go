// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/bureau-foundation/mxtypes/lib/ref"
)

func TestFileEventSerialization(t *testing.T) {
	content := PlainFileEventContent("Upload: report.pdf", PlainFile(sampleMxc, FileInfo{
		Name:     "report.pdf",
		MimeType: "application/pdf",
		Size:     uint64Pointer(1024),
	}))

	data, err := json.Marshal(content)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	assertJSONEqual(t, data, `{
		"org.matrix.msc1767.text": "Upload: report.pdf",
		"org.matrix.msc1767.file": {
			"url": "mxc://notareal.hs/abcdef",
			"name": "report.pdf",
			"mimetype": "application/pdf",
			"size": 1024
		}
	}`)
}

func TestFileEventRoundTrip(t *testing.T) {
	contents := []FileEventContent{
		PlainFileEventContent("plain", PlainFile(sampleMxc, FileInfo{})),
		NewFileEventContent(HTMLMessage("enc", "<b>enc</b>"),
			EncryptedFileContent(sampleMxc, sampleEncryption(t), FileInfo{Name: "secret.txt", Size: uint64Pointer(0)})),
	}
	for _, content := range contents {
		data, err := json.Marshal(content)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		var decoded FileEventContent
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}
		if !reflect.DeepEqual(decoded, content) {
			t.Errorf("round trip\ngot:  %+v\nwant: %+v", decoded, content)
		}
	}
}

func TestFileSizeZeroIsWritten(t *testing.T) {
	content := PlainFileEventContent("empty", PlainFile(sampleMxc, FileInfo{Size: uint64Pointer(0)}))
	object := toMap(t, content)
	file := object[keyFile].(map[string]any)
	assertField(t, file, "size", float64(0))
}

func TestFileDeserializationErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr error
	}{
		{"missing url", `{"name": "x"}`, ErrMalformedContent},
		{"empty url", `{"url": ""}`, ErrMalformedContent},
		{"null url", `{"url": null}`, ErrMalformedContent},
		{"invalid url", `{"url": "https://notareal.hs/abcdef"}`, ref.ErrInvalidMxcURI},
		{"invalid url server", `{"url": "mxc://bad_host/abcdef"}`, ref.ErrInvalidServerName},
		{"size not a number", `{"url": "mxc://notareal.hs/abcdef", "size": "big"}`, ErrMalformedContent},
		{"negative size", `{"url": "mxc://notareal.hs/abcdef", "size": -1}`, ErrMalformedContent},
		{"key without iv", `{"url": "mxc://notareal.hs/abcdef", "key": {"kty": "oct", "key_ops": [], "alg": "A256CTR", "k": "", "ext": true}, "hashes": {}, "v": "v2"}`, ErrMalformedContent},
		{"only version", `{"url": "mxc://notareal.hs/abcdef", "v": "v2"}`, ErrMalformedContent},
		{"bad iv encoding", `{"url": "mxc://notareal.hs/abcdef", "key": {"kty": "oct", "key_ops": [], "alg": "A256CTR", "k": "", "ext": true}, "iv": "!!", "hashes": {}, "v": "v2"}`, ErrMalformedContent},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data := `{"org.matrix.msc1767.text": "x", "org.matrix.msc1767.file": ` + test.file + `}`
			var content FileEventContent
			err := json.Unmarshal([]byte(data), &content)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("error = %v, want %v", err, test.wantErr)
			}
			if !errors.Is(err, ErrMalformedContent) {
				t.Errorf("error = %v, want it to also match %v", err, ErrMalformedContent)
			}
		})
	}
}

func TestFileMissingFacet(t *testing.T) {
	var content FileEventContent
	err := json.Unmarshal([]byte(`{"org.matrix.msc1767.text": "no file"}`), &content)
	if !errors.Is(err, ErrMissingMandatoryFacet) {
		t.Errorf("error = %v, want %v", err, ErrMissingMandatoryFacet)
	}
}

func TestBase64(t *testing.T) {
	value, err := ParseBase64("S22dq3NAX8wAAAAAAAAAAA")
	if err != nil {
		t.Fatalf("ParseBase64: %v", err)
	}
	if len(value.Bytes()) != 16 {
		t.Errorf("decoded %d bytes, want 16", len(value.Bytes()))
	}
	if value.String() != "S22dq3NAX8wAAAAAAAAAAA" {
		t.Errorf("String() = %q", value)
	}

	padded, err := ParseBase64("S22dq3NAX8wAAAAAAAAAAA==")
	if err != nil {
		t.Fatalf("ParseBase64 padded: %v", err)
	}
	if !padded.Equal(value) {
		t.Error("padded and unpadded input should decode to the same bytes")
	}

	if _, err := ParseBase64("TLlG_OpX"); err == nil {
		t.Error("ParseBase64 should reject URL-safe characters")
	}

	key, err := ParseBase64URL("TLlG_OpX807zzQuuwv4QZGJ21_u7weemFGYJFszMn9A")
	if err != nil {
		t.Fatalf("ParseBase64URL: %v", err)
	}
	if len(key.Bytes()) != 32 {
		t.Errorf("decoded %d key bytes, want 32", len(key.Bytes()))
	}
	if key.String() != "TLlG_OpX807zzQuuwv4QZGJ21_u7weemFGYJFszMn9A" {
		t.Errorf("String() = %q", key)
	}

	data := []byte{1, 2, 3}
	wrapped := NewBase64(data)
	data[0] = 9
	if wrapped.Bytes()[0] != 1 {
		t.Error("NewBase64 should copy its input")
	}
}
