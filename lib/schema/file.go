// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"fmt"

	"github.com/bureau-foundation/mxtypes/lib/ref"
)

// FileContent is the file facet: a reference to uploaded media.
//
// A file is either plain or encrypted. For a plain file Encryption is
// nil and URL points at the media as stored. For an encrypted file
// Encryption holds the complete bundle needed to decrypt what URL
// points at. The bundle is never partial: decoding content that
// carries only some of its fields fails with ErrMalformedContent.
type FileContent struct {
	URL        ref.MxcURI
	Info       FileInfo
	Encryption *EncryptedFile
}

// FileInfo is optional metadata about a file. Zero fields are omitted
// from the wire.
type FileInfo struct {
	// Name is the original file name.
	Name string `json:"name,omitempty"`

	MimeType string `json:"mimetype,omitempty"`

	// Size is the file size in bytes.
	Size *uint64 `json:"size,omitempty"`
}

// EncryptedFile holds what a client needs to decrypt an encrypted
// attachment (AES-256-CTR, Matrix version "v2").
type EncryptedFile struct {
	Key JSONWebKey

	// IV is the 16-byte counter block the cipher starts from.
	IV Base64

	// Hashes maps algorithm name to the digest of the ciphertext.
	// "sha256" is required by Matrix clients.
	Hashes map[string]Base64

	// Version is the encryption scheme version, "v2" for current
	// clients.
	Version string
}

// JSONWebKey is the symmetric key of an encrypted attachment (RFC 7517).
type JSONWebKey struct {
	// Kty is the key type; "oct" for symmetric keys.
	Kty string `json:"kty"`

	// KeyOps lists permitted operations; "encrypt" and "decrypt".
	KeyOps []string `json:"key_ops"`

	// Alg is the algorithm; "A256CTR".
	Alg string `json:"alg"`

	// K is the key material.
	K Base64URL `json:"k"`

	// Ext is always true for Matrix attachments.
	Ext bool `json:"ext"`
}

// PlainFile returns file content for unencrypted media.
func PlainFile(url ref.MxcURI, info FileInfo) FileContent {
	return FileContent{URL: url, Info: info}
}

// EncryptedFileContent returns file content for encrypted media.
func EncryptedFileContent(url ref.MxcURI, encryption EncryptedFile, info FileInfo) FileContent {
	return FileContent{URL: url, Info: info, Encryption: &encryption}
}

// IsEncrypted reports whether the file carries an encryption bundle.
func (f FileContent) IsEncrypted() bool { return f.Encryption != nil }

// fileWire is the flat wire shape shared by files and thumbnails. The
// encryption fields are pointers so an absent field is distinguishable
// from a zero one.
type fileWire struct {
	URL      *ref.MxcURI        `json:"url"`
	Name     string             `json:"name,omitempty"`
	MimeType string             `json:"mimetype,omitempty"`
	Size     *uint64            `json:"size,omitempty"`
	Key      *JSONWebKey        `json:"key,omitempty"`
	IV       *Base64            `json:"iv,omitempty"`
	Hashes   *map[string]Base64 `json:"hashes,omitempty"`
	Version  *string            `json:"v,omitempty"`
}

func newFileWire(url ref.MxcURI, encryption *EncryptedFile) fileWire {
	wire := fileWire{URL: &url}
	if encryption != nil {
		hashes := encryption.Hashes
		if hashes == nil {
			hashes = map[string]Base64{}
		}
		key := encryption.Key
		if key.KeyOps == nil {
			key.KeyOps = []string{}
		}
		wire.Key = &key
		wire.IV = &encryption.IV
		wire.Hashes = &hashes
		wire.Version = &encryption.Version
	}
	return wire
}

// encryption extracts the bundle. All four fields or none must be
// present. Empty key_ops and hashes read back as nil, matching how
// newFileWire writes nil ones.
func (w fileWire) encryption(key string) (*EncryptedFile, error) {
	present := 0
	for _, set := range []bool{w.Key != nil, w.IV != nil, w.Hashes != nil, w.Version != nil} {
		if set {
			present++
		}
	}
	switch present {
	case 0:
		return nil, nil
	case 4:
		encryption := &EncryptedFile{Key: *w.Key, IV: *w.IV, Hashes: *w.Hashes, Version: *w.Version}
		if len(encryption.Key.KeyOps) == 0 {
			encryption.Key.KeyOps = nil
		}
		if len(encryption.Hashes) == 0 {
			encryption.Hashes = nil
		}
		return encryption, nil
	default:
		return nil, fmt.Errorf("%w: %s: incomplete encryption info (need key, iv, hashes and v)", ErrMalformedContent, key)
	}
}

func (w fileWire) url(key string) (ref.MxcURI, error) {
	if w.URL == nil || w.URL.IsZero() {
		return ref.MxcURI{}, fmt.Errorf("%w: %s: missing url", ErrMalformedContent, key)
	}
	return *w.URL, nil
}

func (f *FileContent) name() string { return keyFile }

func (f *FileContent) empty() bool {
	return f.URL.IsZero() && f.Info == (FileInfo{}) && f.Encryption == nil
}

func (f *FileContent) encodeFacet(w contentWriter) error {
	wire, err := f.wire()
	if err != nil {
		return err
	}
	w[keyFile] = wire
	return nil
}

func (f *FileContent) decodeFacet(r *contentReader) (bool, error) {
	var wire fileWire
	present, err := r.decode(keyFile, &wire)
	if err != nil || !present {
		return present, err
	}
	return true, f.fromWire(wire, keyFile)
}

func (f FileContent) wire() (fileWire, error) {
	if f.URL.IsZero() {
		return fileWire{}, fmt.Errorf("%w: %s: missing url", ErrMalformedContent, keyFile)
	}
	wire := newFileWire(f.URL, f.Encryption)
	wire.Name = f.Info.Name
	wire.MimeType = f.Info.MimeType
	wire.Size = f.Info.Size
	return wire, nil
}

func (f *FileContent) fromWire(wire fileWire, key string) error {
	url, err := wire.url(key)
	if err != nil {
		return err
	}
	encryption, err := wire.encryption(key)
	if err != nil {
		return err
	}
	*f = FileContent{
		URL:        url,
		Info:       FileInfo{Name: wire.Name, MimeType: wire.MimeType, Size: wire.Size},
		Encryption: encryption,
	}
	return nil
}

// MarshalJSON writes the file facet object on its own, as it appears
// under "org.matrix.msc1767.file".
func (f FileContent) MarshalJSON() ([]byte, error) {
	wire, err := f.wire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(wire)
}

// UnmarshalJSON reads a standalone file facet object.
func (f *FileContent) UnmarshalJSON(data []byte) error {
	var wire fileWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedContent, keyFile, err)
	}
	return f.fromWire(wire, keyFile)
}
