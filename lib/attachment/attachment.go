// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package attachment encrypts and decrypts Matrix attachments.
//
// Matrix clients encrypt media before upload with AES-256 in CTR mode
// and publish the key, counter block and ciphertext hash in the file
// facet of the event ([schema.EncryptedFile]). The counter block is 64
// random bits followed by a 64-bit block counter starting at zero, so a
// single key can encrypt up to 2^64 blocks without wrapping.
//
// Raw key bytes are held in a [secret.Buffer] while a call runs.
package attachment

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/bureau-foundation/mxtypes/lib/schema"
	"github.com/bureau-foundation/mxtypes/lib/secret"
)

// KeySize is the AES-256 key size in bytes.
const KeySize = 32

// JSON Web Key and scheme constants for Matrix attachments.
const (
	KeyType      = "oct"
	KeyAlgorithm = "A256CTR"
	Version      = "v2"
	HashSHA256   = "sha256"
)

var (
	// ErrUnsupportedKey is returned when the encryption bundle names a
	// key type, algorithm, version or size this package cannot use.
	ErrUnsupportedKey = errors.New("unsupported attachment key")

	// ErrHashMismatch is returned when the ciphertext does not match
	// the SHA-256 hash in the encryption bundle.
	ErrHashMismatch = errors.New("attachment hash mismatch")
)

// Encrypt reads plaintext to EOF, writes the ciphertext, and returns
// the bundle a recipient needs to decrypt it. The key and counter block
// are read from random; pass crypto/rand.Reader in production. Nothing
// about the bundle is valid if an error is returned, even when some
// ciphertext has already been written.
func Encrypt(plaintext io.Reader, ciphertext io.Writer, random io.Reader) (schema.EncryptedFile, error) {
	if random == nil {
		return schema.EncryptedFile{}, fmt.Errorf("encrypting attachment: random source is nil")
	}
	key, err := secret.NewRandom(KeySize, random)
	if err != nil {
		return schema.EncryptedFile{}, fmt.Errorf("generating attachment key: %w", err)
	}
	defer key.Close()

	var iv [aes.BlockSize]byte
	if _, err := io.ReadFull(random, iv[:8]); err != nil {
		return schema.EncryptedFile{}, fmt.Errorf("generating counter block: %w", err)
	}

	block, err := aes.NewCipher(key.Bytes())
	if err != nil {
		return schema.EncryptedFile{}, fmt.Errorf("creating AES cipher: %w", err)
	}

	hash := sha256.New()
	writer := &cipher.StreamWriter{
		S: cipher.NewCTR(block, iv[:]),
		W: io.MultiWriter(ciphertext, hash),
	}
	if _, err := io.Copy(writer, plaintext); err != nil {
		return schema.EncryptedFile{}, fmt.Errorf("encrypting attachment: %w", err)
	}

	return schema.EncryptedFile{
		Key: schema.JSONWebKey{
			Kty:    KeyType,
			KeyOps: []string{"encrypt", "decrypt"},
			Alg:    KeyAlgorithm,
			K:      schema.NewBase64URL(key.Bytes()),
			Ext:    true,
		},
		IV:      schema.NewBase64(iv[:]),
		Hashes:  map[string]schema.Base64{HashSHA256: schema.NewBase64(hash.Sum(nil))},
		Version: Version,
	}, nil
}

// Decrypt checks the bundle and the ciphertext hash, then returns the
// plaintext. No plaintext is produced for ciphertext that fails the
// hash check.
func Decrypt(ciphertext []byte, info schema.EncryptedFile) ([]byte, error) {
	if err := checkBundle(info); err != nil {
		return nil, err
	}

	digest := sha256.Sum256(ciphertext)
	if subtle.ConstantTimeCompare(digest[:], info.Hashes[HashSHA256].Bytes()) != 1 {
		return nil, ErrHashMismatch
	}

	key, err := secret.NewFromBytes(info.Key.K.Bytes())
	if err != nil {
		return nil, fmt.Errorf("loading attachment key: %w", err)
	}
	defer key.Close()

	block, err := aes.NewCipher(key.Bytes())
	if err != nil {
		return nil, fmt.Errorf("creating AES cipher: %w", err)
	}
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCTR(block, info.IV.Bytes()).XORKeyStream(plaintext, ciphertext)
	return plaintext, nil
}

// DecryptFile is Decrypt for a file facet. Plain files are returned
// unchanged.
func DecryptFile(data []byte, file schema.FileContent) ([]byte, error) {
	if !file.IsEncrypted() {
		return bytes.Clone(data), nil
	}
	return Decrypt(data, *file.Encryption)
}

func checkBundle(info schema.EncryptedFile) error {
	switch {
	case info.Version != Version:
		return fmt.Errorf("%w: version %q, want %q", ErrUnsupportedKey, info.Version, Version)
	case info.Key.Kty != KeyType:
		return fmt.Errorf("%w: key type %q, want %q", ErrUnsupportedKey, info.Key.Kty, KeyType)
	case info.Key.Alg != KeyAlgorithm:
		return fmt.Errorf("%w: algorithm %q, want %q", ErrUnsupportedKey, info.Key.Alg, KeyAlgorithm)
	case !slices.Contains(info.Key.KeyOps, "decrypt"):
		return fmt.Errorf("%w: key_ops %v does not permit decrypt", ErrUnsupportedKey, info.Key.KeyOps)
	case len(info.Key.K.Bytes()) != KeySize:
		return fmt.Errorf("%w: key is %d bytes, want %d", ErrUnsupportedKey, len(info.Key.K.Bytes()), KeySize)
	case len(info.IV.Bytes()) != aes.BlockSize:
		return fmt.Errorf("%w: iv is %d bytes, want %d", ErrUnsupportedKey, len(info.IV.Bytes()), aes.BlockSize)
	}
	if _, ok := info.Hashes[HashSHA256]; !ok {
		return fmt.Errorf("%w: no %s hash", ErrUnsupportedKey, HashSHA256)
	}
	return nil
}
