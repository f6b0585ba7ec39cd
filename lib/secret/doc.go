// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret holds symmetric key material outside the Go heap.
//
// lib/attachment keeps each AES-256 attachment key in a [Buffer] while
// it encrypts or decrypts. The buffer's memory comes from an anonymous
// mmap, is locked into RAM so it never reaches swap, is excluded from
// core dumps, and is zeroed on Close. The garbage collector never sees
// it and cannot leave stray copies behind.
//
// Constructors:
//
//   - [New] -- a zero-filled buffer of a given size
//   - [NewFromBytes] -- copies into protected memory, zeros the source
//   - [NewRandom] -- fills a new buffer from a random source
//
// Close is idempotent. Any access after Close panics.
//
// Depends on golang.org/x/sys/unix and nothing else in this module.
package secret
