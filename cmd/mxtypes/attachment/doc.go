// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package attachment implements the "mxtypes attachment" command group:
// encrypting files for upload to an end-to-end encrypted room and
// decrypting downloaded ciphertext, using lib/attachment.
//
// Encryption prints the org.matrix.msc1767.file facet object for the
// ciphertext; decryption reads that same object back. The facet is the
// only place the key lives, so treat its output like a secret.
package attachment
