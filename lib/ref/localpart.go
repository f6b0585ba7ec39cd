// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"fmt"
	"io"
)

// localpartAlphabet is the character set for generated localparts.
const localpartAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// rejectionLimit is the largest multiple of len(localpartAlphabet)
// that fits in a byte. Random bytes at or above it are discarded so
// every character is equally likely.
const rejectionLimit = 256 - 256%len(localpartAlphabet)

// generateLocalpart returns length characters drawn uniformly from
// localpartAlphabet using bytes read from random. Nothing is retained
// between calls.
func generateLocalpart(length int, random io.Reader) (string, error) {
	if random == nil {
		return "", fmt.Errorf("random source is nil")
	}
	result := make([]byte, 0, length)
	buffer := make([]byte, length+length/2)
	for len(result) < length {
		if _, err := io.ReadFull(random, buffer); err != nil {
			return "", fmt.Errorf("reading random bytes: %w", err)
		}
		for _, b := range buffer {
			if int(b) >= rejectionLimit {
				continue
			}
			result = append(result, localpartAlphabet[int(b)%len(localpartAlphabet)])
			if len(result) == length {
				break
			}
		}
	}
	return string(result), nil
}
