// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Elisée Courtial

package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// tokenEntropyBytes is the number of random bytes backing each token.
// 32 bytes gives 256 bits of entropy, comfortably beyond brute force.
const tokenEntropyBytes = 32

// NewSecureToken returns a URL-safe, unpadded base64 token generated
// from a cryptographically secure source. Tokens are suitable for use
// in confirmation and password reset links.
func NewSecureToken() (string, error) {
	buf := make([]byte, tokenEntropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating secure token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
