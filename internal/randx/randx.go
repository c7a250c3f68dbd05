// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

// Package randx generates opaque random strings for authorization artifacts.
package randx

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// MinimumEntropy is the smallest number of random bytes accepted for an opaque artifact.
const MinimumEntropy = 20

// OpaqueString returns n random bytes encoded with unpadded base64url.
func OpaqueString(n int) (string, error) {
	if n < MinimumEntropy {
		return "", fmt.Errorf("randx: entropy of %d bytes is below the minimum of %d bytes", n, MinimumEntropy)
	}

	b := make([]byte, n)

	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
