// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package jwt

import (
	"crypto"
	"encoding/base64"
	"strings"

	// Register the hashes used by the supported algorithms.
	_ "crypto/sha256"
	_ "crypto/sha512"
)

// HashHalf computes the left-most half of the hash of value, as used by c_hash, at_hash and s_hash.
func HashHalf(alg, value string) (string, error) {
	var h crypto.Hash

	switch {
	case strings.HasSuffix(alg, "256"):
		h = crypto.SHA256
	case strings.HasSuffix(alg, "384"):
		h = crypto.SHA384
	case strings.HasSuffix(alg, "512"), alg == "EdDSA":
		h = crypto.SHA512
	default:
		return "", ErrUnsupportedAlg
	}

	hasher := h.New()
	_, _ = hasher.Write([]byte(value))

	sum := hasher.Sum(nil)

	return base64.RawURLEncoding.EncodeToString(sum[:len(sum)/2]), nil
}
