// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package jwt

import (
	"github.com/go-jose/go-jose/v4"
)

var (
	// SignatureAlgorithms contain all asymmetric algorithms accepted for signed responses and request objects.
	SignatureAlgorithms = []jose.SignatureAlgorithm{jose.RS256, jose.RS384, jose.RS512, jose.PS256, jose.PS384, jose.PS512, jose.ES256, jose.ES384, jose.ES512, jose.EdDSA}
)

const (
	// DefaultSigningAlgorithm is used when neither the client nor the server negotiate an algorithm.
	DefaultSigningAlgorithm = jose.RS256
)
