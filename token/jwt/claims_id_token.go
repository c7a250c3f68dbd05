// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package jwt

import (
	"time"

	"authelia.com/provider/authz/internal/consts"
)

// IDTokenClaims represent the claims of an OpenID Connect 1.0 ID Token.
type IDTokenClaims struct {
	Issuer                              string
	Subject                             string
	Audience                            []string
	Nonce                               string
	ExpirationTime                      time.Time
	IssuedAt                            time.Time
	AuthTime                            time.Time
	AuthenticationContextClassReference string
	AuthenticationMethodsReferences     []string
	AuthorizedParty                     string
	CodeHash                            string
	AccessTokenHash                     string
	StateHash                           string
	Extra                               map[string]any
}

// ToMapClaims flattens the registered and extra claims, omitting empty optional claims.
func (c *IDTokenClaims) ToMapClaims() MapClaims {
	ret := MapClaims(c.Extra).Copy()

	ret[consts.ClaimIssuer] = c.Issuer
	ret[consts.ClaimSubject] = c.Subject
	ret[consts.ClaimAudience] = c.Audience
	ret[consts.ClaimIssuedAt] = c.IssuedAt.Unix()
	ret[consts.ClaimExpirationTime] = c.ExpirationTime.Unix()

	if !c.AuthTime.IsZero() {
		ret[consts.ClaimAuthenticationTime] = c.AuthTime.Unix()
	}

	optional := map[string]string{
		consts.ClaimNonce: c.Nonce,
		consts.ClaimAuthenticationContextClassReference: c.AuthenticationContextClassReference,
		consts.ClaimAuthorizedParty:                     c.AuthorizedParty,
		consts.ClaimCodeHash:                            c.CodeHash,
		consts.ClaimAccessTokenHash:                     c.AccessTokenHash,
		consts.ClaimStateHash:                           c.StateHash,
	}

	for k, v := range optional {
		if v != "" {
			ret[k] = v
		}
	}

	if len(c.AuthenticationMethodsReferences) != 0 {
		ret[consts.ClaimAuthenticationMethodsReference] = c.AuthenticationMethodsReferences
	}

	return ret
}
