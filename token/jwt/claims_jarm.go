// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package jwt

import (
	"time"

	"authelia.com/provider/authz/internal/consts"
)

// NewJARMClaims returns the registered claims of a JWT Secured Authorization Response.
func NewJARMClaims(issuer, aud string, now time.Time, lifespan time.Duration) *JARMClaims {
	return &JARMClaims{
		Issuer:         issuer,
		Audience:       aud,
		IssuedAt:       now,
		ExpirationTime: now.Add(lifespan),
		Extra:          map[string]any{},
	}
}

// JARMClaims represent the claims of a JWT Secured Authorization Response.
type JARMClaims struct {
	Issuer         string
	Audience       string
	IssuedAt       time.Time
	ExpirationTime time.Time
	Extra          map[string]any
}

// Add will add a key-value pair to the extra field
func (c *JARMClaims) Add(key string, value any) {
	if c.Extra == nil {
		c.Extra = make(map[string]any)
	}

	c.Extra[key] = value
}

// ToMapClaims flattens the registered and extra claims. Registered claims win over extra claims.
func (c *JARMClaims) ToMapClaims() MapClaims {
	ret := MapClaims(c.Extra).Copy()

	if c.Issuer != "" {
		ret[consts.ClaimIssuer] = c.Issuer
	} else {
		delete(ret, consts.ClaimIssuer)
	}

	ret[consts.ClaimAudience] = c.Audience

	if !c.IssuedAt.IsZero() {
		ret[consts.ClaimIssuedAt] = c.IssuedAt.Unix()
	}

	if !c.ExpirationTime.IsZero() {
		ret[consts.ClaimExpirationTime] = c.ExpirationTime.Unix()
	}

	return ret
}
