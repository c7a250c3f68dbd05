// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"time"
)

// ConsentClaim is a single acknowledgment of a client document such as its terms of service.
type ConsentClaim struct {
	Name        string    `json:"name" yaml:"name"`
	Value       string    `json:"value" yaml:"value"`
	ConsentedAt time.Time `json:"consented_at" yaml:"consented_at"`
}

// ConsentClaims groups consent claims by consent kind, for example 'terms' or 'privacy'.
type ConsentClaims map[string][]ConsentClaim

func (c ConsentClaims) Exists() bool {
	return len(c) != 0
}

// Has reports whether claim has been consented to under name. ConsentedAt is not compared.
func (c ConsentClaims) Has(name string, claim ConsentClaim) bool {
	for _, granted := range c[name] {
		if granted.Name == claim.Name && granted.Value == claim.Value {
			return true
		}
	}

	return false
}

// Covers reports whether every claim of required has been consented to.
func (c ConsentClaims) Covers(required ConsentClaims) bool {
	for name, claims := range required {
		for _, claim := range claims {
			if !c.Has(name, claim) {
				return false
			}
		}
	}

	return true
}

// Merge returns the union of c and other. Existing consent keeps its original timestamp.
func (c ConsentClaims) Merge(other ConsentClaims) ConsentClaims {
	merged := make(ConsentClaims, len(c)+len(other))

	for name, claims := range c {
		merged[name] = append([]ConsentClaim(nil), claims...)
	}

	for name, claims := range other {
		for _, claim := range claims {
			if !merged.Has(name, claim) {
				merged[name] = append(merged[name], claim)
			}
		}
	}

	return merged
}

// AuthorizationGranted is the record of what a user has granted a client.
type AuthorizationGranted struct {
	ID             string        `json:"id" yaml:"id"`
	TenantID       string        `json:"tenant_id" yaml:"tenant_id"`
	ClientID       string        `json:"client_id" yaml:"client_id"`
	Subject        string        `json:"subject" yaml:"subject"`
	Scopes         Arguments     `json:"scopes" yaml:"scopes"`
	IDTokenClaims  Arguments     `json:"id_token_claims,omitempty" yaml:"id_token_claims,omitempty"`
	UserinfoClaims Arguments     `json:"userinfo_claims,omitempty" yaml:"userinfo_claims,omitempty"`
	ConsentClaims  ConsentClaims `json:"consent_claims,omitempty" yaml:"consent_claims,omitempty"`
	CreatedAt      time.Time     `json:"created_at" yaml:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" yaml:"updated_at"`
}

func (g *AuthorizationGranted) Exists() bool {
	return g != nil && g.ID != ""
}

// UnauthorizedScopes returns the requested scopes which have not been granted.
func (g *AuthorizationGranted) UnauthorizedScopes(requested Arguments) Arguments {
	return requested.Missing(g.Scopes)
}

// UnauthorizedIDTokenClaims returns the required ID Token claims which have not been granted.
func (g *AuthorizationGranted) UnauthorizedIDTokenClaims(required Arguments) Arguments {
	return required.Missing(g.IDTokenClaims)
}

// UnauthorizedUserinfoClaims returns the required userinfo claims which have not been granted.
func (g *AuthorizationGranted) UnauthorizedUserinfoClaims(required Arguments) Arguments {
	return required.Missing(g.UserinfoClaims)
}

// IsConsentedClaims reports whether the required consent has been given.
func (g *AuthorizationGranted) IsConsentedClaims(required ConsentClaims) bool {
	if !required.Exists() {
		return true
	}

	return g.ConsentClaims.Covers(required)
}

// Merge returns a copy of g extended with the grant of other.
func (g *AuthorizationGranted) Merge(other *AuthorizationGranted, now time.Time) *AuthorizationGranted {
	merged := *g

	merged.Scopes = g.Scopes.Union(other.Scopes)
	merged.IDTokenClaims = g.IDTokenClaims.Union(other.IDTokenClaims)
	merged.UserinfoClaims = g.UserinfoClaims.Union(other.UserinfoClaims)
	merged.ConsentClaims = g.ConsentClaims.Merge(other.ConsentClaims)
	merged.UpdatedAt = now

	return &merged
}
