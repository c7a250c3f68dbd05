// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"time"
)

// AuthorizationCodeGrant is the record an authorization code is exchanged against.
type AuthorizationCodeGrant struct {
	Code                string    `json:"code" yaml:"code"`
	RequestID           string    `json:"request_id" yaml:"request_id"`
	TenantID            string    `json:"tenant_id" yaml:"tenant_id"`
	ClientID            string    `json:"client_id" yaml:"client_id"`
	Subject             string    `json:"subject" yaml:"subject"`
	Scopes              Arguments `json:"scopes" yaml:"scopes"`
	RedirectURI         string    `json:"redirect_uri,omitempty" yaml:"redirect_uri,omitempty"`
	Nonce               string    `json:"nonce,omitempty" yaml:"nonce,omitempty"`
	CodeChallenge       string    `json:"code_challenge,omitempty" yaml:"code_challenge,omitempty"`
	CodeChallengeMethod string    `json:"code_challenge_method,omitempty" yaml:"code_challenge_method,omitempty"`
	CreatedAt           time.Time `json:"created_at" yaml:"created_at"`
	ExpiresAt           time.Time `json:"expires_at" yaml:"expires_at"`
}

// IsExpired is true once now has passed the expiry of the code.
func (g *AuthorizationCodeGrant) IsExpired(now time.Time) bool {
	return now.After(g.ExpiresAt)
}

// OAuthToken is an access token issued through the front channel.
type OAuthToken struct {
	AccessToken string    `json:"access_token" yaml:"access_token"`
	TokenType   string    `json:"token_type" yaml:"token_type"`
	ExpiresIn   int64     `json:"expires_in" yaml:"expires_in"`
	Scopes      Arguments `json:"scopes" yaml:"scopes"`
	Subject     string    `json:"subject" yaml:"subject"`
	ClientID    string    `json:"client_id" yaml:"client_id"`
	TenantID    string    `json:"tenant_id" yaml:"tenant_id"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// ExpiresAt returns the time the token expires.
func (t *OAuthToken) ExpiresAt() time.Time {
	return t.CreatedAt.Add(time.Duration(t.ExpiresIn) * time.Second)
}
