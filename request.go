// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"time"
)

// AuthorizationRequest is a validated authorization request. It is immutable once registered.
type AuthorizationRequest struct {
	ID                   string               `json:"id" yaml:"id"`
	TenantID             string               `json:"tenant_id" yaml:"tenant_id"`
	Pattern              RequestPattern       `json:"pattern" yaml:"pattern"`
	Profile              Profile              `json:"profile" yaml:"profile"`
	ClientID             string               `json:"client_id" yaml:"client_id"`
	UserAgentID          string               `json:"user_agent_id,omitempty" yaml:"user_agent_id,omitempty"`
	ResponseType         ResponseType         `json:"response_type" yaml:"response_type"`
	ResponseMode         ResponseMode         `json:"response_mode,omitempty" yaml:"response_mode,omitempty"`
	RedirectURI          string               `json:"redirect_uri,omitempty" yaml:"redirect_uri,omitempty"`
	Scopes               Arguments            `json:"scopes" yaml:"scopes"`
	State                string               `json:"state,omitempty" yaml:"state,omitempty"`
	Nonce                string               `json:"nonce,omitempty" yaml:"nonce,omitempty"`
	Prompt               Prompt               `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	Display              string               `json:"display,omitempty" yaml:"display,omitempty"`
	MaxAge               *int64               `json:"max_age,omitempty" yaml:"max_age,omitempty"`
	UILocales            Arguments            `json:"ui_locales,omitempty" yaml:"ui_locales,omitempty"`
	LoginHint            string               `json:"login_hint,omitempty" yaml:"login_hint,omitempty"`
	ACRValues            Arguments            `json:"acr_values,omitempty" yaml:"acr_values,omitempty"`
	CodeChallenge        string               `json:"code_challenge,omitempty" yaml:"code_challenge,omitempty"`
	CodeChallengeMethod  string               `json:"code_challenge_method,omitempty" yaml:"code_challenge_method,omitempty"`
	Claims               string               `json:"claims,omitempty" yaml:"claims,omitempty"`
	RequestedClaims      RequestedClaims      `json:"requested_claims" yaml:"requested_claims"`
	AuthorizationDetails AuthorizationDetails `json:"authorization_details,omitempty" yaml:"authorization_details,omitempty"`
	CustomParams         map[string]string    `json:"custom_params,omitempty" yaml:"custom_params,omitempty"`
	CreatedAt            time.Time            `json:"created_at" yaml:"created_at"`
	ExpiresAt            time.Time            `json:"expires_at" yaml:"expires_at"`
}

// IsExpired is true once now has passed the expiry of the request.
func (r *AuthorizationRequest) IsExpired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && now.After(r.ExpiresAt)
}

// SessionKey is the key of the session of the user agent the request was received from.
func (r *AuthorizationRequest) SessionKey() SessionKey {
	return SessionKey{TenantID: r.TenantID, ClientID: r.ClientID, UserAgentID: r.UserAgentID}
}

func (r *AuthorizationRequest) HasRedirectURI() bool {
	return r.RedirectURI != ""
}

// RequestedClaims are the claim names requested through the 'claims' parameter.
type RequestedClaims struct {
	IDToken  Arguments `json:"id_token,omitempty" yaml:"id_token,omitempty"`
	Userinfo Arguments `json:"userinfo,omitempty" yaml:"userinfo,omitempty"`
}

// AuthorizationDetail is a single Rich Authorization Request entry.
type AuthorizationDetail struct {
	Type string         `json:"type" yaml:"type"`
	Raw  map[string]any `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// AuthorizationDetails is the parsed 'authorization_details' parameter.
type AuthorizationDetails []AuthorizationDetail

// Types returns the distinct detail types in request order.
func (d AuthorizationDetails) Types() Arguments {
	var types Arguments

	for _, detail := range d {
		if !types.Has(detail.Type) {
			types = append(types, detail.Type)
		}
	}

	return types
}
