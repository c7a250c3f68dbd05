// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"time"

	"authelia.com/provider/authz/internal/consts"
)

// ServerConfiguration is the authorization server configuration of a tenant.
type ServerConfiguration struct {
	TenantID                               string        `json:"tenant_id" yaml:"tenant_id"`
	Issuer                                 string        `json:"issuer" yaml:"issuer"`
	ResponseTypesSupported                 Arguments     `json:"response_types_supported" yaml:"response_types_supported"`
	ScopesSupported                        Arguments     `json:"scopes_supported" yaml:"scopes_supported"`
	ClaimsSupported                        Arguments     `json:"claims_supported" yaml:"claims_supported"`
	RequestObjectSigningAlgValuesSupported Arguments     `json:"request_object_signing_alg_values_supported,omitempty" yaml:"request_object_signing_alg_values_supported,omitempty"`
	JWKS                                   string        `json:"jwks" yaml:"jwks"`
	AccessTokenDuration                    time.Duration `json:"access_token_duration" yaml:"access_token_duration"`
	IDTokenDuration                        time.Duration `json:"id_token_duration" yaml:"id_token_duration"`
	AuthorizationResponseDuration          time.Duration `json:"authorization_response_duration" yaml:"authorization_response_duration"`
	AuthorizationCodeDuration              time.Duration `json:"authorization_code_duration,omitempty" yaml:"authorization_code_duration,omitempty"`
	AuthorizationRequestDuration           time.Duration `json:"authorization_request_duration,omitempty" yaml:"authorization_request_duration,omitempty"`
	IDTokenStrictMode                      bool          `json:"id_token_strict_mode" yaml:"id_token_strict_mode"`
	FAPIBaselineScopes                     Arguments     `json:"fapi_baseline_scopes,omitempty" yaml:"fapi_baseline_scopes,omitempty"`
	FAPIAdvanceScopes                      Arguments     `json:"fapi_advance_scopes,omitempty" yaml:"fapi_advance_scopes,omitempty"`
	AuthorizationViewURL                   string        `json:"authorization_view_url" yaml:"authorization_view_url"`
	PushedAuthorizationRequestEnabled      bool          `json:"pushed_authorization_request_enabled" yaml:"pushed_authorization_request_enabled"`
}

func (s *ServerConfiguration) IsSupportedResponseType(rt ResponseType) bool {
	for _, raw := range s.ResponseTypesSupported {
		if ParseResponseType(raw) == rt {
			return true
		}
	}

	return false
}

// SupportedResponseTypes returns the parsed response types the tenant supports.
func (s *ServerConfiguration) SupportedResponseTypes() []ResponseType {
	types := make([]ResponseType, 0, len(s.ResponseTypesSupported))

	for _, raw := range s.ResponseTypesSupported {
		types = append(types, ParseResponseType(raw))
	}

	return types
}

func (s *ServerConfiguration) IsSupportedClaim(claim string) bool {
	return s.ClaimsSupported.Has(claim)
}

// DecideProfile returns the security profile of a request with the provided scopes.
func (s *ServerConfiguration) DecideProfile(scopes Arguments) Profile {
	switch {
	case len(s.FAPIAdvanceScopes) != 0 && scopes.HasOneOf(s.FAPIAdvanceScopes...):
		return ProfileFAPIAdvance
	case len(s.FAPIBaselineScopes) != 0 && scopes.HasOneOf(s.FAPIBaselineScopes...):
		return ProfileFAPIBaseline
	case scopes.Has(consts.ScopeOpenID):
		return ProfileOIDC
	default:
		return ProfileOAuth2
	}
}
