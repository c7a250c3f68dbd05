// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"authelia.com/provider/authz/internal/consts"
	"authelia.com/provider/authz/token/jarm"
)

// ClientConfiguration is the registration of an OAuth 2.0 Client within a tenant.
type ClientConfiguration struct {
	TenantID                       string    `json:"tenant_id" yaml:"tenant_id"`
	ClientID                       string    `json:"client_id" yaml:"client_id"`
	ClientName                     string    `json:"client_name,omitempty" yaml:"client_name,omitempty"`
	ClientSecret                   string    `json:"client_secret,omitempty" yaml:"client_secret,omitempty"`
	TokenEndpointAuthMethod        string    `json:"token_endpoint_auth_method,omitempty" yaml:"token_endpoint_auth_method,omitempty"`
	RedirectURIs                   []string  `json:"redirect_uris" yaml:"redirect_uris"`
	PostLogoutRedirectURIs         []string  `json:"post_logout_redirect_uris,omitempty" yaml:"post_logout_redirect_uris,omitempty"`
	ResponseTypes                  Arguments `json:"response_types" yaml:"response_types"`
	Scopes                         Arguments `json:"scopes" yaml:"scopes"`
	ApplicationType                string    `json:"application_type,omitempty" yaml:"application_type,omitempty"`
	AuthorizationSignedResponseAlg string    `json:"authorization_signed_response_alg,omitempty" yaml:"authorization_signed_response_alg,omitempty"`
	AuthorizationSignedResponseKID string    `json:"authorization_signed_response_kid,omitempty" yaml:"authorization_signed_response_kid,omitempty"`
	IDTokenSignedResponseAlg       string    `json:"id_token_signed_response_alg,omitempty" yaml:"id_token_signed_response_alg,omitempty"`
	RequestObjectSigningAlg        string    `json:"request_object_signing_alg,omitempty" yaml:"request_object_signing_alg,omitempty"`
	JWKS                           string    `json:"jwks,omitempty" yaml:"jwks,omitempty"`
	JWKSURI                        string    `json:"jwks_uri,omitempty" yaml:"jwks_uri,omitempty"`
	TosURI                         string    `json:"tos_uri,omitempty" yaml:"tos_uri,omitempty"`
	PolicyURI                      string    `json:"policy_uri,omitempty" yaml:"policy_uri,omitempty"`
	LogoURI                        string    `json:"logo_uri,omitempty" yaml:"logo_uri,omitempty"`
	ClientURI                      string    `json:"client_uri,omitempty" yaml:"client_uri,omitempty"`
}

func (c *ClientConfiguration) GetID() string {
	return c.ClientID
}

func (c *ClientConfiguration) GetAuthorizationSignedResponseAlg() string {
	return c.AuthorizationSignedResponseAlg
}

func (c *ClientConfiguration) GetAuthorizationSignedResponseKeyID() string {
	return c.AuthorizationSignedResponseKID
}

// IsPublic is true for clients which do not authenticate.
func (c *ClientConfiguration) IsPublic() bool {
	return c.TokenEndpointAuthMethod == consts.ClientAuthMethodNone
}

// IsRegisteredRedirectURI is true when uri matches one of the registered redirect URIs. Registered loopback URIs
// match on any port.
func (c *ClientConfiguration) IsRegisteredRedirectURI(uri string) bool {
	return IsMatchingRedirectURI(uri, c.RedirectURIs)
}

// IsMultiRedirectURI is true when more than one redirect URI is registered.
func (c *ClientConfiguration) IsMultiRedirectURI() bool {
	return len(c.RedirectURIs) > 1
}

// FirstRedirectURI returns the first registered redirect URI.
func (c *ClientConfiguration) FirstRedirectURI() string {
	if len(c.RedirectURIs) == 0 {
		return ""
	}

	return c.RedirectURIs[0]
}

func (c *ClientConfiguration) IsSupportedResponseType(rt ResponseType) bool {
	for _, raw := range c.ResponseTypes {
		if ParseResponseType(raw) == rt {
			return true
		}
	}

	return false
}

func (c *ClientConfiguration) HasTosURI() bool {
	return c.TosURI != ""
}

func (c *ClientConfiguration) HasPolicyURI() bool {
	return c.PolicyURI != ""
}

var _ jarm.Client = (*ClientConfiguration)(nil)
