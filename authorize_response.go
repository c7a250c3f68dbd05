// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"strconv"

	"authelia.com/provider/authz/internal/consts"
)

// AuthorizationResponse is a successful authorization response. It is immutable once built.
type AuthorizationResponse struct {
	redirectURI string
	value       ResponseModeValue
	issuer      string
	state       string
	code        string
	accessToken *OAuthToken
	idToken     string
	vpToken     string
	jarm        string

	params Parameters
}

// AuthorizationResponseBuilder accumulates the artifacts of an AuthorizationResponse. Parameters encode in the order
// they are added and the issuer is appended last by Build.
type AuthorizationResponseBuilder struct {
	response AuthorizationResponse
}

// NewAuthorizationResponseBuilder returns a builder for a response delivered to redirectURI with the value placement.
func NewAuthorizationResponseBuilder(redirectURI string, value ResponseModeValue, issuer string) *AuthorizationResponseBuilder {
	return &AuthorizationResponseBuilder{
		response: AuthorizationResponse{
			redirectURI: redirectURI,
			value:       value,
			issuer:      issuer,
		},
	}
}

func (b *AuthorizationResponseBuilder) AddCode(code string) *AuthorizationResponseBuilder {
	b.response.code = code
	b.response.params = b.response.params.Add(consts.AuthorizeResponseAuthorizationCode, code)

	return b
}

// AddAccessToken adds the access token with its type, lifetime and scope.
func (b *AuthorizationResponseBuilder) AddAccessToken(token *OAuthToken) *AuthorizationResponseBuilder {
	if token == nil {
		return b
	}

	b.response.accessToken = token
	b.response.params = b.response.params.
		Add(consts.AuthorizeResponseAccessToken, token.AccessToken).
		Add(consts.AuthorizeResponseTokenType, token.TokenType).
		Add(consts.AuthorizeResponseExpiresIn, strconv.FormatInt(token.ExpiresIn, 10)).
		Add(consts.AuthorizeResponseScope, token.Scopes.String())

	return b
}

func (b *AuthorizationResponseBuilder) AddIDToken(idToken string) *AuthorizationResponseBuilder {
	b.response.idToken = idToken
	b.response.params = b.response.params.Add(consts.AuthorizeResponseIDToken, idToken)

	return b
}

func (b *AuthorizationResponseBuilder) AddVPToken(vpToken string) *AuthorizationResponseBuilder {
	b.response.vpToken = vpToken
	b.response.params = b.response.params.Add(consts.AuthorizeResponseVPToken, vpToken)

	return b
}

// AddState adds the state. An empty state is not added.
func (b *AuthorizationResponseBuilder) AddState(state string) *AuthorizationResponseBuilder {
	b.response.state = state
	b.response.params = b.response.params.Add(consts.AuthorizeResponseState, state)

	return b
}

// Build returns the response with the issuer identification appended.
func (b *AuthorizationResponseBuilder) Build() *AuthorizationResponse {
	response := b.response
	response.params = response.params.clone().Add(consts.AuthorizeResponseIssuer, response.issuer)

	return &response
}

// WithJARM returns a copy of r whose only parameter is the JWT Secured Authorization Response token.
func (r *AuthorizationResponse) WithJARM(token string) *AuthorizationResponse {
	response := *r
	response.jarm = token

	return &response
}

// RedirectURI returns the redirect URI without the response parameters.
func (r *AuthorizationResponse) RedirectURI() string {
	return r.redirectURI
}

func (r *AuthorizationResponse) ResponseModeValue() ResponseModeValue {
	return r.value
}

func (r *AuthorizationResponse) Issuer() string {
	return r.issuer
}

func (r *AuthorizationResponse) State() string {
	return r.state
}

func (r *AuthorizationResponse) Code() string {
	return r.code
}

func (r *AuthorizationResponse) AccessToken() *OAuthToken {
	return r.accessToken
}

func (r *AuthorizationResponse) IDToken() string {
	return r.idToken
}

func (r *AuthorizationResponse) VPToken() string {
	return r.vpToken
}

func (r *AuthorizationResponse) JARM() string {
	return r.jarm
}

func (r *AuthorizationResponse) HasJARM() bool {
	return r.jarm != ""
}

func (r *AuthorizationResponse) HasAuthorizationCode() bool {
	return r.code != ""
}

func (r *AuthorizationResponse) HasAccessToken() bool {
	return r.accessToken != nil
}

func (r *AuthorizationResponse) HasIDToken() bool {
	return r.idToken != ""
}

// UnwrappedParameters returns the individual parameters regardless of the JARM token.
func (r *AuthorizationResponse) UnwrappedParameters() Parameters {
	return r.params.clone()
}

// Parameters returns the wire parameters. When a JARM token is attached it is the only parameter.
func (r *AuthorizationResponse) Parameters() Parameters {
	if r.HasJARM() {
		return Parameters{}.Add(consts.AuthorizeResponseJWT, r.jarm)
	}

	return r.UnwrappedParameters()
}

// RedirectURIValue returns the location the user agent is redirected to.
func (r *AuthorizationResponse) RedirectURIValue() string {
	return redirectTo(r.redirectURI, r.value, r.Parameters())
}
