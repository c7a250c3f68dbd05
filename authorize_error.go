// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"authelia.com/provider/authz/internal/consts"
)

// AuthorizationErrorResponse is an error delivered to the client through its redirect URI. It is immutable once built.
type AuthorizationErrorResponse struct {
	redirectURI string
	value       ResponseModeValue
	issuer      string
	state       string
	err         *RFC6749Error
	jarm        string

	params Parameters
}

// AuthorizationErrorResponseBuilder accumulates an AuthorizationErrorResponse.
type AuthorizationErrorResponseBuilder struct {
	response AuthorizationErrorResponse
}

// NewAuthorizationErrorResponseBuilder returns a builder for an error delivered to redirectURI with the value
// placement.
func NewAuthorizationErrorResponseBuilder(redirectURI string, value ResponseModeValue, issuer string) *AuthorizationErrorResponseBuilder {
	return &AuthorizationErrorResponseBuilder{
		response: AuthorizationErrorResponse{
			redirectURI: redirectURI,
			value:       value,
			issuer:      issuer,
		},
	}
}

// AddError adds the error code and its rendered description.
func (b *AuthorizationErrorResponseBuilder) AddError(err *RFC6749Error) *AuthorizationErrorResponseBuilder {
	b.response.err = err
	b.response.params = b.response.params.
		Add(consts.AuthorizeResponseError, err.ErrorField).
		Add(consts.AuthorizeResponseErrorDescription, err.GetDescription())

	return b
}

// AddState adds the state. An empty state is not added.
func (b *AuthorizationErrorResponseBuilder) AddState(state string) *AuthorizationErrorResponseBuilder {
	b.response.state = state
	b.response.params = b.response.params.Add(consts.AuthorizeResponseState, state)

	return b
}

// Build returns the error response with the issuer identification appended.
func (b *AuthorizationErrorResponseBuilder) Build() *AuthorizationErrorResponse {
	response := b.response
	response.params = response.params.clone().Add(consts.AuthorizeResponseIssuer, response.issuer)

	return &response
}

// WithJARM returns a copy of r whose only parameter is the JWT Secured Authorization Response token.
func (r *AuthorizationErrorResponse) WithJARM(token string) *AuthorizationErrorResponse {
	response := *r
	response.jarm = token

	return &response
}

func (r *AuthorizationErrorResponse) RedirectURI() string {
	return r.redirectURI
}

func (r *AuthorizationErrorResponse) ResponseModeValue() ResponseModeValue {
	return r.value
}

func (r *AuthorizationErrorResponse) Issuer() string {
	return r.issuer
}

func (r *AuthorizationErrorResponse) State() string {
	return r.state
}

func (r *AuthorizationErrorResponse) GetError() *RFC6749Error {
	return r.err
}

func (r *AuthorizationErrorResponse) JARM() string {
	return r.jarm
}

func (r *AuthorizationErrorResponse) HasJARM() bool {
	return r.jarm != ""
}

// UnwrappedParameters returns the individual parameters regardless of the JARM token.
func (r *AuthorizationErrorResponse) UnwrappedParameters() Parameters {
	return r.params.clone()
}

// Parameters returns the wire parameters. When a JARM token is attached it is the only parameter.
func (r *AuthorizationErrorResponse) Parameters() Parameters {
	if r.HasJARM() {
		return Parameters{}.Add(consts.AuthorizeResponseJWT, r.jarm)
	}

	return r.UnwrappedParameters()
}

// RedirectURIValue returns the location the user agent is redirected to.
func (r *AuthorizationErrorResponse) RedirectURIValue() string {
	return redirectTo(r.redirectURI, r.value, r.Parameters())
}
