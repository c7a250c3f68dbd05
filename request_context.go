// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"net/url"
)

// RequestContext aggregates an authorization request with the configuration, session and grant it is evaluated
// against. It is assembled once per call by NewRequestContext and never modified afterwards.
type RequestContext struct {
	request    *AuthorizationRequest
	server     *ServerConfiguration
	client     *ClientConfiguration
	parameters url.Values
	session    *OAuthSession
	granted    *AuthorizationGranted
}

// RequestContextOption configures optional members of a RequestContext.
type RequestContextOption func(rc *RequestContext)

// WithSession attaches the session found for the session key of the request.
func WithSession(session *OAuthSession) RequestContextOption {
	return func(rc *RequestContext) {
		rc.session = session
	}
}

// WithGranted attaches the authorization previously granted to the client by the session user.
func WithGranted(granted *AuthorizationGranted) RequestContextOption {
	return func(rc *RequestContext) {
		rc.granted = granted
	}
}

// WithParameters attaches the raw parameters the request was parsed from.
func WithParameters(parameters url.Values) RequestContextOption {
	return func(rc *RequestContext) {
		rc.parameters = parameters
	}
}

// NewRequestContext returns the RequestContext of request.
func NewRequestContext(request *AuthorizationRequest, server *ServerConfiguration, client *ClientConfiguration, opts ...RequestContextOption) *RequestContext {
	rc := &RequestContext{
		request: request,
		server:  server,
		client:  client,
	}

	for _, opt := range opts {
		opt(rc)
	}

	return rc
}

func (rc *RequestContext) Request() *AuthorizationRequest {
	return rc.request
}

func (rc *RequestContext) Server() *ServerConfiguration {
	return rc.server
}

func (rc *RequestContext) Client() *ClientConfiguration {
	return rc.client
}

func (rc *RequestContext) Parameters() url.Values {
	return rc.parameters
}

func (rc *RequestContext) Session() *OAuthSession {
	return rc.session
}

func (rc *RequestContext) Granted() *AuthorizationGranted {
	return rc.granted
}

func (rc *RequestContext) Pattern() RequestPattern {
	return rc.request.Pattern
}

func (rc *RequestContext) TenantID() string {
	return rc.request.TenantID
}

func (rc *RequestContext) ClientID() string {
	return rc.request.ClientID
}

func (rc *RequestContext) Profile() Profile {
	return rc.request.Profile
}

func (rc *RequestContext) ResponseType() ResponseType {
	return rc.request.ResponseType
}

func (rc *RequestContext) ResponseMode() ResponseMode {
	return rc.request.ResponseMode
}

func (rc *RequestContext) Scopes() Arguments {
	return rc.request.Scopes
}

func (rc *RequestContext) State() string {
	return rc.request.State
}

// Issuer returns the issuer identifier of the tenant.
func (rc *RequestContext) Issuer() string {
	return rc.server.Issuer
}

// RedirectURI returns the redirect URI the response is delivered to.
func (rc *RequestContext) RedirectURI() string {
	return DecideRedirectURI(rc.request, rc.client)
}

// ResponseModeValue returns the placement of the response parameters.
func (rc *RequestContext) ResponseModeValue() ResponseModeValue {
	return DecideResponseModeValue(rc.request.ResponseType, rc.request.ResponseMode)
}

// IsJWTMode reports whether the response is a JWT Secured Authorization Response.
func (rc *RequestContext) IsJWTMode() bool {
	return IsJWTMode(rc.request.Profile, rc.request.ResponseType, rc.request.ResponseMode)
}

func (rc *RequestContext) IsPromptNone() bool {
	return rc.request.Prompt.IsNone()
}

func (rc *RequestContext) HasSession() bool {
	return rc.session.Exists()
}

func (rc *RequestContext) HasGranted() bool {
	return rc.granted.Exists()
}

// SessionKey returns the key the session of the request is registered under.
func (rc *RequestContext) SessionKey() SessionKey {
	return rc.request.SessionKey()
}

// RequiredIDTokenClaims returns the ID Token claims the request requires to have been granted.
func (rc *RequestContext) RequiredIDTokenClaims() Arguments {
	return RequiredIDTokenClaims(rc.request.Scopes, rc.request.ResponseType, rc.request.RequestedClaims, rc.server)
}

// RequiredUserinfoClaims returns the userinfo claims the request requires to have been granted.
func (rc *RequestContext) RequiredUserinfoClaims() Arguments {
	return RequiredUserinfoClaims(rc.request.Scopes, rc.request.RequestedClaims, rc.server)
}

// RequiredConsentClaims returns the client documents the user must have consented to.
func (rc *RequestContext) RequiredConsentClaims() ConsentClaims {
	return RequiredConsentClaims(rc.client)
}
