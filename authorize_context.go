// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"context"
	"time"
)

// AuthorizeContext is the input of a ResponseCreator: the request being authorized and the user it is authorized for.
type AuthorizeContext struct {
	*RequestContext

	User             *User
	Authentication   Authentication
	CustomProperties map[string]any
	Now              time.Time
}

// NewAuthorizeContext returns the AuthorizeContext of rc for the user of session.
func NewAuthorizeContext(rc *RequestContext, session *OAuthSession, now time.Time) *AuthorizeContext {
	return &AuthorizeContext{
		RequestContext:   rc,
		User:             session.User,
		Authentication:   session.Authentication,
		CustomProperties: session.CustomProperties,
		Now:              now,
	}
}

// NewResponseBuilder returns a builder for the redirect URI, placement and issuer of the request.
func (ac *AuthorizeContext) NewResponseBuilder() *AuthorizationResponseBuilder {
	return NewAuthorizationResponseBuilder(ac.RedirectURI(), ac.ResponseModeValue(), ac.Issuer())
}

// Finalize builds the response of builder.
func (ac *AuthorizeContext) Finalize(ctx context.Context, builder *AuthorizationResponseBuilder) (*AuthorizationResponse, error) {
	return FinalizeAuthorizationResponse(ctx, ac.RequestContext, ac.Now, builder)
}

// Subject returns the subject of the user.
func (ac *AuthorizeContext) Subject() string {
	if ac.User == nil {
		return ""
	}

	return ac.User.Sub
}
