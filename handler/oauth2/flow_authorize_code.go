// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oauth2

import (
	"context"

	"authelia.com/provider/authz"
	"authelia.com/provider/authz/internal/errorsx"
)

// AuthorizationCodeResponseCreator creates the response of the authorization code flow, 'response_type=code', as
// defined in https://datatracker.ietf.org/doc/html/rfc6749#section-4.1.2.
type AuthorizationCodeResponseCreator struct{}

func (c *AuthorizationCodeResponseCreator) ResponseType() authz.ResponseType {
	return authz.ResponseTypeCode
}

func (c *AuthorizationCodeResponseCreator) Create(ctx context.Context, ac *authz.AuthorizeContext) (*authz.AuthorizationResponse, error) {
	code, err := authz.GenerateAuthorizationCode()
	if err != nil {
		return nil, errorsx.WithStack(authz.ErrServerError.WithWrap(err).WithDebug(err.Error()))
	}

	builder := ac.NewResponseBuilder().
		AddCode(code).
		AddState(ac.State())

	return ac.Finalize(ctx, builder)
}

var _ authz.ResponseCreator = (*AuthorizationCodeResponseCreator)(nil)
