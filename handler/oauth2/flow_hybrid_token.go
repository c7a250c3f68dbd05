// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oauth2

import (
	"context"

	"authelia.com/provider/authz"
	"authelia.com/provider/authz/internal/errorsx"
)

// CodeTokenResponseCreator creates the response of 'response_type=code token'.
type CodeTokenResponseCreator struct {
	AccessTokenCreator authz.AccessTokenCreator
}

func (c *CodeTokenResponseCreator) ResponseType() authz.ResponseType {
	return authz.ResponseTypeCodeToken
}

func (c *CodeTokenResponseCreator) Create(ctx context.Context, ac *authz.AuthorizeContext) (*authz.AuthorizationResponse, error) {
	code, err := authz.GenerateAuthorizationCode()
	if err != nil {
		return nil, errorsx.WithStack(authz.ErrServerError.WithWrap(err).WithDebug(err.Error()))
	}

	token, err := c.AccessTokenCreator.CreateAccessToken(ctx, ac)
	if err != nil {
		return nil, err
	}

	builder := ac.NewResponseBuilder().
		AddCode(code).
		AddAccessToken(token).
		AddState(ac.State())

	return ac.Finalize(ctx, builder)
}

var _ authz.ResponseCreator = (*CodeTokenResponseCreator)(nil)
