// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oauth2

import (
	"context"

	"authelia.com/provider/authz"
)

// TokenResponseCreator creates the response of the implicit grant, 'response_type=token', as defined in
// https://datatracker.ietf.org/doc/html/rfc6749#section-4.2.2.
type TokenResponseCreator struct {
	AccessTokenCreator authz.AccessTokenCreator
}

func (c *TokenResponseCreator) ResponseType() authz.ResponseType {
	return authz.ResponseTypeToken
}

func (c *TokenResponseCreator) Create(ctx context.Context, ac *authz.AuthorizeContext) (*authz.AuthorizationResponse, error) {
	token, err := c.AccessTokenCreator.CreateAccessToken(ctx, ac)
	if err != nil {
		return nil, err
	}

	builder := ac.NewResponseBuilder().
		AddAccessToken(token).
		AddState(ac.State())

	return ac.Finalize(ctx, builder)
}

var _ authz.ResponseCreator = (*TokenResponseCreator)(nil)
