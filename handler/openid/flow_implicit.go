// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package openid

import (
	"context"

	"authelia.com/provider/authz"
)

// IDTokenResponseCreator creates the response of 'response_type=id_token' as defined in
// https://openid.net/specs/openid-connect-core-1_0.html#ImplicitAuthResponse.
type IDTokenResponseCreator struct {
	IDTokenCreator authz.IDTokenCreator
}

func (c *IDTokenResponseCreator) ResponseType() authz.ResponseType {
	return authz.ResponseTypeIDToken
}

func (c *IDTokenResponseCreator) Create(ctx context.Context, ac *authz.AuthorizeContext) (*authz.AuthorizationResponse, error) {
	idToken, err := c.IDTokenCreator.CreateIDToken(ctx, ac, authz.IDTokenHashes{State: ac.State()})
	if err != nil {
		return nil, err
	}

	builder := ac.NewResponseBuilder().
		AddIDToken(idToken).
		AddState(ac.State())

	return ac.Finalize(ctx, builder)
}

// TokenIDTokenResponseCreator creates the response of 'response_type=id_token token'.
type TokenIDTokenResponseCreator struct {
	AccessTokenCreator authz.AccessTokenCreator
	IDTokenCreator     authz.IDTokenCreator
}

func (c *TokenIDTokenResponseCreator) ResponseType() authz.ResponseType {
	return authz.ResponseTypeTokenIDToken
}

func (c *TokenIDTokenResponseCreator) Create(ctx context.Context, ac *authz.AuthorizeContext) (*authz.AuthorizationResponse, error) {
	token, err := c.AccessTokenCreator.CreateAccessToken(ctx, ac)
	if err != nil {
		return nil, err
	}

	idToken, err := c.IDTokenCreator.CreateIDToken(ctx, ac, authz.IDTokenHashes{AccessToken: token.AccessToken, State: ac.State()})
	if err != nil {
		return nil, err
	}

	builder := ac.NewResponseBuilder().
		AddAccessToken(token).
		AddIDToken(idToken).
		AddState(ac.State())

	return ac.Finalize(ctx, builder)
}

var (
	_ authz.ResponseCreator = (*IDTokenResponseCreator)(nil)
	_ authz.ResponseCreator = (*TokenIDTokenResponseCreator)(nil)
)
