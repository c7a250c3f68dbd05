// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package openid

import (
	"context"

	"authelia.com/provider/authz"
	"authelia.com/provider/authz/internal/errorsx"
)

// CodeIDTokenResponseCreator creates the response of 'response_type=code id_token' as defined in
// https://openid.net/specs/openid-connect-core-1_0.html#HybridAuthResponse.
type CodeIDTokenResponseCreator struct {
	IDTokenCreator authz.IDTokenCreator
}

func (c *CodeIDTokenResponseCreator) ResponseType() authz.ResponseType {
	return authz.ResponseTypeCodeIDToken
}

func (c *CodeIDTokenResponseCreator) Create(ctx context.Context, ac *authz.AuthorizeContext) (*authz.AuthorizationResponse, error) {
	code, err := authz.GenerateAuthorizationCode()
	if err != nil {
		return nil, errorsx.WithStack(authz.ErrServerError.WithWrap(err).WithDebug(err.Error()))
	}

	idToken, err := c.IDTokenCreator.CreateIDToken(ctx, ac, authz.IDTokenHashes{Code: code, State: ac.State()})
	if err != nil {
		return nil, err
	}

	builder := ac.NewResponseBuilder().
		AddCode(code).
		AddIDToken(idToken).
		AddState(ac.State())

	return ac.Finalize(ctx, builder)
}

// CodeTokenIDTokenResponseCreator creates the response of 'response_type=code id_token token'.
type CodeTokenIDTokenResponseCreator struct {
	AccessTokenCreator authz.AccessTokenCreator
	IDTokenCreator     authz.IDTokenCreator
}

func (c *CodeTokenIDTokenResponseCreator) ResponseType() authz.ResponseType {
	return authz.ResponseTypeCodeTokenIDToken
}

func (c *CodeTokenIDTokenResponseCreator) Create(ctx context.Context, ac *authz.AuthorizeContext) (*authz.AuthorizationResponse, error) {
	code, err := authz.GenerateAuthorizationCode()
	if err != nil {
		return nil, errorsx.WithStack(authz.ErrServerError.WithWrap(err).WithDebug(err.Error()))
	}

	token, err := c.AccessTokenCreator.CreateAccessToken(ctx, ac)
	if err != nil {
		return nil, err
	}

	hashes := authz.IDTokenHashes{Code: code, AccessToken: token.AccessToken, State: ac.State()}

	idToken, err := c.IDTokenCreator.CreateIDToken(ctx, ac, hashes)
	if err != nil {
		return nil, err
	}

	builder := ac.NewResponseBuilder().
		AddCode(code).
		AddAccessToken(token).
		AddIDToken(idToken).
		AddState(ac.State())

	return ac.Finalize(ctx, builder)
}

var (
	_ authz.ResponseCreator = (*CodeIDTokenResponseCreator)(nil)
	_ authz.ResponseCreator = (*CodeTokenIDTokenResponseCreator)(nil)
)
