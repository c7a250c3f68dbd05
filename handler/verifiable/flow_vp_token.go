// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package verifiable

import (
	"context"

	"authelia.com/provider/authz"
)

// VPTokenResponseCreator creates the response of 'response_type=vp_token' as defined in
// https://openid.net/specs/openid-4-verifiable-presentations-1_0.html#name-response.
type VPTokenResponseCreator struct {
	VPTokenCreator authz.VPTokenCreator
}

func (c *VPTokenResponseCreator) ResponseType() authz.ResponseType {
	return authz.ResponseTypeVPToken
}

func (c *VPTokenResponseCreator) Create(ctx context.Context, ac *authz.AuthorizeContext) (*authz.AuthorizationResponse, error) {
	vpToken, err := c.VPTokenCreator.CreateVPToken(ctx, ac)
	if err != nil {
		return nil, err
	}

	builder := ac.NewResponseBuilder().
		AddVPToken(vpToken).
		AddState(ac.State())

	return ac.Finalize(ctx, builder)
}

// VPTokenIDTokenResponseCreator creates the response of 'response_type=vp_token id_token'.
type VPTokenIDTokenResponseCreator struct {
	VPTokenCreator authz.VPTokenCreator
	IDTokenCreator authz.IDTokenCreator
}

func (c *VPTokenIDTokenResponseCreator) ResponseType() authz.ResponseType {
	return authz.ResponseTypeVPTokenIDToken
}

func (c *VPTokenIDTokenResponseCreator) Create(ctx context.Context, ac *authz.AuthorizeContext) (*authz.AuthorizationResponse, error) {
	vpToken, err := c.VPTokenCreator.CreateVPToken(ctx, ac)
	if err != nil {
		return nil, err
	}

	idToken, err := c.IDTokenCreator.CreateIDToken(ctx, ac, authz.IDTokenHashes{State: ac.State()})
	if err != nil {
		return nil, err
	}

	builder := ac.NewResponseBuilder().
		AddIDToken(idToken).
		AddVPToken(vpToken).
		AddState(ac.State())

	return ac.Finalize(ctx, builder)
}

var (
	_ authz.ResponseCreator = (*VPTokenResponseCreator)(nil)
	_ authz.ResponseCreator = (*VPTokenIDTokenResponseCreator)(nil)
)
