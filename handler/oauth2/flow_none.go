// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oauth2

import (
	"context"

	"authelia.com/provider/authz"
)

// NoneResponseCreator creates the response of 'response_type=none', which carries no artifact. See
// https://openid.net/specs/oauth-v2-multiple-response-types-1_0.html#none.
type NoneResponseCreator struct{}

func (c *NoneResponseCreator) ResponseType() authz.ResponseType {
	return authz.ResponseTypeNone
}

func (c *NoneResponseCreator) Create(ctx context.Context, ac *authz.AuthorizeContext) (*authz.AuthorizationResponse, error) {
	return ac.Finalize(ctx, ac.NewResponseBuilder().AddState(ac.State()))
}

var _ authz.ResponseCreator = (*NoneResponseCreator)(nil)
