// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oauth2

import (
	"context"
	"time"

	"authelia.com/provider/authz"
	"authelia.com/provider/authz/internal/consts"
	"authelia.com/provider/authz/internal/errorsx"
	"authelia.com/provider/authz/internal/randx"
)

const (
	defaultAccessTokenLifespan = time.Hour
	defaultAccessTokenPrefix   = "authz_at_"
	accessTokenEntropy         = 32
)

// DefaultAccessTokenCreator issues opaque bearer access tokens.
type DefaultAccessTokenCreator struct {
	// Prefix is prepended to every token. Defaults to 'authz_at_'. Set it to '-' to disable the prefix.
	Prefix string
}

func (c *DefaultAccessTokenCreator) prefix() string {
	switch c.Prefix {
	case "":
		return defaultAccessTokenPrefix
	case "-":
		return ""
	default:
		return c.Prefix
	}
}

// CreateAccessToken issues a token for the scopes of the request, valid for the access token duration of the tenant.
func (c *DefaultAccessTokenCreator) CreateAccessToken(_ context.Context, ac *authz.AuthorizeContext) (token *authz.OAuthToken, err error) {
	var value string

	if value, err = randx.OpaqueString(accessTokenEntropy); err != nil {
		return nil, errorsx.WithStack(authz.ErrServerError.WithWrap(err).WithDebug(err.Error()))
	}

	lifespan := ac.Server().AccessTokenDuration
	if lifespan == 0 {
		lifespan = defaultAccessTokenLifespan
	}

	return &authz.OAuthToken{
		AccessToken: c.prefix() + value,
		TokenType:   consts.TokenTypeBearer,
		ExpiresIn:   int64(lifespan / time.Second),
		Scopes:      ac.Scopes(),
		Subject:     ac.Subject(),
		ClientID:    ac.ClientID(),
		TenantID:    ac.TenantID(),
		CreatedAt:   ac.Now,
	}, nil
}

var _ authz.AccessTokenCreator = (*DefaultAccessTokenCreator)(nil)
