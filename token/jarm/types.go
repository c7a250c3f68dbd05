// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package jarm

import (
	"context"
	"time"

	"authelia.com/provider/authz/token/jwt"
)

// Configurator provides the tenant specific values used to secure an authorization response.
type Configurator interface {
	GetJWTSecuredAuthorizeResponseModeIssuer(ctx context.Context) string
	GetJWTSecuredAuthorizeResponseModeSigner(ctx context.Context) (jwt.Issuer, error)
	GetJWTSecuredAuthorizeResponseModeLifespan(ctx context.Context) time.Duration
	GetJWTSecuredAuthorizeResponseModeNow(ctx context.Context) time.Time
}

// Client is the client registration consumed when securing an authorization response.
type Client interface {
	// GetID returns the client ID.
	GetID() string

	// GetAuthorizationSignedResponseKeyID returns the 'authorization_signed_response_alg' key identifier instead of
	// using the alg.
	GetAuthorizationSignedResponseKeyID() (kid string)

	// GetAuthorizationSignedResponseAlg returns the 'authorization_signed_response_alg' value.
	GetAuthorizationSignedResponseAlg() (alg string)
}
