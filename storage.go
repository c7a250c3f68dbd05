// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"context"
)

// ServerConfigurationRepository resolves the authorization server configuration of a tenant. Implementations
// return ErrServerConfigurationNotFound when the tenant is unknown.
type ServerConfigurationRepository interface {
	GetServerConfiguration(ctx context.Context, tenantID string) (*ServerConfiguration, error)
}

// ClientConfigurationRepository resolves the configuration of a client. Implementations return
// ErrClientConfigurationNotFound when the client is not registered within the tenant.
type ClientConfigurationRepository interface {
	GetClientConfiguration(ctx context.Context, tenantID, clientID string) (*ClientConfiguration, error)
}

// AuthorizationRequestRepository persists registered authorization requests. Get returns ErrNotFound for an unknown
// request.
type AuthorizationRequestRepository interface {
	RegisterAuthorizationRequest(ctx context.Context, request *AuthorizationRequest) error
	GetAuthorizationRequest(ctx context.Context, tenantID, requestID string) (*AuthorizationRequest, error)
	DeleteAuthorizationRequest(ctx context.Context, tenantID, requestID string) error
}

// SessionRepository persists sessions by session key. Find returns a nil session without error when none exists.
type SessionRepository interface {
	FindSession(ctx context.Context, key SessionKey) (*OAuthSession, error)
	RegisterSession(ctx context.Context, session *OAuthSession) error
	DeleteSession(ctx context.Context, key SessionKey) error
}

// AuthorizationGrantedRepository persists what users granted clients. Find returns a nil grant without error when
// none exists.
type AuthorizationGrantedRepository interface {
	FindAuthorizationGranted(ctx context.Context, tenantID, clientID, subject string) (*AuthorizationGranted, error)
	RegisterAuthorizationGranted(ctx context.Context, granted *AuthorizationGranted) error
	UpdateAuthorizationGranted(ctx context.Context, granted *AuthorizationGranted) error
}

// AuthorizationCodeGrantRepository persists issued authorization codes.
type AuthorizationCodeGrantRepository interface {
	RegisterAuthorizationCodeGrant(ctx context.Context, grant *AuthorizationCodeGrant) error
}

// OAuthTokenRepository persists access tokens issued through the front channel.
type OAuthTokenRepository interface {
	RegisterOAuthToken(ctx context.Context, token *OAuthToken) error
}

// Storage is every repository the Provider depends on.
type Storage interface {
	ServerConfigurationRepository
	ClientConfigurationRepository
	AuthorizationRequestRepository
	SessionRepository
	AuthorizationGrantedRepository
	AuthorizationCodeGrantRepository
	OAuthTokenRepository
}
