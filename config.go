// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"context"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"authelia.com/provider/authz/i18n"
)

// ClockSourceProvider returns the provider for configuring the clock.
type ClockSourceProvider interface {
	// GetClock returns the clock used for every time based decision.
	GetClock(ctx context.Context) Clock
}

// LoggerProvider returns the provider for configuring the logger.
type LoggerProvider interface {
	// GetLogger returns the structured logger.
	GetLogger(ctx context.Context) *zap.Logger
}

// MessageCatalogProvider returns the provider for configuring the message catalog.
type MessageCatalogProvider interface {
	// GetMessageCatalog returns the message catalog.
	GetMessageCatalog(ctx context.Context) i18n.MessageCatalog
}

// SendDebugMessagesToClientsProvider returns the provider for configuring the send debug messages to clients option.
type SendDebugMessagesToClientsProvider interface {
	// GetSendDebugMessagesToClients returns the send debug messages to clients option.
	GetSendDebugMessagesToClients(ctx context.Context) bool
}

// AuthorizationRequestLifespanProvider returns the provider for configuring the authorization request lifespan.
type AuthorizationRequestLifespanProvider interface {
	// GetAuthorizationRequestLifespan returns how long a registered authorization request can be authorized.
	GetAuthorizationRequestLifespan(ctx context.Context) time.Duration
}

// PushedAuthorizationRequestLifespanProvider returns the provider for configuring the pushed authorization request
// lifespan.
type PushedAuthorizationRequestLifespanProvider interface {
	// GetPushedAuthorizationRequestLifespan returns how long a pushed request_uri can be used.
	GetPushedAuthorizationRequestLifespan(ctx context.Context) time.Duration
}

// AuthorizationCodeLifespanProvider returns the provider for configuring the authorization code lifespan.
type AuthorizationCodeLifespanProvider interface {
	// GetAuthorizationCodeLifespan returns the authorization code lifespan.
	GetAuthorizationCodeLifespan(ctx context.Context) time.Duration
}

// SessionLifespanProvider returns the provider for configuring the session lifespan.
type SessionLifespanProvider interface {
	// GetSessionLifespan returns the lifespan of a session registered by an authorization.
	GetSessionLifespan(ctx context.Context) time.Duration
}

// EventPublisherProvider returns the provider for configuring the security event publisher.
type EventPublisherProvider interface {
	// GetEventPublisher returns the security event publisher.
	GetEventPublisher(ctx context.Context) EventPublisher
}

// HTTPClientProvider returns the provider for configuring the HTTP client.
type HTTPClientProvider interface {
	// GetHTTPClient returns the HTTP client used to retrieve a client 'jwks_uri'.
	GetHTTPClient(ctx context.Context) *retryablehttp.Client
}

// ResponseCreatorsProvider returns the provider for configuring the response creators.
type ResponseCreatorsProvider interface {
	// GetResponseCreators returns the response creator registry.
	GetResponseCreators(ctx context.Context) ResponseCreators
}

// Configurator is the complete configuration consumed by the Provider.
type Configurator interface {
	ClockSourceProvider
	LoggerProvider
	MessageCatalogProvider
	SendDebugMessagesToClientsProvider
	AuthorizationRequestLifespanProvider
	PushedAuthorizationRequestLifespanProvider
	AuthorizationCodeLifespanProvider
	SessionLifespanProvider
	EventPublisherProvider
	HTTPClientProvider
	ResponseCreatorsProvider
}
