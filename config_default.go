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

const (
	defaultAuthorizationRequestLifespan       = 30 * time.Minute
	defaultPushedAuthorizationRequestLifespan = 90 * time.Second
	defaultAuthorizationCodeLifespan          = 10 * time.Minute
	defaultSessionLifespan                    = 24 * time.Hour
)

type Config struct {
	// Clock is the time source. Defaults to RealClock.
	Clock Clock

	// Logger is the structured logger. Defaults to a no-op logger.
	Logger *zap.Logger

	// MessageCatalog is the message bundle used for i18n.
	MessageCatalog i18n.MessageCatalog

	// SendDebugMessagesToClients if set to true, includes error debug messages in error descriptions. Sensitive data
	// such as repository errors may be exposed.
	SendDebugMessagesToClients bool

	// AuthorizationRequestLifespan sets how long a registered authorization request is valid when the tenant does not
	// configure it. Defaults to thirty minutes.
	AuthorizationRequestLifespan time.Duration

	// PushedAuthorizationRequestLifespan sets how long a request_uri is valid. Defaults to ninety seconds.
	PushedAuthorizationRequestLifespan time.Duration

	// AuthorizationCodeLifespan sets how long an authorization code is valid when the tenant does not configure it.
	// Defaults to ten minutes.
	AuthorizationCodeLifespan time.Duration

	// SessionLifespan sets how long a session registered by an authorization is valid. Defaults to one day.
	SessionLifespan time.Duration

	// EventPublisher receives a SecurityEvent for every outcome. Defaults to discarding events.
	EventPublisher EventPublisher

	// HTTPClient is the HTTP client used to retrieve a client 'jwks_uri'.
	HTTPClient *retryablehttp.Client

	// ResponseCreators is the registry of creators keyed by response type.
	ResponseCreators ResponseCreators
}

func (c *Config) GetClock(_ context.Context) Clock {
	if c.Clock == nil {
		return NewRealClock()
	}

	return c.Clock
}

func (c *Config) GetLogger(_ context.Context) *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}

	return c.Logger
}

func (c *Config) GetMessageCatalog(_ context.Context) i18n.MessageCatalog {
	return c.MessageCatalog
}

func (c *Config) GetSendDebugMessagesToClients(_ context.Context) bool {
	return c.SendDebugMessagesToClients
}

func (c *Config) GetAuthorizationRequestLifespan(_ context.Context) time.Duration {
	if c.AuthorizationRequestLifespan == 0 {
		return defaultAuthorizationRequestLifespan
	}

	return c.AuthorizationRequestLifespan
}

func (c *Config) GetPushedAuthorizationRequestLifespan(_ context.Context) time.Duration {
	if c.PushedAuthorizationRequestLifespan == 0 {
		return defaultPushedAuthorizationRequestLifespan
	}

	return c.PushedAuthorizationRequestLifespan
}

func (c *Config) GetAuthorizationCodeLifespan(_ context.Context) time.Duration {
	if c.AuthorizationCodeLifespan == 0 {
		return defaultAuthorizationCodeLifespan
	}

	return c.AuthorizationCodeLifespan
}

func (c *Config) GetSessionLifespan(_ context.Context) time.Duration {
	if c.SessionLifespan == 0 {
		return defaultSessionLifespan
	}

	return c.SessionLifespan
}

func (c *Config) GetEventPublisher(_ context.Context) EventPublisher {
	if c.EventPublisher == nil {
		return NopEventPublisher{}
	}

	return c.EventPublisher
}

func (c *Config) GetHTTPClient(_ context.Context) *retryablehttp.Client {
	if c.HTTPClient == nil {
		return retryablehttp.NewClient()
	}

	return c.HTTPClient
}

func (c *Config) GetResponseCreators(_ context.Context) ResponseCreators {
	return c.ResponseCreators
}

var _ Configurator = (*Config)(nil)
