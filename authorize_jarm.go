// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"context"
	"time"

	"authelia.com/provider/authz/token/jarm"
	"authelia.com/provider/authz/token/jwt"
)

const defaultAuthorizationResponseLifespan = 10 * time.Minute

// jarmConfig adapts the tenant configuration to jarm.Configurator for a single response.
type jarmConfig struct {
	server *ServerConfiguration
	now    time.Time
}

func (c *jarmConfig) GetJWTSecuredAuthorizeResponseModeIssuer(_ context.Context) string {
	return c.server.Issuer
}

func (c *jarmConfig) GetJWTSecuredAuthorizeResponseModeSigner(_ context.Context) (jwt.Issuer, error) {
	return jwt.NewIssuerFromJSON(c.server.JWKS)
}

func (c *jarmConfig) GetJWTSecuredAuthorizeResponseModeLifespan(_ context.Context) time.Duration {
	if c.server.AuthorizationResponseDuration == 0 {
		return defaultAuthorizationResponseLifespan
	}

	return c.server.AuthorizationResponseDuration
}

func (c *jarmConfig) GetJWTSecuredAuthorizeResponseModeNow(_ context.Context) time.Time {
	return c.now
}

var _ jarm.Configurator = (*jarmConfig)(nil)

// SignResponseParameters signs params as a JWT Secured Authorization Response for client. Every failure is a
// ConfigurationError.
func SignResponseParameters(ctx context.Context, server *ServerConfiguration, client *ClientConfiguration, now time.Time, params Parameters) (token string, err error) {
	if token, err = jarm.Generate(ctx, &jarmConfig{server: server, now: now}, client, params.Values()); err != nil {
		return "", NewConfigurationError("failed to sign the authorization response", err)
	}

	return token, nil
}

// FinalizeAuthorizationResponse builds the response and wraps it as a JWT Secured Authorization Response when the
// request requires it.
func FinalizeAuthorizationResponse(ctx context.Context, rc *RequestContext, now time.Time, builder *AuthorizationResponseBuilder) (*AuthorizationResponse, error) {
	response := builder.Build()

	if !rc.IsJWTMode() {
		return response, nil
	}

	token, err := SignResponseParameters(ctx, rc.Server(), rc.Client(), now, response.UnwrappedParameters())
	if err != nil {
		return nil, err
	}

	return response.WithJARM(token), nil
}

// FinalizeAuthorizationErrorResponse builds the error response and wraps it as a JWT Secured Authorization Response
// when the request requires it.
func FinalizeAuthorizationErrorResponse(ctx context.Context, rc *RequestContext, now time.Time, builder *AuthorizationErrorResponseBuilder) (*AuthorizationErrorResponse, error) {
	response := builder.Build()

	if !rc.IsJWTMode() {
		return response, nil
	}

	token, err := SignResponseParameters(ctx, rc.Server(), rc.Client(), now, response.UnwrappedParameters())
	if err != nil {
		return nil, err
	}

	return response.WithJARM(token), nil
}
