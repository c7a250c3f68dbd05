// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"authelia.com/provider/authz/i18n"
)

// handleError converts err to the status tagged result of a Provider call. Redirectable errors are delivered to the
// client, configuration errors and unexpected errors become a server error and every other protocol error is a bad
// request rendered by the error view.
func (p *Provider) handleError(ctx context.Context, log *zap.Logger, server *ServerConfiguration, request *AuthorizationRequest, err error) Result {
	var (
		re  *RedirectableError
		ce  *ConfigurationError
		rfc *RFC6749Error
	)

	switch {
	case errors.As(err, &re):
		return p.handleRedirectableError(ctx, log, re)
	case errors.As(err, &ce):
		log.Error("Authorization server configuration error", zap.Error(err))

		return p.serverError(ctx, server, request, err)
	case errors.As(err, &rfc):
		rfc = p.localize(ctx, rfc, request)

		switch code := rfc.StatusCode(); {
		case code == http.StatusUnauthorized:
			log.Warn("Client authentication failed", zap.String("error", rfc.ErrorField), zap.String("error_description", rfc.GetDescription()))

			return Result{Status: StatusUnauthorized, Error: rfc.ErrorField, ErrorDescription: rfc.GetDescription()}
		case code >= http.StatusInternalServerError:
			log.Error("Authorization server error", zap.Error(err), zap.String("debug", rfc.Debug()))

			return Result{Status: StatusServerError, Error: rfc.ErrorField, ErrorDescription: rfc.GetDescription()}
		default:
			log.Warn("Bad authorization request", zap.String("error", rfc.ErrorField), zap.String("error_description", rfc.GetDescription()))

			return Result{Status: StatusBadRequest, Error: rfc.ErrorField, ErrorDescription: rfc.GetDescription(), Location: ErrorViewURL(server, rfc)}
		}
	case errors.Is(err, ErrServerConfigurationNotFound), errors.Is(err, ErrClientConfigurationNotFound):
		log.Warn("Configuration not found", zap.Error(err))

		rfc = p.localize(ctx, ErrInvalidRequest.WithHint(err.Error()).WithWrap(err), request)

		return Result{Status: StatusBadRequest, Error: rfc.ErrorField, ErrorDescription: rfc.GetDescription(), Location: ErrorViewURL(server, rfc)}
	default:
		log.Error("Unexpected error", zap.Error(err))

		return p.serverError(ctx, server, request, err)
	}
}

func (p *Provider) handleRedirectableError(ctx context.Context, log *zap.Logger, re *RedirectableError) Result {
	rc := re.Context
	rfc := p.localize(ctx, re.Err, rc.Request())

	log.Warn("Redirecting authorization error to the client", zap.String("error", rfc.ErrorField), zap.String("error_description", rfc.GetDescription()))

	response, err := CreateErrorResponse(ctx, rc, p.now(ctx), rfc)
	if err != nil {
		log.Error("Failed to create the authorization error response", zap.Error(err))

		return p.serverError(ctx, rc.Server(), rc.Request(), err)
	}

	return Result{
		Status:           StatusRedirectableBadRequest,
		Error:            rfc.ErrorField,
		ErrorDescription: rfc.GetDescription(),
		Location:         response.RedirectURIValue(),
	}
}

func (p *Provider) serverError(ctx context.Context, server *ServerConfiguration, request *AuthorizationRequest, err error) Result {
	rfc := p.localize(ctx, ErrServerError.WithWrap(err).WithDebug(err.Error()), request)

	return Result{Status: StatusServerError, Error: rfc.ErrorField, ErrorDescription: rfc.GetDescription(), Location: ErrorViewURL(server, rfc)}
}

// localize applies the message catalog in the 'ui_locales' of request and the debug exposure option.
func (p *Provider) localize(ctx context.Context, rfc *RFC6749Error, request *AuthorizationRequest) *RFC6749Error {
	catalog := p.Config.GetMessageCatalog(ctx)

	var locales []string

	if request != nil {
		locales = request.UILocales
	}

	return rfc.
		WithExposeDebug(p.Config.GetSendDebugMessagesToClients(ctx)).
		WithLocalizer(catalog, i18n.GetLangFromLocales(catalog, locales...))
}
