// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"authelia.com/provider/authz/internal/consts"
	"authelia.com/provider/authz/internal/errorsx"
)

// Provider is the authorization endpoint of every tenant. Each call evaluates a single request and never returns a
// raw error: failures are converted to a status tagged response.
type Provider struct {
	Config   Configurator
	Store    Storage
	Verifier *RequestObjectVerifier
}

// NewProvider returns a Provider after checking that every response type has a registered creator.
func NewProvider(ctx context.Context, config Configurator, store Storage) (*Provider, error) {
	if err := config.GetResponseCreators(ctx).Validate(ResponseTypes...); err != nil {
		return nil, err
	}

	return &Provider{
		Config:   config,
		Store:    store,
		Verifier: &RequestObjectVerifier{HTTPClient: config.GetHTTPClient(ctx)},
	}, nil
}

// PushRequest is the input of Provider.Push.
type PushRequest struct {
	TenantID      string
	Params        url.Values
	Authorization string
}

// RequestInput is the input of Provider.Request. UserAgentID identifies the user agent the request was received
// from and scopes the sessions used for silent reauthorization; without it no session is looked up.
type RequestInput struct {
	TenantID    string
	UserAgentID string
	Params      url.Values
}

// Push registers a pushed authorization request and returns its 'request_uri'.
func (p *Provider) Push(ctx context.Context, in *PushRequest) (response *PushResponse) {
	log := p.logger(ctx).With(zap.String("tenant_id", in.TenantID))
	now := p.now(ctx)

	server, err := p.Store.GetServerConfiguration(ctx, in.TenantID)
	if err != nil {
		return &PushResponse{Result: p.handleError(ctx, log, nil, nil, err)}
	}

	creds, err := ClientCredentialsFromRequest(in.Authorization, in.Params)
	if err != nil {
		return &PushResponse{Result: p.handleError(ctx, log, server, nil, err)}
	}

	log = log.With(zap.String("client_id", creds.ClientID))

	client, err := p.Store.GetClientConfiguration(ctx, in.TenantID, creds.ClientID)
	if err != nil {
		if errors.Is(err, ErrClientConfigurationNotFound) {
			err = errorsx.WithStack(ErrInvalidClient.WithHint("The client is not registered.").WithWrap(err))
		}

		return &PushResponse{Result: p.handleError(ctx, log, server, nil, err)}
	}

	if err = AuthenticateClient(ctx, client, creds); err != nil {
		return &PushResponse{Result: p.handleError(ctx, log, server, nil, err)}
	}

	if !server.PushedAuthorizationRequestEnabled {
		return &PushResponse{Result: p.handleError(ctx, log, server, nil, errorsx.WithStack(ErrInvalidRequest.WithHint("Pushed authorization requests are not enabled for the tenant.")))}
	}

	params := withoutClientSecret(in.Params)
	if creds.ClientID != "" && params.Get(consts.FormParameterClientID) == "" {
		params.Set(consts.FormParameterClientID, creds.ClientID)
	}

	if params.Has(consts.FormParameterRequestURI) {
		return &PushResponse{Result: p.handleError(ctx, log, server, nil, errorsx.WithStack(ErrInvalidRequest.WithHint("The 'request_uri' parameter must not be pushed.")))}
	}

	if params.Has(consts.FormParameterRequest) {
		if params, err = p.mergeRequestObject(ctx, params, server, client); err != nil {
			return &PushResponse{Result: p.handleError(ctx, log, server, nil, err)}
		}
	}

	request, err := ParseAuthorizationRequest(in.TenantID, params, RequestPatternPushed, server, client)
	if err != nil {
		return &PushResponse{Result: p.handleError(ctx, log, server, nil, unredirectable(err))}
	}

	lifespan := p.Config.GetPushedAuthorizationRequestLifespan(ctx)

	request.ID = uuid.NewString()
	request.CreatedAt = now
	request.ExpiresAt = now.Add(lifespan)

	if err = p.Store.RegisterAuthorizationRequest(ctx, request); err != nil {
		return &PushResponse{Result: p.handleError(ctx, log, server, nil, err)}
	}

	log.Debug("Registered pushed authorization request", zap.String("request_id", request.ID))

	response = &PushResponse{
		Result:     Result{Status: StatusCreated},
		RequestURI: consts.PushedAuthorizeRequestURIPrefix + request.ID,
		ExpiresIn:  int64(lifespan / time.Second),
	}

	p.publish(ctx, SecurityEventPushed, request, "", &response.Result, now)

	return response
}

// Request is the authorization endpoint. It registers the request and either authorizes it silently or returns the
// authorization view the user agent is sent to.
func (p *Provider) Request(ctx context.Context, in *RequestInput) (response *RequestResponse) {
	log := p.logger(ctx).With(zap.String("tenant_id", in.TenantID), zap.String("client_id", in.Params.Get(consts.FormParameterClientID)))
	now := p.now(ctx)

	server, err := p.Store.GetServerConfiguration(ctx, in.TenantID)
	if err != nil {
		return &RequestResponse{Result: p.handleError(ctx, log, nil, nil, err)}
	}

	client, err := p.Store.GetClientConfiguration(ctx, in.TenantID, in.Params.Get(consts.FormParameterClientID))
	if err != nil {
		return &RequestResponse{Result: p.handleError(ctx, log, server, nil, err)}
	}

	params := in.Params

	var request *AuthorizationRequest

	switch {
	case params.Has(consts.FormParameterRequestURI):
		request, err = p.loadPushedRequest(ctx, params.Get(consts.FormParameterRequestURI), client, now)
	case params.Has(consts.FormParameterRequest):
		if params, err = p.mergeRequestObject(ctx, params, server, client); err == nil {
			request, err = ParseAuthorizationRequest(in.TenantID, params, RequestPatternRequestObject, server, client)
		}
	default:
		request, err = ParseAuthorizationRequest(in.TenantID, params, RequestPatternNormal, server, client)
	}

	if err != nil {
		return &RequestResponse{Result: p.handleError(ctx, log, server, nil, err)}
	}

	request.ID = uuid.NewString()
	request.UserAgentID = in.UserAgentID
	request.CreatedAt = now
	request.ExpiresAt = now.Add(p.requestLifespan(ctx, server))

	log = log.With(zap.String("request_id", request.ID))

	if err = p.Store.RegisterAuthorizationRequest(ctx, request); err != nil {
		return &RequestResponse{Result: p.handleError(ctx, log, server, nil, err)}
	}

	rc, err := p.newRequestContext(ctx, request, server, client, WithParameters(params))
	if err != nil {
		return &RequestResponse{Result: p.handleError(ctx, log, server, nil, err)}
	}

	response = &RequestResponse{RequestID: request.ID, TenantID: request.TenantID, Request: request}

	outcome := DecideSilentReauthorization(rc, now)

	log.Debug("Evaluated silent reauthorization", zap.Stringer("outcome", outcome.Kind))

	switch outcome.Kind {
	case OutcomeAutoAuthorized:
		var ar *AuthorizationResponse

		if ar, err = p.authorize(ctx, rc, rc.Session(), now); err != nil {
			response.Result = p.handleError(ctx, log, server, request, err)
			p.publish(ctx, SecurityEventAuthorizeFailure, request, rc.Session().User.Sub, &response.Result, now)

			return response
		}

		response.Result = Result{Status: StatusAutoAuthorized, Location: ar.RedirectURIValue()}
		response.Response = ar

		p.publish(ctx, SecurityEventAutoAuthorized, request, rc.Session().User.Sub, &response.Result, now)
	case OutcomeDenied:
		if err = p.Store.DeleteAuthorizationRequest(ctx, request.TenantID, request.ID); err != nil {
			log.Warn("Failed to delete the denied authorization request", zap.Error(err))
		}

		response.Result = p.handleError(ctx, log, server, request, NewRedirectableError(outcome.Err, rc))

		p.publish(ctx, SecurityEventAuthorizeFailure, request, "", &response.Result, now)
	default:
		status := StatusOK

		switch {
		case request.Prompt.IsCreate():
			status = StatusOKAccountCreation
		case rc.HasSession() && rc.Session().IsValid(request, now):
			status = StatusOKSessionEnable
		}

		response.Result = Result{Status: status}
		response.FrontURL = FrontURL(server, request)

		p.publish(ctx, SecurityEventRequested, request, "", &response.Result, now)
	}

	return response
}

// Get returns a registered authorization request.
func (p *Provider) Get(ctx context.Context, tenantID, requestID string) *GetResponse {
	log := p.logger(ctx).With(zap.String("tenant_id", tenantID), zap.String("request_id", requestID))

	request, server, _, err := p.load(ctx, tenantID, requestID)
	if err != nil {
		return &GetResponse{Result: p.handleError(ctx, log, server, nil, err)}
	}

	return &GetResponse{Result: Result{Status: StatusOK}, Request: request}
}

// GetViewData returns the data rendered by the authorization view of a registered request.
func (p *Provider) GetViewData(ctx context.Context, tenantID, requestID string) *ViewDataResponse {
	log := p.logger(ctx).With(zap.String("tenant_id", tenantID), zap.String("request_id", requestID))
	now := p.now(ctx)

	request, server, client, err := p.load(ctx, tenantID, requestID)
	if err != nil {
		return &ViewDataResponse{Result: p.handleError(ctx, log, server, nil, err)}
	}

	rc, err := p.newRequestContext(ctx, request, server, client)
	if err != nil {
		return &ViewDataResponse{Result: p.handleError(ctx, log, server, nil, err)}
	}

	return &ViewDataResponse{
		Result: Result{Status: StatusOK},
		ViewData: &ViewData{
			ClientID:             client.ClientID,
			ClientName:           client.ClientName,
			ClientURI:            client.ClientURI,
			LogoURI:              client.LogoURI,
			TosURI:               client.TosURI,
			PolicyURI:            client.PolicyURI,
			Scopes:               request.Scopes,
			IDTokenClaims:        rc.RequiredIDTokenClaims(),
			UserinfoClaims:       rc.RequiredUserinfoClaims(),
			AuthorizationDetails: request.AuthorizationDetails,
			Prompt:               request.Prompt,
			UILocales:            request.UILocales,
			SessionEnabled:       rc.HasSession() && rc.Session().IsValid(request, now),
			CustomParams:         request.CustomParams,
		},
	}
}

// load resolves a registered request with the configuration it was registered under.
func (p *Provider) load(ctx context.Context, tenantID, requestID string) (request *AuthorizationRequest, server *ServerConfiguration, client *ClientConfiguration, err error) {
	if server, err = p.Store.GetServerConfiguration(ctx, tenantID); err != nil {
		return nil, nil, nil, err
	}

	if request, err = p.Store.GetAuthorizationRequest(ctx, tenantID, requestID); err != nil {
		if errors.Is(err, ErrNotFound) {
			err = errorsx.WithStack(ErrInvalidRequest.WithHint("The authorization request is not registered.").WithWrap(err))
		}

		return nil, server, nil, err
	}

	if client, err = p.Store.GetClientConfiguration(ctx, tenantID, request.ClientID); err != nil {
		return nil, server, nil, err
	}

	return request, server, client, nil
}

// newRequestContext returns the RequestContext of request with the session of its session key and the grant of the
// session user.
func (p *Provider) newRequestContext(ctx context.Context, request *AuthorizationRequest, server *ServerConfiguration, client *ClientConfiguration, opts ...RequestContextOption) (rc *RequestContext, err error) {
	key := request.SessionKey()

	if !key.HasUserAgent() {
		return NewRequestContext(request, server, client, opts...), nil
	}

	var session *OAuthSession

	if session, err = p.Store.FindSession(ctx, key); err != nil {
		return nil, err
	}

	opts = append(opts, WithSession(session))

	if session.Exists() {
		var granted *AuthorizationGranted

		if granted, err = p.Store.FindAuthorizationGranted(ctx, request.TenantID, request.ClientID, session.User.Sub); err != nil {
			return nil, err
		}

		opts = append(opts, WithGranted(granted))
	}

	return NewRequestContext(request, server, client, opts...), nil
}

// loadPushedRequest resolves a 'request_uri'. A pushed request is single use.
func (p *Provider) loadPushedRequest(ctx context.Context, uri string, client *ClientConfiguration, now time.Time) (request *AuthorizationRequest, err error) {
	id, ok := strings.CutPrefix(uri, consts.PushedAuthorizeRequestURIPrefix)
	if !ok || id == "" {
		return nil, errorsx.WithStack(ErrInvalidRequestURI.WithHintf("The 'request_uri' parameter value must start with '%s'.", consts.PushedAuthorizeRequestURIPrefix))
	}

	var pushed *AuthorizationRequest

	if pushed, err = p.Store.GetAuthorizationRequest(ctx, client.TenantID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, errorsx.WithStack(ErrInvalidRequestURI.WithHint("The 'request_uri' is not registered.").WithWrap(err))
		}

		return nil, err
	}

	switch {
	case pushed.Pattern != RequestPatternPushed:
		return nil, errorsx.WithStack(ErrInvalidRequestURI.WithHint("The 'request_uri' does not reference a pushed authorization request."))
	case pushed.ClientID != client.ClientID:
		return nil, errorsx.WithStack(ErrInvalidRequestURI.WithHint("The 'request_uri' was pushed by another client."))
	case pushed.IsExpired(now):
		return nil, errorsx.WithStack(ErrInvalidRequestURI.WithHint("The 'request_uri' has expired."))
	}

	if err = p.Store.DeleteAuthorizationRequest(ctx, pushed.TenantID, pushed.ID); err != nil {
		return nil, err
	}

	request = &AuthorizationRequest{}
	*request = *pushed

	return request, nil
}

// requestObjectRegisteredClaims are the claims of a request object which are not authorization request parameters.
var requestObjectRegisteredClaims = []string{
	consts.ClaimIssuer,
	consts.ClaimAudience,
	consts.ClaimExpirationTime,
	consts.ClaimNotBefore,
	consts.ClaimIssuedAt,
	consts.ClaimJWTID,
}

// mergeRequestObject verifies the 'request' parameter and returns params overridden by its claims.
func (p *Provider) mergeRequestObject(ctx context.Context, params url.Values, server *ServerConfiguration, client *ClientConfiguration) (merged url.Values, err error) {
	verifier := p.Verifier
	if verifier == nil {
		verifier = &RequestObjectVerifier{HTTPClient: p.Config.GetHTTPClient(ctx)}
	}

	claims, err := verifier.Verify(ctx, params.Get(consts.FormParameterRequest), server, client, p.now(ctx))
	if err != nil {
		return nil, err
	}

	var override url.Values

	if override, err = claimsToParameters(claims); err != nil {
		return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHint("The request object claims could not be converted to parameters.").WithWrap(err))
	}

	for _, claim := range requestObjectRegisteredClaims {
		override.Del(claim)
	}

	merged = mergeParameters(params, override)
	merged.Del(consts.FormParameterRequest)

	return merged, nil
}

func (p *Provider) requestLifespan(ctx context.Context, server *ServerConfiguration) time.Duration {
	if server.AuthorizationRequestDuration != 0 {
		return server.AuthorizationRequestDuration
	}

	return p.Config.GetAuthorizationRequestLifespan(ctx)
}

func (p *Provider) codeLifespan(ctx context.Context, server *ServerConfiguration) time.Duration {
	if server.AuthorizationCodeDuration != 0 {
		return server.AuthorizationCodeDuration
	}

	return p.Config.GetAuthorizationCodeLifespan(ctx)
}

func (p *Provider) now(ctx context.Context) time.Time {
	return p.Config.GetClock(ctx).Now().UTC()
}

func (p *Provider) logger(ctx context.Context) *zap.Logger {
	return p.Config.GetLogger(ctx)
}

func (p *Provider) publish(ctx context.Context, t SecurityEventType, request *AuthorizationRequest, subject string, result *Result, now time.Time) {
	event := SecurityEvent{
		Type:       t,
		Subject:    subject,
		Status:     result.Status,
		Error:      result.Error,
		OccurredAt: now,
	}

	if request != nil {
		event.TenantID = request.TenantID
		event.ClientID = request.ClientID
		event.RequestID = request.ID
	}

	p.Config.GetEventPublisher(ctx).Publish(ctx, event)
}

func withoutClientSecret(params url.Values) url.Values {
	out := url.Values{}

	for key, values := range params {
		if key == consts.FormParameterClientSecret {
			continue
		}

		out[key] = append([]string(nil), values...)
	}

	return out
}

// unredirectable returns the protocol error of a RedirectableError so it is rendered as JSON.
func unredirectable(err error) error {
	var re *RedirectableError

	if errors.As(err, &re) {
		return errorsx.WithStack(re.Err)
	}

	return err
}
