// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"authelia.com/provider/authz/internal/consts"
	"authelia.com/provider/authz/internal/errorsx"
	"authelia.com/provider/authz/token/jwt"
)

// AuthorizeInput is the input of Provider.Authorize. An empty UserAgentID is the user agent the request was
// received from.
type AuthorizeInput struct {
	TenantID         string
	RequestID        string
	UserAgentID      string
	User             *User
	Authentication   Authentication
	CustomProperties map[string]any
}

// DenyInput is the input of Provider.Deny.
type DenyInput struct {
	TenantID    string
	RequestID   string
	Reason      DenyReason
	Description string
}

// LogoutInput is the input of Provider.Logout. Only the session of UserAgentID is ended.
type LogoutInput struct {
	TenantID    string
	UserAgentID string
	Params      url.Values
}

// Authorize completes a registered request for the user who authenticated and consented through the authorization
// view.
func (p *Provider) Authorize(ctx context.Context, in *AuthorizeInput) (response *AuthorizeResponse) {
	log := p.logger(ctx).With(zap.String("tenant_id", in.TenantID), zap.String("request_id", in.RequestID))
	now := p.now(ctx)

	request, server, client, err := p.load(ctx, in.TenantID, in.RequestID)
	if err != nil {
		return &AuthorizeResponse{Result: p.handleError(ctx, log, server, nil, err)}
	}

	log = log.With(zap.String("client_id", request.ClientID))

	if request.IsExpired(now) {
		return &AuthorizeResponse{Result: p.handleError(ctx, log, server, request, errorsx.WithStack(ErrInvalidRequest.WithHint("The authorization request has expired.")))}
	}

	if err = checkUserAgent(request, in.UserAgentID); err != nil {
		return &AuthorizeResponse{Result: p.handleError(ctx, log, server, request, err)}
	}

	if !in.User.Exists() {
		return &AuthorizeResponse{Result: p.handleError(ctx, log, server, request, errorsx.WithStack(ErrInvalidRequest.WithHint("The authorized user is missing.")))}
	}

	session := &OAuthSession{
		Key:              request.SessionKey(),
		User:             in.User,
		Authentication:   in.Authentication,
		CustomProperties: in.CustomProperties,
		CreatedAt:        now,
		ExpiresAt:        now.Add(p.Config.GetSessionLifespan(ctx)),
	}

	return p.authorizeWith(ctx, log, NewRequestContext(request, server, client, WithSession(session)), session, now)
}

// AuthorizeWithSession completes a registered request for the user of the session userAgentID holds with the client.
func (p *Provider) AuthorizeWithSession(ctx context.Context, tenantID, requestID, userAgentID string) (response *AuthorizeResponse) {
	log := p.logger(ctx).With(zap.String("tenant_id", tenantID), zap.String("request_id", requestID))
	now := p.now(ctx)

	request, server, client, err := p.load(ctx, tenantID, requestID)
	if err != nil {
		return &AuthorizeResponse{Result: p.handleError(ctx, log, server, nil, err)}
	}

	log = log.With(zap.String("client_id", request.ClientID))

	if request.IsExpired(now) {
		return &AuthorizeResponse{Result: p.handleError(ctx, log, server, request, errorsx.WithStack(ErrInvalidRequest.WithHint("The authorization request has expired.")))}
	}

	if err = checkUserAgent(request, userAgentID); err != nil {
		return &AuthorizeResponse{Result: p.handleError(ctx, log, server, request, err)}
	}

	rc, err := p.newRequestContext(ctx, request, server, client)
	if err != nil {
		return &AuthorizeResponse{Result: p.handleError(ctx, log, server, request, err)}
	}

	if !rc.HasSession() || !rc.Session().IsValid(request, now) {
		response = &AuthorizeResponse{Result: p.handleError(ctx, log, server, request, NewRedirectableError(ErrLoginRequired.WithDescription("invalid session, session is invalid"), rc))}

		p.publish(ctx, SecurityEventAuthorizeFailure, request, "", &response.Result, now)

		return response
	}

	return p.authorizeWith(ctx, log, rc, rc.Session(), now)
}

func (p *Provider) authorizeWith(ctx context.Context, log *zap.Logger, rc *RequestContext, session *OAuthSession, now time.Time) (response *AuthorizeResponse) {
	ar, err := p.authorize(ctx, rc, session, now)
	if err != nil {
		response = &AuthorizeResponse{Result: p.handleError(ctx, log, rc.Server(), rc.Request(), err)}

		p.publish(ctx, SecurityEventAuthorizeFailure, rc.Request(), session.User.Sub, &response.Result, now)

		return response
	}

	response = &AuthorizeResponse{
		Result:   Result{Status: StatusOK, Location: ar.RedirectURIValue()},
		Response: ar,
	}

	p.publish(ctx, SecurityEventAuthorized, rc.Request(), session.User.Sub, &response.Result, now)

	return response
}

// authorize creates the response of rc for the user of session and records the artifacts, grant and session.
func (p *Provider) authorize(ctx context.Context, rc *RequestContext, session *OAuthSession, now time.Time) (response *AuthorizationResponse, err error) {
	var creator ResponseCreator

	if creator, err = p.Config.GetResponseCreators(ctx).Get(rc.ResponseType()); err != nil {
		return nil, err
	}

	ac := NewAuthorizeContext(rc, session, now)

	if response, err = creator.Create(ctx, ac); err != nil {
		return nil, err
	}

	request := rc.Request()

	if response.HasAuthorizationCode() {
		grant := &AuthorizationCodeGrant{
			Code:                response.Code(),
			RequestID:           request.ID,
			TenantID:            request.TenantID,
			ClientID:            request.ClientID,
			Subject:             ac.Subject(),
			Scopes:              request.Scopes,
			RedirectURI:         request.RedirectURI,
			Nonce:               request.Nonce,
			CodeChallenge:       request.CodeChallenge,
			CodeChallengeMethod: request.CodeChallengeMethod,
			CreatedAt:           now,
			ExpiresAt:           now.Add(p.codeLifespan(ctx, rc.Server())),
		}

		if err = p.Store.RegisterAuthorizationCodeGrant(ctx, grant); err != nil {
			return nil, err
		}
	}

	if response.HasAccessToken() {
		if err = p.Store.RegisterOAuthToken(ctx, response.AccessToken()); err != nil {
			return nil, err
		}
	}

	if err = p.grant(ctx, rc, ac.Subject(), now); err != nil {
		return nil, err
	}

	if rc.SessionKey().HasUserAgent() {
		if err = p.Store.RegisterSession(ctx, session); err != nil {
			return nil, err
		}
	}

	if err = p.Store.DeleteAuthorizationRequest(ctx, request.TenantID, request.ID); err != nil {
		return nil, err
	}

	return response, nil
}

// grant registers what the user granted the client or extends the existing grant.
func (p *Provider) grant(ctx context.Context, rc *RequestContext, subject string, now time.Time) (err error) {
	consent := ConsentClaims{}

	for name, claims := range rc.RequiredConsentClaims() {
		for _, claim := range claims {
			claim.ConsentedAt = now
			consent[name] = append(consent[name], claim)
		}
	}

	next := &AuthorizationGranted{
		TenantID:       rc.TenantID(),
		ClientID:       rc.ClientID(),
		Subject:        subject,
		Scopes:         rc.Scopes(),
		IDTokenClaims:  rc.RequiredIDTokenClaims(),
		UserinfoClaims: rc.RequiredUserinfoClaims(),
		ConsentClaims:  consent,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var existing *AuthorizationGranted

	if existing, err = p.Store.FindAuthorizationGranted(ctx, rc.TenantID(), rc.ClientID(), subject); err != nil {
		return err
	}

	if existing.Exists() {
		return p.Store.UpdateAuthorizationGranted(ctx, existing.Merge(next, now))
	}

	next.ID = uuid.NewString()

	return p.Store.RegisterAuthorizationGranted(ctx, next)
}

// Deny redirects the user agent back to the client with the error of the deny reason.
func (p *Provider) Deny(ctx context.Context, in *DenyInput) (response *DenyResponse) {
	log := p.logger(ctx).With(zap.String("tenant_id", in.TenantID), zap.String("request_id", in.RequestID))
	now := p.now(ctx)

	request, server, client, err := p.load(ctx, in.TenantID, in.RequestID)
	if err != nil {
		return &DenyResponse{Result: p.handleError(ctx, log, server, nil, err)}
	}

	log = log.With(zap.String("client_id", request.ClientID))

	rc := NewRequestContext(request, server, client)

	rfc := p.localize(ctx, in.Reason.RFC6749Error(), request)
	if in.Description != "" {
		rfc = rfc.WithDescription(in.Description)
	}

	er, err := CreateErrorResponse(ctx, rc, now, rfc)
	if err != nil {
		return &DenyResponse{Result: p.handleError(ctx, log, server, request, err)}
	}

	if err = p.Store.DeleteAuthorizationRequest(ctx, request.TenantID, request.ID); err != nil {
		return &DenyResponse{Result: p.handleError(ctx, log, server, request, err)}
	}

	response = &DenyResponse{
		Result: Result{
			Status:           StatusRedirect,
			Error:            rfc.ErrorField,
			ErrorDescription: rfc.GetDescription(),
			Location:         er.RedirectURIValue(),
		},
		Response: er,
	}

	log.Debug("Denied authorization request", zap.String("error", rfc.ErrorField))

	p.publish(ctx, SecurityEventDenied, request, "", &response.Result, now)

	return response
}

// Logout ends the session of the client identified by the 'id_token_hint' or 'client_id' parameter and redirects
// to the registered 'post_logout_redirect_uri' when requested.
func (p *Provider) Logout(ctx context.Context, in *LogoutInput) (response *LogoutResponse) {
	log := p.logger(ctx).With(zap.String("tenant_id", in.TenantID))
	now := p.now(ctx)

	server, err := p.Store.GetServerConfiguration(ctx, in.TenantID)
	if err != nil {
		return &LogoutResponse{Result: p.handleError(ctx, log, nil, nil, err)}
	}

	clientID := in.Params.Get(consts.FormParameterClientID)

	if hint := in.Params.Get(consts.FormParameterIDTokenHint); hint != "" {
		var aud string

		if aud, err = idTokenHintAudience(server, hint); err != nil {
			return &LogoutResponse{Result: p.handleError(ctx, log, server, nil, err)}
		}

		if clientID != "" && clientID != aud {
			return &LogoutResponse{Result: p.handleError(ctx, log, server, nil, errorsx.WithStack(ErrInvalidRequest.WithHint("The 'client_id' parameter does not match the audience of the 'id_token_hint'.")))}
		}

		clientID = aud
	}

	redirectURI := in.Params.Get(consts.FormParameterPostLogoutRedirectURI)

	if clientID == "" {
		if redirectURI != "" {
			return &LogoutResponse{Result: p.handleError(ctx, log, server, nil, errorsx.WithStack(ErrInvalidRequest.WithHint("The 'post_logout_redirect_uri' parameter requires the 'id_token_hint' or 'client_id' parameter.")))}
		}

		return &LogoutResponse{Result: Result{Status: StatusOK}}
	}

	log = log.With(zap.String("client_id", clientID))

	client, err := p.Store.GetClientConfiguration(ctx, in.TenantID, clientID)
	if err != nil {
		return &LogoutResponse{Result: p.handleError(ctx, log, server, nil, err)}
	}

	if redirectURI != "" && !Arguments(client.PostLogoutRedirectURIs).Has(redirectURI) {
		return &LogoutResponse{Result: p.handleError(ctx, log, server, nil, errorsx.WithStack(ErrInvalidRequest.WithHintf("The 'post_logout_redirect_uri' parameter value '%s' is not registered for the client.", redirectURI)))}
	}

	if key := (SessionKey{TenantID: in.TenantID, ClientID: clientID, UserAgentID: in.UserAgentID}); key.HasUserAgent() {
		if err = p.Store.DeleteSession(ctx, key); err != nil {
			return &LogoutResponse{Result: p.handleError(ctx, log, server, nil, err)}
		}
	}

	response = &LogoutResponse{Result: Result{Status: StatusOK}}

	if redirectURI != "" {
		location := redirectURI

		if state := in.Params.Get(consts.FormParameterState); state != "" {
			location = redirectTo(redirectURI, ResponseModeValueQuery, Parameters{}.Add(consts.FormParameterState, state))
		}

		response.Result = Result{Status: StatusRedirect, Location: location}
	}

	p.publish(ctx, SecurityEventLogout, &AuthorizationRequest{TenantID: in.TenantID, ClientID: clientID}, "", &response.Result, now)

	return response
}

// checkUserAgent rejects completing request from a user agent other than the one it was received from. An empty
// userAgentID is not checked.
func checkUserAgent(request *AuthorizationRequest, userAgentID string) error {
	if userAgentID == "" || userAgentID == request.UserAgentID {
		return nil
	}

	return errorsx.WithStack(ErrInvalidRequest.WithHint("The authorization request was started by another user agent."))
}

// idTokenHintAudience verifies an ID Token issued by the tenant and returns the client it was issued to. The
// expiry is not checked.
func idTokenHintAudience(server *ServerConfiguration, hint string) (aud string, err error) {
	issuer, err := jwt.NewIssuerFromJSON(server.JWKS)
	if err != nil {
		return "", NewConfigurationError("failed to parse the JSON Web Key Set of the tenant", err)
	}

	verified, err := jwt.DecodeCompactSigned(hint, issuer.PublicJWKS(), nil)
	if err != nil {
		return "", errorsx.WithStack(ErrInvalidRequest.WithHint("The 'id_token_hint' could not be verified.").WithWrap(err).WithDebug(err.Error()))
	}

	if iss, _ := verified.Claims.GetString(consts.ClaimIssuer); iss != server.Issuer {
		return "", errorsx.WithStack(ErrInvalidRequest.WithHint("The 'id_token_hint' was not issued by the tenant."))
	}

	audience := verified.Claims.GetAudience()
	if len(audience) == 0 {
		return "", errorsx.WithStack(ErrInvalidRequest.WithHint("The 'id_token_hint' has no audience."))
	}

	return audience[0], nil
}
