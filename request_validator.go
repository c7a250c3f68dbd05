// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"net/url"

	"authelia.com/provider/authz/internal/consts"
	"authelia.com/provider/authz/internal/errorsx"
)

// ParseAuthorizationRequest parses params into an AuthorizationRequest of client and validates it against the tenant
// configuration. Failures where the redirect URI can't be trusted are returned as an *RFC6749Error and every other
// failure as a *RedirectableError.
func ParseAuthorizationRequest(tenantID string, params url.Values, pattern RequestPattern, server *ServerConfiguration, client *ClientConfiguration) (request *AuthorizationRequest, err error) {
	request = parseRequestParameters(tenantID, params, pattern)

	if request.ClientID == "" {
		return nil, errorsx.WithStack(ErrInvalidRequest.WithHint("The 'client_id' parameter is missing."))
	}

	if request.ClientID != client.ClientID {
		return nil, errorsx.WithStack(ErrInvalidClient.WithHint("The requested client does not match the registered client."))
	}

	switch {
	case request.HasRedirectURI() && !IsValidRedirectURI(request.RedirectURI):
		return nil, errorsx.WithStack(ErrInvalidRequest.WithHintf("The 'redirect_uri' parameter value '%s' is not an absolute URI without a fragment.", request.RedirectURI))
	case request.HasRedirectURI() && !client.IsRegisteredRedirectURI(request.RedirectURI):
		return nil, errorsx.WithStack(ErrInvalidRequest.WithHintf("The 'redirect_uri' parameter value '%s' is not registered for the client.", request.RedirectURI))
	case !request.HasRedirectURI() && client.IsMultiRedirectURI():
		return nil, errorsx.WithStack(ErrInvalidRequest.WithHint("The 'redirect_uri' parameter is required because the client has registered more than one redirect URI."))
	case !request.HasRedirectURI() && client.FirstRedirectURI() == "":
		return nil, errorsx.WithStack(ErrInvalidRequest.WithHint("The client has not registered a redirect URI."))
	}

	// The profile is provisional until the scopes are filtered, but the error redirect of every later rule depends
	// on it.
	request.Profile = server.DecideProfile(request.Scopes)

	redirectable := func(e *RFC6749Error) error {
		return errorsx.WithStack(NewRedirectableError(e, NewRequestContext(request, server, client, WithParameters(params))))
	}

	switch {
	case request.ResponseType.IsUndefined():
		return nil, redirectable(ErrInvalidRequest.WithHint("The 'response_type' parameter is missing."))
	case request.ResponseType.IsUnknown(), !server.IsSupportedResponseType(request.ResponseType):
		return nil, redirectable(ErrUnsupportedResponseType.WithHintf("The response type '%s' is not supported by the authorization server.", params.Get(consts.FormParameterResponseType)))
	case !client.IsSupportedResponseType(request.ResponseType):
		return nil, redirectable(ErrUnsupportedResponseType.WithHintf("The client is not allowed to request the response type '%s'.", request.ResponseType))
	}

	if !request.ResponseMode.IsSupported() {
		mode := request.ResponseMode
		request.ResponseMode = ResponseModeUndefined

		return nil, redirectable(ErrUnsupportedResponseMode.WithHintf("The response mode '%s' is not supported.", mode))
	}

	if request.Scopes = request.Scopes.Filter(client.Scopes); len(request.Scopes) == 0 {
		return nil, redirectable(ErrInvalidScope.WithHint("None of the requested scopes are registered for the client."))
	}

	request.Profile = server.DecideProfile(request.Scopes)

	if request.Profile != ProfileOAuth2 && request.Scopes.Has(consts.ScopeOpenID) {
		if request.ResponseType.HasIDToken() && request.Nonce == "" {
			return nil, redirectable(ErrInvalidRequest.WithHint("The 'nonce' parameter is required when the response type contains 'id_token'."))
		}

		if !request.Prompt.IsValid() {
			return nil, redirectable(ErrInvalidRequest.WithHintf("The 'prompt' parameter value '%s' is invalid. The value 'none' must not be combined with other values.", request.Prompt))
		}
	}

	if request.Profile == ProfileFAPIAdvance && pattern == RequestPatternNormal {
		return nil, redirectable(ErrInvalidRequest.WithHint("The FAPI Advance profile requires a request object or a pushed authorization request."))
	}

	if request.Profile.IsFAPI() {
		switch {
		case !request.HasRedirectURI():
			return nil, errorsx.WithStack(ErrInvalidRequest.WithHint("The 'redirect_uri' parameter is required by the FAPI profiles."))
		case !IsRedirectURIHTTPS(request.RedirectURI):
			return nil, errorsx.WithStack(ErrInvalidRequest.WithHintf("The 'redirect_uri' parameter value '%s' must use the 'https' scheme under the FAPI profiles.", request.RedirectURI))
		}

		if rfc := validateFAPI(request, pattern, client); rfc != nil {
			return nil, redirectable(rfc)
		}
	}

	var e error

	if request.MaxAge, e = ParseMaxAge(params.Get(consts.FormParameterMaximumAge)); e != nil {
		return nil, redirectable(ErrorToRFC6749Error(e))
	}

	if request.RequestedClaims, e = ParseRequestedClaims(request.Claims); e != nil {
		return nil, redirectable(ErrorToRFC6749Error(e))
	}

	if request.AuthorizationDetails, e = ParseAuthorizationDetails(params.Get(consts.FormParameterAuthorizationDetails)); e != nil {
		return nil, redirectable(ErrorToRFC6749Error(e))
	}

	return request, nil
}

// validateFAPI applies the FAPI 1.0 Baseline and Advance rules which can be redirected to the client.
func validateFAPI(request *AuthorizationRequest, pattern RequestPattern, client *ClientConfiguration) *RFC6749Error {
	openid := request.Scopes.Has(consts.ScopeOpenID)

	switch {
	case openid && request.Nonce == "":
		return ErrInvalidRequest.WithHint("The 'nonce' parameter is required by the FAPI profiles when the 'openid' scope is requested.")
	case !openid && request.State == "":
		return ErrInvalidRequest.WithHint("The 'state' parameter is required by the FAPI profiles when the 'openid' scope is not requested.")
	}

	// Advance only requires PKCE for pushed requests.
	if request.Profile == ProfileFAPIBaseline || pattern == RequestPatternPushed {
		switch {
		case request.CodeChallenge == "":
			return ErrInvalidRequest.WithHint("The 'code_challenge' parameter is required by the FAPI profiles.")
		case request.CodeChallengeMethod != consts.PKCEChallengeMethodSHA256:
			return ErrInvalidRequest.WithHintf("The 'code_challenge_method' parameter must be '%s' under the FAPI profiles.", consts.PKCEChallengeMethodSHA256)
		}
	}

	if request.Profile != ProfileFAPIAdvance {
		return nil
	}

	switch {
	case !request.ResponseType.IsCodeIDToken() && (request.ResponseType != ResponseTypeCode || !request.ResponseMode.IsJWT()):
		return ErrInvalidRequest.WithHint("The FAPI Advance profile requires the response type 'code id_token', or 'code' with a JWT response mode.")
	case client.IsPublic():
		return ErrUnauthorizedClient.WithHint("The FAPI Advance profile does not allow public clients.")
	}

	return nil
}
