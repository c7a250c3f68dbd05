// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"net/url"
	"strings"

	"authelia.com/provider/authz/internal/consts"
)

const (
	viewPathSignIn = "/signin"
	viewPathSignUp = "/signup"
	viewPathError  = "/error"

	viewParameterID       = "id"
	viewParameterTenantID = "tenant_id"
)

// FrontURL returns the authorization view the user agent is sent to for request.
func FrontURL(server *ServerConfiguration, request *AuthorizationRequest) string {
	path := viewPathSignIn

	if request.Prompt.IsCreate() {
		path = viewPathSignUp
	}

	return viewURL(server.AuthorizationViewURL, path, Parameters{}.
		Add(viewParameterID, request.ID).
		Add(viewParameterTenantID, request.TenantID))
}

// ErrorViewURL returns the error view for a failure which can't be delivered to the client.
func ErrorViewURL(server *ServerConfiguration, err *RFC6749Error) string {
	if server == nil || server.AuthorizationViewURL == "" {
		return ""
	}

	return viewURL(server.AuthorizationViewURL, viewPathError, Parameters{}.
		Add(consts.AuthorizeResponseError, err.ErrorField).
		Add(consts.AuthorizeResponseErrorDescription, err.GetDescription()))
}

func viewURL(base, path string, params Parameters) string {
	u, err := url.Parse(base)
	if err != nil {
		return strings.TrimSuffix(base, "/") + path + "?" + params.Encode()
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + path
	u.RawQuery = params.Encode()

	return u.String()
}
