// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oauth2

import (
	"time"

	"authelia.com/provider/authz"
)

var testNow = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func newAuthorizeContext(rt authz.ResponseType, scopes ...string) *authz.AuthorizeContext {
	request := &authz.AuthorizationRequest{
		ID:           "request-id",
		TenantID:     "tenant",
		Pattern:      authz.RequestPatternNormal,
		Profile:      authz.ProfileOAuth2,
		ClientID:     "client",
		ResponseType: rt,
		RedirectURI:  "https://client.example.com/cb",
		Scopes:       scopes,
		State:        "xyz",
	}

	server := &authz.ServerConfiguration{
		TenantID:            "tenant",
		Issuer:              "https://server.example.com/tenant",
		AccessTokenDuration: 30 * time.Minute,
	}

	client := &authz.ClientConfiguration{
		TenantID:     "tenant",
		ClientID:     "client",
		RedirectURIs: []string{"https://client.example.com/cb"},
	}

	session := &authz.OAuthSession{
		Key:  authz.SessionKey{TenantID: "tenant", ClientID: "client"},
		User: &authz.User{Sub: "alice"},
	}

	return authz.NewAuthorizeContext(authz.NewRequestContext(request, server, client), session, testNow)
}
