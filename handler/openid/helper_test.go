// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package openid

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"authelia.com/provider/authz"
	"authelia.com/provider/authz/token/jwt"
)

var testNow = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestIssuer(t *testing.T) (*jwt.DefaultIssuer, string) {
	issuer := jwt.MustGenDefaultIssuer()

	raw, err := json.Marshal(issuer)
	require.NoError(t, err)

	return issuer, string(raw)
}

func newAuthorizeContext(rt authz.ResponseType, jwks string, scopes ...string) *authz.AuthorizeContext {
	request := &authz.AuthorizationRequest{
		ID:           "request-id",
		TenantID:     "tenant",
		Pattern:      authz.RequestPatternNormal,
		Profile:      authz.ProfileOIDC,
		ClientID:     "client",
		ResponseType: rt,
		RedirectURI:  "https://client.example.com/cb",
		Scopes:       scopes,
		State:        "xyz",
		Nonce:        "n-0S6_WzA2Mj",
	}

	server := &authz.ServerConfiguration{
		TenantID:        "tenant",
		Issuer:          "https://server.example.com/tenant",
		ClaimsSupported: authz.Arguments{"sub", "name", "email", "email_verified"},
		JWKS:            jwks,
		IDTokenDuration: 15 * time.Minute,
	}

	client := &authz.ClientConfiguration{
		TenantID:     "tenant",
		ClientID:     "client",
		RedirectURIs: []string{"https://client.example.com/cb"},
	}

	session := &authz.OAuthSession{
		Key: authz.SessionKey{TenantID: "tenant", ClientID: "client"},
		User: &authz.User{
			Sub:           "alice",
			Name:          "Alice Liddell",
			Email:         "alice@example.com",
			EmailVerified: true,
		},
		Authentication: authz.Authentication{
			Time:    testNow.Add(-time.Minute),
			ACR:     "urn:mace:incommon:iap:silver",
			Methods: authz.Arguments{"pwd", "otp"},
		},
	}

	return authz.NewAuthorizeContext(authz.NewRequestContext(request, server, client), session, testNow)
}
