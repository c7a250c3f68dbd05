// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authelia.com/provider/authz"
	"authelia.com/provider/authz/token/jwt"
)

func TestParameters(t *testing.T) {
	params := authz.Parameters{}.
		Add("code", "SplxlOBeZQQYbYS6WxSbIA").
		Add("empty", "").
		Add("state", "af0ifjsldkj").
		Add("iss", "https://server.example.com/tenant")

	assert.Equal(t, []string{"code", "state", "iss"}, params.Keys())
	assert.Equal(t, "af0ifjsldkj", params.Get("state"))
	assert.Equal(t, "", params.Get("empty"))
	assert.True(t, params.Has("iss"))
	assert.False(t, params.Has("empty"))
	assert.Equal(t, "code=SplxlOBeZQQYbYS6WxSbIA&state=af0ifjsldkj&iss=https%3A%2F%2Fserver.example.com%2Ftenant", params.Encode())
	assert.Equal(t, "af0ifjsldkj", params.Values().Get("state"))
}

func TestAuthorizationResponseBuilder(t *testing.T) {
	token := &authz.OAuthToken{
		AccessToken: "2YotnFZFEjr1zCsicMWpAA",
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		Scopes:      authz.Arguments{"openid", "photos"},
		CreatedAt:   time.Unix(1700000000, 0),
	}

	response := authz.NewAuthorizationResponseBuilder("https://client.example.com/cb", authz.ResponseModeValueFragment, "https://server.example.com").
		AddCode("SplxlOBeZQQYbYS6WxSbIA").
		AddAccessToken(token).
		AddIDToken("eyJhbGciOiJSUzI1NiJ9.e30.sig").
		AddVPToken("eyJhbGciOiJSUzI1NiJ9.e30.vp").
		AddState("xyz").
		Build()

	assert.Equal(t, []string{"code", "access_token", "token_type", "expires_in", "scope", "id_token", "vp_token", "state", "iss"}, response.Parameters().Keys())
	assert.Equal(t, "3600", response.Parameters().Get("expires_in"))
	assert.Equal(t, "openid photos", response.Parameters().Get("scope"))

	assert.True(t, response.HasAuthorizationCode())
	assert.True(t, response.HasAccessToken())
	assert.True(t, response.HasIDToken())
	assert.False(t, response.HasJARM())
	assert.Equal(t, "xyz", response.State())
	assert.Equal(t, "SplxlOBeZQQYbYS6WxSbIA", response.Code())
	assert.Equal(t, token, response.AccessToken())
	assert.Equal(t, "https://client.example.com/cb", response.RedirectURI())
	assert.Equal(t, "https://server.example.com", response.Issuer())

	assert.Equal(t, "https://client.example.com/cb#code=SplxlOBeZQQYbYS6WxSbIA&access_token=2YotnFZFEjr1zCsicMWpAA&token_type=Bearer&expires_in=3600&scope=openid+photos&id_token=eyJhbGciOiJSUzI1NiJ9.e30.sig&vp_token=eyJhbGciOiJSUzI1NiJ9.e30.vp&state=xyz&iss=https%3A%2F%2Fserver.example.com", response.RedirectURIValue())
}

func TestAuthorizationResponseBuilderShouldSkipEmptyState(t *testing.T) {
	response := authz.NewAuthorizationResponseBuilder("https://client.example.com/cb", authz.ResponseModeValueQuery, "https://server.example.com").
		AddCode("abc").
		AddState("").
		Build()

	assert.Equal(t, []string{"code", "iss"}, response.Parameters().Keys())
	assert.Equal(t, "https://client.example.com/cb?code=abc&iss=https%3A%2F%2Fserver.example.com", response.RedirectURIValue())
}

func TestAuthorizationResponseShouldExtendExistingQuery(t *testing.T) {
	response := authz.NewAuthorizationResponseBuilder("https://client.example.com/cb?tenant=a", authz.ResponseModeValueQuery, "https://server.example.com").
		AddCode("abc").
		Build()

	assert.Equal(t, "https://client.example.com/cb?tenant=a&code=abc&iss=https%3A%2F%2Fserver.example.com", response.RedirectURIValue())

	fragment := authz.NewAuthorizationResponseBuilder("https://client.example.com/cb?tenant=a", authz.ResponseModeValueFragment, "https://server.example.com").
		AddCode("abc").
		Build()

	assert.Equal(t, "https://client.example.com/cb?tenant=a#code=abc&iss=https%3A%2F%2Fserver.example.com", fragment.RedirectURIValue())
}

func TestAuthorizationResponseWithJARM(t *testing.T) {
	response := authz.NewAuthorizationResponseBuilder("https://client.example.com/cb", authz.ResponseModeValueQuery, "https://server.example.com").
		AddCode("abc").
		AddState("xyz").
		Build()

	wrapped := response.WithJARM("eyJhbGciOiJSUzI1NiJ9.e30.jarm")

	assert.False(t, response.HasJARM())
	assert.True(t, wrapped.HasJARM())
	assert.Equal(t, []string{"response"}, wrapped.Parameters().Keys())
	assert.Equal(t, []string{"code", "state", "iss"}, wrapped.UnwrappedParameters().Keys())
	assert.Equal(t, "https://client.example.com/cb?response=eyJhbGciOiJSUzI1NiJ9.e30.jarm", wrapped.RedirectURIValue())
}

func TestAuthorizationErrorResponseBuilder(t *testing.T) {
	response := authz.NewAuthorizationErrorResponseBuilder("https://client.example.com/cb", authz.ResponseModeValueQuery, "https://server.example.com").
		AddError(authz.ErrAccessDenied.WithDescription("The user denied the request.")).
		AddState("xyz").
		Build()

	assert.Equal(t, []string{"error", "error_description", "state", "iss"}, response.Parameters().Keys())
	assert.Equal(t, "access_denied", response.GetError().ErrorField)
	assert.Equal(t, "https://client.example.com/cb?error=access_denied&error_description=The+user+denied+the+request.&state=xyz&iss=https%3A%2F%2Fserver.example.com", response.RedirectURIValue())

	wrapped := response.WithJARM("token")

	assert.Equal(t, "https://client.example.com/cb?response=token", wrapped.RedirectURIValue())
	assert.Equal(t, "xyz", wrapped.State())
}

func TestFinalizeAuthorizationErrorResponse(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	issuer := jwt.MustGenDefaultIssuer()

	jwks, err := json.Marshal(issuer)
	require.NoError(t, err)

	server := &authz.ServerConfiguration{TenantID: "tenant", Issuer: "https://server.example.com/tenant", JWKS: string(jwks)}
	client := &authz.ClientConfiguration{TenantID: "tenant", ClientID: "client", RedirectURIs: []string{"https://client.example.com/cb"}}

	denied := authz.ErrAccessDenied.WithDescription("The user denied the request.")

	newBuilder := func(rc *authz.RequestContext) *authz.AuthorizationErrorResponseBuilder {
		return authz.NewAuthorizationErrorResponseBuilder(rc.RedirectURI(), rc.ResponseModeValue(), rc.Issuer()).
			AddError(denied).
			AddState(rc.State())
	}

	t.Run("ShouldNotWrapPlainResponse", func(t *testing.T) {
		rc := authz.NewRequestContext(&authz.AuthorizationRequest{TenantID: "tenant", ClientID: "client", Profile: authz.ProfileOIDC, ResponseType: authz.ResponseTypeCode, State: "xyz"}, server, client)

		response, err := authz.FinalizeAuthorizationErrorResponse(context.Background(), rc, now, newBuilder(rc))
		require.NoError(t, err)

		assert.False(t, response.HasJARM())
		assert.Equal(t, []string{"error", "error_description", "state", "iss"}, response.Parameters().Keys())
	})

	t.Run("ShouldWrapJWTResponse", func(t *testing.T) {
		rc := authz.NewRequestContext(&authz.AuthorizationRequest{TenantID: "tenant", ClientID: "client", Profile: authz.ProfileOIDC, ResponseType: authz.ResponseTypeCode, ResponseMode: authz.ResponseModeQueryJWT, State: "xyz"}, server, client)

		response, err := authz.FinalizeAuthorizationErrorResponse(context.Background(), rc, now, newBuilder(rc))
		require.NoError(t, err)

		require.True(t, response.HasJARM())
		assert.Equal(t, []string{"response"}, response.Parameters().Keys())
		assert.Equal(t, "https://client.example.com/cb?response="+response.JARM(), response.RedirectURIValue())

		verified, err := jwt.DecodeCompactSigned(response.JARM(), issuer.PublicJWKS(), nil)
		require.NoError(t, err)

		keys := make([]string, 0, len(verified.Claims))
		for key := range verified.Claims {
			keys = append(keys, key)
		}

		assert.ElementsMatch(t, []string{"aud", "error", "error_description", "exp", "iat", "iss", "state"}, keys)
		assert.Equal(t, "https://server.example.com/tenant", verified.Claims["iss"])
		assert.Equal(t, "client", verified.Claims["aud"])
		assert.Equal(t, "access_denied", verified.Claims["error"])
		assert.Equal(t, denied.GetDescription(), verified.Claims["error_description"])
		assert.Equal(t, "xyz", verified.Claims["state"])
		assert.Equal(t, float64(now.Unix()), verified.Claims["iat"])
		assert.Equal(t, float64(now.Add(10*time.Minute).Unix()), verified.Claims["exp"])
	})

	t.Run("ShouldFailWithoutSigningKeys", func(t *testing.T) {
		rc := authz.NewRequestContext(&authz.AuthorizationRequest{TenantID: "tenant", ClientID: "client", ResponseType: authz.ResponseTypeCode, ResponseMode: authz.ResponseModeJWT}, &authz.ServerConfiguration{Issuer: "https://server.example.com/tenant"}, client)

		_, err := authz.FinalizeAuthorizationErrorResponse(context.Background(), rc, now, newBuilder(rc))

		var ce *authz.ConfigurationError

		assert.ErrorAs(t, err, &ce)
	})
}
