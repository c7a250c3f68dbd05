// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package integration_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	xoauth2 "golang.org/x/oauth2"

	"authelia.com/provider/authz"
	"authelia.com/provider/authz/compose"
	"authelia.com/provider/authz/internal/consts"
	"authelia.com/provider/authz/storage"
	"authelia.com/provider/authz/token/jwt"
)

const (
	tenantID     = "tenant"
	clientID     = "my-client"
	clientSecret = "foobar"
	redirectURI  = "https://client.example.com/callback"
	frontURL     = "https://front.example.com"
)

type testSetup struct {
	server   *httptest.Server
	store    *storage.MemoryStore
	provider *authz.Provider
	issuer   *jwt.DefaultIssuer
	client   *http.Client
}

func newTestSetup(t *testing.T) *testSetup {
	issuer := jwt.MustGenDefaultIssuer()

	jwks, err := json.Marshal(issuer)
	require.NoError(t, err)

	store := storage.NewMemoryStore()

	config := &authz.Config{
		Logger:                     zaptest.NewLogger(t),
		SendDebugMessagesToClients: true,
	}

	provider, err := compose.ComposeAllEnabled(context.Background(), config, store)
	require.NoError(t, err)

	router := mux.NewRouter()

	router.HandleFunc("/{tenant}/par", pushEndpointHandler(t, provider)).Methods(http.MethodPost)
	router.HandleFunc("/{tenant}/authorize", authEndpointHandler(t, provider)).Methods(http.MethodGet)
	router.HandleFunc("/{tenant}/requests/{id}", viewEndpointHandler(t, provider)).Methods(http.MethodGet)
	router.HandleFunc("/{tenant}/requests/{id}/authorize", consentEndpointHandler(t, provider)).Methods(http.MethodPost)
	router.HandleFunc("/{tenant}/requests/{id}/deny", denyEndpointHandler(t, provider)).Methods(http.MethodPost)
	router.HandleFunc("/{tenant}/logout", logoutEndpointHandler(t, provider)).Methods(http.MethodGet)

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	store.SetServerConfiguration(&authz.ServerConfiguration{
		TenantID: tenantID,
		Issuer:   ts.URL + "/" + tenantID,
		ResponseTypesSupported: authz.Arguments{
			consts.ResponseTypeAuthorizationCodeFlow,
			consts.ResponseTypeImplicitFlowToken,
			consts.ResponseTypeImplicitFlowIDToken,
			consts.ResponseTypeImplicitFlowBoth,
			consts.ResponseTypeHybridFlowIDToken,
			consts.ResponseTypeHybridFlowToken,
			consts.ResponseTypeHybridFlowBoth,
			consts.ResponseTypeNone,
		},
		ScopesSupported:                   authz.Arguments{consts.ScopeOpenID, "profile", "email", "photos"},
		ClaimsSupported:                   authz.Arguments{"sub", "name", "email", "email_verified"},
		JWKS:                              string(jwks),
		AccessTokenDuration:               time.Hour,
		IDTokenDuration:                   time.Hour,
		AuthorizationResponseDuration:     10 * time.Minute,
		AuthorizationViewURL:              frontURL,
		PushedAuthorizationRequestEnabled: true,
	})

	store.SetClientConfiguration(&authz.ClientConfiguration{
		TenantID:                tenantID,
		ClientID:                clientID,
		ClientName:              "My Client",
		ClientSecret:            clientSecret,
		TokenEndpointAuthMethod: consts.ClientAuthMethodClientSecretBasic,
		RedirectURIs:            []string{redirectURI},
		PostLogoutRedirectURIs:  []string{"https://client.example.com/logged-out"},
		ResponseTypes: authz.Arguments{
			consts.ResponseTypeAuthorizationCodeFlow,
			consts.ResponseTypeImplicitFlowToken,
			consts.ResponseTypeImplicitFlowIDToken,
			consts.ResponseTypeHybridFlowIDToken,
			consts.ResponseTypeHybridFlowBoth,
			consts.ResponseTypeNone,
		},
		Scopes: authz.Arguments{consts.ScopeOpenID, "profile", "email", "photos"},
	})

	return &testSetup{
		server:   ts,
		store:    store,
		provider: provider,
		issuer:   issuer,
		client:   newUserAgent(t),
	}
}

// newUserAgent returns a client that keeps its cookies and does not follow redirects.
func newUserAgent(t *testing.T) *http.Client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// withUserAgent returns the setup as seen from another user agent of the same server.
func (s *testSetup) withUserAgent(t *testing.T) *testSetup {
	other := *s
	other.client = newUserAgent(t)

	return &other
}

func (s *testSetup) oauth2Config(scopes ...string) *xoauth2.Config {
	return &xoauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Scopes:       scopes,
		Endpoint: xoauth2.Endpoint{
			AuthURL:   s.server.URL + "/" + tenantID + "/authorize",
			TokenURL:  s.server.URL + "/" + tenantID + "/token",
			AuthStyle: xoauth2.AuthStyleInHeader,
		},
	}
}

// request sends the user agent to the authorization endpoint and decodes the response body, if any.
func (s *testSetup) request(t *testing.T, location string) (*http.Response, map[string]any) {
	resp, err := s.client.Get(location)
	require.NoError(t, err)

	return resp, decodeBody(t, resp)
}

// consent simulates the authorization view submitting the authenticated user.
func (s *testSetup) consent(t *testing.T, requestID, subject string) (*http.Response, map[string]any) {
	resp, err := s.client.PostForm(s.server.URL+"/"+tenantID+"/requests/"+requestID+"/authorize", url.Values{"sub": {subject}})
	require.NoError(t, err)

	return resp, decodeBody(t, resp)
}

func (s *testSetup) deny(t *testing.T, requestID string, reason authz.DenyReason) *http.Response {
	resp, err := s.client.PostForm(s.server.URL+"/"+tenantID+"/requests/"+requestID+"/deny", url.Values{"reason": {string(reason)}})
	require.NoError(t, err)

	decodeBody(t, resp)

	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	defer resp.Body.Close()

	if resp.Header.Get(consts.HeaderContentType) != consts.ContentTypeApplicationJSON {
		return nil
	}

	body := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	return body
}

// redirectParameters returns the parameters delivered to the client either in the query or in the fragment.
func redirectParameters(t *testing.T, resp *http.Response) (u *url.URL, query, fragment url.Values) {
	require.Equal(t, http.StatusFound, resp.StatusCode)

	u, err := url.Parse(resp.Header.Get(consts.HeaderLocation))
	require.NoError(t, err)

	fragment, err = url.ParseQuery(u.EscapedFragment())
	require.NoError(t, err)

	return u, u.Query(), fragment
}
