// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz_test

import (
	"context"
	"encoding/base64"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"authelia.com/provider/authz"
	"authelia.com/provider/authz/internal/consts"
)

func basicAuth(id, secret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(url.QueryEscape(id)+":"+url.QueryEscape(secret)))
}

func TestClientCredentialsFromRequest(t *testing.T) {
	testCases := []struct {
		name          string
		authorization string
		form          url.Values
		expected      authz.ClientCredentials
		hint          string
	}{
		{
			name:          "ShouldParseBasic",
			authorization: basicAuth("my client", "foo:bar"),
			expected:      authz.ClientCredentials{ClientID: "my client", ClientSecret: "foo:bar", Method: consts.ClientAuthMethodClientSecretBasic},
		},
		{
			name:          "ShouldParseBasicWithMatchingClientID",
			authorization: basicAuth("client", "secret"),
			form:          url.Values{"client_id": {"client"}},
			expected:      authz.ClientCredentials{ClientID: "client", ClientSecret: "secret", Method: consts.ClientAuthMethodClientSecretBasic},
		},
		{
			name:          "ShouldPreferBasicOverPost",
			authorization: basicAuth("client", "secret"),
			form:          url.Values{"client_secret": {"other"}},
			expected:      authz.ClientCredentials{ClientID: "client", ClientSecret: "secret", Method: consts.ClientAuthMethodClientSecretBasic},
		},
		{
			name:     "ShouldParsePost",
			form:     url.Values{"client_id": {"client"}, "client_secret": {"secret"}},
			expected: authz.ClientCredentials{ClientID: "client", ClientSecret: "secret", Method: consts.ClientAuthMethodClientSecretPost},
		},
		{
			name:     "ShouldParseNone",
			form:     url.Values{"client_id": {"client"}},
			expected: authz.ClientCredentials{ClientID: "client", Method: consts.ClientAuthMethodNone},
		},
		{
			name:          "ShouldFailMalformedHeader",
			authorization: "Bearer abc",
			hint:          "The client credentials in the HTTP authorization header could not be parsed.",
		},
		{
			name:          "ShouldFailUndecodableClientID",
			authorization: "Basic " + base64.StdEncoding.EncodeToString([]byte("%zz:secret")),
			hint:          "The client id in the HTTP authorization header could not be decoded from 'application/x-www-form-urlencoded'.",
		},
		{
			name:          "ShouldFailMismatchedClientID",
			authorization: basicAuth("client", "secret"),
			form:          url.Values{"client_id": {"other"}},
			hint:          "The client id in the HTTP authorization header does not match the 'client_id' parameter.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			creds, err := authz.ClientCredentialsFromRequest(tc.authorization, tc.form)

			if tc.hint != "" {
				rfc := authz.ErrorToRFC6749Error(err)
				assert.Equal(t, "invalid_client", rfc.ErrorField)
				assert.Equal(t, tc.hint, rfc.HintField)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, creds)
		})
	}
}

func TestAuthenticateClient(t *testing.T) {
	hashed, err := authz.NewBCryptClientSecretPlain("foobar", bcrypt.MinCost)
	require.NoError(t, err)

	testCases := []struct {
		name   string
		client *authz.ClientConfiguration
		creds  authz.ClientCredentials
		hint   string
		err    bool
	}{
		{
			name:   "ShouldAuthenticatePlainTextWithDefaultMethod",
			client: &authz.ClientConfiguration{ClientID: "client", ClientSecret: "foobar"},
			creds:  authz.ClientCredentials{ClientID: "client", ClientSecret: "foobar", Method: consts.ClientAuthMethodClientSecretBasic},
		},
		{
			name:   "ShouldAuthenticateBCrypt",
			client: &authz.ClientConfiguration{ClientID: "client", ClientSecret: hashed.Hash(), TokenEndpointAuthMethod: consts.ClientAuthMethodClientSecretPost},
			creds:  authz.ClientCredentials{ClientID: "client", ClientSecret: "foobar", Method: consts.ClientAuthMethodClientSecretPost},
		},
		{
			name:   "ShouldAuthenticatePublicClient",
			client: &authz.ClientConfiguration{ClientID: "client", TokenEndpointAuthMethod: consts.ClientAuthMethodNone},
			creds:  authz.ClientCredentials{ClientID: "client", Method: consts.ClientAuthMethodNone},
		},
		{
			name:   "ShouldFailPublicClientWithSecret",
			client: &authz.ClientConfiguration{ClientID: "client", TokenEndpointAuthMethod: consts.ClientAuthMethodNone},
			creds:  authz.ClientCredentials{ClientID: "client", ClientSecret: "foobar", Method: consts.ClientAuthMethodClientSecretPost},
			hint:   "The client is registered with the 'none' authentication method but presented a client secret.",
			err:    true,
		},
		{
			name:   "ShouldFailMethodMismatch",
			client: &authz.ClientConfiguration{ClientID: "client", ClientSecret: "foobar"},
			creds:  authz.ClientCredentials{ClientID: "client", ClientSecret: "foobar", Method: consts.ClientAuthMethodClientSecretPost},
			hint:   "The client is registered with the 'client_secret_basic' authentication method but authenticated with 'client_secret_post'.",
			err:    true,
		},
		{
			name:   "ShouldFailWithoutRegisteredSecret",
			client: &authz.ClientConfiguration{ClientID: "client"},
			creds:  authz.ClientCredentials{ClientID: "client", ClientSecret: "foobar", Method: consts.ClientAuthMethodClientSecretBasic},
			hint:   "The client has no registered client secret.",
			err:    true,
		},
		{
			name:   "ShouldFailWrongPlainTextSecret",
			client: &authz.ClientConfiguration{ClientID: "client", ClientSecret: "foobar"},
			creds:  authz.ClientCredentials{ClientID: "client", ClientSecret: "foobaz", Method: consts.ClientAuthMethodClientSecretBasic},
			err:    true,
		},
		{
			name:   "ShouldFailWrongBCryptSecret",
			client: &authz.ClientConfiguration{ClientID: "client", ClientSecret: hashed.Hash()},
			creds:  authz.ClientCredentials{ClientID: "client", ClientSecret: "foobaz", Method: consts.ClientAuthMethodClientSecretBasic},
			err:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := authz.AuthenticateClient(context.Background(), tc.client, tc.creds)

			if !tc.err {
				assert.NoError(t, err)
				return
			}

			rfc := authz.ErrorToRFC6749Error(err)
			assert.Equal(t, "invalid_client", rfc.ErrorField)
			assert.Equal(t, tc.hint, rfc.HintField)

			if tc.hint == "" {
				assert.ErrorIs(t, err, authz.ErrClientSecretMismatch)
			}
		})
	}
}

func TestNewClientSecret(t *testing.T) {
	hashed, err := authz.NewBCryptClientSecretPlain("foobar", bcrypt.MinCost)
	require.NoError(t, err)

	assert.IsType(t, &authz.BCryptClientSecret{}, authz.NewClientSecret(hashed.Hash()))
	assert.IsType(t, &authz.PlainTextClientSecret{}, authz.NewClientSecret("$2x$foobar"))

	ctx := context.Background()

	assert.NoError(t, authz.NewClientSecret(hashed.Hash()).Compare(ctx, []byte("foobar")))
	assert.ErrorIs(t, authz.NewClientSecret(hashed.Hash()).Compare(ctx, []byte("foo")), authz.ErrClientSecretMismatch)
	assert.NoError(t, authz.NewClientSecret("foobar").Compare(ctx, []byte("foobar")))
	assert.ErrorIs(t, authz.NewClientSecret("foobar").Compare(ctx, []byte("foobaz")), authz.ErrClientSecretMismatch)
}
