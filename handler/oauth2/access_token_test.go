// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oauth2

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authelia.com/provider/authz"
)

func TestDefaultAccessTokenCreator(t *testing.T) {
	testCases := []struct {
		name     string
		prefix   string
		expected string
	}{
		{"ShouldUseTheDefaultPrefix", "", "authz_at_"},
		{"ShouldUseACustomPrefix", "custom_", "custom_"},
		{"ShouldDisableThePrefix", "-", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			creator := &DefaultAccessTokenCreator{Prefix: tc.prefix}
			ac := newAuthorizeContext(authz.ResponseTypeToken, "read")

			token, err := creator.CreateAccessToken(context.Background(), ac)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(token.AccessToken, tc.expected))
			assert.Greater(t, len(token.AccessToken), len(tc.expected)+20)
			assert.Equal(t, "Bearer", token.TokenType)
			assert.Equal(t, int64(1800), token.ExpiresIn)
			assert.Equal(t, authz.Arguments{"read"}, token.Scopes)
			assert.Equal(t, "alice", token.Subject)
			assert.Equal(t, "client", token.ClientID)
			assert.Equal(t, "tenant", token.TenantID)
			assert.Equal(t, testNow, token.CreatedAt)
		})
	}
}

func TestDefaultAccessTokenCreatorShouldDefaultTheLifespan(t *testing.T) {
	ac := newAuthorizeContext(authz.ResponseTypeToken)
	ac.Server().AccessTokenDuration = 0

	token, err := (&DefaultAccessTokenCreator{}).CreateAccessToken(context.Background(), ac)
	require.NoError(t, err)

	assert.Equal(t, int64(3600), token.ExpiresIn)
	assert.Equal(t, testNow.Add(defaultAccessTokenLifespan), token.ExpiresAt())
}
