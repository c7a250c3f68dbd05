// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oauth2

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"authelia.com/provider/authz"
	"authelia.com/provider/authz/internal/mock"
)

func TestTokenResponseCreators(t *testing.T) {
	token := &authz.OAuthToken{AccessToken: "at", TokenType: "Bearer", ExpiresIn: 1800, Scopes: authz.Arguments{"read", "write"}}

	testCases := []struct {
		name     string
		rt       authz.ResponseType
		creator  func(atc authz.AccessTokenCreator) authz.ResponseCreator
		setup    func(atc *mock.MockAccessTokenCreator)
		expected []string
		err      error
	}{
		{
			name: "ShouldCreateTokenResponse",
			rt:   authz.ResponseTypeToken,
			creator: func(atc authz.AccessTokenCreator) authz.ResponseCreator {
				return &TokenResponseCreator{AccessTokenCreator: atc}
			},
			setup: func(atc *mock.MockAccessTokenCreator) {
				atc.EXPECT().CreateAccessToken(gomock.Any(), gomock.Any()).Return(token, nil)
			},
			expected: []string{"access_token", "token_type", "expires_in", "scope", "state", "iss"},
		},
		{
			name: "ShouldCreateCodeTokenResponse",
			rt:   authz.ResponseTypeCodeToken,
			creator: func(atc authz.AccessTokenCreator) authz.ResponseCreator {
				return &CodeTokenResponseCreator{AccessTokenCreator: atc}
			},
			setup: func(atc *mock.MockAccessTokenCreator) {
				atc.EXPECT().CreateAccessToken(gomock.Any(), gomock.Any()).Return(token, nil)
			},
			expected: []string{"code", "access_token", "token_type", "expires_in", "scope", "state", "iss"},
		},
		{
			name: "ShouldFailTokenResponseWhenTheAccessTokenFails",
			rt:   authz.ResponseTypeToken,
			creator: func(atc authz.AccessTokenCreator) authz.ResponseCreator {
				return &TokenResponseCreator{AccessTokenCreator: atc}
			},
			setup: func(atc *mock.MockAccessTokenCreator) {
				atc.EXPECT().CreateAccessToken(gomock.Any(), gomock.Any()).Return(nil, authz.ErrServerError.WithWrap(errors.New("boom")))
			},
			err: authz.ErrServerError,
		},
		{
			name: "ShouldFailCodeTokenResponseWhenTheAccessTokenFails",
			rt:   authz.ResponseTypeCodeToken,
			creator: func(atc authz.AccessTokenCreator) authz.ResponseCreator {
				return &CodeTokenResponseCreator{AccessTokenCreator: atc}
			},
			setup: func(atc *mock.MockAccessTokenCreator) {
				atc.EXPECT().CreateAccessToken(gomock.Any(), gomock.Any()).Return(nil, authz.ErrServerError)
			},
			err: authz.ErrServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			atc := mock.NewMockAccessTokenCreator(ctrl)
			tc.setup(atc)

			creator := tc.creator(atc)
			assert.Equal(t, tc.rt, creator.ResponseType())

			response, err := creator.Create(context.Background(), newAuthorizeContext(tc.rt, "read", "write"))

			if tc.err != nil {
				assert.Nil(t, response)
				assert.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, response.Parameters().Keys())
			assert.Equal(t, "read write", response.Parameters().Get("scope"))
			assert.Equal(t, "1800", response.Parameters().Get("expires_in"))
			assert.True(t, strings.HasPrefix(response.RedirectURIValue(), "https://client.example.com/cb#"))
			assert.Same(t, token, response.AccessToken())
		})
	}
}
