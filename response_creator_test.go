// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"authelia.com/provider/authz"
	"authelia.com/provider/authz/internal/mock"
)

func TestResponseCreators(t *testing.T) {
	ctrl := gomock.NewController(t)

	code := mock.NewMockResponseCreator(ctrl)
	code.EXPECT().ResponseType().Return(authz.ResponseTypeCode).AnyTimes()

	hybrid := mock.NewMockResponseCreator(ctrl)
	hybrid.EXPECT().ResponseType().Return(authz.ResponseTypeCodeIDToken).AnyTimes()

	registry := authz.NewResponseCreators(code, hybrid)

	creator, err := registry.Get(authz.ParseResponseType("id_token code"))
	require.NoError(t, err)
	assert.Equal(t, hybrid, creator)

	creator, err = registry.Get(authz.ResponseTypeCode)
	require.NoError(t, err)
	assert.Equal(t, code, creator)

	_, err = registry.Get(authz.ResponseTypeToken)

	var ce *authz.ConfigurationError

	require.ErrorAs(t, err, &ce)
	assert.EqualError(t, err, "no response creator is registered for the response type 'token'")

	err = registry.Validate(authz.ResponseTypes...)
	require.ErrorAs(t, err, &ce)
	assert.EqualError(t, err, "no response creator is registered for the response types 'code_token', 'code_token_id_token', 'id_token', 'none', 'token', 'token_id_token', 'vp_token', 'vp_token_id_token'")

	assert.NoError(t, registry.Validate(authz.ResponseTypeCode, authz.ResponseTypeCodeIDToken))
}

func TestGenerateAuthorizationCode(t *testing.T) {
	seen := make(map[string]struct{}, 10000)

	for i := 0; i < 10000; i++ {
		code, err := authz.GenerateAuthorizationCode()
		require.NoError(t, err)

		seen[code] = struct{}{}
	}

	assert.Len(t, seen, 10000)
}
