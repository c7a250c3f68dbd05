// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authelia.com/provider/authz"
	"authelia.com/provider/authz/storage"
)

func TestComposeAllEnabled(t *testing.T) {
	config := &authz.Config{}

	provider, err := ComposeAllEnabled(context.Background(), config, storage.NewMemoryStore())
	require.NoError(t, err)
	require.NotNil(t, provider)

	for _, rt := range authz.ResponseTypes {
		creator, err := config.GetResponseCreators(context.Background()).Get(rt)
		require.NoError(t, err, rt.Key())
		assert.Equal(t, rt, creator.ResponseType())
	}
}

func TestComposeShouldFailWhenAResponseTypeIsUnregistered(t *testing.T) {
	provider, err := Compose(context.Background(), &authz.Config{}, storage.NewMemoryStore(), NewDefaultStrategy(),
		OAuth2AuthorizeCodeFactory,
		OpenIDConnectHybridFactory,
	)

	assert.Nil(t, provider)

	var cerr *authz.ConfigurationError

	require.True(t, errors.As(err, &cerr))
	assert.Contains(t, cerr.Description, "'none'")
	assert.Contains(t, cerr.Description, "'vp_token'")
	assert.NotContains(t, cerr.Description, "'code'")
}

func TestAllFactoriesShouldCoverEveryResponseType(t *testing.T) {
	strategy := NewDefaultStrategy()
	registry := authz.NewResponseCreators()

	for _, factory := range AllFactories() {
		registry.Register(factory(&authz.Config{}, strategy))
	}

	assert.Len(t, registry, len(authz.ResponseTypes))
	assert.NoError(t, registry.Validate(authz.ResponseTypes...))
}
