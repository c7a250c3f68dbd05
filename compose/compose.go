// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"context"

	"authelia.com/provider/authz"
)

// Factory returns the creator of a single response type.
type Factory func(config authz.Configurator, strategy *Strategy) authz.ResponseCreator

// Compose registers the creators of factories on config and returns a Provider backed by store:
//
//	var config = &authz.Config{
//		AuthorizationCodeLifespan: time.Minute * 5,
//		// check authz.Config for further configuration options
//	}
//
//	provider, err := Compose(ctx, config, store, NewDefaultStrategy(),
//		OAuth2AuthorizeCodeFactory,
//		OpenIDConnectHybridFactory,
//		// for a complete list refer to the docs of this package
//	)
//
// The Provider is only returned when every response type has a registered creator.
func Compose(ctx context.Context, config *authz.Config, store authz.Storage, strategy *Strategy, factories ...Factory) (*authz.Provider, error) {
	if config.ResponseCreators == nil {
		config.ResponseCreators = authz.NewResponseCreators()
	}

	for _, factory := range factories {
		config.ResponseCreators.Register(factory(config, strategy))
	}

	return authz.NewProvider(ctx, config, store)
}

// ComposeAllEnabled returns a Provider with a creator for every response type and the default strategy.
func ComposeAllEnabled(ctx context.Context, config *authz.Config, store authz.Storage) (*authz.Provider, error) {
	return Compose(ctx, config, store, NewDefaultStrategy(), AllFactories()...)
}

// AllFactories returns a Factory for every response type.
func AllFactories() []Factory {
	return []Factory{
		OAuth2AuthorizeCodeFactory,
		OAuth2ImplicitFactory,
		OAuth2CodeTokenFactory,
		OAuth2NoneFactory,
		OpenIDConnectImplicitFactory,
		OpenIDConnectTokenIDTokenFactory,
		OpenIDConnectHybridFactory,
		OpenIDConnectHybridTokenFactory,
		VerifiablePresentationFactory,
		VerifiablePresentationIDTokenFactory,
	}
}
