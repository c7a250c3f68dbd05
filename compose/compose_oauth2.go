// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"authelia.com/provider/authz"
	"authelia.com/provider/authz/handler/oauth2"
)

// OAuth2AuthorizeCodeFactory creates the creator of 'code'.
func OAuth2AuthorizeCodeFactory(_ authz.Configurator, _ *Strategy) authz.ResponseCreator {
	return &oauth2.AuthorizationCodeResponseCreator{}
}

// OAuth2ImplicitFactory creates the creator of 'token'.
func OAuth2ImplicitFactory(_ authz.Configurator, strategy *Strategy) authz.ResponseCreator {
	return &oauth2.TokenResponseCreator{
		AccessTokenCreator: strategy.AccessToken,
	}
}

// OAuth2CodeTokenFactory creates the creator of 'code token'.
func OAuth2CodeTokenFactory(_ authz.Configurator, strategy *Strategy) authz.ResponseCreator {
	return &oauth2.CodeTokenResponseCreator{
		AccessTokenCreator: strategy.AccessToken,
	}
}

// OAuth2NoneFactory creates the creator of 'none'.
func OAuth2NoneFactory(_ authz.Configurator, _ *Strategy) authz.ResponseCreator {
	return &oauth2.NoneResponseCreator{}
}
