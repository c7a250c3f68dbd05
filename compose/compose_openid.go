// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"authelia.com/provider/authz"
	"authelia.com/provider/authz/handler/openid"
)

// OpenIDConnectImplicitFactory creates the creator of 'id_token'.
func OpenIDConnectImplicitFactory(_ authz.Configurator, strategy *Strategy) authz.ResponseCreator {
	return &openid.IDTokenResponseCreator{
		IDTokenCreator: strategy.IDToken,
	}
}

// OpenIDConnectTokenIDTokenFactory creates the creator of 'id_token token'.
func OpenIDConnectTokenIDTokenFactory(_ authz.Configurator, strategy *Strategy) authz.ResponseCreator {
	return &openid.TokenIDTokenResponseCreator{
		AccessTokenCreator: strategy.AccessToken,
		IDTokenCreator:     strategy.IDToken,
	}
}

// OpenIDConnectHybridFactory creates the creator of 'code id_token'.
func OpenIDConnectHybridFactory(_ authz.Configurator, strategy *Strategy) authz.ResponseCreator {
	return &openid.CodeIDTokenResponseCreator{
		IDTokenCreator: strategy.IDToken,
	}
}

// OpenIDConnectHybridTokenFactory creates the creator of 'code id_token token'.
func OpenIDConnectHybridTokenFactory(_ authz.Configurator, strategy *Strategy) authz.ResponseCreator {
	return &openid.CodeTokenIDTokenResponseCreator{
		AccessTokenCreator: strategy.AccessToken,
		IDTokenCreator:     strategy.IDToken,
	}
}
