// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"authelia.com/provider/authz"
	"authelia.com/provider/authz/handler/verifiable"
)

// VerifiablePresentationFactory creates the creator of 'vp_token'.
func VerifiablePresentationFactory(_ authz.Configurator, strategy *Strategy) authz.ResponseCreator {
	return &verifiable.VPTokenResponseCreator{
		VPTokenCreator: strategy.VPToken,
	}
}

// VerifiablePresentationIDTokenFactory creates the creator of 'vp_token id_token'.
func VerifiablePresentationIDTokenFactory(_ authz.Configurator, strategy *Strategy) authz.ResponseCreator {
	return &verifiable.VPTokenIDTokenResponseCreator{
		VPTokenCreator: strategy.VPToken,
		IDTokenCreator: strategy.IDToken,
	}
}
