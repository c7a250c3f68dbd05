// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"authelia.com/provider/authz"
	"authelia.com/provider/authz/handler/oauth2"
	"authelia.com/provider/authz/handler/openid"
	"authelia.com/provider/authz/handler/verifiable"
)

// Strategy holds the token issuance collaborators shared by the creators.
type Strategy struct {
	AccessToken authz.AccessTokenCreator
	IDToken     authz.IDTokenCreator
	VPToken     authz.VPTokenCreator
}

// NewDefaultStrategy returns opaque access tokens and ID Tokens and Verifiable Presentations signed with the keys of
// each tenant.
func NewDefaultStrategy() *Strategy {
	return &Strategy{
		AccessToken: &oauth2.DefaultAccessTokenCreator{},
		IDToken:     &openid.DefaultIDTokenCreator{},
		VPToken:     &verifiable.DefaultVPTokenCreator{},
	}
}
