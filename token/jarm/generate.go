// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package jarm

import (
	"context"
	"errors"
	"net/url"

	"authelia.com/provider/authz/token/jwt"
)

// Generate signs the authorization response parameters as a JWT Secured Authorization Response.
func Generate(ctx context.Context, config Configurator, client Client, in url.Values) (token string, err error) {
	if client == nil {
		return "", errors.New("The JARM response modes require a client but it wasn't provided.")
	}

	var signer jwt.Issuer

	if signer, err = config.GetJWTSecuredAuthorizeResponseModeSigner(ctx); err != nil {
		return "", err
	}

	if signer == nil {
		return "", errors.New("The JARM response modes require the Configurator to return a jwt.Issuer but it didn't.")
	}

	claims := jwt.NewJARMClaims(
		config.GetJWTSecuredAuthorizeResponseModeIssuer(ctx),
		client.GetID(),
		config.GetJWTSecuredAuthorizeResponseModeNow(ctx),
		config.GetJWTSecuredAuthorizeResponseModeLifespan(ctx),
	)

	for param := range in {
		claims.Add(param, in.Get(param))
	}

	return signer.Sign(ctx, claims.ToMapClaims(), client.GetAuthorizationSignedResponseAlg(), client.GetAuthorizationSignedResponseKeyID())
}
