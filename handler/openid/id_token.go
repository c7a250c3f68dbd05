// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package openid

import (
	"context"
	"time"

	"authelia.com/provider/authz"
	"authelia.com/provider/authz/token/jwt"
)

const defaultIDTokenLifespan = time.Hour

// DefaultIDTokenCreator issues ID Tokens signed with the keys of the tenant.
type DefaultIDTokenCreator struct {
	// Issuer overrides the signer derived from the JSON Web Key Set of the tenant.
	Issuer jwt.Issuer
}

func (c *DefaultIDTokenCreator) issuer(server *authz.ServerConfiguration) (jwt.Issuer, error) {
	if c.Issuer != nil {
		return c.Issuer, nil
	}

	return jwt.NewIssuerFromJSON(server.JWKS)
}

// CreateIDToken issues an ID Token for the user of ac. The hashes of the artifacts issued alongside it are bound to
// the token with the c_hash and at_hash claims, and with s_hash under the FAPI profiles.
func (c *DefaultIDTokenCreator) CreateIDToken(ctx context.Context, ac *authz.AuthorizeContext, hashes authz.IDTokenHashes) (token string, err error) {
	server, client, request := ac.Server(), ac.Client(), ac.Request()

	alg := client.IDTokenSignedResponseAlg
	if alg == "" {
		alg = string(jwt.DefaultSigningAlgorithm)
	}

	lifespan := server.IDTokenDuration
	if lifespan == 0 {
		lifespan = defaultIDTokenLifespan
	}

	claims := &jwt.IDTokenClaims{
		Issuer:                              ac.Issuer(),
		Subject:                             ac.Subject(),
		Audience:                            []string{client.ClientID},
		Nonce:                               request.Nonce,
		IssuedAt:                            ac.Now,
		ExpirationTime:                      ac.Now.Add(lifespan),
		AuthTime:                            ac.Authentication.Time,
		AuthenticationContextClassReference: ac.Authentication.ACR,
		AuthenticationMethodsReferences:     ac.Authentication.Methods,
		AuthorizedParty:                     client.ClientID,
		Extra:                               userClaims(ac.User, ac.RequiredIDTokenClaims()),
	}

	if claims.CodeHash, err = hashOf(alg, hashes.Code); err != nil {
		return "", authz.NewConfigurationError("failed to compute the c_hash of the id token", err)
	}

	if claims.AccessTokenHash, err = hashOf(alg, hashes.AccessToken); err != nil {
		return "", authz.NewConfigurationError("failed to compute the at_hash of the id token", err)
	}

	if ac.Profile().IsFAPI() {
		if claims.StateHash, err = hashOf(alg, hashes.State); err != nil {
			return "", authz.NewConfigurationError("failed to compute the s_hash of the id token", err)
		}
	}

	var issuer jwt.Issuer

	if issuer, err = c.issuer(server); err != nil {
		return "", authz.NewConfigurationError("failed to load the id token signing keys", err)
	}

	if token, err = issuer.Sign(ctx, claims.ToMapClaims(), alg, ""); err != nil {
		return "", authz.NewConfigurationError("failed to sign the id token", err)
	}

	return token, nil
}

func hashOf(alg, value string) (string, error) {
	if value == "" {
		return "", nil
	}

	return jwt.HashHalf(alg, value)
}

func userClaims(user *authz.User, names authz.Arguments) map[string]any {
	claims := map[string]any{}

	if user == nil {
		return claims
	}

	for _, name := range names {
		if value, ok := user.Claim(name); ok {
			claims[name] = value
		}
	}

	return claims
}

var _ authz.IDTokenCreator = (*DefaultIDTokenCreator)(nil)
