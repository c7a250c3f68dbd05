// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package verifiable

import (
	"context"
	"time"

	"authelia.com/provider/authz"
	"authelia.com/provider/authz/internal/consts"
	"authelia.com/provider/authz/token/jwt"
)

const (
	defaultVPTokenLifespan = 10 * time.Minute

	presentationContext = "https://www.w3.org/2018/credentials/v1"
	presentationType    = "VerifiablePresentation"
)

// CredentialSource returns the credentials presented for the user of an authorization.
type CredentialSource interface {
	GetCredentials(ctx context.Context, ac *authz.AuthorizeContext) (credentials []any, err error)
}

// DefaultVPTokenCreator issues a Verifiable Presentation as a JWT signed with the keys of the tenant.
type DefaultVPTokenCreator struct {
	Credentials CredentialSource

	// Issuer overrides the signer derived from the JSON Web Key Set of the tenant.
	Issuer jwt.Issuer
}

func (c *DefaultVPTokenCreator) CreateVPToken(ctx context.Context, ac *authz.AuthorizeContext) (token string, err error) {
	credentials := []any{}

	if c.Credentials != nil {
		var found []any

		if found, err = c.Credentials.GetCredentials(ctx, ac); err != nil {
			return "", err
		}

		credentials = append(credentials, found...)
	}

	subject := ac.Subject()

	claims := jwt.MapClaims{
		consts.ClaimIssuer:         ac.Issuer(),
		consts.ClaimSubject:        subject,
		consts.ClaimAudience:       []string{ac.ClientID()},
		consts.ClaimIssuedAt:       ac.Now.Unix(),
		consts.ClaimExpirationTime: ac.Now.Add(defaultVPTokenLifespan).Unix(),
		consts.ClaimVerifiablePresentation: map[string]any{
			"@context":             []string{presentationContext},
			"type":                 []string{presentationType},
			"holder":               subject,
			"verifiableCredential": credentials,
		},
	}

	if nonce := ac.Request().Nonce; nonce != "" {
		claims[consts.ClaimNonce] = nonce
	}

	issuer := c.Issuer

	if issuer == nil {
		if issuer, err = jwt.NewIssuerFromJSON(ac.Server().JWKS); err != nil {
			return "", authz.NewConfigurationError("failed to load the vp_token signing keys", err)
		}
	}

	if token, err = issuer.Sign(ctx, claims, string(jwt.DefaultSigningAlgorithm), ""); err != nil {
		return "", authz.NewConfigurationError("failed to sign the vp_token", err)
	}

	return token, nil
}

var _ authz.VPTokenCreator = (*DefaultVPTokenCreator)(nil)
