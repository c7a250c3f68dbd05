// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"context"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/hashicorp/go-retryablehttp"

	"authelia.com/provider/authz/internal/consts"
	"authelia.com/provider/authz/internal/errorsx"
	"authelia.com/provider/authz/token/jwt"
)

// requestObjectMaxLifetime is the longest 'nbf' to 'exp' window of a FAPI Advance request object.
const requestObjectMaxLifetime = 60 * time.Minute

// RequestObjectVerifier verifies signed request objects against the keys of the client.
type RequestObjectVerifier struct {
	HTTPClient *retryablehttp.Client
}

// Verify checks the signature, audience and lifetime of the request object at now and returns its claims. Unsigned
// request objects are rejected.
func (v *RequestObjectVerifier) Verify(ctx context.Context, raw string, server *ServerConfiguration, client *ClientConfiguration, now time.Time) (claims jwt.MapClaims, err error) {
	var jwks *jose.JSONWebKeySet

	if jwks, err = v.clientJWKS(ctx, client); err != nil {
		return nil, err
	}

	var verified *jwt.Verified

	if verified, err = jwt.DecodeCompactSigned(raw, jwks, requestObjectAlgorithms(server, client)); err != nil {
		return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHint("The request object signature could not be verified.").WithWrap(err).WithDebug(err.Error()))
	}

	if id, ok := verified.Claims.GetString(consts.FormParameterClientID); ok && id != client.ClientID {
		return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHint("The 'client_id' claim of the request object does not match the client."))
	}

	for _, nested := range []string{consts.FormParameterRequest, consts.FormParameterRequestURI} {
		if _, ok := verified.Claims[nested]; ok {
			return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHintf("The request object must not contain the '%s' claim.", nested))
		}
	}

	if err = verifyRequestObjectClaims(verified, server, now); err != nil {
		return nil, err
	}

	return verified.Claims, nil
}

// verifyRequestObjectClaims bounds the replay of a request object to its issuer and lifetime. The FAPI Advance
// profile, decided by the 'scope' claim, also restricts the algorithm and requires a short 'nbf' window.
func verifyRequestObjectClaims(verified *jwt.Verified, server *ServerConfiguration, now time.Time) error {
	claims := verified.Claims

	if !Arguments(claims.GetAudience()).Has(server.Issuer) {
		return errorsx.WithStack(ErrInvalidRequestObject.WithHintf("The 'aud' claim of the request object must contain the issuer '%s'.", server.Issuer))
	}

	exp, ok := claims.GetTime(consts.ClaimExpirationTime)

	switch {
	case !ok:
		return errorsx.WithStack(ErrInvalidRequestObject.WithHint("The request object must contain the 'exp' claim."))
	case !now.Before(exp):
		return errorsx.WithStack(ErrInvalidRequestObject.WithHint("The request object has expired."))
	}

	scope, _ := claims.GetString(consts.ClaimScope)

	if server.DecideProfile(ParseArguments(scope)) != ProfileFAPIAdvance {
		return nil
	}

	switch jose.SignatureAlgorithm(verified.Algorithm) {
	case jose.PS256, jose.ES256:
	default:
		return errorsx.WithStack(ErrInvalidRequestObject.WithHintf("The FAPI Advance profile requires the request object to be signed with 'PS256' or 'ES256' but it was signed with '%s'.", verified.Algorithm))
	}

	nbf, ok := claims.GetTime(consts.ClaimNotBefore)

	switch {
	case !ok:
		return errorsx.WithStack(ErrInvalidRequestObject.WithHint("The FAPI Advance profile requires the request object to contain the 'nbf' claim."))
	case now.Before(nbf):
		return errorsx.WithStack(ErrInvalidRequestObject.WithHint("The request object is not valid yet."))
	case exp.Sub(nbf) > requestObjectMaxLifetime:
		return errorsx.WithStack(ErrInvalidRequestObject.WithHint("The FAPI Advance profile requires the 'exp' claim of the request object to be at most 60 minutes after the 'nbf' claim."))
	}

	return nil
}

func (v *RequestObjectVerifier) clientJWKS(ctx context.Context, client *ClientConfiguration) (jwks *jose.JSONWebKeySet, err error) {
	switch {
	case client.JWKS != "":
		if jwks, err = jwt.ParseJWKS(client.JWKS); err != nil {
			return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHint("The registered JSON Web Key Set of the client could not be parsed.").WithWrap(err).WithDebug(err.Error()))
		}
	case client.JWKSURI != "":
		if jwks, err = jwt.FetchJWKS(ctx, v.HTTPClient, client.JWKSURI); err != nil {
			return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHint("The JSON Web Key Set of the client could not be retrieved from its 'jwks_uri'.").WithWrap(err).WithDebug(err.Error()))
		}
	default:
		return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHint("The client has neither registered a 'jwks' nor a 'jwks_uri' to verify request objects with."))
	}

	return jwks, nil
}

func requestObjectAlgorithms(server *ServerConfiguration, client *ClientConfiguration) []jose.SignatureAlgorithm {
	if client.RequestObjectSigningAlg != "" && client.RequestObjectSigningAlg != consts.JSONWebTokenAlgNone {
		return []jose.SignatureAlgorithm{jose.SignatureAlgorithm(client.RequestObjectSigningAlg)}
	}

	if len(server.RequestObjectSigningAlgValuesSupported) != 0 {
		algs := make([]jose.SignatureAlgorithm, 0, len(server.RequestObjectSigningAlgValuesSupported))

		for _, alg := range server.RequestObjectSigningAlgValuesSupported {
			if alg == consts.JSONWebTokenAlgNone {
				continue
			}

			algs = append(algs, jose.SignatureAlgorithm(alg))
		}

		return algs
	}

	return jwt.SignatureAlgorithms
}
