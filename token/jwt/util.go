// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package jwt

import (
	"encoding/json"
	"fmt"

	"github.com/go-jose/go-jose/v4"

	"authelia.com/provider/authz/internal/consts"
)

// EncodeCompactSigned signs claims with key using alg and returns the compact serialization.
func EncodeCompactSigned(claims MapClaims, key *jose.JSONWebKey, alg jose.SignatureAlgorithm) (token string, err error) {
	var signer jose.Signer

	opts := (&jose.SignerOptions{}).WithType(consts.JSONWebTokenTypeJWT)

	if signer, err = jose.NewSigner(jose.SigningKey{Algorithm: alg, Key: key}, opts); err != nil {
		return "", fmt.Errorf("error creating the signer: %w", err)
	}

	var payload []byte

	if payload, err = json.Marshal(claims); err != nil {
		return "", fmt.Errorf("error marshalling the claims: %w", err)
	}

	var jws *jose.JSONWebSignature

	if jws, err = signer.Sign(payload); err != nil {
		return "", fmt.Errorf("error signing the claims: %w", err)
	}

	return jws.CompactSerialize()
}

// Verified is the result of a successful signature verification.
type Verified struct {
	KeyID     string
	Algorithm string
	Claims    MapClaims
}

// DecodeCompactSigned verifies a compact JWS against jwks and returns its claims. Only algs are accepted.
func DecodeCompactSigned(token string, jwks *jose.JSONWebKeySet, algs []jose.SignatureAlgorithm) (verified *Verified, err error) {
	if len(algs) == 0 {
		algs = SignatureAlgorithms
	}

	var jws *jose.JSONWebSignature

	if jws, err = jose.ParseSigned(token, algs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSigned, err)
	}

	if len(jws.Signatures) != 1 {
		return nil, ErrNotSigned
	}

	header := jws.Signatures[0].Header

	var key *jose.JSONWebKey

	if key, err = SearchJWKS(jwks, header.KeyID, header.Algorithm, consts.JSONWebTokenUseSignature, false); err != nil {
		return nil, err
	}

	var payload []byte

	if payload, err = jws.Verify(publicKeyOf(key)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}

	claims := MapClaims{}

	if err = json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("error unmarshalling the claims: %w", err)
	}

	return &Verified{KeyID: header.KeyID, Algorithm: header.Algorithm, Claims: claims}, nil
}

func publicKeyOf(key *jose.JSONWebKey) any {
	if key.IsPublic() {
		return key.Key
	}

	return key.Public().Key
}
