// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package jwt

import (
	"context"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-jose/go-jose/v4"

	"authelia.com/provider/authz/internal/consts"
)

// Issuer signs claims with keys from a JSON Web Key Set.
type Issuer interface {
	GetIssuerJWK(ctx context.Context, kid, alg, use string) (jwk *jose.JSONWebKey, err error)
	Sign(ctx context.Context, claims MapClaims, alg, kid string) (token string, err error)
}

// DefaultIssuer is an Issuer backed by a static JSON Web Key Set holding private keys.
type DefaultIssuer struct {
	jwks *jose.JSONWebKeySet
}

// NewDefaultIssuer returns an Issuer for the provided key set.
func NewDefaultIssuer(jwks *jose.JSONWebKeySet) (issuer *DefaultIssuer, err error) {
	if jwks == nil || len(jwks.Keys) == 0 {
		return nil, ErrNoKeys
	}

	return &DefaultIssuer{jwks: jwks}, nil
}

// NewIssuerFromJSON parses a serialized JSON Web Key Set and returns an Issuer for it.
func NewIssuerFromJSON(raw string) (issuer *DefaultIssuer, err error) {
	jwks, err := ParseJWKS(raw)
	if err != nil {
		return nil, err
	}

	return NewDefaultIssuer(jwks)
}

// NewDefaultIssuerRS256 returns an Issuer with a single RS256 signing key.
func NewDefaultIssuerRS256(key any) (issuer *DefaultIssuer, err error) {
	switch k := key.(type) {
	case *rsa.PrivateKey:
		if n := k.Size(); n < 256 {
			return nil, fmt.Errorf("key must be an *rsa.PrivateKey with at least 2048 bits but got %d", n*8)
		}

		return &DefaultIssuer{
			jwks: &jose.JSONWebKeySet{
				Keys: []jose.JSONWebKey{
					{
						Key:       k,
						KeyID:     "default",
						Algorithm: string(jose.RS256),
						Use:       consts.JSONWebTokenUseSignature,
					},
				},
			},
		}, nil
	default:
		return nil, fmt.Errorf("key must be an *rsa.PrivateKey but got %T", k)
	}
}

// GenDefaultIssuer generates a fresh 2048 bit RS256 Issuer.
func GenDefaultIssuer() (issuer *DefaultIssuer, err error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, err
	}

	return NewDefaultIssuerRS256(key)
}

// MustGenDefaultIssuer is like GenDefaultIssuer but panics on error.
func MustGenDefaultIssuer() (issuer *DefaultIssuer) {
	var err error

	if issuer, err = GenDefaultIssuer(); err != nil {
		panic(err)
	}

	return issuer
}

// GetIssuerJWK returns the signing key matching kid, alg and use.
func (i *DefaultIssuer) GetIssuerJWK(ctx context.Context, kid, alg, use string) (jwk *jose.JSONWebKey, err error) {
	return SearchJWKS(i.jwks, kid, alg, use, false)
}

// Sign encodes claims as a compact JWS signed with the key matching alg and kid.
func (i *DefaultIssuer) Sign(ctx context.Context, claims MapClaims, alg, kid string) (token string, err error) {
	if alg == "" {
		alg = string(DefaultSigningAlgorithm)
	}

	var jwk *jose.JSONWebKey

	if jwk, err = i.GetIssuerJWK(ctx, kid, alg, consts.JSONWebTokenUseSignature); err != nil {
		return "", err
	}

	return EncodeCompactSigned(claims, jwk, jose.SignatureAlgorithm(alg))
}

// PublicJWKS returns the public half of every key.
func (i *DefaultIssuer) PublicJWKS() *jose.JSONWebKeySet {
	jwks := &jose.JSONWebKeySet{Keys: make([]jose.JSONWebKey, 0, len(i.jwks.Keys))}

	for _, key := range i.jwks.Keys {
		jwks.Keys = append(jwks.Keys, key.Public())
	}

	return jwks
}

// MarshalJSON serializes the private key set.
func (i *DefaultIssuer) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.jwks)
}

// ParseJWKS decodes a serialized JSON Web Key Set.
func ParseJWKS(raw string) (jwks *jose.JSONWebKeySet, err error) {
	jwks = &jose.JSONWebKeySet{}

	if err = json.Unmarshal([]byte(raw), jwks); err != nil {
		return nil, fmt.Errorf("error parsing the JSON Web Key Set: %w", err)
	}

	if len(jwks.Keys) == 0 {
		return nil, ErrNoKeys
	}

	return jwks, nil
}

// SearchJWKS finds the key matching kid, alg and use. Keys without a declared use or alg are matched on key type.
func SearchJWKS(jwks *jose.JSONWebKeySet, kid, alg, use string, strict bool) (key *jose.JSONWebKey, err error) {
	if jwks == nil || len(jwks.Keys) == 0 {
		return nil, &JWKLookupError{Description: "The retrieved JSON Web Key Set does not contain any key."}
	}

	var keys []jose.JSONWebKey

	if kid == "" {
		keys = jwks.Keys
	} else {
		keys = jwks.Key(kid)
	}

	if len(keys) == 0 {
		return nil, &JWKLookupError{Description: fmt.Sprintf("The JSON Web Token uses signing key with kid '%s' which was not found", kid)}
	}

	var matched []jose.JSONWebKey

	for _, k := range keys {
		if k.Use != "" && k.Use != use {
			continue
		}

		if k.Algorithm != "" && k.Algorithm != alg {
			continue
		}

		if k.Algorithm == "" && !isKeyCompatible(k.Key, alg) {
			continue
		}

		matched = append(matched, k)
	}

	switch len(matched) {
	case 1:
		return &matched[0], nil
	case 0:
		return nil, &JWKLookupError{Description: fmt.Sprintf("Unable to find JSON web key with kid '%s', use '%s', and alg '%s' in JSON Web Key Set", kid, use, alg)}
	default:
		if strict {
			return nil, &JWKLookupError{Description: fmt.Sprintf("Unable to find JSON web key with kid '%s', use '%s', and alg '%s' in JSON Web Key Set", kid, use, alg)}
		}

		return &matched[0], nil
	}
}

func isKeyCompatible(key any, alg string) bool {
	switch {
	case strings.HasPrefix(alg, "RS"), strings.HasPrefix(alg, "PS"):
		switch key.(type) {
		case *rsa.PrivateKey, *rsa.PublicKey:
			return true
		}
	case strings.HasPrefix(alg, "ES"):
		switch key.(type) {
		case *ecdsa.PrivateKey, *ecdsa.PublicKey:
			return true
		}
	case alg == string(jose.EdDSA):
		switch key.(type) {
		case ed25519.PrivateKey, ed25519.PublicKey:
			return true
		}
	}

	return false
}
