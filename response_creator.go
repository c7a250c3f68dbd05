// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"authelia.com/provider/authz/internal/randx"
)

// AuthorizationCodeEntropy is the number of random bytes of an authorization code.
const AuthorizationCodeEntropy = 32

// ResponseCreator creates the successful response of a single response type.
type ResponseCreator interface {
	// ResponseType returns the response type the creator handles.
	ResponseType() ResponseType

	// Create returns the response for the authorized request.
	Create(ctx context.Context, ac *AuthorizeContext) (*AuthorizationResponse, error)
}

// AccessTokenCreator issues access tokens delivered through the front channel.
type AccessTokenCreator interface {
	CreateAccessToken(ctx context.Context, ac *AuthorizeContext) (*OAuthToken, error)
}

// IDTokenHashes are the values an ID Token carries the left-most half hash of.
type IDTokenHashes struct {
	Code        string
	AccessToken string
	State       string
}

// IDTokenCreator issues ID Tokens delivered through the front channel.
type IDTokenCreator interface {
	CreateIDToken(ctx context.Context, ac *AuthorizeContext, hashes IDTokenHashes) (string, error)
}

// VPTokenCreator issues Verifiable Presentation tokens.
type VPTokenCreator interface {
	CreateVPToken(ctx context.Context, ac *AuthorizeContext) (string, error)
}

// ResponseCreators is the registry of response creators keyed by ResponseType.Key.
type ResponseCreators map[string]ResponseCreator

// NewResponseCreators returns a registry with creators registered.
func NewResponseCreators(creators ...ResponseCreator) ResponseCreators {
	registry := make(ResponseCreators, len(creators))

	for _, creator := range creators {
		registry.Register(creator)
	}

	return registry
}

// Register adds creator, replacing any creator already registered for its response type.
func (r ResponseCreators) Register(creator ResponseCreator) {
	r[creator.ResponseType().Key()] = creator
}

// Get returns the creator of rt. A missing creator is a ConfigurationError.
func (r ResponseCreators) Get(rt ResponseType) (ResponseCreator, error) {
	if creator, ok := r[rt.Key()]; ok {
		return creator, nil
	}

	return nil, NewConfigurationError(fmt.Sprintf("no response creator is registered for the response type '%s'", rt.Key()), nil)
}

// Validate returns a ConfigurationError naming every one of types without a registered creator.
func (r ResponseCreators) Validate(types ...ResponseType) error {
	var missing []string

	for _, rt := range types {
		if _, ok := r[rt.Key()]; !ok {
			missing = append(missing, rt.Key())
		}
	}

	if len(missing) == 0 {
		return nil
	}

	sort.Strings(missing)

	return NewConfigurationError(fmt.Sprintf("no response creator is registered for the response types '%s'", strings.Join(missing, "', '")), nil)
}

// GenerateAuthorizationCode returns a new single use authorization code.
func GenerateAuthorizationCode() (string, error) {
	return randx.OpaqueString(AuthorizationCodeEntropy)
}
