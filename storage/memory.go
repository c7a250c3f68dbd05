// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"strings"
	"sync"

	"github.com/mohae/deepcopy"

	"authelia.com/provider/authz"
	"authelia.com/provider/authz/internal/errorsx"
)

// MemoryStore implements authz.Storage in memory. Every value handed in or out is a deep copy so callers never share
// state with the store.
type MemoryStore struct {
	Servers            map[string]*authz.ServerConfiguration
	Clients            map[string]*authz.ClientConfiguration
	Requests           map[string]*authz.AuthorizationRequest
	Sessions           map[string]*authz.OAuthSession
	Granted            map[string]*authz.AuthorizationGranted
	AuthorizationCodes map[string]*authz.AuthorizationCodeGrant
	AccessTokens       map[string]*authz.OAuthToken

	serversMutex  sync.RWMutex
	clientsMutex  sync.RWMutex
	requestsMutex sync.RWMutex
	sessionsMutex sync.RWMutex
	grantedMutex  sync.RWMutex
	codesMutex    sync.RWMutex
	tokensMutex   sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Servers:            make(map[string]*authz.ServerConfiguration),
		Clients:            make(map[string]*authz.ClientConfiguration),
		Requests:           make(map[string]*authz.AuthorizationRequest),
		Sessions:           make(map[string]*authz.OAuthSession),
		Granted:            make(map[string]*authz.AuthorizationGranted),
		AuthorizationCodes: make(map[string]*authz.AuthorizationCodeGrant),
		AccessTokens:       make(map[string]*authz.OAuthToken),
	}
}

func tenantKey(parts ...string) string {
	return strings.Join(parts, "|")
}

func clone[T any](value *T) *T {
	if value == nil {
		return nil
	}

	return deepcopy.Copy(value).(*T)
}

// SetServerConfiguration registers or replaces the configuration of a tenant.
func (s *MemoryStore) SetServerConfiguration(server *authz.ServerConfiguration) {
	s.serversMutex.Lock()
	defer s.serversMutex.Unlock()

	s.Servers[server.TenantID] = clone(server)
}

// SetClientConfiguration registers or replaces the configuration of a client.
func (s *MemoryStore) SetClientConfiguration(client *authz.ClientConfiguration) {
	s.clientsMutex.Lock()
	defer s.clientsMutex.Unlock()

	s.Clients[tenantKey(client.TenantID, client.ClientID)] = clone(client)
}

func (s *MemoryStore) GetServerConfiguration(_ context.Context, tenantID string) (*authz.ServerConfiguration, error) {
	s.serversMutex.RLock()
	defer s.serversMutex.RUnlock()

	server, ok := s.Servers[tenantID]
	if !ok {
		return nil, errorsx.WithStack(authz.ErrServerConfigurationNotFound)
	}

	return clone(server), nil
}

func (s *MemoryStore) GetClientConfiguration(_ context.Context, tenantID, clientID string) (*authz.ClientConfiguration, error) {
	s.clientsMutex.RLock()
	defer s.clientsMutex.RUnlock()

	client, ok := s.Clients[tenantKey(tenantID, clientID)]
	if !ok {
		return nil, errorsx.WithStack(authz.ErrClientConfigurationNotFound)
	}

	return clone(client), nil
}

func (s *MemoryStore) RegisterAuthorizationRequest(_ context.Context, request *authz.AuthorizationRequest) error {
	s.requestsMutex.Lock()
	defer s.requestsMutex.Unlock()

	s.Requests[tenantKey(request.TenantID, request.ID)] = clone(request)

	return nil
}

func (s *MemoryStore) GetAuthorizationRequest(_ context.Context, tenantID, requestID string) (*authz.AuthorizationRequest, error) {
	s.requestsMutex.RLock()
	defer s.requestsMutex.RUnlock()

	request, ok := s.Requests[tenantKey(tenantID, requestID)]
	if !ok {
		return nil, errorsx.WithStack(authz.ErrNotFound)
	}

	return clone(request), nil
}

func (s *MemoryStore) DeleteAuthorizationRequest(_ context.Context, tenantID, requestID string) error {
	s.requestsMutex.Lock()
	defer s.requestsMutex.Unlock()

	delete(s.Requests, tenantKey(tenantID, requestID))

	return nil
}

func (s *MemoryStore) FindSession(_ context.Context, key authz.SessionKey) (*authz.OAuthSession, error) {
	s.sessionsMutex.RLock()
	defer s.sessionsMutex.RUnlock()

	return clone(s.Sessions[key.String()]), nil
}

func (s *MemoryStore) RegisterSession(_ context.Context, session *authz.OAuthSession) error {
	s.sessionsMutex.Lock()
	defer s.sessionsMutex.Unlock()

	s.Sessions[session.Key.String()] = clone(session)

	return nil
}

func (s *MemoryStore) DeleteSession(_ context.Context, key authz.SessionKey) error {
	s.sessionsMutex.Lock()
	defer s.sessionsMutex.Unlock()

	delete(s.Sessions, key.String())

	return nil
}

func (s *MemoryStore) FindAuthorizationGranted(_ context.Context, tenantID, clientID, subject string) (*authz.AuthorizationGranted, error) {
	s.grantedMutex.RLock()
	defer s.grantedMutex.RUnlock()

	return clone(s.Granted[tenantKey(tenantID, clientID, subject)]), nil
}

func (s *MemoryStore) RegisterAuthorizationGranted(_ context.Context, granted *authz.AuthorizationGranted) error {
	s.grantedMutex.Lock()
	defer s.grantedMutex.Unlock()

	s.Granted[tenantKey(granted.TenantID, granted.ClientID, granted.Subject)] = clone(granted)

	return nil
}

func (s *MemoryStore) UpdateAuthorizationGranted(_ context.Context, granted *authz.AuthorizationGranted) error {
	s.grantedMutex.Lock()
	defer s.grantedMutex.Unlock()

	key := tenantKey(granted.TenantID, granted.ClientID, granted.Subject)

	if _, ok := s.Granted[key]; !ok {
		return errorsx.WithStack(authz.ErrNotFound)
	}

	s.Granted[key] = clone(granted)

	return nil
}

func (s *MemoryStore) RegisterAuthorizationCodeGrant(_ context.Context, grant *authz.AuthorizationCodeGrant) error {
	s.codesMutex.Lock()
	defer s.codesMutex.Unlock()

	s.AuthorizationCodes[grant.Code] = clone(grant)

	return nil
}

// GetAuthorizationCodeGrant returns the grant of an issued authorization code.
func (s *MemoryStore) GetAuthorizationCodeGrant(_ context.Context, code string) (*authz.AuthorizationCodeGrant, error) {
	s.codesMutex.RLock()
	defer s.codesMutex.RUnlock()

	grant, ok := s.AuthorizationCodes[code]
	if !ok {
		return nil, errorsx.WithStack(authz.ErrNotFound)
	}

	return clone(grant), nil
}

func (s *MemoryStore) RegisterOAuthToken(_ context.Context, token *authz.OAuthToken) error {
	s.tokensMutex.Lock()
	defer s.tokensMutex.Unlock()

	s.AccessTokens[token.AccessToken] = clone(token)

	return nil
}

// GetOAuthToken returns an issued access token.
func (s *MemoryStore) GetOAuthToken(_ context.Context, accessToken string) (*authz.OAuthToken, error) {
	s.tokensMutex.RLock()
	defer s.tokensMutex.RUnlock()

	token, ok := s.AccessTokens[accessToken]
	if !ok {
		return nil, errorsx.WithStack(authz.ErrNotFound)
	}

	return clone(token), nil
}

var _ authz.Storage = (*MemoryStore)(nil)
