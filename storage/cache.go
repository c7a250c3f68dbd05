// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"

	"authelia.com/provider/authz"
)

const (
	defaultConfigurationCacheTTL = 5 * time.Minute

	cachePrefixServer = "server:"
	cachePrefixClient = "client:"
)

// CachedConfigurationStore caches the server and client configurations of the embedded Storage. Misses are never
// cached.
type CachedConfigurationStore struct {
	authz.Storage

	cache *ristretto.Cache
	ttl   time.Duration
}

// NewCachedConfigurationStore returns a CachedConfigurationStore over base. A zero ttl uses five minutes.
func NewCachedConfigurationStore(base authz.Storage, ttl time.Duration) (*CachedConfigurationStore, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000 * 10,
		MaxCost:     10000,
		BufferItems: 64,
		Metrics:     false,
		Cost: func(value any) int64 {
			return 1
		},
	})
	if err != nil {
		return nil, err
	}

	if ttl == 0 {
		ttl = defaultConfigurationCacheTTL
	}

	return &CachedConfigurationStore{Storage: base, cache: cache, ttl: ttl}, nil
}

func (s *CachedConfigurationStore) GetServerConfiguration(ctx context.Context, tenantID string) (*authz.ServerConfiguration, error) {
	key := cachePrefixServer + tenantID

	if value, ok := s.cache.Get(key); ok {
		return clone(value.(*authz.ServerConfiguration)), nil
	}

	server, err := s.Storage.GetServerConfiguration(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	s.cache.SetWithTTL(key, clone(server), 1, s.ttl)

	return server, nil
}

func (s *CachedConfigurationStore) GetClientConfiguration(ctx context.Context, tenantID, clientID string) (*authz.ClientConfiguration, error) {
	key := cachePrefixClient + tenantKey(tenantID, clientID)

	if value, ok := s.cache.Get(key); ok {
		return clone(value.(*authz.ClientConfiguration)), nil
	}

	client, err := s.Storage.GetClientConfiguration(ctx, tenantID, clientID)
	if err != nil {
		return nil, err
	}

	s.cache.SetWithTTL(key, clone(client), 1, s.ttl)

	return client, nil
}

// InvalidateServerConfiguration drops the cached configuration of a tenant.
func (s *CachedConfigurationStore) InvalidateServerConfiguration(tenantID string) {
	s.cache.Del(cachePrefixServer + tenantID)
}

// InvalidateClientConfiguration drops the cached configuration of a client.
func (s *CachedConfigurationStore) InvalidateClientConfiguration(tenantID, clientID string) {
	s.cache.Del(cachePrefixClient + tenantKey(tenantID, clientID))
}

// Wait blocks until every pending write is visible.
func (s *CachedConfigurationStore) Wait() {
	s.cache.Wait()
}

var _ authz.Storage = (*CachedConfigurationStore)(nil)
