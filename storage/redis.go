// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"authelia.com/provider/authz"
	"authelia.com/provider/authz/internal/errorsx"
)

const (
	keyTypeSession = "session"
	keyTypeRequest = "request"
)

// RedisStore persists sessions and authorization requests in Redis so they are shared between instances. Entries
// expire with the session or request they hold.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisStore returns a RedisStore for client. Every key is prefixed with keyPrefix.
func NewRedisStore(client redis.UniversalClient, keyPrefix string) *RedisStore {
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (s *RedisStore) key(kind string, parts ...string) string {
	return s.keyPrefix + kind + ":" + tenantKey(parts...)
}

// ttl returns the lifetime between created and expires. A zero expiry never expires.
func ttl(created, expires time.Time) time.Duration {
	if expires.IsZero() {
		return 0
	}

	if d := expires.Sub(created); d > 0 {
		return d
	}

	return time.Millisecond
}

func (s *RedisStore) set(ctx context.Context, key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "failed to marshal value")
	}

	if err = s.client.Set(ctx, key, data, expiration).Err(); err != nil {
		return errors.Wrapf(err, "failed to persist key '%s'", key)
	}

	return nil
}

// get decodes the value of key into value. It reports false when the key does not exist.
func (s *RedisStore) get(ctx context.Context, key string, value any) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, errors.Wrapf(err, "failed to load key '%s'", key)
	}

	if err = json.Unmarshal(data, value); err != nil {
		return false, errors.Wrapf(err, "failed to decode key '%s'", key)
	}

	return true, nil
}

func (s *RedisStore) del(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return errors.Wrapf(err, "failed to delete key '%s'", key)
	}

	return nil
}

func (s *RedisStore) FindSession(ctx context.Context, key authz.SessionKey) (*authz.OAuthSession, error) {
	session := &authz.OAuthSession{}

	found, err := s.get(ctx, s.key(keyTypeSession, key.TenantID, key.ClientID, key.UserAgentID), session)
	if err != nil || !found {
		return nil, err
	}

	return session, nil
}

func (s *RedisStore) RegisterSession(ctx context.Context, session *authz.OAuthSession) error {
	return s.set(ctx, s.key(keyTypeSession, session.Key.TenantID, session.Key.ClientID, session.Key.UserAgentID), session, ttl(session.CreatedAt, session.ExpiresAt))
}

func (s *RedisStore) DeleteSession(ctx context.Context, key authz.SessionKey) error {
	return s.del(ctx, s.key(keyTypeSession, key.TenantID, key.ClientID, key.UserAgentID))
}

func (s *RedisStore) RegisterAuthorizationRequest(ctx context.Context, request *authz.AuthorizationRequest) error {
	return s.set(ctx, s.key(keyTypeRequest, request.TenantID, request.ID), request, ttl(request.CreatedAt, request.ExpiresAt))
}

func (s *RedisStore) GetAuthorizationRequest(ctx context.Context, tenantID, requestID string) (*authz.AuthorizationRequest, error) {
	request := &authz.AuthorizationRequest{}

	found, err := s.get(ctx, s.key(keyTypeRequest, tenantID, requestID), request)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, errorsx.WithStack(authz.ErrNotFound)
	}

	return request, nil
}

func (s *RedisStore) DeleteAuthorizationRequest(ctx context.Context, tenantID, requestID string) error {
	return s.del(ctx, s.key(keyTypeRequest, tenantID, requestID))
}

// Ping checks the connection to Redis.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var (
	_ authz.SessionRepository              = (*RedisStore)(nil)
	_ authz.AuthorizationRequestRepository = (*RedisStore)(nil)
)

// LayeredStore serves sessions and authorization requests from Redis and everything else from the embedded Storage.
type LayeredStore struct {
	authz.Storage

	Redis *RedisStore
}

// NewLayeredStore returns a LayeredStore over base and rs.
func NewLayeredStore(base authz.Storage, rs *RedisStore) *LayeredStore {
	return &LayeredStore{Storage: base, Redis: rs}
}

func (s *LayeredStore) FindSession(ctx context.Context, key authz.SessionKey) (*authz.OAuthSession, error) {
	return s.Redis.FindSession(ctx, key)
}

func (s *LayeredStore) RegisterSession(ctx context.Context, session *authz.OAuthSession) error {
	return s.Redis.RegisterSession(ctx, session)
}

func (s *LayeredStore) DeleteSession(ctx context.Context, key authz.SessionKey) error {
	return s.Redis.DeleteSession(ctx, key)
}

func (s *LayeredStore) RegisterAuthorizationRequest(ctx context.Context, request *authz.AuthorizationRequest) error {
	return s.Redis.RegisterAuthorizationRequest(ctx, request)
}

func (s *LayeredStore) GetAuthorizationRequest(ctx context.Context, tenantID, requestID string) (*authz.AuthorizationRequest, error) {
	return s.Redis.GetAuthorizationRequest(ctx, tenantID, requestID)
}

func (s *LayeredStore) DeleteAuthorizationRequest(ctx context.Context, tenantID, requestID string) error {
	return s.Redis.DeleteAuthorizationRequest(ctx, tenantID, requestID)
}

var _ authz.Storage = (*LayeredStore)(nil)
