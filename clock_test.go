// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"authelia.com/provider/authz"
)

func TestFixedClock(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	clock := authz.NewFixedClock(now)

	assert.Equal(t, now, clock.Now())

	clock.Advance(time.Minute)
	assert.Equal(t, now.Add(time.Minute), clock.Now())

	clock.Set(now)
	assert.Equal(t, now, clock.Now())

	request := &authz.AuthorizationRequest{ExpiresAt: now.Add(time.Second)}
	assert.False(t, request.IsExpired(clock.Now()))

	clock.Advance(2 * time.Second)
	assert.True(t, request.IsExpired(clock.Now()))
}

func TestRealClock(t *testing.T) {
	assert.Equal(t, time.UTC, authz.NewRealClock().Now().Location())
}
