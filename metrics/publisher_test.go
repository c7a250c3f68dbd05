// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"authelia.com/provider/authz"
	"authelia.com/provider/authz/internal/mock"
)

func TestEventPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	next := mock.NewMockEventPublisher(ctrl)
	registry := prometheus.NewRegistry()

	publisher, err := NewEventPublisher(registry, next)
	require.NoError(t, err)

	events := []authz.SecurityEvent{
		{Type: authz.SecurityEventRequested, TenantID: "tenant", Status: authz.StatusOK},
		{Type: authz.SecurityEventRequested, TenantID: "tenant", Status: authz.StatusOK},
		{Type: authz.SecurityEventAuthorizeFailure, TenantID: "tenant", Status: authz.StatusRedirectableBadRequest, Error: "login_required"},
	}

	for _, event := range events {
		next.EXPECT().Publish(gomock.Any(), event)
		publisher.Publish(context.Background(), event)
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(publisher.events.WithLabelValues("authorization_requested", "tenant", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(publisher.errors.WithLabelValues("tenant", "login_required")))

	expected := `
# HELP authz_security_event_errors_total Number of authorization security events carrying an error, by tenant and error code.
# TYPE authz_security_event_errors_total counter
authz_security_event_errors_total{error="login_required",tenant_id="tenant"} 1
`

	assert.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "authz_security_event_errors_total"))
}

func TestEventPublisherShouldFailToRegisterTwice(t *testing.T) {
	registry := prometheus.NewRegistry()

	_, err := NewEventPublisher(registry, nil)
	require.NoError(t, err)

	publisher, err := NewEventPublisher(registry, nil)
	assert.Nil(t, publisher)
	assert.Error(t, err)
}

func TestEventPublisherWithoutNext(t *testing.T) {
	publisher, err := NewEventPublisher(prometheus.NewRegistry(), nil)
	require.NoError(t, err)

	publisher.Publish(context.Background(), authz.SecurityEvent{Type: authz.SecurityEventLogout, TenantID: "tenant", Status: authz.StatusRedirect})

	assert.Equal(t, 1, testutil.CollectAndCount(publisher.events))
	assert.Equal(t, 0, testutil.CollectAndCount(publisher.errors))
}
