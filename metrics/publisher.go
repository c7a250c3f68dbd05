// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

// Package metrics exports authorization security events as Prometheus metrics.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"authelia.com/provider/authz"
)

const namespace = "authz"

// EventPublisher counts security events by type, tenant and status. It optionally forwards every event to Next.
type EventPublisher struct {
	Next authz.EventPublisher

	events *prometheus.CounterVec
	errors *prometheus.CounterVec
}

// NewEventPublisher returns an EventPublisher with its collectors registered on registerer.
func NewEventPublisher(registerer prometheus.Registerer, next authz.EventPublisher) (*EventPublisher, error) {
	p := &EventPublisher{
		Next: next,
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "security_events_total",
			Help:      "Number of authorization security events by type, tenant and status.",
		}, []string{"type", "tenant_id", "status"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "security_event_errors_total",
			Help:      "Number of authorization security events carrying an error, by tenant and error code.",
		}, []string{"tenant_id", "error"}),
	}

	for _, collector := range []prometheus.Collector{p.events, p.errors} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (p *EventPublisher) Publish(ctx context.Context, event authz.SecurityEvent) {
	p.events.WithLabelValues(string(event.Type), event.TenantID, string(event.Status)).Inc()

	if event.Error != "" {
		p.errors.WithLabelValues(event.TenantID, event.Error).Inc()
	}

	if p.Next != nil {
		p.Next.Publish(ctx, event)
	}
}

var _ authz.EventPublisher = (*EventPublisher)(nil)
