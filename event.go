// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"context"
	"time"
)

// SecurityEventType names the outcome a SecurityEvent records.
type SecurityEventType string

const (
	SecurityEventPushed           SecurityEventType = "authorization_request_pushed"
	SecurityEventRequested        SecurityEventType = "authorization_requested"
	SecurityEventAutoAuthorized   SecurityEventType = "authorization_auto_authorized"
	SecurityEventAuthorized       SecurityEventType = "authorization_authorized"
	SecurityEventAuthorizeFailure SecurityEventType = "authorization_failure"
	SecurityEventDenied           SecurityEventType = "authorization_denied"
	SecurityEventLogout           SecurityEventType = "logout"
)

// SecurityEvent is the structured record of a façade outcome.
type SecurityEvent struct {
	Type       SecurityEventType
	TenantID   string
	ClientID   string
	Subject    string
	RequestID  string
	Status     Status
	Error      string
	OccurredAt time.Time
}

// EventPublisher receives security events. Publish must not block the calling request.
type EventPublisher interface {
	Publish(ctx context.Context, event SecurityEvent)
}

// NopEventPublisher discards every event.
type NopEventPublisher struct{}

func (NopEventPublisher) Publish(context.Context, SecurityEvent) {}
