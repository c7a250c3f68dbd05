// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"context"
	"time"
)

// DenyReason is the error code a user or policy denies a request with.
type DenyReason string

const (
	DenyReasonAccessDenied        DenyReason = errAccessDeniedName
	DenyReasonConsentRequired     DenyReason = errConsentRequiredName
	DenyReasonLoginRequired       DenyReason = errLoginRequiredName
	DenyReasonInteractionRequired DenyReason = errInteractionRequiredName
)

// RFC6749Error returns the protocol error of the reason. Unknown reasons keep their code with a generic description.
func (r DenyReason) RFC6749Error() *RFC6749Error {
	switch r {
	case "", DenyReasonAccessDenied:
		return ErrAccessDenied
	case DenyReasonConsentRequired:
		return ErrConsentRequired
	case DenyReasonLoginRequired:
		return ErrLoginRequired
	case DenyReasonInteractionRequired:
		return ErrInteractionRequired
	default:
		return NewRFC6749Error(string(r), "The request was denied.")
	}
}

// CreateErrorResponse returns the error redirect of rc, wrapped as a JWT Secured Authorization Response when the
// request requires it.
func CreateErrorResponse(ctx context.Context, rc *RequestContext, now time.Time, err *RFC6749Error) (*AuthorizationErrorResponse, error) {
	builder := NewAuthorizationErrorResponseBuilder(rc.RedirectURI(), rc.ResponseModeValue(), rc.Issuer()).
		AddError(err).
		AddState(rc.State())

	return FinalizeAuthorizationErrorResponse(ctx, rc, now, builder)
}

// CreateDenyResponse returns the error redirect for a request denied with reason.
func CreateDenyResponse(ctx context.Context, rc *RequestContext, now time.Time, reason DenyReason, description string) (*AuthorizationErrorResponse, error) {
	err := reason.RFC6749Error()

	if description != "" {
		err = err.WithDescription(description)
	}

	return CreateErrorResponse(ctx, rc, now, err)
}
