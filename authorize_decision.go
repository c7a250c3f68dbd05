// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"fmt"
	"strings"
	"time"
)

// OutcomeKind classifies the result of the silent reauthorization decision.
type OutcomeKind int

const (
	// OutcomeNeedsInteraction means the user agent is sent to the authorization view.
	OutcomeNeedsInteraction OutcomeKind = iota

	// OutcomeAutoAuthorized means the existing session and grant satisfy the request.
	OutcomeAutoAuthorized

	// OutcomeDenied means the request can't be satisfied without interaction and 'prompt=none' forbids it.
	OutcomeDenied
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNeedsInteraction:
		return "needs_interaction"
	case OutcomeAutoAuthorized:
		return "auto_authorized"
	case OutcomeDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// Outcome is the result of DecideSilentReauthorization. Err is only set when Kind is OutcomeDenied.
type Outcome struct {
	Kind OutcomeKind
	Err  *RFC6749Error
}

func (o Outcome) IsAutoAuthorized() bool {
	return o.Kind == OutcomeAutoAuthorized
}

func (o Outcome) IsDenied() bool {
	return o.Kind == OutcomeDenied
}

func (o Outcome) NeedsInteraction() bool {
	return o.Kind == OutcomeNeedsInteraction
}

func denied(err *RFC6749Error) Outcome {
	return Outcome{Kind: OutcomeDenied, Err: err}
}

// DecideSilentReauthorization decides whether the session and grant of rc satisfy the request without showing the
// user any interface. Only 'prompt=none' requests are eligible.
func DecideSilentReauthorization(rc *RequestContext, now time.Time) Outcome {
	if !rc.IsPromptNone() {
		return Outcome{Kind: OutcomeNeedsInteraction}
	}

	if !rc.HasSession() {
		return denied(ErrLoginRequired.WithDescription("invalid session, session is not registered"))
	}

	if !rc.Session().IsValid(rc.Request(), now) {
		return denied(ErrLoginRequired.WithDescription("invalid session, session is invalid"))
	}

	if !rc.HasGranted() {
		return denied(ErrInteractionRequired.WithDescription("authorization granted is nothing"))
	}

	granted := rc.Granted()

	if missing := granted.UnauthorizedScopes(rc.Scopes()); len(missing) != 0 {
		return denied(unauthorized("scopes", missing))
	}

	if missing := granted.UnauthorizedIDTokenClaims(rc.RequiredIDTokenClaims()); len(missing) != 0 {
		return denied(unauthorized("id_token claims", missing))
	}

	if missing := granted.UnauthorizedUserinfoClaims(rc.RequiredUserinfoClaims()); len(missing) != 0 {
		return denied(unauthorized("userinfo claims", missing))
	}

	if !granted.IsConsentedClaims(rc.RequiredConsentClaims()) {
		return denied(ErrInteractionRequired.WithDescription("authorization request contains unauthorized consent"))
	}

	return Outcome{Kind: OutcomeAutoAuthorized}
}

func unauthorized(kind string, missing Arguments) *RFC6749Error {
	return ErrInteractionRequired.WithDescription(fmt.Sprintf("authorization request contains unauthorized %s (%s)", kind, strings.Join(missing, ",")))
}
