// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package errorsx

import (
	stderr "errors"

	"github.com/pkg/errors"
)

// StackTracer is implemented by errors which carry a stack trace.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

// StatusCodeCarrier can be implemented by an error to support setting status codes in the error itself.
type StatusCodeCarrier interface {
	// StatusCode returns the status code of this error.
	StatusCode() int
}

// DebugCarrier can be implemented by an error to support adding debug information.
type DebugCarrier interface {
	// Debug returns debugging information for the error, if applicable.
	Debug() string
}

// ReasonCarrier can be implemented by an error to support setting a reason.
type ReasonCarrier interface {
	// Reason returns the reason for the error, if applicable.
	Reason() string
}

// RFCError is implemented by errors which render an RFC6749 style description.
type RFCError interface {
	GetDescription() string
	Error() string
	Reason() string
}

// WithStack adds a stack trace to err if err does not already carry one.
func WithStack(err error) error {
	if err == nil {
		return nil
	}

	if st := StackTracer(nil); stderr.As(err, &st) {
		return err
	}

	return errors.WithStack(err)
}
