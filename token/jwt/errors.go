// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package jwt

import (
	"errors"
)

var (
	ErrNoKeys           = errors.New("the JSON Web Key Set does not contain any key")
	ErrUnsupportedAlg   = errors.New("the signing algorithm is not supported")
	ErrNotSigned        = errors.New("the token is not a compact JSON Web Signature")
	ErrSignatureInvalid = errors.New("the token signature is invalid")
	ErrUnexpectedStatus = errors.New("the JSON Web Key Set endpoint returned an unexpected status")
)

// JWKLookupError is returned when a key matching the lookup criteria is not found.
type JWKLookupError struct {
	Description string
}

func (e *JWKLookupError) Error() string {
	return "Error occurred retrieving the JSON Web Key. " + e.Description
}
