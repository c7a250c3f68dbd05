// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"context"
	"crypto/subtle"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"authelia.com/provider/authz/internal/consts"
	"authelia.com/provider/authz/internal/errorsx"
)

const DefaultBCryptWorkFactor = 12

// ErrClientSecretMismatch is returned when a presented client secret does not match.
var ErrClientSecretMismatch = errors.New("the provided client secret did not match the registered client secret")

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// ClientSecret verifies a presented client secret.
type ClientSecret interface {
	Compare(ctx context.Context, secret []byte) (err error)
}

// NewClientSecret returns the ClientSecret of a stored value, which is either a bcrypt hash or a plain text secret.
func NewClientSecret(value string) ClientSecret {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(value, prefix) {
			return NewBCryptClientSecret(value)
		}
	}

	return &PlainTextClientSecret{value: []byte(value)}
}

// NewBCryptClientSecret returns a new BCryptClientSecret given a hash.
func NewBCryptClientSecret(hash string) *BCryptClientSecret {
	return &BCryptClientSecret{value: []byte(hash)}
}

// NewBCryptClientSecretPlain returns a new BCryptClientSecret given a plaintext secret.
func NewBCryptClientSecretPlain(rawSecret string, cost int) (secret *BCryptClientSecret, err error) {
	if cost == 0 {
		cost = DefaultBCryptWorkFactor
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(rawSecret), cost)
	if err != nil {
		return nil, errorsx.WithStack(err)
	}

	return &BCryptClientSecret{value: hashed}, nil
}

type BCryptClientSecret struct {
	value []byte
}

// Hash returns the stored hash.
func (s *BCryptClientSecret) Hash() string {
	return string(s.value)
}

func (s *BCryptClientSecret) Compare(_ context.Context, secret []byte) (err error) {
	if err = bcrypt.CompareHashAndPassword(s.value, secret); err != nil {
		return errorsx.WithStack(ErrClientSecretMismatch)
	}

	return nil
}

type PlainTextClientSecret struct {
	value []byte
}

func (s *PlainTextClientSecret) Compare(_ context.Context, secret []byte) (err error) {
	if subtle.ConstantTimeCompare(s.value, secret) == 0 {
		return errorsx.WithStack(ErrClientSecretMismatch)
	}

	return nil
}

// ClientCredentials are the credentials presented by a client.
type ClientCredentials struct {
	ClientID     string
	ClientSecret string
	Method       string
}

// ClientCredentialsFromRequest extracts the 'client_secret_basic' or 'client_secret_post' credentials. The
// Authorization header takes precedence over the form.
func ClientCredentialsFromRequest(authorization string, form url.Values) (creds ClientCredentials, err error) {
	if authorization != "" {
		r := &http.Request{Header: http.Header{consts.HeaderAuthorization: []string{authorization}}}

		id, secret, ok := r.BasicAuth()
		if !ok {
			return creds, errorsx.WithStack(ErrInvalidClient.WithHint("The client credentials in the HTTP authorization header could not be parsed."))
		}

		if creds.ClientID, err = url.QueryUnescape(id); err != nil {
			return creds, errorsx.WithStack(ErrInvalidClient.WithHint("The client id in the HTTP authorization header could not be decoded from 'application/x-www-form-urlencoded'.").WithWrap(err))
		}

		if creds.ClientSecret, err = url.QueryUnescape(secret); err != nil {
			return creds, errorsx.WithStack(ErrInvalidClient.WithHint("The client secret in the HTTP authorization header could not be decoded from 'application/x-www-form-urlencoded'.").WithWrap(err))
		}

		if id := form.Get(consts.FormParameterClientID); id != "" && id != creds.ClientID {
			return creds, errorsx.WithStack(ErrInvalidClient.WithHint("The client id in the HTTP authorization header does not match the 'client_id' parameter."))
		}

		creds.Method = consts.ClientAuthMethodClientSecretBasic

		return creds, nil
	}

	creds.ClientID = form.Get(consts.FormParameterClientID)
	creds.ClientSecret = form.Get(consts.FormParameterClientSecret)

	if creds.ClientSecret == "" {
		creds.Method = consts.ClientAuthMethodNone
	} else {
		creds.Method = consts.ClientAuthMethodClientSecretPost
	}

	return creds, nil
}

// AuthenticateClient verifies creds against the registration of client.
func AuthenticateClient(ctx context.Context, client *ClientConfiguration, creds ClientCredentials) (err error) {
	method := client.TokenEndpointAuthMethod
	if method == "" {
		method = consts.ClientAuthMethodClientSecretBasic
	}

	if method == consts.ClientAuthMethodNone {
		if creds.Method != consts.ClientAuthMethodNone {
			return errorsx.WithStack(ErrInvalidClient.WithHintf("The client is registered with the '%s' authentication method but presented a client secret.", method))
		}

		return nil
	}

	if creds.Method != method {
		return errorsx.WithStack(ErrInvalidClient.WithHintf("The client is registered with the '%s' authentication method but authenticated with '%s'.", method, creds.Method))
	}

	if client.ClientSecret == "" {
		return errorsx.WithStack(ErrInvalidClient.WithHint("The client has no registered client secret."))
	}

	if err = NewClientSecret(client.ClientSecret).Compare(ctx, []byte(creds.ClientSecret)); err != nil {
		return errorsx.WithStack(ErrInvalidClient.WithWrap(err).WithDebug(err.Error()))
	}

	return nil
}
