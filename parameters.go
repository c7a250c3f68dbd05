// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"net/url"
	"strings"
)

// Parameter is a single response parameter.
type Parameter struct {
	Key   string
	Value string
}

// Parameters are response parameters which encode in insertion order.
type Parameters []Parameter

// Add returns p with the parameter appended. Empty values are skipped.
func (p Parameters) Add(key, value string) Parameters {
	if value == "" {
		return p
	}

	return append(p, Parameter{Key: key, Value: value})
}

// Get returns the first value of key.
func (p Parameters) Get(key string) string {
	for _, param := range p {
		if param.Key == key {
			return param.Value
		}
	}

	return ""
}

func (p Parameters) Has(key string) bool {
	for _, param := range p {
		if param.Key == key {
			return true
		}
	}

	return false
}

// Keys returns the parameter keys in insertion order.
func (p Parameters) Keys() []string {
	keys := make([]string, len(p))

	for i, param := range p {
		keys[i] = param.Key
	}

	return keys
}

// Values returns the parameters as url.Values.
func (p Parameters) Values() url.Values {
	values := make(url.Values, len(p))

	for _, param := range p {
		values.Add(param.Key, param.Value)
	}

	return values
}

// Encode returns the 'application/x-www-form-urlencoded' form of the parameters.
func (p Parameters) Encode() string {
	var b strings.Builder

	for i, param := range p {
		if i != 0 {
			b.WriteByte('&')
		}

		b.WriteString(url.QueryEscape(param.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(param.Value))
	}

	return b.String()
}

// clone returns a copy of p which can be appended to without modifying p.
func (p Parameters) clone() Parameters {
	return append(Parameters(nil), p...)
}

// redirectTo joins the redirect URI, placement and encoded parameters. The query placement extends a redirect URI
// which already carries a query.
func redirectTo(redirectURI string, value ResponseModeValue, params Parameters) string {
	delimiter := string(value)

	if value == ResponseModeValueQuery && strings.Contains(redirectURI, "?") {
		delimiter = "&"
	}

	return redirectURI + delimiter + params.Encode()
}
