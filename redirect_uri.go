// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"net"
	"net/url"
	"strings"

	"authelia.com/provider/authz/internal/consts"
)

// IsValidRedirectURI validates a redirect URI as specified in:
//
// * https://datatracker.ietf.org/doc/html/rfc6749#section-3.1.2
//   - The redirection endpoint URI MUST be an absolute URI as defined by [RFC3986] Section 4.3.
//   - The endpoint URI MUST NOT include a fragment component.
func IsValidRedirectURI(raw string) bool {
	uri, err := url.Parse(raw)
	if err != nil {
		return false
	}

	if uri.Scheme == "" || (uri.Host == "" && uri.Opaque == "" && uri.Path == "") {
		return false
	}

	return uri.Fragment == "" && !strings.Contains(raw, "#")
}

// IsRedirectURISecure is false for plain 'http' redirect URIs which do not point to the local machine.
func IsRedirectURISecure(raw string) bool {
	uri, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return uri.Scheme != consts.SchemeHTTP || IsLocalhost(uri)
}

// IsRedirectURIHTTPS is true for redirect URIs with the 'https' scheme.
func IsRedirectURIHTTPS(raw string) bool {
	uri, err := url.Parse(raw)

	return err == nil && uri.Scheme == consts.SchemeHTTPS
}

func IsLocalhost(uri *url.URL) bool {
	hostname := uri.Hostname()

	return strings.HasSuffix(hostname, ".localhost") || hostname == "localhost" || isLoopbackAddress(uri)
}

// IsMatchingRedirectURI matches a requested redirect URI against the registered redirect URIs using simple string
// comparison. A registered loopback URI matches the requested URI on any port:
//
// https://datatracker.ietf.org/doc/html/rfc8252#section-7.3
// Native apps that are able to open a port on the loopback network
// interface without needing special permissions (typically, those on
// desktop operating systems) can use the loopback interface to receive
// the OAuth redirect.
func IsMatchingRedirectURI(needle string, haystack []string) bool {
	requested, err := url.Parse(needle)
	if err != nil {
		return false
	}

	for _, raw := range haystack {
		if raw == needle {
			return true
		}

		if registered, err := url.Parse(raw); err == nil && isMatchingLoopbackURI(requested, registered) {
			return true
		}
	}

	return false
}

func isMatchingLoopbackURI(requested, registered *url.URL) bool {
	if requested.Scheme != consts.SchemeHTTP || registered.Scheme != consts.SchemeHTTP {
		return false
	}

	if !isLoopbackAddress(requested) || !isLoopbackAddress(registered) {
		return false
	}

	return registered.Hostname() == requested.Hostname() &&
		registered.Path == requested.Path &&
		registered.RawQuery == requested.RawQuery
}

func isLoopbackAddress(uri *url.URL) bool {
	if uri == nil {
		return false
	}

	ip := net.ParseIP(uri.Hostname())

	return ip != nil && ip.IsLoopback()
}
