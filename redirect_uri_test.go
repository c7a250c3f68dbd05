// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRedirectURI(t *testing.T) {
	testCases := []struct {
		name     string
		have     string
		expected bool
	}{
		{"ShouldAllowHTTPS", "https://client.example.com/cb", true},
		{"ShouldAllowQuery", "https://client.example.com/cb?tenant=a", true},
		{"ShouldAllowCustomScheme", "com.example.app:/cb", true},
		{"ShouldRejectRelative", "/cb", false},
		{"ShouldRejectFragment", "https://client.example.com/cb#frag", false},
		{"ShouldRejectEmptyFragment", "https://client.example.com/cb#", false},
		{"ShouldRejectInvalid", "https://client example.com/%zz", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsValidRedirectURI(tc.have))
		})
	}
}

func TestIsRedirectURISecure(t *testing.T) {
	assert.True(t, IsRedirectURISecure("https://client.example.com/cb"))
	assert.True(t, IsRedirectURISecure("http://localhost:8080/cb"))
	assert.True(t, IsRedirectURISecure("http://app.localhost/cb"))
	assert.True(t, IsRedirectURISecure("http://127.0.0.1:4000/cb"))
	assert.True(t, IsRedirectURISecure("http://[::1]:4000/cb"))
	assert.True(t, IsRedirectURISecure("com.example.app:/cb"))
	assert.False(t, IsRedirectURISecure("http://client.example.com/cb"))
}

func TestIsMatchingRedirectURI(t *testing.T) {
	testCases := []struct {
		name       string
		requested  string
		registered []string
		expected   bool
	}{
		{"ShouldMatchExactly", "https://client.example.com/cb", []string{"https://other.example.com", "https://client.example.com/cb"}, true},
		{"ShouldNotMatchAPrefix", "https://client.example.com/cb/extra", []string{"https://client.example.com/cb"}, false},
		{"ShouldNotMatchADifferentQuery", "https://client.example.com/cb?a=1", []string{"https://client.example.com/cb"}, false},
		{"ShouldMatchLoopbackOnAnyPort", "http://127.0.0.1:53012/cb", []string{"http://127.0.0.1/cb"}, true},
		{"ShouldMatchIPv6LoopbackOnAnyPort", "http://[::1]:53012/cb", []string{"http://[::1]:80/cb"}, true},
		{"ShouldNotMatchLoopbackOverHTTPS", "https://127.0.0.1:53012/cb", []string{"https://127.0.0.1/cb"}, false},
		{"ShouldNotMatchDifferentLoopbacks", "http://127.0.0.2:53012/cb", []string{"http://127.0.0.1/cb"}, false},
		{"ShouldNotMatchDifferentLoopbackPaths", "http://127.0.0.1:53012/other", []string{"http://127.0.0.1/cb"}, false},
		{"ShouldNotMatchLocalhostOnAnyPort", "http://localhost:53012/cb", []string{"http://localhost/cb"}, false},
		{"ShouldNotMatchNothing", "https://client.example.com/cb", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsMatchingRedirectURI(tc.requested, tc.registered))
		})
	}
}
