// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package jwt

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-jose/go-jose/v4"
	"github.com/hashicorp/go-retryablehttp"
)

// FetchJWKS retrieves a JSON Web Key Set from uri using client.
func FetchJWKS(ctx context.Context, client *retryablehttp.Client, uri string) (jwks *jose.JSONWebKeySet, err error) {
	if client == nil {
		client = retryablehttp.NewClient()
		client.Logger = nil
	}

	var req *retryablehttp.Request

	if req, err = retryablehttp.NewRequestWithContext(ctx, http.MethodGet, uri, nil); err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	var resp *http.Response

	if resp, err = client.Do(req); err != nil {
		return nil, fmt.Errorf("error fetching the JSON Web Key Set from '%s': %w", uri, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	jwks = &jose.JSONWebKeySet{}

	if err = json.NewDecoder(resp.Body).Decode(jwks); err != nil {
		return nil, fmt.Errorf("error decoding the JSON Web Key Set from '%s': %w", uri, err)
	}

	if len(jwks.Keys) == 0 {
		return nil, ErrNoKeys
	}

	return jwks, nil
}
