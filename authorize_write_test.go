// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"authelia.com/provider/authz"
	"authelia.com/provider/authz/internal/consts"
)

func TestWriteAuthorizeResponse(t *testing.T) {
	testCases := []struct {
		name     string
		have     authz.Responder
		status   int
		location string
		body     string
	}{
		{
			name:     "ShouldWriteAuthorizedRedirect",
			have:     &authz.AuthorizeResponse{Result: authz.Result{Status: authz.StatusOK, Location: "https://client.example.com/cb?code=abc"}},
			status:   http.StatusFound,
			location: "https://client.example.com/cb?code=abc",
		},
		{
			name:     "ShouldWriteAutoAuthorizedRedirect",
			have:     &authz.RequestResponse{Result: authz.Result{Status: authz.StatusAutoAuthorized, Location: "https://client.example.com/cb?code=abc"}},
			status:   http.StatusFound,
			location: "https://client.example.com/cb?code=abc",
		},
		{
			name:     "ShouldWriteRedirectableBadRequest",
			have:     &authz.RequestResponse{Result: authz.Result{Status: authz.StatusRedirectableBadRequest, Error: "login_required", Location: "https://client.example.com/cb?error=login_required"}},
			status:   http.StatusFound,
			location: "https://client.example.com/cb?error=login_required",
		},
		{
			name:   "ShouldWriteBadRequest",
			have:   &authz.RequestResponse{Result: authz.Result{Status: authz.StatusBadRequest, Error: "invalid_request", ErrorDescription: "The request is missing a required parameter."}},
			status: http.StatusBadRequest,
			body:   `{"error":"invalid_request","error_description":"The request is missing a required parameter."}`,
		},
		{
			name:   "ShouldWriteUnauthorized",
			have:   &authz.PushResponse{Result: authz.Result{Status: authz.StatusUnauthorized, Error: "invalid_client"}},
			status: http.StatusUnauthorized,
			body:   `{"error":"invalid_client"}`,
		},
		{
			name:   "ShouldWriteCreated",
			have:   &authz.PushResponse{Result: authz.Result{Status: authz.StatusCreated}, RequestURI: "urn:ietf:params:oauth:request_uri:abc", ExpiresIn: 90},
			status: http.StatusCreated,
			body:   `{"request_uri":"urn:ietf:params:oauth:request_uri:abc","expires_in":90}`,
		},
		{
			name:   "ShouldWriteRequestRegistered",
			have:   &authz.RequestResponse{Result: authz.Result{Status: authz.StatusOKSessionEnable}, RequestID: "abc", TenantID: "tenant", FrontURL: "https://front.example.com/signin?id=abc&tenant_id=tenant"},
			status: http.StatusOK,
			body:   `{"id":"abc","tenant_id":"tenant","front_url":"https://front.example.com/signin?id=abc&tenant_id=tenant"}`,
		},
		{
			name:   "ShouldWriteBadRequestWithErrorView",
			have:   &authz.GetResponse{Result: authz.Result{Status: authz.StatusBadRequest, Error: "invalid_request", Location: "https://front.example.com/error?error=invalid_request"}},
			status: http.StatusBadRequest,
			body:   `{"error":"invalid_request","location":"https://front.example.com/error?error=invalid_request"}`,
		},
		{
			name:   "ShouldWriteServerError",
			have:   &authz.AuthorizeResponse{Result: authz.Result{Status: authz.StatusServerError, Error: "server_error"}},
			status: http.StatusInternalServerError,
			body:   `{"error":"server_error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rw := httptest.NewRecorder()

			authz.WriteAuthorizeResponse(rw, tc.have)

			assert.Equal(t, tc.status, rw.Code)
			assert.Equal(t, consts.CacheControlNoStore, rw.Header().Get(consts.HeaderCacheControl))
			assert.Equal(t, consts.PragmaNoCache, rw.Header().Get(consts.HeaderPragma))
			assert.Equal(t, tc.location, rw.Header().Get(consts.HeaderLocation))

			if tc.body == "" {
				assert.Empty(t, rw.Body.String())
			} else {
				assert.Equal(t, consts.ContentTypeApplicationJSON, rw.Header().Get(consts.HeaderContentType))
				assert.JSONEq(t, tc.body, rw.Body.String())
			}
		})
	}
}

func TestStatusHTTPStatusCode(t *testing.T) {
	testCases := []struct {
		status   authz.Status
		expected int
		ok       bool
		error    bool
	}{
		{authz.StatusOK, http.StatusOK, true, false},
		{authz.StatusOKSessionEnable, http.StatusOK, true, false},
		{authz.StatusOKAccountCreation, http.StatusOK, true, false},
		{authz.StatusCreated, http.StatusCreated, true, false},
		{authz.StatusAutoAuthorized, http.StatusFound, false, false},
		{authz.StatusRedirect, http.StatusFound, false, false},
		{authz.StatusRedirectableBadRequest, http.StatusFound, false, true},
		{authz.StatusBadRequest, http.StatusBadRequest, false, true},
		{authz.StatusUnauthorized, http.StatusUnauthorized, false, true},
		{authz.StatusServerError, http.StatusInternalServerError, false, true},
	}

	for _, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.HTTPStatusCode())
			assert.Equal(t, tc.ok, tc.status.IsOK())
			assert.Equal(t, tc.error, tc.status.IsError())
		})
	}
}
