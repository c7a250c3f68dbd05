// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package integration_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"authelia.com/provider/authz"
)

const userAgentCookieName = "ua"

// userAgentID identifies the user agent by a cookie, issuing the cookie on the first visit.
func userAgentID(rw http.ResponseWriter, req *http.Request) string {
	if cookie, err := req.Cookie(userAgentCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()

	http.SetCookie(rw, &http.Cookie{Name: userAgentCookieName, Value: id, Path: "/", HttpOnly: true})

	return id
}

func pushEndpointHandler(t *testing.T, provider *authz.Provider) func(rw http.ResponseWriter, req *http.Request) {
	return func(rw http.ResponseWriter, req *http.Request) {
		require.NoError(t, req.ParseForm())

		response := provider.Push(req.Context(), &authz.PushRequest{
			TenantID:      mux.Vars(req)["tenant"],
			Params:        req.PostForm,
			Authorization: req.Header.Get("Authorization"),
		})

		if response.Status.IsError() {
			t.Logf("Push request failed because: %s %s", response.Error, response.ErrorDescription)
		}

		authz.WriteAuthorizeResponse(rw, response)
	}
}

func authEndpointHandler(t *testing.T, provider *authz.Provider) func(rw http.ResponseWriter, req *http.Request) {
	return func(rw http.ResponseWriter, req *http.Request) {
		response := provider.Request(req.Context(), &authz.RequestInput{
			TenantID:    mux.Vars(req)["tenant"],
			UserAgentID: userAgentID(rw, req),
			Params:      req.URL.Query(),
		})

		if response.Status.IsError() {
			t.Logf("Authorization request failed because: %s %s", response.Error, response.ErrorDescription)
		}

		authz.WriteAuthorizeResponse(rw, response)
	}
}

func viewEndpointHandler(_ *testing.T, provider *authz.Provider) func(rw http.ResponseWriter, req *http.Request) {
	return func(rw http.ResponseWriter, req *http.Request) {
		vars := mux.Vars(req)

		authz.WriteAuthorizeResponse(rw, provider.GetViewData(req.Context(), vars["tenant"], vars["id"]))
	}
}

func consentEndpointHandler(t *testing.T, provider *authz.Provider) func(rw http.ResponseWriter, req *http.Request) {
	return func(rw http.ResponseWriter, req *http.Request) {
		require.NoError(t, req.ParseForm())

		vars := mux.Vars(req)

		response := provider.Authorize(req.Context(), &authz.AuthorizeInput{
			TenantID:    vars["tenant"],
			RequestID:   vars["id"],
			UserAgentID: userAgentID(rw, req),
			User: &authz.User{
				Sub:           req.PostForm.Get("sub"),
				Name:          "Peter",
				Email:         "peter@example.com",
				EmailVerified: true,
			},
			Authentication: authz.Authentication{
				Time:    time.Now(),
				Methods: authz.Arguments{"pwd"},
			},
		})

		if response.Status.IsError() {
			t.Logf("Authorize failed because: %s %s", response.Error, response.ErrorDescription)
		}

		authz.WriteAuthorizeResponse(rw, response)
	}
}

func denyEndpointHandler(t *testing.T, provider *authz.Provider) func(rw http.ResponseWriter, req *http.Request) {
	return func(rw http.ResponseWriter, req *http.Request) {
		require.NoError(t, req.ParseForm())

		vars := mux.Vars(req)

		authz.WriteAuthorizeResponse(rw, provider.Deny(req.Context(), &authz.DenyInput{
			TenantID:    vars["tenant"],
			RequestID:   vars["id"],
			Reason:      authz.DenyReason(req.PostForm.Get("reason")),
			Description: req.PostForm.Get("description"),
		}))
	}
}

func logoutEndpointHandler(_ *testing.T, provider *authz.Provider) func(rw http.ResponseWriter, req *http.Request) {
	return func(rw http.ResponseWriter, req *http.Request) {
		authz.WriteAuthorizeResponse(rw, provider.Logout(req.Context(), &authz.LogoutInput{
			TenantID:    mux.Vars(req)["tenant"],
			UserAgentID: userAgentID(rw, req),
			Params:      req.URL.Query(),
		}))
	}
}
