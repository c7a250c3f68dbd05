// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"net/http"

	"authelia.com/provider/authz/internal/consts"
)

// Status tags the outcome of a Provider call.
type Status string

const (
	StatusOK                     Status = "ok"
	StatusOKSessionEnable        Status = "ok_session_enable"
	StatusOKAccountCreation      Status = "ok_account_creation"
	StatusAutoAuthorized         Status = "auto_authorized"
	StatusCreated                Status = "created"
	StatusRedirect               Status = "redirect"
	StatusBadRequest             Status = "bad_request"
	StatusRedirectableBadRequest Status = "redirectable_bad_request"
	StatusUnauthorized           Status = "unauthorized"
	StatusServerError            Status = "server_error"
)

// HTTPStatusCode returns the HTTP status code a response with the status is written with.
func (s Status) HTTPStatusCode() int {
	switch s {
	case StatusOK, StatusOKSessionEnable, StatusOKAccountCreation:
		return http.StatusOK
	case StatusCreated:
		return http.StatusCreated
	case StatusAutoAuthorized, StatusRedirect, StatusRedirectableBadRequest:
		return http.StatusFound
	case StatusBadRequest:
		return http.StatusBadRequest
	case StatusUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// IsOK is true for every successful status which does not redirect.
func (s Status) IsOK() bool {
	return s == StatusOK || s == StatusOKSessionEnable || s == StatusOKAccountCreation || s == StatusCreated
}

// IsError is true for every failure status.
func (s Status) IsError() bool {
	switch s {
	case StatusBadRequest, StatusRedirectableBadRequest, StatusUnauthorized, StatusServerError:
		return true
	default:
		return false
	}
}

// Result is the status tagged part common to every Provider response.
type Result struct {
	Status           Status `json:"-"`
	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
	Location         string `json:"location,omitempty"`
}

// GetResult returns r. It lets WriteAuthorizeResponse accept every response type.
func (r *Result) GetResult() *Result {
	return r
}

// RedirectURI returns the location the user agent is redirected to, if any.
func (r *Result) RedirectURI() string {
	return r.Location
}

// IsRedirect is true when the response is written as a redirect. Every successful response with a location and every
// redirectable error is a redirect, while the error view location of the other failures is only rendered in the body.
func (r *Result) IsRedirect() bool {
	if r.Location == "" {
		return false
	}

	return !r.Status.IsError() || r.Status == StatusRedirectableBadRequest
}

// ContentType returns the content type the response body is written with.
func (r *Result) ContentType() string {
	if r.IsRedirect() {
		return ""
	}

	return consts.ContentTypeApplicationJSON
}

// Responder is implemented by every Provider response.
type Responder interface {
	GetResult() *Result
}

// PushResponse is the result of Provider.Push.
type PushResponse struct {
	Result

	RequestURI string `json:"request_uri,omitempty"`
	ExpiresIn  int64  `json:"expires_in,omitempty"`
}

// RequestResponse is the result of Provider.Request.
type RequestResponse struct {
	Result

	RequestID string                 `json:"id,omitempty"`
	TenantID  string                 `json:"tenant_id,omitempty"`
	FrontURL  string                 `json:"front_url,omitempty"`
	Request   *AuthorizationRequest  `json:"-"`
	Response  *AuthorizationResponse `json:"-"`
}

// ViewData is the data rendered by the authorization view.
type ViewData struct {
	ClientID             string               `json:"client_id"`
	ClientName           string               `json:"client_name,omitempty"`
	ClientURI            string               `json:"client_uri,omitempty"`
	LogoURI              string               `json:"logo_uri,omitempty"`
	TosURI               string               `json:"tos_uri,omitempty"`
	PolicyURI            string               `json:"policy_uri,omitempty"`
	Scopes               Arguments            `json:"scopes"`
	IDTokenClaims        Arguments            `json:"id_token_claims,omitempty"`
	UserinfoClaims       Arguments            `json:"userinfo_claims,omitempty"`
	AuthorizationDetails AuthorizationDetails `json:"authorization_details,omitempty"`
	Prompt               Prompt               `json:"prompt,omitempty"`
	UILocales            Arguments            `json:"ui_locales,omitempty"`
	SessionEnabled       bool                 `json:"session_enabled"`
	CustomParams         map[string]string    `json:"custom_params,omitempty"`
}

// ViewDataResponse is the result of Provider.GetViewData.
type ViewDataResponse struct {
	Result

	*ViewData
}

// GetResponse is the result of Provider.Get.
type GetResponse struct {
	Result

	Request *AuthorizationRequest `json:"request,omitempty"`
}

// AuthorizeResponse is the result of Provider.Authorize and Provider.AuthorizeWithSession.
type AuthorizeResponse struct {
	Result

	Response *AuthorizationResponse `json:"-"`
}

// DenyResponse is the result of Provider.Deny.
type DenyResponse struct {
	Result

	Response *AuthorizationErrorResponse `json:"-"`
}

// LogoutResponse is the result of Provider.Logout.
type LogoutResponse struct {
	Result
}
