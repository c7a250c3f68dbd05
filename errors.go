// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"encoding/json"
	stderr "errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"

	"authelia.com/provider/authz/i18n"
	"authelia.com/provider/authz/internal/consts"
	"authelia.com/provider/authz/internal/errorsx"
)

// Error codes of the authorization endpoint. The descriptions are the ones given by RFC6749, OpenID Connect Core 1.0,
// JARM and RFC9396 for the same codes.
const (
	errInvalidRequestName          = "invalid_request"
	errInvalidClientName           = "invalid_client"
	errUnauthorizedClientName      = "unauthorized_client"
	errAccessDeniedName            = "access_denied"
	errUnsupportedResponseTypeName = "unsupported_response_type"
	errUnsupportedResponseModeName = "unsupported_response_mode"
	errInvalidScopeName            = "invalid_scope"
	errServerErrorName             = "server_error"
	errLoginRequiredName           = "login_required"
	errInteractionRequiredName     = "interaction_required"
	errConsentRequiredName         = "consent_required"
	errInvalidRequestURIName       = "invalid_request_uri"
	errInvalidRequestObjectName    = "invalid_request_object"
	errInvalidAuthDetailsName      = "invalid_authorization_details"
	errMisconfigurationName        = "misconfiguration"
	errNotFoundName                = "not_found"
	errUnknownErrorName            = "error"
)

func newSentinel(name string, code int, description string) *RFC6749Error {
	return &RFC6749Error{ErrorField: name, DescriptionField: description, CodeField: code}
}

var (
	ErrInvalidRequest = newSentinel(errInvalidRequestName, http.StatusBadRequest,
		"The request is missing a required parameter, includes an invalid parameter value, includes a parameter more than once, or is otherwise malformed.")
	ErrInvalidClient = newSentinel(errInvalidClientName, http.StatusUnauthorized,
		"Client authentication failed (e.g., unknown client, no client authentication included, or unsupported authentication method).")
	ErrUnauthorizedClient = newSentinel(errUnauthorizedClientName, http.StatusBadRequest,
		"The client is not authorized to request an authorization code using this method.")
	ErrAccessDenied = newSentinel(errAccessDeniedName, http.StatusForbidden,
		"The resource owner or authorization server denied the request.")
	ErrUnsupportedResponseType = newSentinel(errUnsupportedResponseTypeName, http.StatusBadRequest,
		"The authorization server does not support obtaining a response using this response type.")
	ErrUnsupportedResponseMode = newSentinel(errUnsupportedResponseModeName, http.StatusBadRequest,
		"The authorization server does not support obtaining a response using this response mode.")
	ErrInvalidScope = newSentinel(errInvalidScopeName, http.StatusBadRequest,
		"The requested scope is invalid, unknown, or malformed.")
	ErrServerError = newSentinel(errServerErrorName, http.StatusInternalServerError,
		"The authorization server encountered an unexpected condition that prevented it from fulfilling the request.")

	// Silent reauthorization failures. Only these and access_denied are used as deny reasons.
	ErrLoginRequired = newSentinel(errLoginRequiredName, http.StatusBadRequest,
		"The Authorization Server requires End-User authentication.")
	ErrInteractionRequired = newSentinel(errInteractionRequiredName, http.StatusBadRequest,
		"The Authorization Server requires End-User interaction of some form to proceed.")
	ErrConsentRequired = newSentinel(errConsentRequiredName, http.StatusBadRequest,
		"The Authorization Server requires End-User consent.")

	ErrInvalidRequestURI = newSentinel(errInvalidRequestURIName, http.StatusBadRequest,
		"The request_uri in the Authorization Request returns an error or contains invalid data.")
	ErrInvalidRequestObject = newSentinel(errInvalidRequestObjectName, http.StatusBadRequest,
		"The request parameter contains an invalid Request Object.")
	ErrInvalidAuthDetails = newSentinel(errInvalidAuthDetailsName, http.StatusBadRequest,
		"The authorization details contains an unknown authorization details type value, is an object of known type but containing unknown fields, contains fields of the wrong type for the authorization details type, contains fields with invalid values for the authorization details type, or is missing required fields for the authorization details type.")

	ErrMisconfiguration = newSentinel(errMisconfigurationName, http.StatusInternalServerError,
		"The request failed because of an internal error that is probably caused by misconfiguration.")
	ErrNotFound = newSentinel(errNotFoundName, http.StatusNotFound,
		"Could not find the requested resource(s).")

	// ErrServerConfigurationNotFound is returned when the tenant has no authorization server configuration.
	ErrServerConfigurationNotFound = errors.New("authorization server configuration not found")

	// ErrClientConfigurationNotFound is returned when the client is not registered within the tenant.
	ErrClientConfigurationNotFound = errors.New("client configuration not found")
)

// RFC6749Error is an authorization endpoint error. Every With method returns a modified copy, so the sentinels are
// never mutated.
type RFC6749Error struct {
	ErrorField       string
	DescriptionField string
	HintField        string
	CodeField        int
	DebugField       string
	cause            error
	exposeDebug      bool

	descriptionIDField string
	hintIDField        string
	hintArgs           []any
	catalog            i18n.MessageCatalog
	lang               language.Tag
}

var (
	_ errorsx.DebugCarrier      = new(RFC6749Error)
	_ errorsx.ReasonCarrier     = new(RFC6749Error)
	_ errorsx.StatusCodeCarrier = new(RFC6749Error)
	_ errorsx.RFCError          = new(RFC6749Error)
)

// NewRFC6749Error returns an error with an arbitrary error code, for example a caller supplied deny reason.
func NewRFC6749Error(name, description string) *RFC6749Error {
	return &RFC6749Error{
		ErrorField:         name,
		DescriptionField:   description,
		descriptionIDField: name,
		CodeField:          http.StatusBadRequest,
	}
}

func ErrorToRFC6749Error(err error) *RFC6749Error {
	var e *RFC6749Error

	if errors.As(err, &e) {
		return e
	}

	return &RFC6749Error{
		ErrorField:       errUnknownErrorName,
		DescriptionField: "The error is unrecognizable",
		DebugField:       err.Error(),
		CodeField:        http.StatusInternalServerError,
		cause:            err,
	}
}

func ErrorToRFC6749ErrorFallback(err error, fallback *RFC6749Error) *RFC6749Error {
	var e *RFC6749Error
	if errors.As(err, &e) {
		return e
	}

	return fallback.WithWrap(err).WithDebug(err.Error())
}

func (e *RFC6749Error) StackTrace() (trace errors.StackTrace) {
	if e.cause == e || e.cause == nil {
		return
	}

	if st := errorsx.StackTracer(nil); stderr.As(e.cause, &st) {
		trace = st.StackTrace()
	}

	return
}

func (e RFC6749Error) Unwrap() error {
	return e.cause
}

func (e RFC6749Error) WithWrap(cause error) *RFC6749Error {
	e.cause = cause

	return &e
}

func (e RFC6749Error) Is(err error) bool {
	switch te := err.(type) {
	case RFC6749Error:
		return e.ErrorField == te.ErrorField &&
			e.CodeField == te.CodeField
	case *RFC6749Error:
		return e.ErrorField == te.ErrorField &&
			e.CodeField == te.CodeField
	}
	return false
}

func (e RFC6749Error) Error() string {
	return e.ErrorField
}

func (e *RFC6749Error) Reason() string {
	return e.HintField
}

func (e *RFC6749Error) StatusCode() int {
	return e.CodeField
}

func (e *RFC6749Error) WithHintf(hint string, args ...any) *RFC6749Error {
	err := *e
	if err.hintIDField == "" {
		err.hintIDField = hint
	}

	err.hintArgs = args
	err.HintField = fmt.Sprintf(hint, args...)
	return &err
}

func (e *RFC6749Error) WithHint(hint string) *RFC6749Error {
	err := *e
	if err.hintIDField == "" {
		err.hintIDField = hint
	}

	err.HintField = hint
	return &err
}

func (e *RFC6749Error) Debug() string {
	return e.DebugField
}

func (e *RFC6749Error) WithDebug(debug string) *RFC6749Error {
	err := *e
	err.DebugField = debug

	return &err
}

// WithDescription replaces the description. The replacement is itself the message ID used for localization.
func (e *RFC6749Error) WithDescription(description string) *RFC6749Error {
	err := *e
	err.DescriptionField = description
	err.descriptionIDField = description
	err.HintField = ""
	err.hintIDField = ""
	return &err
}

func (e *RFC6749Error) WithLocalizer(catalog i18n.MessageCatalog, lang language.Tag) *RFC6749Error {
	err := *e
	err.catalog = catalog
	err.lang = lang
	return &err
}

func (e *RFC6749Error) WithExposeDebug(exposeDebug bool) *RFC6749Error {
	err := *e
	err.exposeDebug = exposeDebug

	return &err
}

func (e *RFC6749Error) GetDescription() string {
	id := e.descriptionIDField
	if id == "" {
		id = e.ErrorField
	}

	description := i18n.GetMessageOrDefault(e.catalog, id, e.lang, e.DescriptionField)
	hint := e.computeHintField()

	if hint != "" {
		description += " " + hint
	}

	if e.exposeDebug && e.DebugField != "" {
		description += " " + e.DebugField
	}

	return strings.ReplaceAll(description, "\"", "'")
}

func (e RFC6749Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name        string `json:"error"`
		Description string `json:"error_description"`
	}{e.ErrorField, e.GetDescription()})
}

func (e *RFC6749Error) ToValues() url.Values {
	values := url.Values{}
	values.Set(consts.AuthorizeResponseError, e.ErrorField)
	values.Set(consts.AuthorizeResponseErrorDescription, e.GetDescription())

	return values
}

func (e *RFC6749Error) computeHintField() string {
	if e.hintIDField == "" {
		return e.HintField
	}

	return i18n.GetMessageOrDefault(e.catalog, e.hintIDField, e.lang, e.HintField, e.hintArgs...)
}

// RedirectableError is a protocol error which is delivered to the client through its redirect URI.
type RedirectableError struct {
	Err     *RFC6749Error
	Context *RequestContext
}

// NewRedirectableError wraps err so it is rendered as an error redirect for rc.
func NewRedirectableError(err *RFC6749Error, rc *RequestContext) *RedirectableError {
	return &RedirectableError{Err: err, Context: rc}
}

func (e *RedirectableError) Error() string {
	return e.Err.Error()
}

func (e *RedirectableError) Unwrap() error {
	return e.Err
}

// ConfigurationError indicates a deployment misconfiguration such as an unusable JSON Web Key Set. It is never
// delivered to the client through a redirect.
type ConfigurationError struct {
	Description string
	cause       error
}

// NewConfigurationError returns a ConfigurationError wrapping cause.
func NewConfigurationError(description string, cause error) *ConfigurationError {
	return &ConfigurationError{Description: description, cause: errorsx.WithStack(cause)}
}

func (e *ConfigurationError) Error() string {
	if e.cause == nil {
		return e.Description
	}

	return e.Description + ": " + e.cause.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.cause
}
