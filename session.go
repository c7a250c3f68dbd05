// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"strings"
	"time"

	"authelia.com/provider/authz/internal/consts"
)

const loginHintSubjectPrefix = "sub:"

// User is the resource owner an authorization is issued for.
type User struct {
	Sub               string         `json:"sub" yaml:"sub"`
	Name              string         `json:"name,omitempty" yaml:"name,omitempty"`
	PreferredUsername string         `json:"preferred_username,omitempty" yaml:"preferred_username,omitempty"`
	Email             string         `json:"email,omitempty" yaml:"email,omitempty"`
	EmailVerified     bool           `json:"email_verified,omitempty" yaml:"email_verified,omitempty"`
	PhoneNumber       string         `json:"phone_number,omitempty" yaml:"phone_number,omitempty"`
	Claims            map[string]any `json:"claims,omitempty" yaml:"claims,omitempty"`
}

func (u *User) Exists() bool {
	return u != nil && u.Sub != ""
}

// Claim returns the value of a standard or custom claim.
func (u *User) Claim(name string) (value any, ok bool) {
	switch name {
	case consts.ClaimSubject:
		return u.Sub, u.Sub != ""
	case consts.ClaimFullName:
		return u.Name, u.Name != ""
	case consts.ClaimPreferredUsername:
		return u.PreferredUsername, u.PreferredUsername != ""
	case consts.ClaimEmail:
		return u.Email, u.Email != ""
	case consts.ClaimEmailVerified:
		return u.EmailVerified, u.Email != ""
	case consts.ClaimPhoneNumber:
		return u.PhoneNumber, u.PhoneNumber != ""
	}

	value, ok = u.Claims[name]

	return value, ok
}

// Authentication is the record of how the user authenticated.
type Authentication struct {
	Time    time.Time `json:"time" yaml:"time"`
	ACR     string    `json:"acr,omitempty" yaml:"acr,omitempty"`
	Methods Arguments `json:"methods,omitempty" yaml:"methods,omitempty"`
}

// SessionKey identifies the session of a user agent with a client of a tenant. The UserAgentID is chosen by the
// caller, typically from a cookie, and a key without one never has a session.
type SessionKey struct {
	TenantID    string `json:"tenant_id" yaml:"tenant_id"`
	ClientID    string `json:"client_id" yaml:"client_id"`
	UserAgentID string `json:"user_agent_id" yaml:"user_agent_id"`
}

func (k SessionKey) String() string {
	return k.TenantID + ":" + k.ClientID + ":" + k.UserAgentID
}

// HasUserAgent is false for keys that can not identify a session.
func (k SessionKey) HasUserAgent() bool {
	return k.UserAgentID != ""
}

// OAuthSession is an established authentication of a user for a session key.
type OAuthSession struct {
	Key              SessionKey     `json:"key" yaml:"key"`
	User             *User          `json:"user" yaml:"user"`
	Authentication   Authentication `json:"authentication" yaml:"authentication"`
	CustomProperties map[string]any `json:"custom_properties,omitempty" yaml:"custom_properties,omitempty"`
	CreatedAt        time.Time      `json:"created_at" yaml:"created_at"`
	ExpiresAt        time.Time      `json:"expires_at" yaml:"expires_at"`
}

func (s *OAuthSession) Exists() bool {
	return s != nil && s.User.Exists()
}

// IsValid reports whether the session can satisfy request at now.
func (s *OAuthSession) IsValid(request *AuthorizationRequest, now time.Time) bool {
	if !s.Exists() {
		return false
	}

	if s.Key.TenantID != request.TenantID || s.Key.ClientID != request.ClientID || s.Key.UserAgentID != request.UserAgentID {
		return false
	}

	if !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt) {
		return false
	}

	if request.MaxAge != nil && *request.MaxAge < MaxAgeLimit {
		if s.Authentication.Time.Add(time.Duration(*request.MaxAge) * time.Second).Before(now) {
			return false
		}
	}

	if subject, ok := strings.CutPrefix(request.LoginHint, loginHintSubjectPrefix); ok && subject != s.User.Sub {
		return false
	}

	return true
}
