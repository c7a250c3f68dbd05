// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"sort"

	"authelia.com/provider/authz/internal/consts"
)

// ResponseType is a normalized 'response_type' value.
type ResponseType string

const (
	ResponseTypeUndefined        ResponseType = ""
	ResponseTypeCode             ResponseType = consts.ResponseTypeAuthorizationCodeFlow
	ResponseTypeToken            ResponseType = consts.ResponseTypeImplicitFlowToken
	ResponseTypeIDToken          ResponseType = consts.ResponseTypeImplicitFlowIDToken
	ResponseTypeCodeToken        ResponseType = consts.ResponseTypeHybridFlowToken
	ResponseTypeCodeIDToken      ResponseType = consts.ResponseTypeHybridFlowIDToken
	ResponseTypeTokenIDToken     ResponseType = consts.ResponseTypeImplicitFlowBoth
	ResponseTypeCodeTokenIDToken ResponseType = consts.ResponseTypeHybridFlowBoth
	ResponseTypeVPToken          ResponseType = consts.ResponseTypeVPToken
	ResponseTypeVPTokenIDToken   ResponseType = consts.ResponseTypeVPTokenIDToken
	ResponseTypeNone             ResponseType = consts.ResponseTypeNone
	ResponseTypeUnknown          ResponseType = "unknown"
)

// ResponseTypes lists every response type which has a creator.
var ResponseTypes = []ResponseType{
	ResponseTypeCode,
	ResponseTypeToken,
	ResponseTypeIDToken,
	ResponseTypeCodeToken,
	ResponseTypeCodeIDToken,
	ResponseTypeTokenIDToken,
	ResponseTypeCodeTokenIDToken,
	ResponseTypeVPToken,
	ResponseTypeVPTokenIDToken,
	ResponseTypeNone,
}

var responseTypeOrder = map[string]int{
	consts.ResponseTypeComponentCode:    0,
	consts.ResponseTypeComponentVPToken: 1,
	consts.ResponseTypeComponentIDToken: 2,
	consts.ResponseTypeComponentToken:   3,
	consts.ResponseTypeComponentNone:    4,
}

// ParseResponseType normalizes the order of the space delimited components of raw. Values which are not one of
// ResponseTypes parse to ResponseTypeUnknown.
func ParseResponseType(raw string) ResponseType {
	components := ParseArguments(raw)

	if len(components) == 0 {
		return ResponseTypeUndefined
	}

	for _, c := range components {
		if _, ok := responseTypeOrder[c]; !ok {
			return ResponseTypeUnknown
		}
	}

	sort.SliceStable(components, func(i, j int) bool {
		return responseTypeOrder[components[i]] < responseTypeOrder[components[j]]
	})

	rt := canonicalResponseType(components)

	for _, known := range ResponseTypes {
		if known == rt {
			return rt
		}
	}

	return ResponseTypeUnknown
}

// canonicalResponseType renders components in the registered spelling, where 'id_token token' keeps the id_token
// first but 'code id_token token' keeps code first.
func canonicalResponseType(components Arguments) ResponseType {
	switch {
	case components.Matches(consts.ResponseTypeComponentIDToken, consts.ResponseTypeComponentToken):
		return ResponseTypeTokenIDToken
	case components.Matches(consts.ResponseTypeComponentCode, consts.ResponseTypeComponentToken):
		return ResponseTypeCodeToken
	case components.Matches(consts.ResponseTypeComponentCode, consts.ResponseTypeComponentIDToken, consts.ResponseTypeComponentToken):
		return ResponseTypeCodeTokenIDToken
	default:
		return ResponseType(components.String())
	}
}

// Components returns the space delimited components.
func (rt ResponseType) Components() Arguments {
	return ParseArguments(string(rt))
}

// Key returns the registry key of the response type.
func (rt ResponseType) Key() string {
	switch rt {
	case ResponseTypeCodeToken:
		return "code_token"
	case ResponseTypeCodeIDToken:
		return "code_id_token"
	case ResponseTypeTokenIDToken:
		return "token_id_token"
	case ResponseTypeCodeTokenIDToken:
		return "code_token_id_token"
	case ResponseTypeVPTokenIDToken:
		return "vp_token_id_token"
	case ResponseTypeUndefined:
		return "undefined"
	default:
		return string(rt)
	}
}

func (rt ResponseType) IsAuthorizationCodeFlow() bool {
	return rt == ResponseTypeCode
}

func (rt ResponseType) IsUndefined() bool {
	return rt == ResponseTypeUndefined
}

func (rt ResponseType) IsUnknown() bool {
	return rt == ResponseTypeUnknown
}

func (rt ResponseType) IsCodeIDToken() bool {
	return rt == ResponseTypeCodeIDToken
}

// IsIDTokenOnlyImplicitFlow is true for 'response_type=id_token', where no access token is issued and the ID Token
// carries the user claims.
func (rt ResponseType) IsIDTokenOnlyImplicitFlow() bool {
	return rt == ResponseTypeIDToken
}

func (rt ResponseType) HasCode() bool {
	return rt.has(consts.ResponseTypeComponentCode)
}

func (rt ResponseType) HasToken() bool {
	return rt.has(consts.ResponseTypeComponentToken)
}

func (rt ResponseType) HasIDToken() bool {
	return rt.has(consts.ResponseTypeComponentIDToken)
}

func (rt ResponseType) HasVPToken() bool {
	return rt.has(consts.ResponseTypeComponentVPToken)
}

func (rt ResponseType) has(component string) bool {
	if rt.IsUnknown() {
		return false
	}

	return rt.Components().Has(component)
}

// ResponseMode is a 'response_mode' value.
type ResponseMode string

const (
	ResponseModeUndefined   ResponseMode = ""
	ResponseModeQuery       ResponseMode = consts.ResponseModeQuery
	ResponseModeFragment    ResponseMode = consts.ResponseModeFragment
	ResponseModeJWT         ResponseMode = consts.ResponseModeJWT
	ResponseModeQueryJWT    ResponseMode = consts.ResponseModeQueryJWT
	ResponseModeFragmentJWT ResponseMode = consts.ResponseModeFragmentJWT
)

// IsSupported is true when the mode is one of the known modes or undefined.
func (m ResponseMode) IsSupported() bool {
	switch m {
	case ResponseModeUndefined, ResponseModeQuery, ResponseModeFragment, ResponseModeJWT, ResponseModeQueryJWT, ResponseModeFragmentJWT:
		return true
	default:
		return false
	}
}

// IsJWT is true for the JWT Secured Authorization Response Mode family.
func (m ResponseMode) IsJWT() bool {
	switch m {
	case ResponseModeJWT, ResponseModeQueryJWT, ResponseModeFragmentJWT:
		return true
	default:
		return false
	}
}

// Placement returns the explicit placement carried by the mode. It is empty for the undefined and 'jwt' modes.
func (m ResponseMode) Placement() ResponseModeValue {
	switch m {
	case ResponseModeQuery, ResponseModeQueryJWT:
		return ResponseModeValueQuery
	case ResponseModeFragment, ResponseModeFragmentJWT:
		return ResponseModeValueFragment
	default:
		return ""
	}
}

// ResponseModeValue is the delimiter placed between the redirect URI and the encoded parameters.
type ResponseModeValue string

const (
	ResponseModeValueQuery    ResponseModeValue = consts.ResponseModeValueQuery
	ResponseModeValueFragment ResponseModeValue = consts.ResponseModeValueFragment
)

// Profile is the security profile an authorization request is evaluated under.
type Profile string

const (
	ProfileUndefined    Profile = ""
	ProfileOAuth2       Profile = "oauth2"
	ProfileOIDC         Profile = "oidc"
	ProfileFAPIBaseline Profile = "fapi_baseline"
	ProfileFAPIAdvance  Profile = "fapi_advance"
)

func (p Profile) IsFAPI() bool {
	return p == ProfileFAPIBaseline || p == ProfileFAPIAdvance
}

// Prompt is the space delimited 'prompt' value.
type Prompt string

const (
	PromptUndefined     Prompt = ""
	PromptNone          Prompt = consts.PromptTypeNone
	PromptLogin         Prompt = consts.PromptTypeLogin
	PromptConsent       Prompt = consts.PromptTypeConsent
	PromptCreate        Prompt = consts.PromptTypeCreate
	PromptSelectAccount Prompt = consts.PromptTypeSelectAccount
)

// Values returns the space delimited prompt values.
func (p Prompt) Values() Arguments {
	return ParseArguments(string(p))
}

func (p Prompt) IsNone() bool {
	return p.Values().ExactOne(consts.PromptTypeNone)
}

func (p Prompt) IsCreate() bool {
	return p.Values().Has(consts.PromptTypeCreate)
}

// IsValid is true when every value is known and 'none' is not combined with another value.
func (p Prompt) IsValid() bool {
	values := p.Values()

	for _, v := range values {
		switch Prompt(v) {
		case PromptNone, PromptLogin, PromptConsent, PromptCreate, PromptSelectAccount:
		default:
			return false
		}
	}

	return !values.Has(consts.PromptTypeNone) || len(values) == 1
}

// RequestPattern describes how the authorization request parameters were delivered.
type RequestPattern string

const (
	RequestPatternNormal        RequestPattern = "normal"
	RequestPatternRequestObject RequestPattern = "request_object"
	RequestPatternPushed        RequestPattern = "pushed"
)
