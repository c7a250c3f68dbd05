// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"authelia.com/provider/authz"
)

func TestParseResponseType(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected authz.ResponseType
		key      string
	}{
		{"ShouldParseEmpty", "", authz.ResponseTypeUndefined, "undefined"},
		{"ShouldParseWhitespace", "   ", authz.ResponseTypeUndefined, "undefined"},
		{"ShouldParseCode", "code", authz.ResponseTypeCode, "code"},
		{"ShouldParseToken", "token", authz.ResponseTypeToken, "token"},
		{"ShouldParseIDToken", "id_token", authz.ResponseTypeIDToken, "id_token"},
		{"ShouldParseCodeToken", "token code", authz.ResponseTypeCodeToken, "code_token"},
		{"ShouldParseCodeIDToken", "id_token code", authz.ResponseTypeCodeIDToken, "code_id_token"},
		{"ShouldParseTokenIDToken", "token id_token", authz.ResponseTypeTokenIDToken, "token_id_token"},
		{"ShouldParseTokenIDTokenCanonical", "id_token token", authz.ResponseTypeTokenIDToken, "token_id_token"},
		{"ShouldParseCodeTokenIDToken", "token id_token code", authz.ResponseTypeCodeTokenIDToken, "code_token_id_token"},
		{"ShouldParseVPToken", "vp_token", authz.ResponseTypeVPToken, "vp_token"},
		{"ShouldParseVPTokenIDToken", "id_token vp_token", authz.ResponseTypeVPTokenIDToken, "vp_token_id_token"},
		{"ShouldParseNone", "none", authz.ResponseTypeNone, "none"},
		{"ShouldParseUnknownComponent", "code foo", authz.ResponseTypeUnknown, "unknown"},
		{"ShouldParseUnknownCombination", "none code", authz.ResponseTypeUnknown, "unknown"},
		{"ShouldParseUnknownVPTokenCombination", "vp_token code", authz.ResponseTypeUnknown, "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rt := authz.ParseResponseType(tc.raw)

			assert.Equal(t, tc.expected, rt)
			assert.Equal(t, tc.key, rt.Key())
		})
	}
}

func TestResponseTypeComponents(t *testing.T) {
	testCases := []struct {
		name                          string
		rt                            authz.ResponseType
		code, token, idToken, vpToken bool
	}{
		{name: "ShouldHaveCode", rt: authz.ResponseTypeCode, code: true},
		{name: "ShouldHaveToken", rt: authz.ResponseTypeToken, token: true},
		{name: "ShouldHaveIDToken", rt: authz.ResponseTypeIDToken, idToken: true},
		{name: "ShouldHaveCodeTokenIDToken", rt: authz.ResponseTypeCodeTokenIDToken, code: true, token: true, idToken: true},
		{name: "ShouldHaveVPTokenIDToken", rt: authz.ResponseTypeVPTokenIDToken, idToken: true, vpToken: true},
		{name: "ShouldHaveNothingForNone", rt: authz.ResponseTypeNone},
		{name: "ShouldHaveNothingForUnknown", rt: authz.ResponseTypeUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.rt.HasCode())
			assert.Equal(t, tc.token, tc.rt.HasToken())
			assert.Equal(t, tc.idToken, tc.rt.HasIDToken())
			assert.Equal(t, tc.vpToken, tc.rt.HasVPToken())
		})
	}
}

func TestResponseMode(t *testing.T) {
	testCases := []struct {
		name      string
		mode      authz.ResponseMode
		supported bool
		jwt       bool
		placement authz.ResponseModeValue
	}{
		{"ShouldHandleUndefined", authz.ResponseModeUndefined, true, false, ""},
		{"ShouldHandleQuery", authz.ResponseModeQuery, true, false, authz.ResponseModeValueQuery},
		{"ShouldHandleFragment", authz.ResponseModeFragment, true, false, authz.ResponseModeValueFragment},
		{"ShouldHandleJWT", authz.ResponseModeJWT, true, true, ""},
		{"ShouldHandleQueryJWT", authz.ResponseModeQueryJWT, true, true, authz.ResponseModeValueQuery},
		{"ShouldHandleFragmentJWT", authz.ResponseModeFragmentJWT, true, true, authz.ResponseModeValueFragment},
		{"ShouldNotSupportFormPost", authz.ResponseMode("form_post"), false, false, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.supported, tc.mode.IsSupported())
			assert.Equal(t, tc.jwt, tc.mode.IsJWT())
			assert.Equal(t, tc.placement, tc.mode.Placement())
		})
	}
}
