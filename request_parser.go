// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"authelia.com/provider/authz/internal/consts"
)

// standardParameters are the parameters which map to an AuthorizationRequest field. Every other parameter is kept
// as a custom parameter.
var standardParameters = map[string]struct{}{
	consts.FormParameterClientID:                                  {},
	consts.FormParameterClientSecret:                              {},
	consts.FormParameterResponseType:                              {},
	consts.FormParameterResponseMode:                              {},
	consts.FormParameterRedirectURI:                               {},
	consts.FormParameterScope:                                     {},
	consts.FormParameterState:                                     {},
	consts.FormParameterNonce:                                     {},
	consts.FormParameterPrompt:                                    {},
	consts.FormParameterDisplay:                                   {},
	consts.FormParameterMaximumAge:                                {},
	consts.FormParameterUILocales:                                 {},
	consts.FormParameterLoginHint:                                 {},
	consts.FormParameterAuthenticationContextClassReferenceValues: {},
	consts.FormParameterCodeChallenge:                             {},
	consts.FormParameterCodeChallengeMethod:                       {},
	consts.FormParameterClaims:                                    {},
	consts.FormParameterAuthorizationDetails:                      {},
	consts.FormParameterRequest:                                   {},
	consts.FormParameterRequestURI:                                {},
	consts.FormParameterIDTokenHint:                               {},
}

// parseRequestParameters maps params onto a new AuthorizationRequest. Values which need validation such as
// 'max_age', 'claims' and 'authorization_details' are parsed by validateAuthorizationRequest.
func parseRequestParameters(tenantID string, params url.Values, pattern RequestPattern) *AuthorizationRequest {
	request := &AuthorizationRequest{
		TenantID:            tenantID,
		Pattern:             pattern,
		ClientID:            params.Get(consts.FormParameterClientID),
		ResponseType:        ParseResponseType(params.Get(consts.FormParameterResponseType)),
		ResponseMode:        ResponseMode(params.Get(consts.FormParameterResponseMode)),
		RedirectURI:         params.Get(consts.FormParameterRedirectURI),
		Scopes:              ParseArguments(params.Get(consts.FormParameterScope)),
		State:               params.Get(consts.FormParameterState),
		Nonce:               params.Get(consts.FormParameterNonce),
		Prompt:              Prompt(params.Get(consts.FormParameterPrompt)),
		Display:             params.Get(consts.FormParameterDisplay),
		UILocales:           ParseArguments(params.Get(consts.FormParameterUILocales)),
		LoginHint:           params.Get(consts.FormParameterLoginHint),
		ACRValues:           ParseArguments(params.Get(consts.FormParameterAuthenticationContextClassReferenceValues)),
		CodeChallenge:       params.Get(consts.FormParameterCodeChallenge),
		CodeChallengeMethod: params.Get(consts.FormParameterCodeChallengeMethod),
		Claims:              params.Get(consts.FormParameterClaims),
	}

	for key := range params {
		if _, ok := standardParameters[key]; ok {
			continue
		}

		if request.CustomParams == nil {
			request.CustomParams = map[string]string{}
		}

		request.CustomParams[key] = params.Get(key)
	}

	return request
}

// MaxAgeLimit is the largest 'max_age' in seconds that can be represented as a time.Duration. Larger values are
// lowered to it.
const MaxAgeLimit = int64(math.MaxInt64 / int64(time.Second))

// ParseMaxAge parses the 'max_age' parameter. An empty value is nil.
func ParseMaxAge(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil && errors.Is(err, strconv.ErrRange) && value > 0 {
		err = nil
	}

	if err != nil || value < 0 {
		return nil, ErrInvalidRequest.WithHintf("The 'max_age' parameter value '%s' is not a non-negative integer.", raw)
	}

	value = min(value, MaxAgeLimit)

	return &value, nil
}

// ParseRequestedClaims parses the member names of the 'id_token' and 'userinfo' objects of the 'claims' parameter.
func ParseRequestedClaims(raw string) (claims RequestedClaims, err error) {
	if raw == "" {
		return claims, nil
	}

	if !gjson.Valid(raw) {
		return claims, ErrInvalidRequest.WithHint("The 'claims' parameter is not valid JSON.")
	}

	result := gjson.Parse(raw)

	if !result.IsObject() {
		return claims, ErrInvalidRequest.WithHint("The 'claims' parameter is not a JSON object.")
	}

	if claims.IDToken, err = claimNames(result, consts.FormParameterIDTokenClaims); err != nil {
		return claims, err
	}

	if claims.Userinfo, err = claimNames(result, consts.FormParameterUserinfoClaims); err != nil {
		return claims, err
	}

	return claims, nil
}

func claimNames(result gjson.Result, member string) (names Arguments, err error) {
	value := result.Get(member)

	if !value.Exists() {
		return nil, nil
	}

	if !value.IsObject() {
		return nil, ErrInvalidRequest.WithHintf("The '%s' member of the 'claims' parameter is not a JSON object.", member)
	}

	value.ForEach(func(key, _ gjson.Result) bool {
		names = append(names, key.String())

		return true
	})

	return names, nil
}

// ParseAuthorizationDetails parses the 'authorization_details' parameter, which is a JSON array of objects with a
// 'type' member.
func ParseAuthorizationDetails(raw string) (details AuthorizationDetails, err error) {
	if raw == "" {
		return nil, nil
	}

	if !gjson.Valid(raw) {
		return nil, ErrInvalidAuthDetails.WithHint("The 'authorization_details' parameter is not valid JSON.")
	}

	result := gjson.Parse(raw)

	if !result.IsArray() {
		return nil, ErrInvalidAuthDetails.WithHint("The 'authorization_details' parameter is not a JSON array.")
	}

	for i, element := range result.Array() {
		if !element.IsObject() {
			return nil, ErrInvalidAuthDetails.WithHintf("The 'authorization_details' element %d is not a JSON object.", i)
		}

		t := element.Get(consts.AuthorizationDetailsType)

		if t.Type != gjson.String || t.String() == "" {
			return nil, ErrInvalidAuthDetails.WithHintf("The 'authorization_details' element %d does not have a 'type' string.", i)
		}

		raw, _ := element.Value().(map[string]any)

		details = append(details, AuthorizationDetail{Type: t.String(), Raw: raw})
	}

	return details, nil
}

// claimsToParameters converts the claims of a request object to parameters. Structured values are serialized as
// JSON.
func claimsToParameters(claims map[string]any) (params url.Values, err error) {
	params = url.Values{}

	for key, value := range claims {
		switch v := value.(type) {
		case string:
			params.Set(key, v)
		case float64:
			params.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
		case bool:
			params.Set(key, strconv.FormatBool(v))
		case []any:
			if key == consts.FormParameterAuthorizationDetails {
				var data []byte

				if data, err = json.Marshal(v); err != nil {
					return nil, err
				}

				params.Set(key, string(data))

				continue
			}

			values := make([]string, 0, len(v))

			for _, item := range v {
				values = append(values, fmt.Sprint(item))
			}

			params.Set(key, strings.Join(values, " "))
		case nil:
		default:
			var data []byte

			if data, err = json.Marshal(v); err != nil {
				return nil, err
			}

			params.Set(key, string(data))
		}
	}

	return params, nil
}

// mergeParameters returns base with every key of override replacing the key of base.
func mergeParameters(base, override url.Values) url.Values {
	merged := url.Values{}

	for key, values := range base {
		merged[key] = append([]string(nil), values...)
	}

	for key, values := range override {
		merged[key] = append([]string(nil), values...)
	}

	return merged
}
