// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

// DecideRedirectURI returns the redirect URI of the request, or the first URI registered by the client when the
// request omitted it. The caller rejects clients with several registered URIs before this point.
func DecideRedirectURI(request *AuthorizationRequest, client *ClientConfiguration) string {
	if request.HasRedirectURI() {
		return request.RedirectURI
	}

	return client.FirstRedirectURI()
}

// DecideResponseModeValue returns the placement of the response parameters. An explicit placement in the response
// mode always wins. Otherwise the authorization code flow and undefined or unknown response types use the query and
// every other response type uses the fragment.
func DecideResponseModeValue(rt ResponseType, mode ResponseMode) ResponseModeValue {
	if placement := mode.Placement(); placement != "" {
		return placement
	}

	switch {
	case rt.IsAuthorizationCodeFlow(), rt.IsUndefined(), rt.IsUnknown():
		return ResponseModeValueQuery
	default:
		return ResponseModeValueFragment
	}
}

// IsJWTMode reports whether the response must be a JWT Secured Authorization Response. The FAPI Advance profile
// forces it for every response type other than 'code id_token'.
func IsJWTMode(profile Profile, rt ResponseType, mode ResponseMode) bool {
	if mode.IsJWT() {
		return true
	}

	return profile == ProfileFAPIAdvance && !rt.IsCodeIDToken()
}
