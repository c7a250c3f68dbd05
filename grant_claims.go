// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"authelia.com/provider/authz/internal/consts"
)

type scopedClaim struct {
	claim string
	scope string
}

// scopedClaims maps each standard claim to the scope which releases it.
var scopedClaims = []scopedClaim{
	{consts.ClaimFullName, consts.ScopeProfile},
	{consts.ClaimGivenName, consts.ScopeProfile},
	{consts.ClaimFamilyName, consts.ScopeProfile},
	{consts.ClaimMiddleName, consts.ScopeProfile},
	{consts.ClaimNickname, consts.ScopeProfile},
	{consts.ClaimPreferredUsername, consts.ScopeProfile},
	{consts.ClaimProfile, consts.ScopeProfile},
	{consts.ClaimPicture, consts.ScopeProfile},
	{consts.ClaimWebsite, consts.ScopeProfile},
	{consts.ClaimGender, consts.ScopeProfile},
	{consts.ClaimBirthdate, consts.ScopeProfile},
	{consts.ClaimZoneinfo, consts.ScopeProfile},
	{consts.ClaimLocale, consts.ScopeProfile},
	{consts.ClaimUpdatedAt, consts.ScopeProfile},
	{consts.ClaimEmail, consts.ScopeEmail},
	{consts.ClaimEmailVerified, consts.ScopeEmail},
	{consts.ClaimPhoneNumber, consts.ScopePhone},
	{consts.ClaimPhoneNumberVerified, consts.ScopePhone},
	{consts.ClaimAddress, consts.ScopeAddress},
}

// RequiredIDTokenClaims returns the claims an ID Token issued for the request must be granted.
func RequiredIDTokenClaims(scopes Arguments, rt ResponseType, requested RequestedClaims, server *ServerConfiguration) Arguments {
	var claims Arguments

	for _, sc := range scopedClaims {
		if !server.IsSupportedClaim(sc.claim) {
			continue
		}

		explicit := requested.IDToken.Has(sc.claim)

		switch {
		case rt.IsIDTokenOnlyImplicitFlow():
			if scopes.Has(sc.scope) || explicit {
				claims = append(claims, sc.claim)
			}
		case server.IDTokenStrictMode:
			if explicit {
				claims = append(claims, sc.claim)
			}
		default:
			if scopes.Has(sc.scope) {
				claims = append(claims, sc.claim)
			}
		}
	}

	if requested.IDToken.Has(consts.ClaimVerifiedClaims) {
		claims = append(claims, consts.ClaimVerifiedClaims)
	}

	return claims
}

// RequiredUserinfoClaims returns the claims the userinfo endpoint must be granted for the request.
func RequiredUserinfoClaims(scopes Arguments, requested RequestedClaims, server *ServerConfiguration) Arguments {
	var claims Arguments

	for _, sc := range scopedClaims {
		if !server.IsSupportedClaim(sc.claim) {
			continue
		}

		if scopes.Has(sc.scope) || requested.Userinfo.Has(sc.claim) {
			claims = append(claims, sc.claim)
		}
	}

	return claims
}

// RequiredConsentClaims returns the client documents the user must have consented to.
func RequiredConsentClaims(client *ClientConfiguration) ConsentClaims {
	claims := ConsentClaims{}

	if client.HasTosURI() {
		claims[consts.ConsentTerms] = []ConsentClaim{{Name: consts.ConsentTOSURI, Value: client.TosURI}}
	}

	if client.HasPolicyURI() {
		claims[consts.ConsentPrivacy] = []ConsentClaim{{Name: consts.ConsentPolicyURI, Value: client.PolicyURI}}
	}

	return claims
}
