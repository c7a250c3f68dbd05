package consts

const (
	FormParameterState                                     = "state"
	FormParameterClientID                                  = valueClientID
	FormParameterClientSecret                              = "client_secret"
	FormParameterRequest                                   = "request"
	FormParameterRequestURI                                = "request_uri"
	FormParameterRedirectURI                               = "redirect_uri"
	FormParameterNonce                                     = valueNonce
	FormParameterResponseMode                              = "response_mode"
	FormParameterResponseType                              = "response_type"
	FormParameterCodeChallenge                             = "code_challenge"
	FormParameterCodeChallengeMethod                       = "code_challenge_method"
	FormParameterScope                                     = valueScope
	FormParameterMaximumAge                                = "max_age"
	FormParameterPrompt                                    = "prompt"
	FormParameterDisplay                                   = "display"
	FormParameterUILocales                                 = "ui_locales"
	FormParameterLoginHint                                 = "login_hint"
	FormParameterAuthenticationContextClassReferenceValues = "acr_values"
	FormParameterIDTokenHint                               = "id_token_hint"
	FormParameterClaims                                    = "claims"
	FormParameterAuthorizationDetails                      = "authorization_details"
	FormParameterPostLogoutRedirectURI                     = "post_logout_redirect_uri"
)

// Members of structured parameters.
const (
	FormParameterIDTokenClaims  = "id_token"
	FormParameterUserinfoClaims = "userinfo"
	AuthorizationDetailsType    = "type"
)
