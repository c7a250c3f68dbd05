package consts

// Response Type component strings.
const (
	ResponseTypeComponentCode    = valueCode
	ResponseTypeComponentToken   = valueToken
	ResponseTypeComponentIDToken = valueIDToken
	ResponseTypeComponentVPToken = valueVPToken
	ResponseTypeComponentNone    = valueNone
)

// Response Type strings.
const (
	ResponseTypeAuthorizationCodeFlow = valueCode
	ResponseTypeImplicitFlowIDToken   = valueIDToken
	ResponseTypeImplicitFlowToken     = valueToken
	ResponseTypeImplicitFlowBoth      = "id_token token"
	ResponseTypeHybridFlowIDToken     = "code id_token"
	ResponseTypeHybridFlowToken       = "code token"
	ResponseTypeHybridFlowBoth        = "code id_token token"
	ResponseTypeVPToken               = valueVPToken
	ResponseTypeVPTokenIDToken        = "vp_token id_token"
	ResponseTypeNone                  = valueNone
)
