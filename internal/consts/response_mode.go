package consts

// Response Mode strings.
const (
	ResponseModeQuery       = "query"
	ResponseModeFragment    = "fragment"
	ResponseModeJWT         = "jwt"
	ResponseModeQueryJWT    = "query.jwt"
	ResponseModeFragmentJWT = "fragment.jwt"
)

// Response Mode placement strings.
const (
	ResponseModeValueQuery    = "?"
	ResponseModeValueFragment = "#"
)
