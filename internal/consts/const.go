package consts

const (
	valueScope       = "scope"
	valueClientID    = "client_id"
	valueExpiresIn   = "expires_in"
	valueNone        = "none"
	valueIDToken     = "id_token"
	valueVPToken     = "vp_token"
	valueAccessToken = "access_token"
	valueTokenType   = "token_type"
	valueIss         = "iss"
	valueCode        = "code"
	valueToken       = "token"
	valueNonce       = "nonce"
)
