package consts

// Authorization response parameter strings.
const (
	AuthorizeResponseAuthorizationCode = valueCode
	AuthorizeResponseAccessToken       = valueAccessToken
	AuthorizeResponseTokenType         = valueTokenType
	AuthorizeResponseExpiresIn         = valueExpiresIn
	AuthorizeResponseScope             = valueScope
	AuthorizeResponseIDToken           = valueIDToken
	AuthorizeResponseVPToken           = valueVPToken
	AuthorizeResponseState             = "state"
	AuthorizeResponseIssuer            = valueIss
	AuthorizeResponseJWT               = "response"
	AuthorizeResponseError             = "error"
	AuthorizeResponseErrorDescription  = "error_description"
)

// Pushed authorization request strings.
const (
	PushedAuthorizeRequestURIPrefix = "urn:ietf:params:oauth:request_uri:"
)

const (
	TokenTypeBearer = "Bearer"
)
