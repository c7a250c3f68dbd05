package consts

// JSON Web Key use strings.
const (
	JSONWebTokenUseSignature = "sig"
)

const (
	JSONWebTokenTypeJWT = "JWT"
	JSONWebTokenAlgNone = valueNone
)
