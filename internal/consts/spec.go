package consts

const (
	PromptTypeNone          = valueNone
	PromptTypeLogin         = "login"
	PromptTypeConsent       = "consent"
	PromptTypeCreate        = "create"
	PromptTypeSelectAccount = "select_account"
)

// Proof Key Code Exchange Challenge Method strings.
const (
	PKCEChallengeMethodSHA256 = "S256"
)

// Scope strings.
const (
	ScopeOpenID  = "openid"
	ScopeProfile = "profile"
	ScopeEmail   = "email"
	ScopePhone   = "phone"
	ScopeAddress = "address"
)

// Consent claim strings.
const (
	ConsentTerms     = "terms"
	ConsentPrivacy   = "privacy"
	ConsentTOSURI    = "tos_uri"
	ConsentPolicyURI = "policy_uri"
)
