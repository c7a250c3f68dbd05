package consts

// Header names of the authorization responses and the front-end API.
const (
	HeaderAcceptLanguage = "Accept-Language"
	HeaderAuthorization  = "Authorization"
	HeaderCacheControl   = "Cache-Control"
	HeaderContentType    = "Content-Type"
	HeaderLocation       = "Location"
	HeaderPragma         = "Pragma"
)

const (
	ContentTypeApplicationJSON = "application/json; charset=utf-8"

	CacheControlNoStore = "no-store"
	PragmaNoCache       = "no-cache"
)

// Redirect URI schemes.
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)
