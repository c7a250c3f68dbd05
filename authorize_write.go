// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"encoding/json"
	"net/http"

	"authelia.com/provider/authz/internal/consts"
	"authelia.com/provider/authz/internal/errorsx"
)

// WriteAuthorizeResponse writes a Provider response. Redirects are written with the location and every other status
// is written as JSON.
func WriteAuthorizeResponse(rw http.ResponseWriter, responder Responder) {
	result := responder.GetResult()

	header := rw.Header()

	header.Set(consts.HeaderCacheControl, consts.CacheControlNoStore)
	header.Set(consts.HeaderPragma, consts.PragmaNoCache)

	if result.IsRedirect() {
		header.Set(consts.HeaderLocation, result.Location)
		rw.WriteHeader(http.StatusFound)

		return
	}

	data, err := json.Marshal(responder)
	if err != nil {
		errorsx.WriteJSONError(rw, nil, ErrServerError.WithWrap(err).WithDebug(err.Error()))

		return
	}

	header.Set(consts.HeaderContentType, consts.ContentTypeApplicationJSON)
	rw.WriteHeader(result.Status.HTTPStatusCode())
	_, _ = rw.Write(data)
}
