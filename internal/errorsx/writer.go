// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package errorsx

import (
	"context"
	"encoding/json"
	stderr "errors"
	"net/http"

	"github.com/pkg/errors"

	"authelia.com/provider/authz/internal/consts"
)

// WriteJSONError writes err as a JSON body using the status code the error carries.
func WriteJSONError(w http.ResponseWriter, r *http.Request, err error) {
	if c := StatusCodeCarrier(nil); stderr.As(err, &c) {
		WriteJSONErrorCode(w, r, c.StatusCode(), err)
	} else {
		WriteJSONErrorCode(w, r, http.StatusInternalServerError, err)
	}
}

// WriteJSONErrorCode writes err as a JSON body with the provided status code.
func WriteJSONErrorCode(w http.ResponseWriter, r *http.Request, code int, err error) {
	if code == 0 {
		code = http.StatusInternalServerError
	}

	if r != nil && errors.Is(r.Context().Err(), context.Canceled) {
		code = 499
	}

	w.Header().Set(consts.HeaderContentType, consts.ContentTypeApplicationJSON)
	w.WriteHeader(code)

	_ = json.NewEncoder(w).Encode(err)
}
