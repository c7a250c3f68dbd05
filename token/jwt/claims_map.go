// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package jwt

import (
	"encoding/json"
	"time"
)

// MapClaims is a claim set keyed by claim name.
type MapClaims map[string]any

// GetString returns the claim as a string.
func (m MapClaims) GetString(key string) (value string, ok bool) {
	value, ok = m[key].(string)

	return value, ok
}

// GetTime returns a NumericDate claim as a time.
func (m MapClaims) GetTime(key string) (value time.Time, ok bool) {
	switch v := m[key].(type) {
	case float64:
		return time.Unix(int64(v), 0).UTC(), true
	case int64:
		return time.Unix(v, 0).UTC(), true
	case int:
		return time.Unix(int64(v), 0).UTC(), true
	case json.Number:
		n, err := v.Int64()

		return time.Unix(n, 0).UTC(), err == nil
	default:
		return time.Time{}, false
	}
}

// GetAudience returns the aud claim whether serialized as a string or an array.
func (m MapClaims) GetAudience() []string {
	switch v := m["aud"].(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		aud := make([]string, 0, len(v))

		for _, item := range v {
			if s, ok := item.(string); ok {
				aud = append(aud, s)
			}
		}

		return aud
	default:
		return nil
	}
}

// Copy returns a shallow copy of the claims.
func (m MapClaims) Copy() MapClaims {
	out := make(MapClaims, len(m))

	for k, v := range m {
		out[k] = v
	}

	return out
}
