// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

// Package i18n localizes the error_description of authorization error responses.
package i18n

import (
	"net/http"

	"golang.org/x/text/language"
)

// MessageCatalog resolves localized messages by ID and picks the language of a request.
type MessageCatalog interface {
	GetMessage(ID string, tag language.Tag, v ...any) string
	GetLangFromRequest(r *http.Request) language.Tag
	GetLangFromLocales(locales ...string) language.Tag
}

// GetMessageOrDefault returns the message id in tag, or def when c is nil or has no translation for id.
func GetMessageOrDefault(c MessageCatalog, id string, tag language.Tag, def string, v ...any) string {
	if c == nil || id == "" {
		return def
	}

	if s := c.GetMessage(id, tag, v...); s != id {
		return s
	}

	return def
}

// GetLangFromLocales resolves the language of the 'ui_locales' values of an authorization request. English is used
// without a catalog.
func GetLangFromLocales(c MessageCatalog, locales ...string) language.Tag {
	if c == nil {
		return language.English
	}

	return c.GetLangFromLocales(locales...)
}
