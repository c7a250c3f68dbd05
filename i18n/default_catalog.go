// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package i18n

import (
	"fmt"
	"net/http"

	"golang.org/x/text/language"

	"authelia.com/provider/authz/internal/consts"
)

// DefaultMessage is a single translated message.
type DefaultMessage struct {
	ID               string `json:"id" yaml:"id"`
	FormattedMessage string `json:"msg" yaml:"msg"`
}

// DefaultLocaleBundle is the set of messages for a single language.
type DefaultLocaleBundle struct {
	LangTag  string            `json:"lang" yaml:"lang"`
	Messages []*DefaultMessage `json:"messages" yaml:"messages"`
}

// DefaultMessageCatalog is a MessageCatalog backed by in-memory bundles.
type DefaultMessageCatalog struct {
	Bundles map[string]*DefaultLocaleBundle

	tags    []language.Tag
	matcher language.Matcher
}

// NewDefaultMessageCatalog builds a catalog from bundles. The first bundle is the fallback language.
func NewDefaultMessageCatalog(bundles []*DefaultLocaleBundle) *DefaultMessageCatalog {
	c := &DefaultMessageCatalog{
		Bundles: make(map[string]*DefaultLocaleBundle, len(bundles)),
	}

	for _, b := range bundles {
		tag := language.Make(b.LangTag)

		c.tags = append(c.tags, tag)
		c.Bundles[tag.String()] = b
	}

	if len(c.tags) == 0 {
		c.tags = append(c.tags, language.English)
	}

	c.matcher = language.NewMatcher(c.tags)

	return c
}

// GetMessage returns the message for ID in the closest matching language, or ID itself.
func (c *DefaultMessageCatalog) GetMessage(ID string, tag language.Tag, v ...any) string {
	_, idx, _ := c.matcher.Match(tag)

	bundle, ok := c.Bundles[c.tags[idx].String()]
	if !ok {
		return ID
	}

	for _, m := range bundle.Messages {
		if m.ID == ID {
			if len(v) == 0 {
				return m.FormattedMessage
			}

			return fmt.Sprintf(m.FormattedMessage, v...)
		}
	}

	return ID
}

// GetLangFromRequest matches the Accept-Language header against the catalog languages.
func (c *DefaultMessageCatalog) GetLangFromRequest(r *http.Request) language.Tag {
	if r == nil {
		return c.tags[0]
	}

	tags, _, err := language.ParseAcceptLanguage(r.Header.Get(consts.HeaderAcceptLanguage))
	if err != nil || len(tags) == 0 {
		return c.tags[0]
	}

	_, idx, _ := c.matcher.Match(tags...)

	return c.tags[idx]
}

// GetLangFromLocales matches the provided BCP47 locales against the catalog languages.
func (c *DefaultMessageCatalog) GetLangFromLocales(locales ...string) language.Tag {
	tags := make([]language.Tag, 0, len(locales))

	for _, locale := range locales {
		if tag, err := language.Parse(locale); err == nil {
			tags = append(tags, tag)
		}
	}

	if len(tags) == 0 {
		return c.tags[0]
	}

	_, idx, _ := c.matcher.Match(tags...)

	return c.tags[idx]
}

var _ MessageCatalog = (*DefaultMessageCatalog)(nil)
