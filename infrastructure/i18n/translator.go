// Package i18n provides the locale lookup and display preferences consulted
// by the presentation layer. Nothing here affects computed scores.
package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/rustickingdom/talentcalc/internal/ports"
)

// Locale is a supported display language.
type Locale string

// Supported locales.
const (
	English Locale = "en"
	Arabic  Locale = "ar"
)

// supported is ordered to line up with the matcher's tag list; the first
// entry is the fallback.
var (
	supported = []Locale{English, Arabic}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.Arabic})
)

// Parse matches a BCP 47 tag or Accept-Language style list against the
// supported locales. Anything that does not match falls back to English.
func Parse(tag string) Locale {
	tags, _, err := language.ParseAcceptLanguage(strings.ReplaceAll(tag, "_", "-"))
	if err != nil || len(tags) == 0 {
		return English
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(supported) {
		return English
	}
	return supported[idx]
}

// Tag returns the language tag for l.
func (l Locale) Tag() language.Tag {
	if l == Arabic {
		return language.Arabic
	}
	return language.English
}

var _ ports.Translator = Translator{}

// Translator looks up display strings for one locale. The zero value
// translates to English.
type Translator struct {
	locale Locale
}

// NewTranslator returns a translator for locale.
func NewTranslator(locale Locale) Translator {
	if _, ok := catalog[locale]; !ok {
		locale = English
	}
	return Translator{locale: locale}
}

func (t Translator) active() Locale {
	if t.locale == "" {
		return English
	}
	return t.locale
}

// T returns the display string for key, or key itself when the locale has
// no entry for it.
func (t Translator) T(key string) string {
	if s, ok := catalog[t.active()][key]; ok {
		return s
	}
	return key
}

// Locale returns the active locale's tag string.
func (t Translator) Locale() string { return string(t.active()) }

// Tag returns the active locale's language tag.
func (t Translator) Tag() language.Tag { return t.active().Tag() }

// Direction returns "rtl" for Arabic and "ltr" otherwise.
func (t Translator) Direction() string {
	if t.active() == Arabic {
		return "rtl"
	}
	return "ltr"
}

// Toggle returns a translator for the other supported locale.
func (t Translator) Toggle() Translator {
	if t.active() == English {
		return NewTranslator(Arabic)
	}
	return NewTranslator(English)
}
