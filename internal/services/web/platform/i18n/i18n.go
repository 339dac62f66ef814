// Package i18n resolves request languages and message printers for web pages.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "solcalc_lang"
)

var (
	supportedTags = []language.Tag{language.AmericanEnglish, language.BrazilianPortuguese}
	matcher       = language.NewMatcher(supportedTags)
)

// Localizer provides translated strings for templates and handlers.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// Default returns the default language tag.
func Default() language.Tag {
	return supportedTags[0]
}

// ParseTag maps a raw language value to a supported tag.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Und, false
	}
	return supportedTags[idx], true
}

// MatchTags returns the best supported tag for an ordered preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return Default()
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default()
	}
	return supportedTags[idx]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag determines the best language tag for the request.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}

	if r.URL != nil {
		if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
			if tag, ok := ParseTag(langValue); ok {
				return tag, true
			}
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return MatchTags(tags), false
		}
	}

	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer resolves a printer and language string for a request,
// persisting an explicit ?lang= choice.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return Printer(tag), tag.String()
}
