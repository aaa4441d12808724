// Package locale resolves the request language for the website.
//
// Localized pages carry their locale as the first path segment, so the path
// is authoritative. Resolution from query, cookie, and Accept-Language only
// decides where the bare root redirects to.
package locale

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/murmurhq/website/internal/platform/dictionary"
)

const (
	// Param is the query parameter used to select a language on the root
	// redirect, for example /?lang=es.
	Param = "lang"
	// CookieName stores the visitor's language preference.
	CookieName = "murmur_lang"
)

var (
	supportedTags = []language.Tag{language.English, language.Spanish}
	matcher       = language.NewMatcher(supportedTags)

	nativeNames = map[string]string{
		"en": "English",
		"es": "Español",
	}
)

// Option is one entry in the language switcher.
type Option struct {
	Code   string
	Label  string
	URL    string
	Active bool
}

// Resolve determines the locale for a request that carries no path locale.
// The bool reports whether the choice came from the query parameter and
// should be persisted as a cookie.
func Resolve(r *http.Request) (string, bool) {
	if r == nil {
		return dictionary.DefaultLocale, false
	}

	if value := strings.TrimSpace(r.URL.Query().Get(Param)); value != "" {
		if dictionary.IsSupported(strings.ToLower(value)) {
			return strings.ToLower(value), true
		}
	}

	if cookie, err := r.Cookie(CookieName); err == nil {
		if dictionary.IsSupported(cookie.Value) {
			return cookie.Value, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, index, _ := matcher.Match(tags...)
			return dictionary.Supported[index], false
		}
	}

	return dictionary.DefaultLocale, false
}

// SetCookie persists the selected locale on the response.
func SetCookie(w http.ResponseWriter, locale string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    dictionary.ParseLocale(locale),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// SplitPath separates the locale prefix from the rest of the path.
// "/es/blog/x" yields ("es", "/blog/x", true) and "/en" yields ("en", "/",
// true). Paths without a supported locale prefix report ok false.
func SplitPath(path string) (string, string, bool) {
	trimmed := strings.TrimPrefix(path, "/")
	segment, rest, _ := strings.Cut(trimmed, "/")
	if !dictionary.IsSupported(segment) {
		return "", "", false
	}
	if rest == "" {
		return segment, "/", true
	}
	return segment, "/" + rest, true
}

// PathFor prefixes a site-relative path with the locale segment.
func PathFor(locale, rest string) string {
	code := dictionary.ParseLocale(locale)
	if rest == "" || rest == "/" {
		return "/" + code
	}
	if !strings.HasPrefix(rest, "/") {
		rest = "/" + rest
	}
	return "/" + code + rest
}

// AlternateURL returns the same page in another locale. Paths without a
// locale prefix are returned unchanged.
func AlternateURL(path, locale string) string {
	_, rest, ok := SplitPath(path)
	if !ok {
		return path
	}
	return PathFor(locale, rest)
}

// NativeName returns the language's name in itself, for switcher labels.
func NativeName(locale string) string {
	if name, ok := nativeNames[locale]; ok {
		return name
	}
	return locale
}

// Options returns the language switcher entries for the current page.
func Options(path, active string) []Option {
	options := make([]Option, 0, len(dictionary.Supported))
	for _, code := range dictionary.Supported {
		options = append(options, Option{
			Code:   code,
			Label:  NativeName(code),
			URL:    AlternateURL(path, code),
			Active: code == active,
		})
	}
	return options
}
