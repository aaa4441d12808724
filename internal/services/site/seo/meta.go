// Package seo builds per-page metadata and schema.org structured data.
package seo

import (
	"strings"

	"github.com/murmurhq/website/internal/platform/branding"
	"github.com/murmurhq/website/internal/platform/dictionary"
	"github.com/murmurhq/website/internal/services/site/locale"
)

// Meta carries everything the head template needs for one page: title,
// description, canonical URL, OpenGraph and Twitter card values, and the
// hreflang alternates.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Locale      string
	Type        string
	Image       string
	Alternates  []Alternate
	FeedURL     string
}

// Alternate is one hreflang link in the page head.
type Alternate struct {
	Hreflang string
	URL      string
}

// Builder resolves page metadata against the site's public base URL.
type Builder struct {
	baseURL string
}

// NewBuilder returns a Builder for the given public base URL. A trailing
// slash is stripped so joined paths never double up.
func NewBuilder(baseURL string) Builder {
	return Builder{baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/")}
}

// BaseURL returns the normalized base URL.
func (b Builder) BaseURL() string {
	return b.baseURL
}

// Absolute resolves a site-relative path against the base URL.
func (b Builder) Absolute(path string) string {
	if path == "" || path == "/" {
		return b.baseURL + "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return b.baseURL + path
}

// Page assembles metadata for a localized page. rest is the path without its
// locale prefix, "/" for the landing page. Every page advertises an hreflang
// alternate per supported locale plus x-default pointing at English.
func (b Builder) Page(loc, rest, title, description string) Meta {
	code := dictionary.ParseLocale(loc)

	alternates := make([]Alternate, 0, len(dictionary.Supported)+1)
	for _, supported := range dictionary.Supported {
		alternates = append(alternates, Alternate{
			Hreflang: supported,
			URL:      b.Absolute(locale.PathFor(supported, rest)),
		})
	}
	alternates = append(alternates, Alternate{
		Hreflang: "x-default",
		URL:      b.Absolute(locale.PathFor(dictionary.DefaultLocale, rest)),
	})

	return Meta{
		Title:       title,
		Description: description,
		Canonical:   b.Absolute(locale.PathFor(code, rest)),
		Locale:      code,
		Type:        "website",
		Image:       b.Absolute("/static/og/card-" + code + ".png"),
		Alternates:  alternates,
		FeedURL:     b.Absolute(locale.PathFor(code, "/rss.xml")),
	}
}

// Article returns a copy of the metadata marked as an article page.
func (m Meta) Article() Meta {
	m.Type = "article"
	return m
}

// OGLocale maps a site locale to OpenGraph's locale format.
func OGLocale(code string) string {
	if dictionary.ParseLocale(code) == "es" {
		return "es_ES"
	}
	return "en_US"
}

// AlternateOGLocales lists the OpenGraph codes for the page's other locales.
func (m Meta) AlternateOGLocales() []string {
	var out []string
	for _, code := range dictionary.Supported {
		if code == m.Locale {
			continue
		}
		out = append(out, OGLocale(code))
	}
	return out
}

// TwitterSite is the handle credited on Twitter cards.
func TwitterSite() string {
	return branding.TwitterHandle
}
