// Package templates renders the site's pages as templ components.
//
// Components are plain constructors returning templ.Component values. Copy
// arrives as typed structs from the i18n package and URLs are locale-prefixed
// site-relative paths, so rendering needs no request state.
package templates

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/murmurhq/website/internal/platform/branding"
	"github.com/murmurhq/website/internal/services/site/platform/i18n"
	"github.com/murmurhq/website/internal/services/site/seo"
)

// LanguageOption is one entry in the language switcher.
type LanguageOption struct {
	Code   string
	Label  string
	URL    string
	Active bool
}

// PageContext carries the shared chrome state into the layout. Robots, when
// set, becomes a robots meta tag; draft previews use it to stay unindexed.
type PageContext struct {
	Locale     string
	Meta       seo.Meta
	Chrome     i18n.ChromeCopy
	Languages  []LanguageOption
	Structured []templ.Component
	Robots     string
}

// Layout wraps a page body with the document head, navigation, and footer.
func Layout(page PageContext, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html>")
		b.WriteString(`<html lang="` + esc(page.Locale) + `">`)
		if err := writeHead(ctx, &b, page); err != nil {
			return err
		}
		b.WriteString("<body>")
		writeHeader(&b, page)
		b.WriteString(`<main id="main">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}

		var tail strings.Builder
		tail.WriteString("</main>")
		writeFooter(&tail, page)
		tail.WriteString(`<script src="/static/site.js" defer></script>`)
		tail.WriteString("</body></html>")
		_, err := io.WriteString(w, tail.String())
		return err
	})
}

func writeHead(ctx context.Context, b *strings.Builder, page PageContext) error {
	meta := page.Meta

	b.WriteString("<head>")
	b.WriteString(`<meta charset="utf-8">`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	b.WriteString("<title>" + esc(meta.Title) + "</title>")
	b.WriteString(`<meta name="description" content="` + esc(meta.Description) + `">`)
	name(b, "robots", page.Robots)
	if meta.Canonical != "" {
		b.WriteString(`<link rel="canonical" href="` + esc(meta.Canonical) + `">`)
	}
	for _, alt := range meta.Alternates {
		b.WriteString(`<link rel="alternate" hreflang="` + esc(alt.Hreflang) + `" href="` + esc(alt.URL) + `">`)
	}
	if meta.FeedURL != "" {
		b.WriteString(`<link rel="alternate" type="application/rss+xml" title="` + esc(branding.AppName) + `" href="` + esc(meta.FeedURL) + `">`)
	}

	property(b, "og:type", meta.Type)
	property(b, "og:site_name", branding.AppName)
	property(b, "og:title", meta.Title)
	property(b, "og:description", meta.Description)
	property(b, "og:url", meta.Canonical)
	property(b, "og:image", meta.Image)
	property(b, "og:locale", seo.OGLocale(meta.Locale))
	for _, alternate := range meta.AlternateOGLocales() {
		property(b, "og:locale:alternate", alternate)
	}

	name(b, "twitter:card", "summary_large_image")
	name(b, "twitter:site", seo.TwitterSite())
	name(b, "twitter:title", meta.Title)
	name(b, "twitter:description", meta.Description)
	name(b, "twitter:image", meta.Image)

	b.WriteString(`<link rel="icon" type="image/svg+xml" href="/static/logo.svg">`)
	b.WriteString(`<link rel="apple-touch-icon" href="/static/icons/icon-256.png">`)
	b.WriteString(`<link rel="stylesheet" href="/static/site.css">`)

	for _, structured := range page.Structured {
		if structured == nil {
			continue
		}
		if err := structured.Render(ctx, b); err != nil {
			return err
		}
	}

	b.WriteString("</head>")
	return nil
}

func writeHeader(b *strings.Builder, page PageContext) {
	chrome := page.Chrome
	lc := page.Locale

	b.WriteString(`<header class="site-header">`)
	b.WriteString(`<a class="brand" href="` + esc(href(lc, "/")) + `">` + esc(branding.AppName) + `</a>`)
	b.WriteString(`<nav class="site-nav">`)
	anchor(b, href(lc, "/")+"#features", chrome.NavFeatures, "")
	anchor(b, href(lc, "/use-cases/writers"), chrome.NavUseCases, "")
	anchor(b, href(lc, "/vs/talktype"), chrome.NavCompare, "")
	anchor(b, href(lc, "/blog"), chrome.NavBlog, "")
	anchor(b, href(lc, "/download"), chrome.NavDownload, "nav-cta")
	b.WriteString("</nav>")

	b.WriteString(`<nav class="lang-switcher" aria-label="` + esc(chrome.NavLanguage) + `">`)
	for _, option := range page.Languages {
		b.WriteString(`<a href="` + esc(option.URL) + `" hreflang="` + esc(option.Code) + `"`)
		if option.Active {
			b.WriteString(` class="active" aria-current="true"`)
		}
		b.WriteString(">" + esc(option.Label) + "</a>")
	}
	b.WriteString("</nav>")
	b.WriteString("</header>")
}

func writeFooter(b *strings.Builder, page PageContext) {
	chrome := page.Chrome
	lc := page.Locale

	b.WriteString(`<footer class="site-footer">`)
	b.WriteString(`<div class="footer-brand"><p class="brand">` + esc(branding.AppName) + `</p><p>` + esc(chrome.FooterTag) + `</p></div>`)

	b.WriteString(`<nav class="footer-col"><h3>` + esc(chrome.FooterProd) + `</h3>`)
	anchor(b, href(lc, "/")+"#features", chrome.NavFeatures, "")
	anchor(b, href(lc, "/vs/talktype"), chrome.NavCompare, "")
	anchor(b, href(lc, "/download"), chrome.FooterDl, "")
	b.WriteString("</nav>")

	b.WriteString(`<nav class="footer-col"><h3>` + esc(chrome.FooterRes) + `</h3>`)
	anchor(b, href(lc, "/blog"), chrome.FooterBlog, "")
	anchor(b, href(lc, "/rss.xml"), chrome.FooterRSS, "")
	b.WriteString("</nav>")

	year := strconv.Itoa(time.Now().Year())
	b.WriteString(`<p class="footer-legal">&copy; ` + year + " " + esc(branding.AppName) + ". " + esc(chrome.FooterRights) + "</p>")
	b.WriteString("</footer>")
}

func property(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteString(`<meta property="` + esc(key) + `" content="` + esc(value) + `">`)
}

func name(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteString(`<meta name="` + esc(key) + `" content="` + esc(value) + `">`)
}

func anchor(b *strings.Builder, url, label, class string) {
	b.WriteString(`<a href="` + esc(url) + `"`)
	if class != "" {
		b.WriteString(` class="` + class + `"`)
	}
	b.WriteString(">" + esc(label) + "</a>")
}

// href prefixes a site-relative path with the locale segment.
func href(locale, rest string) string {
	if rest == "" || rest == "/" {
		return "/" + locale
	}
	return "/" + locale + rest
}

func esc(value string) string {
	return templ.EscapeString(value)
}
