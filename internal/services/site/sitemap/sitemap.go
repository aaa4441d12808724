// Package sitemap renders sitemap.xml and robots.txt.
package sitemap

import (
	"encoding/xml"
	"fmt"

	"github.com/murmurhq/website/internal/platform/dictionary"
	"github.com/murmurhq/website/internal/services/site/blog"
	"github.com/murmurhq/website/internal/services/site/locale"
	"github.com/murmurhq/website/internal/services/site/platform/i18n"
	"github.com/murmurhq/website/internal/services/site/seo"
)

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	NS      string     `xml:"xmlns,attr"`
	XHTMLNS string     `xml:"xmlns:xhtml,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string      `xml:"loc"`
	LastMod    string      `xml:"lastmod,omitempty"`
	Alternates []xhtmlLink `xml:"xhtml:link"`
}

type xhtmlLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

type route struct {
	rest    string
	lastMod string
}

// Render produces the sitemap covering every public localized route. Each
// locale's URL lists the full hreflang alternate cluster so crawlers can pair
// the translations.
func Render(urls seo.Builder) ([]byte, error) {
	routes := publicRoutes()
	entries := make([]urlEntry, 0, len(routes)*len(dictionary.Supported))
	for _, rt := range routes {
		alternates := alternatesFor(urls, rt.rest)
		for _, code := range dictionary.Supported {
			entries = append(entries, urlEntry{
				Loc:        urls.Absolute(locale.PathFor(code, rt.rest)),
				LastMod:    rt.lastMod,
				Alternates: alternates,
			})
		}
	}

	doc := urlSet{
		NS:      "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTMLNS: "http://www.w3.org/1999/xhtml",
		URLs:    entries,
	}
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return out, nil
}

// Robots returns the robots.txt body. Everything is crawlable.
func Robots(urls seo.Builder) string {
	return "User-agent: *\nAllow: /\n\nSitemap: " + urls.Absolute("/sitemap.xml") + "\n"
}

func publicRoutes() []route {
	routes := []route{{rest: "/"}}
	for _, slug := range i18n.UseCaseSlugs() {
		routes = append(routes, route{rest: "/use-cases/" + slug})
	}
	for _, slug := range i18n.VersusSlugs() {
		routes = append(routes, route{rest: "/vs/" + slug})
	}
	routes = append(routes, route{rest: "/blog"})
	for _, post := range blog.Posts() {
		routes = append(routes, route{rest: "/blog/" + post.Slug, lastMod: lastMod(post)})
	}
	routes = append(routes, route{rest: "/download"})
	return routes
}

func lastMod(post blog.Post) string {
	if post.Updated != "" {
		return post.Updated
	}
	return post.Date
}

func alternatesFor(urls seo.Builder, rest string) []xhtmlLink {
	links := make([]xhtmlLink, 0, len(dictionary.Supported)+1)
	for _, code := range dictionary.Supported {
		links = append(links, xhtmlLink{
			Rel:      "alternate",
			Hreflang: code,
			Href:     urls.Absolute(locale.PathFor(code, rest)),
		})
	}
	links = append(links, xhtmlLink{
		Rel:      "alternate",
		Hreflang: "x-default",
		Href:     urls.Absolute(locale.PathFor(dictionary.DefaultLocale, rest)),
	})
	return links
}
