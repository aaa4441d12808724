// Package feed renders the per-locale blog RSS feeds.
package feed

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/murmurhq/website/internal/platform/dictionary"
	"github.com/murmurhq/website/internal/services/site/blog"
	"github.com/murmurhq/website/internal/services/site/locale"
	"github.com/murmurhq/website/internal/services/site/platform/i18n"
	"github.com/murmurhq/website/internal/services/site/seo"
)

// ContentType is the media type feeds are served with.
const ContentType = "application/rss+xml; charset=utf-8"

type rssDoc struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	AtomNS  string   `xml:"xmlns:atom,attr"`
	Channel channel  `xml:"channel"`
}

type channel struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Language    string   `xml:"language"`
	Self        atomLink `xml:"atom:link"`
	Items       []item   `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type item struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        guid   `xml:"guid"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate,omitempty"`
}

type guid struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}

// Render produces the RSS document for a locale, one item per published post,
// newest first. The caller prepends the XML declaration when serving it.
func Render(urls seo.Builder, loc string) ([]byte, error) {
	code := dictionary.ParseLocale(loc)
	copy := i18n.Blog(code)

	posts := blog.Posts()
	items := make([]item, 0, len(posts))
	for _, post := range posts {
		link := urls.Absolute(locale.PathFor(code, "/blog/"+post.Slug))
		items = append(items, item{
			Title:       post.LocalizedTitle(code),
			Link:        link,
			GUID:        guid{Value: link, IsPermaLink: true},
			Description: post.LocalizedExcerpt(code),
			PubDate:     pubDate(post),
		})
	}

	doc := rssDoc{
		Version: "2.0",
		AtomNS:  "http://www.w3.org/2005/Atom",
		Channel: channel{
			Title:       copy.Title,
			Link:        urls.Absolute(locale.PathFor(code, "/blog")),
			Description: copy.Description,
			Language:    code,
			Self: atomLink{
				Href: urls.Absolute(locale.PathFor(code, "/rss.xml")),
				Rel:  "self",
				Type: "application/rss+xml",
			},
			Items: items,
		},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal rss feed: %w", err)
	}
	return out, nil
}

// pubDate converts the registry's ISO publish date to the RFC 1123 form feed
// readers expect. A malformed date yields no pubDate instead of a broken feed.
func pubDate(post blog.Post) string {
	published, ok := post.PublishedAt()
	if !ok {
		return ""
	}
	return published.UTC().Format(http.TimeFormat)
}
