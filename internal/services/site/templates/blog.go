package templates

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/murmurhq/website/internal/services/site/blog"
	"github.com/murmurhq/website/internal/services/site/platform/i18n"
)

// BlogCard is one post entry on the blog index.
type BlogCard struct {
	Title       string
	Excerpt     string
	URL         string
	DateISO     string
	Date        string
	Tags        []string
	ReadingNote string
}

// BlogIndex renders the blog index body.
func BlogIndex(copy i18n.BlogCopy, cards []BlogCard) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<section class="blog-index">`)
		b.WriteString("<h1>" + esc(copy.Title) + "</h1>")
		b.WriteString(`<p class="section-subtitle">` + esc(copy.Description) + "</p>")

		if len(cards) == 0 {
			b.WriteString(`<p class="blog-empty">` + esc(copy.Empty) + "</p>")
		}
		for _, card := range cards {
			b.WriteString(`<article class="post-card">`)
			b.WriteString(`<p class="post-meta">`)
			b.WriteString(`<time datetime="` + esc(card.DateISO) + `">` + esc(card.Date) + "</time>")
			if card.ReadingNote != "" {
				b.WriteString(`<span class="dot">&middot;</span>` + esc(card.ReadingNote))
			}
			b.WriteString("</p>")
			b.WriteString(`<h2><a href="` + esc(card.URL) + `">` + esc(card.Title) + "</a></h2>")
			b.WriteString("<p>" + esc(card.Excerpt) + "</p>")
			if len(card.Tags) > 0 {
				b.WriteString(`<p class="post-tags">`)
				for _, tag := range card.Tags {
					b.WriteString(`<span class="tag">` + esc(tag) + "</span>")
				}
				b.WriteString("</p>")
			}
			b.WriteString(`<p><a class="read-more" href="` + esc(card.URL) + `">` + esc(copy.ReadMore) + "</a></p>")
			b.WriteString("</article>")
		}

		b.WriteString("</section>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ArticleParams carries one rendered post into the article template.
type ArticleParams struct {
	Title       string
	Byline      string
	DateISO     string
	Date        string
	Updated     string
	ReadingNote string
	Draft       bool
	TOC         []blog.TOCEntry
	BodyHTML    string
	BackURL     string
	Copy        i18n.BlogCopy
}

// Article renders an article page body: header, TOC sidebar, and prose.
// BodyHTML is trusted output of the markdown renderer and written unescaped.
func Article(params ArticleParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<article class="article">`)

		if params.Draft {
			b.WriteString(`<p class="draft-banner">` + esc(params.Copy.DraftBanner) + "</p>")
		}

		b.WriteString(`<header class="article-header">`)
		b.WriteString(`<p class="post-meta">`)
		b.WriteString(`<time datetime="` + esc(params.DateISO) + `">` + esc(params.Date) + "</time>")
		b.WriteString(`<span class="dot">&middot;</span>` + esc(params.Byline))
		if params.ReadingNote != "" {
			b.WriteString(`<span class="dot">&middot;</span>` + esc(params.ReadingNote))
		}
		b.WriteString("</p>")
		b.WriteString("<h1>" + esc(params.Title) + "</h1>")
		if params.Updated != "" {
			b.WriteString(`<p class="article-updated">` + esc(params.Updated) + "</p>")
		}
		b.WriteString("</header>")

		b.WriteString(`<div class="article-layout">`)
		writeTOC(&b, params.Copy.TOCTitle, params.TOC)
		b.WriteString(`<div class="prose">`)
		b.WriteString(params.BodyHTML)
		b.WriteString("</div>")
		b.WriteString("</div>")

		b.WriteString(`<p class="back-link"><a href="` + esc(params.BackURL) + `">` + esc(params.Copy.BackToBlog) + "</a></p>")
		b.WriteString("</article>")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeTOC(b *strings.Builder, title string, entries []blog.TOCEntry) {
	if len(entries) == 0 {
		return
	}
	b.WriteString(`<aside class="toc" data-toc>`)
	b.WriteString("<h2>" + esc(title) + "</h2>")
	b.WriteString("<ol>")
	for _, entry := range entries {
		b.WriteString(`<li class="toc-level-` + strconv.Itoa(entry.Level) + `">`)
		b.WriteString(`<a href="#` + esc(entry.ID) + `">` + esc(entry.Text) + "</a>")
		b.WriteString("</li>")
	}
	b.WriteString("</ol>")
	b.WriteString("</aside>")
}
