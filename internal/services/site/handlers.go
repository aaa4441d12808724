package site

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/murmurhq/website/internal/platform/branding"
	"github.com/murmurhq/website/internal/platform/dictionary"
	"github.com/murmurhq/website/internal/services/site/blog"
	"github.com/murmurhq/website/internal/services/site/feed"
	"github.com/murmurhq/website/internal/services/site/locale"
	"github.com/murmurhq/website/internal/services/site/platform/httpx"
	"github.com/murmurhq/website/internal/services/site/platform/i18n"
	"github.com/murmurhq/website/internal/services/site/preview"
	"github.com/murmurhq/website/internal/services/site/seo"
	"github.com/murmurhq/website/internal/services/site/sitemap"
	"github.com/murmurhq/website/internal/services/site/storage"
	"github.com/murmurhq/website/internal/services/site/templates"
)

type handler struct {
	urls    seo.Builder
	store   storage.SubscriberStore
	preview preview.Config
}

// handlePages serves the localized page tree. The bare root redirects to the
// resolved language; everything else either carries a locale prefix or 404s.
func (h *handler) handlePages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if r.URL.Path == "/" {
		code, fromQuery := locale.Resolve(r)
		if fromQuery {
			locale.SetCookie(w, code)
		}
		http.Redirect(w, r, locale.PathFor(code, "/"), http.StatusFound)
		return
	}

	code, rest, ok := locale.SplitPath(r.URL.Path)
	if !ok {
		h.renderNotFound(w, r)
		return
	}

	switch {
	case rest == "/":
		h.renderLanding(w, r, code)
	case rest == "/blog":
		h.renderBlogIndex(w, r, code)
	case strings.HasPrefix(rest, "/blog/"):
		h.renderArticle(w, r, code, strings.TrimPrefix(rest, "/blog/"))
	case strings.HasPrefix(rest, "/use-cases/"):
		h.renderUseCase(w, r, code, strings.TrimPrefix(rest, "/use-cases/"))
	case strings.HasPrefix(rest, "/vs/"):
		h.renderVersus(w, r, code, strings.TrimPrefix(rest, "/vs/"))
	case rest == "/download":
		h.renderDownload(w, r, code)
	case rest == "/rss.xml":
		h.serveFeed(w, code)
	default:
		h.renderNotFound(w, r)
	}
}

func (h *handler) renderLanding(w http.ResponseWriter, r *http.Request, code string) {
	copy := i18n.Landing(code)
	meta := h.urls.Page(code, "/", i18n.WithProductSuffix(copy.Title), copy.Description)
	page := h.page(r, code, meta,
		h.urls.Organization(),
		h.urls.SoftwareApplication(copy.Description),
		h.urls.FAQPage(faqItems(copy.FAQ)),
	)
	h.writePage(w, r, http.StatusOK, page, templates.Landing(code, copy))
}

func (h *handler) renderUseCase(w http.ResponseWriter, r *http.Request, code, slug string) {
	copy, ok := i18n.UseCase(code, slug)
	if !ok {
		h.renderNotFound(w, r)
		return
	}
	meta := h.urls.Page(code, "/use-cases/"+slug, i18n.WithProductSuffix(copy.Title), copy.Description)
	page := h.page(r, code, meta, h.urls.BreadcrumbList(h.crumbs(code, copy.Title)))
	h.writePage(w, r, http.StatusOK, page, templates.UseCase(code, copy))
}

func (h *handler) renderVersus(w http.ResponseWriter, r *http.Request, code, slug string) {
	copy, ok := i18n.Versus(code, slug)
	if !ok {
		h.renderNotFound(w, r)
		return
	}
	meta := h.urls.Page(code, "/vs/"+slug, i18n.WithProductSuffix(copy.Title), copy.Description)
	page := h.page(r, code, meta,
		h.urls.BreadcrumbList(h.crumbs(code, copy.Title)),
		h.urls.FAQPage(faqItems(copy.FAQ)),
	)
	h.writePage(w, r, http.StatusOK, page, templates.Versus(code, copy))
}

func (h *handler) renderDownload(w http.ResponseWriter, r *http.Request, code string) {
	copy := i18n.Download(code)
	meta := h.urls.Page(code, "/download", i18n.WithProductSuffix(copy.Title), copy.Description)
	page := h.page(r, code, meta, h.urls.SoftwareApplication(copy.Description))
	h.writePage(w, r, http.StatusOK, page, templates.Download(code, copy))
}

func (h *handler) renderBlogIndex(w http.ResponseWriter, r *http.Request, code string) {
	copy := i18n.Blog(code)
	posts := blog.Posts()
	cards := make([]templates.BlogCard, 0, len(posts))
	for _, post := range posts {
		card := templates.BlogCard{
			Title:   post.LocalizedTitle(code),
			Excerpt: post.LocalizedExcerpt(code),
			URL:     locale.PathFor(code, "/blog/"+post.Slug),
			DateISO: post.Date,
			Date:    blog.FormatDate(code, post.Date),
			Tags:    post.Tags,
		}
		if minutes, err := blog.ReadingMinutes(post, code); err == nil {
			card.ReadingNote = i18n.MinuteRead(code, minutes)
		}
		cards = append(cards, card)
	}
	meta := h.urls.Page(code, "/blog", i18n.WithProductSuffix(copy.Title), copy.Description)
	page := h.page(r, code, meta, h.urls.BreadcrumbList(h.crumbs(code, copy.Title)))
	h.writePage(w, r, http.StatusOK, page, templates.BlogIndex(copy, cards))
}

func (h *handler) renderArticle(w http.ResponseWriter, r *http.Request, code, slug string) {
	post, ok := blog.BySlug(slug)
	if !ok {
		h.renderNotFound(w, r)
		return
	}
	if post.Draft && !h.previewAllowed(r, post.Slug) {
		h.renderNotFound(w, r)
		return
	}

	article, err := blog.RenderArticle(post, code)
	if err != nil {
		log.Printf("render article %s: %v", post.Slug, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	copy := i18n.Blog(code)
	title := post.LocalizedTitle(code)
	params := templates.ArticleParams{
		Title:       title,
		Byline:      i18n.ByAuthor(code, post.Author),
		DateISO:     post.Date,
		Date:        blog.FormatDate(code, post.Date),
		ReadingNote: i18n.MinuteRead(code, article.ReadMinutes),
		Draft:       post.Draft,
		TOC:         article.TOC,
		BodyHTML:    article.HTML,
		BackURL:     locale.PathFor(code, "/blog"),
		Copy:        copy,
	}
	if post.Updated != "" {
		params.Updated = i18n.UpdatedOn(code, blog.FormatDate(code, post.Updated))
	}

	meta := h.urls.Page(code, "/blog/"+post.Slug, i18n.WithProductSuffix(title), post.LocalizedExcerpt(code)).Article()
	page := h.page(r, code, meta,
		h.urls.BlogPosting(seo.BlogPostingParams{
			Headline:      title,
			Description:   post.LocalizedExcerpt(code),
			URL:           meta.Canonical,
			DatePublished: post.Date,
			DateModified:  post.Updated,
			AuthorName:    post.Author,
			Locale:        code,
		}),
		h.urls.BreadcrumbList([]seo.Crumb{
			{Name: branding.AppName, URL: h.urls.Absolute(locale.PathFor(code, "/"))},
			{Name: copy.Title, URL: h.urls.Absolute(locale.PathFor(code, "/blog"))},
			{Name: title},
		}),
	)
	if post.Draft {
		page.Robots = "noindex"
	}
	h.writePage(w, r, http.StatusOK, page, templates.Article(params))
}

// previewAllowed reports whether the request carries a valid preview token
// for the draft slug.
func (h *handler) previewAllowed(r *http.Request, slug string) bool {
	if !h.preview.Enabled() {
		return false
	}
	token := strings.TrimSpace(r.URL.Query().Get(preview.QueryParam))
	if token == "" {
		return false
	}
	return preview.Verify(h.preview, token, slug) == nil
}

func (h *handler) renderNotFound(w http.ResponseWriter, r *http.Request) {
	code, _, ok := locale.SplitPath(r.URL.Path)
	if !ok {
		code, _ = locale.Resolve(r)
	}
	copy := i18n.NotFound(code)
	page := h.page(r, code, seo.Meta{
		Title:       i18n.WithProductSuffix(copy.Title),
		Description: i18n.MetaDescription(code),
		Locale:      code,
		Type:        "website",
	})
	page.Robots = "noindex"
	h.writePage(w, r, http.StatusNotFound, page, templates.NotFound(code, copy))
}

func (h *handler) handleDefaultFeed(w http.ResponseWriter, _ *http.Request) {
	h.serveFeed(w, dictionary.DefaultLocale)
}

func (h *handler) serveFeed(w http.ResponseWriter, code string) {
	body, err := feed.Render(h.urls, code)
	if err != nil {
		log.Printf("render feed %s: %v", code, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	_ = httpx.WriteXML(w, http.StatusOK, feed.ContentType, body)
}

func (h *handler) handleSitemap(w http.ResponseWriter, _ *http.Request) {
	body, err := sitemap.Render(h.urls)
	if err != nil {
		log.Printf("render sitemap: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	_ = httpx.WriteXML(w, http.StatusOK, "", body)
}

func (h *handler) handleRobots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, sitemap.Robots(h.urls))
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// page assembles the shared chrome context for one localized page.
func (h *handler) page(r *http.Request, code string, meta seo.Meta, structured ...templ.Component) templates.PageContext {
	options := locale.Options(r.URL.Path, code)
	languages := make([]templates.LanguageOption, 0, len(options))
	for _, option := range options {
		languages = append(languages, templates.LanguageOption{
			Code:   option.Code,
			Label:  option.Label,
			URL:    option.URL,
			Active: option.Active,
		})
	}
	return templates.PageContext{
		Locale:     code,
		Meta:       meta,
		Chrome:     i18n.Chrome(code),
		Languages:  languages,
		Structured: structured,
	}
}

// writePage renders the full document into a buffer first so template errors
// become a clean 500 instead of a torn page.
func (h *handler) writePage(w http.ResponseWriter, r *http.Request, status int, page templates.PageContext, body templ.Component) {
	var rendered bytes.Buffer
	if err := templates.Layout(page, body).Render(httpx.RequestContext(r), &rendered); err != nil {
		log.Printf("render page %s: %v", r.URL.Path, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	_ = httpx.WriteHTML(w, status, rendered.String())
}

func (h *handler) crumbs(code, title string) []seo.Crumb {
	return []seo.Crumb{
		{Name: branding.AppName, URL: h.urls.Absolute(locale.PathFor(code, "/"))},
		{Name: title},
	}
}

func faqItems(entries []i18n.QA) []seo.QAItem {
	items := make([]seo.QAItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, seo.QAItem{Question: entry.Question, Answer: entry.Answer})
	}
	return items
}
