package blog

import (
	"bytes"
	"embed"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/murmurhq/website/internal/platform/dictionary"
)

//go:embed content/*.md
var contentFS embed.FS

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// wordsPerMinute is the reading-speed assumption behind the estimate shown
// on article pages.
const wordsPerMinute = 200

// Article is a fully rendered post body.
type Article struct {
	HTML        string
	TOC         []TOCEntry
	ReadMinutes int
}

// RenderArticle renders a post's Markdown body for a locale. A missing
// translation falls back to the English body.
func RenderArticle(post Post, locale string) (Article, error) {
	source, err := readBody(post.Slug, locale)
	if err != nil {
		return Article{}, err
	}

	var buf bytes.Buffer
	if err := markdown.Convert(source, &buf); err != nil {
		return Article{}, fmt.Errorf("render post %s: %w", post.Slug, err)
	}

	entries, html, err := Outline(buf.String())
	if err != nil {
		return Article{}, fmt.Errorf("outline post %s: %w", post.Slug, err)
	}

	return Article{
		HTML:        html,
		TOC:         entries,
		ReadMinutes: readingMinutes(source),
	}, nil
}

// ReadingMinutes estimates reading time from the post's Markdown source
// without rendering it. The blog index uses this for its cards.
func ReadingMinutes(post Post, locale string) (int, error) {
	source, err := readBody(post.Slug, locale)
	if err != nil {
		return 0, err
	}
	return readingMinutes(source), nil
}

func readBody(slug, locale string) ([]byte, error) {
	code := dictionary.ParseLocale(locale)
	source, err := contentFS.ReadFile("content/" + slug + "." + code + ".md")
	if err == nil {
		return source, nil
	}
	if code == dictionary.DefaultLocale {
		return nil, fmt.Errorf("read post body %s: %w", slug, err)
	}
	source, err = contentFS.ReadFile("content/" + slug + "." + dictionary.DefaultLocale + ".md")
	if err != nil {
		return nil, fmt.Errorf("read post body %s: %w", slug, err)
	}
	return source, nil
}

func readingMinutes(source []byte) int {
	words := len(strings.Fields(string(source)))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
