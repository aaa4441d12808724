package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/murmurhq/website/internal/services/site/platform/i18n"
)

// Download renders the download page body with one card per platform.
func Download(locale string, copy i18n.DownloadCopy) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder

		writeHero(&b, copy.HeroHook, copy.HeroSubhook, nil, nil, "")

		b.WriteString(`<section class="platforms">`)
		writePlatformCard(&b, copy.MacOS, "https://downloads.murmur.app/Murmur.dmg")
		writePlatformCard(&b, copy.Windows, "https://downloads.murmur.app/MurmurSetup.exe")
		b.WriteString("</section>")

		if copy.Note != "" {
			b.WriteString(`<p class="download-note">` + esc(copy.Note) + "</p>")
		}

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writePlatformCard(b *strings.Builder, platform i18n.PlatformCopy, url string) {
	b.WriteString(`<div class="platform-card">`)
	b.WriteString("<h2>" + esc(platform.Title) + "</h2>")
	b.WriteString(`<p class="requirements">` + esc(platform.Requirements) + "</p>")
	b.WriteString(`<a class="button primary" href="` + esc(url) + `">` + esc(platform.Button) + "</a>")
	b.WriteString("</div>")
}

// NotFound renders the localized 404 page body.
func NotFound(locale string, copy i18n.NotFoundCopy) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<section class="not-found">`)
		b.WriteString("<h1>" + esc(copy.Title) + "</h1>")
		b.WriteString("<p>" + esc(copy.Body) + "</p>")
		b.WriteString(`<p><a class="button primary" href="` + esc(href(locale, "/")) + `">` + esc(copy.Back) + "</a></p>")
		b.WriteString("</section>")

		_, err := io.WriteString(w, b.String())
		return err
	})
}
