package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/murmurhq/website/internal/platform/branding"
	"github.com/murmurhq/website/internal/services/site/platform/i18n"
)

// Versus renders a competitor comparison page body.
func Versus(locale string, copy i18n.VersusCopy) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder

		primary := &cta{label: copy.CTA, url: href(locale, "/download")}
		writeHero(&b, copy.HeroHook, copy.HeroSubhook, primary, nil, "")

		if copy.Intro != "" {
			b.WriteString(`<section class="versus-intro"><p>` + esc(copy.Intro) + "</p></section>")
		}

		b.WriteString(`<section class="versus-table">`)
		rows := make([][3]string, 0, len(copy.Rows))
		for _, row := range copy.Rows {
			rows = append(rows, [3]string{row.Label, row.Us, row.Them})
		}
		writeComparisonTable(&b, copy.FeatureColumn, branding.AppName, copy.Competitor, rows)
		b.WriteString("</section>")

		if copy.Verdict != "" {
			b.WriteString(`<section class="verdict">`)
			b.WriteString("<h2>" + esc(copy.VerdictTitle) + "</h2>")
			b.WriteString("<p>" + esc(copy.Verdict) + "</p>")
			b.WriteString("</section>")
		}

		writeFAQ(&b, copy.FAQTitle, copy.FAQ)
		writeCTABand(&b, copy.CTA, href(locale, "/download"))

		_, err := io.WriteString(w, b.String())
		return err
	})
}
