package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/murmurhq/website/internal/services/site/platform/i18n"
)

// Landing renders the landing page body: hero, feature grid, comparison
// table, FAQ, and the newsletter signup.
func Landing(locale string, copy i18n.LandingCopy) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder

		primary := &cta{label: copy.HeroCTA, url: href(locale, "/download")}
		secondary := &cta{label: copy.HeroSecondaryCTA, url: href(locale, "/") + "#features"}
		writeHero(&b, copy.HeroHook, copy.HeroSubhook, primary, secondary, copy.HeroNote)

		b.WriteString(`<section class="features" id="features">`)
		b.WriteString("<h2>" + esc(copy.FeaturesTitle) + "</h2>")
		b.WriteString(`<p class="section-subtitle">` + esc(copy.FeaturesSubtitle) + "</p>")
		b.WriteString(`<div class="feature-grid">`)
		for _, feature := range copy.Features {
			b.WriteString(`<div class="feature-card">`)
			b.WriteString("<h3>" + esc(feature.Title) + "</h3>")
			b.WriteString("<p>" + esc(feature.Body) + "</p>")
			b.WriteString("</div>")
		}
		b.WriteString("</div></section>")

		b.WriteString(`<section class="comparison" id="comparison">`)
		b.WriteString("<h2>" + esc(copy.ComparisonTitle) + "</h2>")
		b.WriteString(`<p class="section-subtitle">` + esc(copy.ComparisonSubtitle) + "</p>")
		rows := make([][3]string, 0, len(copy.ComparisonRows))
		for _, row := range copy.ComparisonRows {
			rows = append(rows, [3]string{row.Label, row.Murmur, row.Typing})
		}
		writeComparisonTable(&b, copy.ComparisonFeature, copy.ComparisonMurmur, copy.ComparisonTyping, rows)
		b.WriteString("</section>")

		writeFAQ(&b, copy.FAQTitle, copy.FAQ)
		writeNewsletter(&b, locale, copy.Newsletter)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
