package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/murmurhq/website/internal/services/site/platform/i18n"
)

// UseCase renders a use-case page body for one audience.
func UseCase(locale string, copy i18n.UseCaseCopy) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder

		primary := &cta{label: copy.CTA, url: href(locale, "/download")}
		writeHero(&b, copy.HeroHook, copy.HeroSubhook, primary, nil, "")

		if len(copy.Benefits) > 0 {
			b.WriteString(`<section class="benefits">`)
			b.WriteString("<h2>" + esc(copy.BenefitsTitle) + "</h2>")
			b.WriteString(`<ul class="benefit-list">`)
			for _, benefit := range copy.Benefits {
				b.WriteString("<li>" + esc(benefit) + "</li>")
			}
			b.WriteString("</ul></section>")
		}

		if len(copy.WorkflowSteps) > 0 {
			b.WriteString(`<section class="workflow">`)
			b.WriteString("<h2>" + esc(copy.WorkflowTitle) + "</h2>")
			b.WriteString(`<ol class="workflow-steps">`)
			for _, step := range copy.WorkflowSteps {
				b.WriteString("<li>" + esc(step) + "</li>")
			}
			b.WriteString("</ol></section>")
		}

		if copy.QuoteText != "" {
			b.WriteString(`<blockquote class="pull-quote">`)
			b.WriteString("<p>" + esc(copy.QuoteText) + "</p>")
			if copy.QuoteAttribution != "" {
				b.WriteString("<cite>" + esc(copy.QuoteAttribution) + "</cite>")
			}
			b.WriteString("</blockquote>")
		}

		writeCTABand(&b, copy.CTA, href(locale, "/download"))

		_, err := io.WriteString(w, b.String())
		return err
	})
}
