package templates

import (
	"strings"

	"github.com/murmurhq/website/internal/services/site/platform/i18n"
)

type cta struct {
	label string
	url   string
}

func writeHero(b *strings.Builder, hook, subhook string, primary, secondary *cta, note string) {
	b.WriteString(`<section class="hero">`)
	b.WriteString("<h1>" + esc(hook) + "</h1>")
	if subhook != "" {
		b.WriteString(`<p class="hero-subhook">` + esc(subhook) + "</p>")
	}
	if primary != nil || secondary != nil {
		b.WriteString(`<div class="hero-actions">`)
		if primary != nil {
			b.WriteString(`<a class="button primary" href="` + esc(primary.url) + `">` + esc(primary.label) + "</a>")
		}
		if secondary != nil {
			b.WriteString(`<a class="button secondary" href="` + esc(secondary.url) + `">` + esc(secondary.label) + "</a>")
		}
		b.WriteString("</div>")
	}
	if note != "" {
		b.WriteString(`<p class="hero-note">` + esc(note) + "</p>")
	}
	b.WriteString("</section>")
}

// writeComparisonTable renders a three-column table: one label column and two
// value columns.
func writeComparisonTable(b *strings.Builder, labelHead, leftHead, rightHead string, rows [][3]string) {
	b.WriteString(`<table class="comparison-table">`)
	b.WriteString("<thead><tr>")
	b.WriteString(`<th scope="col">` + esc(labelHead) + "</th>")
	b.WriteString(`<th scope="col">` + esc(leftHead) + "</th>")
	b.WriteString(`<th scope="col">` + esc(rightHead) + "</th>")
	b.WriteString("</tr></thead><tbody>")
	for _, row := range rows {
		b.WriteString("<tr>")
		b.WriteString(`<th scope="row">` + esc(row[0]) + "</th>")
		b.WriteString("<td>" + esc(row[1]) + "</td>")
		b.WriteString("<td>" + esc(row[2]) + "</td>")
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
}

// writeFAQ renders the question list as native disclosure elements. The first
// item starts open so the section reads as answered, not collapsed.
func writeFAQ(b *strings.Builder, title string, items []i18n.QA) {
	if len(items) == 0 {
		return
	}
	b.WriteString(`<section class="faq" id="faq">`)
	b.WriteString("<h2>" + esc(title) + "</h2>")
	for i, item := range items {
		if i == 0 {
			b.WriteString(`<details class="faq-item" open>`)
		} else {
			b.WriteString(`<details class="faq-item">`)
		}
		b.WriteString("<summary>" + esc(item.Question) + "</summary>")
		b.WriteString("<p>" + esc(item.Answer) + "</p>")
		b.WriteString("</details>")
	}
	b.WriteString("</section>")
}

func writeNewsletter(b *strings.Builder, locale string, copy i18n.NewsletterCopy) {
	b.WriteString(`<section class="newsletter" id="newsletter">`)
	b.WriteString("<h2>" + esc(copy.Title) + "</h2>")
	b.WriteString("<p>" + esc(copy.Body) + "</p>")
	b.WriteString(`<form class="newsletter-form" method="post" action="/subscribe"`)
	b.WriteString(` data-success="` + esc(copy.Success) + `" data-error="` + esc(copy.Error) + `">`)
	b.WriteString(`<input type="email" name="email" placeholder="` + esc(copy.Placeholder) + `" required autocomplete="email">`)
	b.WriteString(`<input type="hidden" name="locale" value="` + esc(locale) + `">`)
	b.WriteString(`<input type="hidden" name="source" value="site">`)
	b.WriteString(`<button type="submit">` + esc(copy.Button) + "</button>")
	b.WriteString("</form>")
	b.WriteString(`<p class="newsletter-status" role="status" hidden></p>`)
	b.WriteString("</section>")
}

func writeCTABand(b *strings.Builder, label, url string) {
	if label == "" {
		return
	}
	b.WriteString(`<section class="cta-band">`)
	b.WriteString(`<a class="button primary" href="` + esc(url) + `">` + esc(label) + "</a>")
	b.WriteString("</section>")
}
