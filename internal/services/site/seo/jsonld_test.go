package seo

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func renderJSONLD(t *testing.T, component templ.Component) map[string]any {
	t.Helper()

	var b strings.Builder
	if err := component.Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	html := b.String()

	const prefix = `<script type="application/ld+json">`
	const suffix = `</script>`
	if !strings.HasPrefix(html, prefix) || !strings.HasSuffix(html, suffix) {
		t.Fatalf("output = %q, want a ld+json script element", html)
	}

	payload := strings.TrimSuffix(strings.TrimPrefix(html, prefix), suffix)
	var doc map[string]any
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v for %q", err, payload)
	}
	return doc
}

func TestOrganizationStructuredData(t *testing.T) {
	t.Parallel()

	doc := renderJSONLD(t, NewBuilder("https://murmur.app").Organization())

	if doc["@context"] != "https://schema.org" {
		t.Fatalf("@context = %v, want schema.org", doc["@context"])
	}
	if doc["@type"] != "Organization" {
		t.Fatalf("@type = %v, want Organization", doc["@type"])
	}
	if doc["name"] != "Murmur" {
		t.Fatalf("name = %v, want Murmur", doc["name"])
	}
	if doc["url"] != "https://murmur.app/" {
		t.Fatalf("url = %v, want https://murmur.app/", doc["url"])
	}
}

func TestSoftwareApplicationStructuredData(t *testing.T) {
	t.Parallel()

	doc := renderJSONLD(t, NewBuilder("https://murmur.app").SoftwareApplication("Dictation app"))

	if doc["@type"] != "SoftwareApplication" {
		t.Fatalf("@type = %v, want SoftwareApplication", doc["@type"])
	}
	if doc["operatingSystem"] != "macOS, Windows" {
		t.Fatalf("operatingSystem = %v", doc["operatingSystem"])
	}
	offers, ok := doc["offers"].(map[string]any)
	if !ok {
		t.Fatalf("offers = %T, want an object", doc["offers"])
	}
	if offers["priceCurrency"] != "USD" {
		t.Fatalf("priceCurrency = %v, want USD", offers["priceCurrency"])
	}
}

func TestFAQPageStructuredData(t *testing.T) {
	t.Parallel()

	items := []QAItem{
		{Question: "Does it work offline?", Answer: "Yes, everything runs on device."},
		{Question: "What does it cost?", Answer: "A one-time purchase."},
	}
	doc := renderJSONLD(t, NewBuilder("https://murmur.app").FAQPage(items))

	if doc["@type"] != "FAQPage" {
		t.Fatalf("@type = %v, want FAQPage", doc["@type"])
	}
	entities, ok := doc["mainEntity"].([]any)
	if !ok || len(entities) != 2 {
		t.Fatalf("mainEntity = %v, want 2 questions", doc["mainEntity"])
	}
	first, ok := entities[0].(map[string]any)
	if !ok {
		t.Fatalf("mainEntity[0] = %T, want an object", entities[0])
	}
	if first["name"] != "Does it work offline?" {
		t.Fatalf("name = %v", first["name"])
	}
	answer, ok := first["acceptedAnswer"].(map[string]any)
	if !ok || answer["text"] != "Yes, everything runs on device." {
		t.Fatalf("acceptedAnswer = %v", first["acceptedAnswer"])
	}
}

func TestBlogPostingStructuredData(t *testing.T) {
	t.Parallel()

	doc := renderJSONLD(t, NewBuilder("https://murmur.app").BlogPosting(BlogPostingParams{
		Headline:      "Bilingual dictation",
		Description:   "Switching languages mid-sentence.",
		URL:           "https://murmur.app/en/blog/bilingual-dictation",
		DatePublished: "2026-07-18",
		DateModified:  "2026-08-02",
		AuthorName:    "Sofía Reyes",
		Locale:        "en",
	}))

	if doc["@type"] != "BlogPosting" {
		t.Fatalf("@type = %v, want BlogPosting", doc["@type"])
	}
	if doc["datePublished"] != "2026-07-18" {
		t.Fatalf("datePublished = %v", doc["datePublished"])
	}
	if doc["dateModified"] != "2026-08-02" {
		t.Fatalf("dateModified = %v", doc["dateModified"])
	}
	author, ok := doc["author"].(map[string]any)
	if !ok || author["name"] != "Sofía Reyes" {
		t.Fatalf("author = %v", doc["author"])
	}
	publisher, ok := doc["publisher"].(map[string]any)
	if !ok || publisher["name"] != "Murmur" {
		t.Fatalf("publisher = %v", doc["publisher"])
	}
}

func TestBlogPostingOmitsEmptyDateModified(t *testing.T) {
	t.Parallel()

	doc := renderJSONLD(t, NewBuilder("https://murmur.app").BlogPosting(BlogPostingParams{
		Headline:      "Post",
		URL:           "https://murmur.app/en/blog/post",
		DatePublished: "2026-06-03",
		AuthorName:    "Ben Calloway",
		Locale:        "en",
	}))

	if _, present := doc["dateModified"]; present {
		t.Fatal("dateModified present, want omitted")
	}
}

func TestBreadcrumbListStructuredData(t *testing.T) {
	t.Parallel()

	doc := renderJSONLD(t, NewBuilder("https://murmur.app").BreadcrumbList([]Crumb{
		{Name: "Murmur", URL: "https://murmur.app/en"},
		{Name: "Blog", URL: "https://murmur.app/en/blog"},
		{Name: "Bilingual dictation", URL: "https://murmur.app/en/blog/bilingual-dictation"},
	}))

	items, ok := doc["itemListElement"].([]any)
	if !ok || len(items) != 3 {
		t.Fatalf("itemListElement = %v, want 3 items", doc["itemListElement"])
	}

	first, ok := items[0].(map[string]any)
	if !ok {
		t.Fatalf("items[0] = %T, want an object", items[0])
	}
	if first["position"] != float64(1) {
		t.Fatalf("position = %v, want 1", first["position"])
	}
	if first["item"] != "https://murmur.app/en" {
		t.Fatalf("item = %v", first["item"])
	}

	last, ok := items[2].(map[string]any)
	if !ok {
		t.Fatalf("items[2] = %T, want an object", items[2])
	}
	if _, present := last["item"]; present {
		t.Fatal("last crumb has an item URL, want it omitted")
	}
}
