package seo

import "testing"

func TestBuilderAbsolute(t *testing.T) {
	t.Parallel()

	b := NewBuilder("https://murmur.app/")

	tests := []struct {
		path string
		want string
	}{
		{path: "/", want: "https://murmur.app/"},
		{path: "", want: "https://murmur.app/"},
		{path: "/en/blog", want: "https://murmur.app/en/blog"},
		{path: "static/site.css", want: "https://murmur.app/static/site.css"},
	}
	for _, tt := range tests {
		if got := b.Absolute(tt.path); got != tt.want {
			t.Fatalf("Absolute(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestPageMetaCanonicalAndAlternates(t *testing.T) {
	t.Parallel()

	b := NewBuilder("https://murmur.app")
	meta := b.Page("es", "/use-cases/writers", "Murmur para escritores", "desc")

	if meta.Canonical != "https://murmur.app/es/use-cases/writers" {
		t.Fatalf("Canonical = %q, want the es path", meta.Canonical)
	}
	if meta.Locale != "es" {
		t.Fatalf("Locale = %q, want %q", meta.Locale, "es")
	}
	if meta.Type != "website" {
		t.Fatalf("Type = %q, want %q", meta.Type, "website")
	}

	want := map[string]string{
		"en":        "https://murmur.app/en/use-cases/writers",
		"es":        "https://murmur.app/es/use-cases/writers",
		"x-default": "https://murmur.app/en/use-cases/writers",
	}
	if len(meta.Alternates) != len(want) {
		t.Fatalf("len(Alternates) = %d, want %d", len(meta.Alternates), len(want))
	}
	for _, alt := range meta.Alternates {
		if want[alt.Hreflang] != alt.URL {
			t.Fatalf("alternate %q = %q, want %q", alt.Hreflang, alt.URL, want[alt.Hreflang])
		}
	}
}

func TestPageMetaLandingPath(t *testing.T) {
	t.Parallel()

	b := NewBuilder("https://murmur.app")
	meta := b.Page("en", "/", "Murmur", "desc")

	if meta.Canonical != "https://murmur.app/en" {
		t.Fatalf("Canonical = %q, want %q", meta.Canonical, "https://murmur.app/en")
	}
	if meta.FeedURL != "https://murmur.app/en/rss.xml" {
		t.Fatalf("FeedURL = %q, want the localized feed", meta.FeedURL)
	}
	if meta.Image != "https://murmur.app/static/og/card-en.png" {
		t.Fatalf("Image = %q, want the en social card", meta.Image)
	}
}

func TestPageMetaCoercesUnknownLocale(t *testing.T) {
	t.Parallel()

	b := NewBuilder("https://murmur.app")
	meta := b.Page("fr", "/", "Murmur", "desc")

	if meta.Locale != "en" {
		t.Fatalf("Locale = %q, want %q", meta.Locale, "en")
	}
}

func TestArticleMarksType(t *testing.T) {
	t.Parallel()

	meta := NewBuilder("https://murmur.app").Page("en", "/blog/x", "t", "d").Article()
	if meta.Type != "article" {
		t.Fatalf("Type = %q, want %q", meta.Type, "article")
	}
}

func TestOGLocale(t *testing.T) {
	t.Parallel()

	if got := OGLocale("en"); got != "en_US" {
		t.Fatalf("OGLocale(en) = %q, want %q", got, "en_US")
	}
	if got := OGLocale("es"); got != "es_ES" {
		t.Fatalf("OGLocale(es) = %q, want %q", got, "es_ES")
	}
	if got := OGLocale("de"); got != "en_US" {
		t.Fatalf("OGLocale(de) = %q, want %q", got, "en_US")
	}
}

func TestAlternateOGLocales(t *testing.T) {
	t.Parallel()

	meta := NewBuilder("https://murmur.app").Page("en", "/", "t", "d")
	got := meta.AlternateOGLocales()
	if len(got) != 1 || got[0] != "es_ES" {
		t.Fatalf("AlternateOGLocales() = %v, want [es_ES]", got)
	}
}
