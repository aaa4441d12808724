package locale

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolvePrefersQueryParam(t *testing.T) {
	t.Parallel()
	r := httptest.NewRequest(http.MethodGet, "/?lang=es", nil)
	r.Header.Set("Accept-Language", "en")

	got, persist := Resolve(r)
	if got != "es" {
		t.Fatalf("locale = %q, want es", got)
	}
	if !persist {
		t.Fatal("expected query selection to request persistence")
	}
}

func TestResolveIgnoresUnknownQueryParam(t *testing.T) {
	t.Parallel()
	r := httptest.NewRequest(http.MethodGet, "/?lang=de", nil)
	r.Header.Set("Accept-Language", "es")

	got, persist := Resolve(r)
	if got != "es" {
		t.Fatalf("locale = %q, want es", got)
	}
	if persist {
		t.Fatal("expected no persistence without query selection")
	}
}

func TestResolveUsesCookieBeforeHeader(t *testing.T) {
	t.Parallel()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "es"})
	r.Header.Set("Accept-Language", "en-US,en;q=0.9")

	got, persist := Resolve(r)
	if got != "es" {
		t.Fatalf("locale = %q, want es", got)
	}
	if persist {
		t.Fatal("expected no persistence for cookie selection")
	}
}

func TestResolveMatchesAcceptLanguage(t *testing.T) {
	t.Parallel()
	cases := []struct {
		header string
		want   string
	}{
		{"es-MX,es;q=0.9,en;q=0.5", "es"},
		{"en-GB,en;q=0.9", "en"},
		{"fr-FR,fr;q=0.9", "en"},
		{"es", "es"},
	}
	for _, tc := range cases {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept-Language", tc.header)
		if got, _ := Resolve(r); got != tc.want {
			t.Fatalf("Resolve(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}

func TestResolveDefaultsToEnglish(t *testing.T) {
	t.Parallel()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if got, _ := Resolve(r); got != "en" {
		t.Fatalf("locale = %q, want en", got)
	}
}

func TestSetCookie(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	SetCookie(w, "es")

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != CookieName || cookie.Value != "es" {
		t.Fatalf("cookie = %s=%s", cookie.Name, cookie.Value)
	}
	if cookie.Path != "/" {
		t.Fatalf("cookie path = %q, want /", cookie.Path)
	}
}

func TestSplitPath(t *testing.T) {
	t.Parallel()
	cases := []struct {
		path       string
		wantLocale string
		wantRest   string
		wantOK     bool
	}{
		{"/es/blog/dictation", "es", "/blog/dictation", true},
		{"/en", "en", "/", true},
		{"/en/", "en", "/", true},
		{"/es/vs/talktype", "es", "/vs/talktype", true},
		{"/static/site.css", "", "", false},
		{"/fr/blog", "", "", false},
		{"/", "", "", false},
	}
	for _, tc := range cases {
		locale, rest, ok := SplitPath(tc.path)
		if locale != tc.wantLocale || rest != tc.wantRest || ok != tc.wantOK {
			t.Fatalf("SplitPath(%q) = %q, %q, %v, want %q, %q, %v",
				tc.path, locale, rest, ok, tc.wantLocale, tc.wantRest, tc.wantOK)
		}
	}
}

func TestAlternateURL(t *testing.T) {
	t.Parallel()
	if got := AlternateURL("/en/blog/dictation-longform", "es"); got != "/es/blog/dictation-longform" {
		t.Fatalf("AlternateURL = %q", got)
	}
	if got := AlternateURL("/es", "en"); got != "/en" {
		t.Fatalf("AlternateURL root = %q", got)
	}
	if got := AlternateURL("/rss.xml", "es"); got != "/rss.xml" {
		t.Fatalf("AlternateURL non-localized = %q", got)
	}
}

func TestOptionsMarksActive(t *testing.T) {
	t.Parallel()
	options := Options("/en/download", "en")
	if len(options) != 2 {
		t.Fatalf("options = %d, want 2", len(options))
	}
	if !options[0].Active || options[0].Code != "en" {
		t.Fatalf("first option = %+v, want active en", options[0])
	}
	if options[1].Active {
		t.Fatalf("second option should be inactive: %+v", options[1])
	}
	if options[1].URL != "/es/download" {
		t.Fatalf("es option URL = %q", options[1].URL)
	}
	if options[1].Label != "Español" {
		t.Fatalf("es label = %q", options[1].Label)
	}
}
