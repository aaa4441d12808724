package static

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHandlerServesEmbeddedAssets(t *testing.T) {
	t.Parallel()

	handler := Handler("")

	for _, name := range []string{"/site.css", "/site.js", "/logo.svg"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, name, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want %d", name, rec.Code, http.StatusOK)
		}
		if rec.Body.Len() == 0 {
			t.Fatalf("GET %s returned an empty body", name)
		}
	}
}

func TestHandlerOverlaysDiskAssets(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "icons"), 0o755); err != nil {
		t.Fatalf("mkdir icons: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "icons", "icon-16.png"), []byte("png-bytes"), 0o644); err != nil {
		t.Fatalf("write icon: %v", err)
	}

	handler := Handler(dir)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/icons/icon-16.png", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("disk asset status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Body.String(); got != "png-bytes" {
		t.Fatalf("disk asset body = %q, want %q", got, "png-bytes")
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/site.css", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("embedded asset status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Header().Get("Content-Type"), "text/css") {
		t.Fatalf("embedded asset content type = %q, want text/css", rec.Header().Get("Content-Type"))
	}
}

func TestHandlerMissingAssetIs404(t *testing.T) {
	t.Parallel()

	handler := Handler(t.TempDir())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/icons/icon-512.png", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing asset status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
