package site

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/murmurhq/website/internal/services/site/storage/sqlite"
)

func newSubscribeHandler(t *testing.T) (http.Handler, *sqlite.Store) {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "site.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
	})

	h, err := NewHandler(Config{BaseURL: "https://murmur.example"}, store)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h, store
}

func postForm(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/subscribe", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestSubscribeFormBody(t *testing.T) {
	t.Parallel()

	h, store := newSubscribeHandler(t)
	rr := postForm(t, h, "email=ana%40example.com&locale=es&source=site")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if resp["message"] == "" {
		t.Fatal("response missing message")
	}

	subscriber, found, err := store.GetSubscriberByEmail(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("GetSubscriberByEmail() error = %v", err)
	}
	if !found {
		t.Fatal("subscriber was not persisted")
	}
	if subscriber.Locale != "es" {
		t.Fatalf("Locale = %q, want es", subscriber.Locale)
	}
	if subscriber.Source != "site" {
		t.Fatalf("Source = %q, want site", subscriber.Source)
	}
	if subscriber.ID == "" {
		t.Fatal("subscriber has no ID")
	}
}

func TestSubscribeJSONBody(t *testing.T) {
	t.Parallel()

	h, store := newSubscribeHandler(t)
	payload := `{"email":"ben@example.com","locale":"en","source":"footer"}`
	req := httptest.NewRequest(http.MethodPost, "/subscribe", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	count, err := store.CountSubscribers(context.Background())
	if err != nil {
		t.Fatalf("CountSubscribers() error = %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}

func TestSubscribeDuplicateIsIdempotent(t *testing.T) {
	t.Parallel()

	h, store := newSubscribeHandler(t)
	for i := 0; i < 2; i++ {
		if rr := postForm(t, h, "email=twice%40example.com&locale=en"); rr.Code != http.StatusOK {
			t.Fatalf("attempt %d status = %d, want %d", i, rr.Code, http.StatusOK)
		}
	}
	count, err := store.CountSubscribers(context.Background())
	if err != nil {
		t.Fatalf("CountSubscribers() error = %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	t.Parallel()

	h, store := newSubscribeHandler(t)
	for _, email := range []string{"", "not-an-email", "spaces in%40here.com"} {
		rr := postForm(t, h, "email="+email+"&locale=en")
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("email %q status = %d, want %d", email, rr.Code, http.StatusBadRequest)
		}
	}
	count, err := store.CountSubscribers(context.Background())
	if err != nil {
		t.Fatalf("CountSubscribers() error = %v", err)
	}
	if count != 0 {
		t.Fatalf("count = %d, want 0", count)
	}
}

func TestSubscribeLocalizesResponse(t *testing.T) {
	t.Parallel()

	h, _ := newSubscribeHandler(t)
	rr := postForm(t, h, "email=bogus&locale=es")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if resp["error"] == "" {
		t.Fatal("response missing error message")
	}
}

func TestSubscribeCoercesUnknownLocale(t *testing.T) {
	t.Parallel()

	h, store := newSubscribeHandler(t)
	if rr := postForm(t, h, "email=carla%40example.com&locale=fr"); rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	subscriber, found, err := store.GetSubscriberByEmail(context.Background(), "carla@example.com")
	if err != nil || !found {
		t.Fatalf("GetSubscriberByEmail() = %v, %v", found, err)
	}
	if subscriber.Locale != "en" {
		t.Fatalf("Locale = %q, want en", subscriber.Locale)
	}
}

func TestSubscribeWithoutStorageAnswers503(t *testing.T) {
	t.Parallel()

	rr := postForm(t, newTestHandler(t), "email=ana%40example.com&locale=en")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}
