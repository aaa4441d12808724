// Package site hosts the marketing website HTTP service: localized pages,
// feeds, sitemap, newsletter signup, and embedded static assets.
package site

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/murmurhq/website/internal/platform/branding"
	"github.com/murmurhq/website/internal/platform/timeouts"
	"github.com/murmurhq/website/internal/services/site/platform/httpx"
	"github.com/murmurhq/website/internal/services/site/preview"
	"github.com/murmurhq/website/internal/services/site/seo"
	"github.com/murmurhq/website/internal/services/site/static"
	"github.com/murmurhq/website/internal/services/site/storage"
	"github.com/murmurhq/website/internal/services/site/storage/sqlite"
)

// Config defines startup inputs for the site service.
type Config struct {
	// HTTPAddr is the listen address, for example ":8080".
	HTTPAddr string
	// BaseURL is the public origin used for canonical URLs, feeds, and
	// structured data. Empty defaults to the production domain.
	BaseURL string
	// StoragePath is the SQLite database path for newsletter signups. Empty
	// turns the subscribe endpoint off.
	StoragePath string
	// AssetsDir holds generated raster assets (icons, social cards) served
	// under /static/ on top of the embedded files. Empty serves only the
	// embedded assets.
	AssetsDir string
	// PreviewHMACKey is the hex-encoded key verifying draft preview tokens.
	// Empty disables previews.
	PreviewHMACKey string
}

// Server hosts the website HTTP surface and owns its storage lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      storage.SubscriberStore
}

// NewHandler builds the site handler around an injected subscriber store.
// A nil store answers subscribe requests with 503.
func NewHandler(cfg Config, store storage.SubscriberStore) (http.Handler, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = "https://" + branding.Domain
	}

	previewCfg := preview.Config{}
	if trimmed := strings.TrimSpace(cfg.PreviewHMACKey); trimmed != "" {
		key, err := hex.DecodeString(trimmed)
		if err != nil {
			return nil, fmt.Errorf("decode preview key: %w", err)
		}
		previewCfg.Key = key
	}

	h := &handler{
		urls:    seo.NewBuilder(baseURL),
		store:   store,
		preview: previewCfg,
	}

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", static.Handler(cfg.AssetsDir)))
	mux.Handle("/rss.xml", httpx.Chain(http.HandlerFunc(h.handleDefaultFeed), httpx.RequireGet()))
	mux.Handle("/sitemap.xml", httpx.Chain(http.HandlerFunc(h.handleSitemap), httpx.RequireGet()))
	mux.Handle("/robots.txt", httpx.Chain(http.HandlerFunc(h.handleRobots), httpx.RequireGet()))
	mux.Handle("/subscribe", httpx.Chain(http.HandlerFunc(h.handleSubscribe), httpx.RequireMethod(http.MethodPost)))
	mux.Handle("/up", httpx.Chain(http.HandlerFunc(handleHealth), httpx.RequireGet()))
	mux.HandleFunc("/", h.handlePages)

	return httpx.Chain(mux, httpx.RecoverPanic(), httpx.RequestID()), nil
}

// NewServer validates config, opens storage when configured, and constructs
// the site server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	var store storage.SubscriberStore
	if path := strings.TrimSpace(cfg.StoragePath); path != "" {
		opened, err := sqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open subscriber store: %w", err)
		}
		store = opened
	}

	handler, err := NewHandler(cfg, store)
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return nil, fmt.Errorf("compose site handler: %w", err)
	}

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		store: store,
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown site http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve site http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.store != nil {
		_ = s.store.Close()
	}
}
