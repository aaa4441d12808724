package site

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/murmurhq/website/internal/platform/otel"
	"github.com/murmurhq/website/internal/services/site"
)

const defaultHTTPAddr = "localhost:8080"

// Config holds the site command configuration.
type Config struct {
	HTTPAddr       string
	BaseURL        string
	StoragePath    string
	AssetsDir      string
	PreviewHMACKey string
}

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string, lookup EnvLookup) (Config, error) {
	cfg := Config{
		HTTPAddr:       envOrDefault(lookup, []string{"MURMUR_SITE_HTTP_ADDR"}, defaultHTTPAddr),
		BaseURL:        envOrDefault(lookup, []string{"MURMUR_SITE_BASE_URL"}, ""),
		StoragePath:    envOrDefault(lookup, []string{"MURMUR_SITE_DB_PATH"}, ""),
		AssetsDir:      envOrDefault(lookup, []string{"MURMUR_SITE_ASSETS_DIR"}, ""),
		PreviewHMACKey: envOrDefault(lookup, []string{"MURMUR_SITE_PREVIEW_HMAC_KEY"}, ""),
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Canonical site origin for links and feeds")
	fs.StringVar(&cfg.StoragePath, "db-path", cfg.StoragePath, "SQLite database path for newsletter subscribers")
	fs.StringVar(&cfg.AssetsDir, "assets-dir", cfg.AssetsDir, "Directory of generated icons and social cards served under /static/")
	fs.StringVar(&cfg.PreviewHMACKey, "preview-hmac-key", cfg.PreviewHMACKey, "Hex HMAC key that enables draft previews")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the marketing site server.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "site")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	server, err := site.NewServer(site.Config{
		HTTPAddr:       cfg.HTTPAddr,
		BaseURL:        cfg.BaseURL,
		StoragePath:    cfg.StoragePath,
		AssetsDir:      cfg.AssetsDir,
		PreviewHMACKey: cfg.PreviewHMACKey,
	})
	if err != nil {
		return fmt.Errorf("init site server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve site: %w", err)
	}
	return nil
}

func envOrDefault(lookup EnvLookup, keys []string, fallback string) string {
	for _, key := range keys {
		if lookup == nil {
			break
		}
		value, ok := lookup(key)
		if ok {
			trimmed := strings.TrimSpace(value)
			if trimmed != "" {
				return trimmed
			}
		}
	}
	return fallback
}
