package site

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil, func(string) (string, bool) { return "", false })
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != defaultHTTPAddr {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.BaseURL != "" {
		t.Fatalf("expected empty base url, got %q", cfg.BaseURL)
	}
	if cfg.StoragePath != "" {
		t.Fatalf("expected empty storage path, got %q", cfg.StoragePath)
	}
	if cfg.AssetsDir != "" {
		t.Fatalf("expected empty assets dir, got %q", cfg.AssetsDir)
	}
	if cfg.PreviewHMACKey != "" {
		t.Fatalf("expected empty preview key, got %q", cfg.PreviewHMACKey)
	}
}

func TestParseConfigEnvSeedsDefaults(t *testing.T) {
	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	lookup := func(key string) (string, bool) {
		switch key {
		case "MURMUR_SITE_HTTP_ADDR":
			return "env-addr", true
		case "MURMUR_SITE_BASE_URL":
			return "https://env.murmur.app", true
		case "MURMUR_SITE_DB_PATH":
			return "  ", true
		case "MURMUR_SITE_ASSETS_DIR":
			return "/srv/murmur/assets", true
		default:
			return "", false
		}
	}
	cfg, err := ParseConfig(fs, nil, lookup)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "env-addr" {
		t.Fatalf("expected env http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.BaseURL != "https://env.murmur.app" {
		t.Fatalf("expected env base url, got %q", cfg.BaseURL)
	}
	if cfg.StoragePath != "" {
		t.Fatalf("expected blank env storage path to fall back, got %q", cfg.StoragePath)
	}
	if cfg.AssetsDir != "/srv/murmur/assets" {
		t.Fatalf("expected env assets dir, got %q", cfg.AssetsDir)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	lookup := func(key string) (string, bool) {
		switch key {
		case "MURMUR_SITE_HTTP_ADDR":
			return "env-addr", true
		case "MURMUR_SITE_PREVIEW_HMAC_KEY":
			return "env-key", true
		default:
			return "", false
		}
	}
	args := []string{"-http-addr", "flag-addr", "-db-path", "/tmp/site.db", "-preview-hmac-key", "deadbeef"}
	cfg, err := ParseConfig(fs, args, lookup)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag-addr" {
		t.Fatalf("expected flag http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.StoragePath != "/tmp/site.db" {
		t.Fatalf("expected flag storage path, got %q", cfg.StoragePath)
	}
	if cfg.PreviewHMACKey != "deadbeef" {
		t.Fatalf("expected flag preview key, got %q", cfg.PreviewHMACKey)
	}
}
