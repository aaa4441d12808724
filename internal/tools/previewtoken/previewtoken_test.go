package previewtoken

import (
	"bytes"
	"encoding/hex"
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/murmurhq/website/internal/services/site/preview"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("MURMUR_SITE_PREVIEW_HMAC_KEY", "")

	fs := flag.NewFlagSet("previewtoken", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Key != "" {
		t.Fatalf("expected empty key, got %q", cfg.Key)
	}
	if cfg.Slug != preview.WildcardSubject {
		t.Fatalf("expected wildcard slug, got %q", cfg.Slug)
	}
	if cfg.TTL != preview.DefaultTTL {
		t.Fatalf("expected default ttl, got %v", cfg.TTL)
	}
}

func TestParseConfigEnvKey(t *testing.T) {
	t.Setenv("MURMUR_SITE_PREVIEW_HMAC_KEY", "cafef00d")

	fs := flag.NewFlagSet("previewtoken", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Key != "cafef00d" {
		t.Fatalf("expected env key, got %q", cfg.Key)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("MURMUR_SITE_PREVIEW_HMAC_KEY", "cafef00d")

	fs := flag.NewFlagSet("previewtoken", flag.ContinueOnError)
	args := []string{"-key", "deadbeef", "-slug", "murmur-two-roadmap", "-ttl", "30m"}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Key != "deadbeef" {
		t.Fatalf("expected flag key, got %q", cfg.Key)
	}
	if cfg.Slug != "murmur-two-roadmap" {
		t.Fatalf("expected flag slug, got %q", cfg.Slug)
	}
	if cfg.TTL != 30*time.Minute {
		t.Fatalf("expected flag ttl, got %v", cfg.TTL)
	}
}

func TestRunMintsVerifiableToken(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	cfg := Config{Key: hex.EncodeToString(key), Slug: "murmur-two-roadmap", TTL: time.Hour}

	buf := &bytes.Buffer{}
	if err := Run(cfg, buf); err != nil {
		t.Fatalf("run: %v", err)
	}

	out := strings.TrimSpace(buf.String())
	const prefix = "?preview="
	if !strings.HasPrefix(out, prefix) {
		t.Fatalf("expected query prefix, got %q", out)
	}
	token := strings.TrimPrefix(out, prefix)
	if err := preview.Verify(preview.Config{Key: key}, token, "murmur-two-roadmap"); err != nil {
		t.Fatalf("minted token did not verify: %v", err)
	}
	if err := preview.Verify(preview.Config{Key: key}, token, "another-slug"); err == nil {
		t.Fatal("expected slug-scoped token to fail for another slug")
	}
}

func TestRunWildcardTokenUnlocksAnySlug(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	cfg := Config{Key: hex.EncodeToString(key), Slug: preview.WildcardSubject, TTL: time.Hour}

	buf := &bytes.Buffer{}
	if err := Run(cfg, buf); err != nil {
		t.Fatalf("run: %v", err)
	}

	token := strings.TrimPrefix(strings.TrimSpace(buf.String()), "?preview=")
	if err := preview.Verify(preview.Config{Key: key}, token, "murmur-two-roadmap"); err != nil {
		t.Fatalf("wildcard token did not verify: %v", err)
	}
}

func TestRunRequiresKey(t *testing.T) {
	if err := Run(Config{Slug: "x", TTL: time.Hour}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for missing key")
	}
}

func TestRunRejectsMalformedKey(t *testing.T) {
	if err := Run(Config{Key: "not-hex", Slug: "x", TTL: time.Hour}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for malformed key")
	}
}

func TestRunNilOutput(t *testing.T) {
	if err := Run(Config{Key: "cafef00d"}, nil); err == nil {
		t.Fatal("expected error for nil output")
	}
}
