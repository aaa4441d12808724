// Package previewtoken mints signed draft-preview links for editors.
package previewtoken

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/murmurhq/website/internal/platform/config"
	"github.com/murmurhq/website/internal/services/site/preview"
)

// Config holds configuration for preview token minting.
type Config struct {
	Key  string `env:"MURMUR_SITE_PREVIEW_HMAC_KEY"`
	Slug string
	TTL  time.Duration
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Slug = preview.WildcardSubject
	cfg.TTL = preview.DefaultTTL

	fs.StringVar(&cfg.Key, "key", cfg.Key, "hex HMAC key (defaults to MURMUR_SITE_PREVIEW_HMAC_KEY)")
	fs.StringVar(&cfg.Slug, "slug", cfg.Slug, "draft slug the token unlocks (* for all drafts)")
	fs.DurationVar(&cfg.TTL, "ttl", cfg.TTL, "how long the token stays valid")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run mints a token and writes it to out together with the query parameter
// editors paste onto a draft URL.
func Run(cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	if cfg.Key == "" {
		return errors.New("preview key is required (set MURMUR_SITE_PREVIEW_HMAC_KEY or -key)")
	}
	key, err := hex.DecodeString(cfg.Key)
	if err != nil {
		return fmt.Errorf("decode preview key: %w", err)
	}

	token, err := preview.Issue(preview.Config{Key: key}, cfg.Slug, cfg.TTL)
	if err != nil {
		return fmt.Errorf("issue preview token: %w", err)
	}
	_, err = fmt.Fprintf(out, "?%s=%s\n", preview.QueryParam, token)
	return err
}
