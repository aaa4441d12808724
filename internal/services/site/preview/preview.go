// Package preview issues and verifies signed draft-preview tokens.
//
// Draft posts never appear on public routes. A preview token in the article
// URL grants read access to one draft, or to every draft for editors.
package preview

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// Issuer identifies tokens minted by this site.
	Issuer = "murmur-site"
	// Audience scopes tokens to draft previews.
	Audience = "draft-preview"
	// QueryParam is the token query parameter on article URLs.
	QueryParam = "preview"
	// WildcardSubject grants access to every draft.
	WildcardSubject = "*"
	// DefaultTTL bounds how long a shared preview link stays valid.
	DefaultTTL = 72 * time.Hour

	subjectPrefix = "post:"
)

// Config holds the verification key and clock for preview tokens.
type Config struct {
	Key []byte
	Now func() time.Time
}

// Enabled reports whether preview tokens can be verified at all.
func (c Config) Enabled() bool {
	return len(c.Key) > 0
}

func (c Config) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

type previewClaims struct {
	jwt.RegisteredClaims
}

// Issue mints a preview token for one draft slug. Passing WildcardSubject
// issues a token valid for every draft.
func Issue(cfg Config, slug string, ttl time.Duration) (string, error) {
	if !cfg.Enabled() {
		return "", fmt.Errorf("preview key is not configured")
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return "", fmt.Errorf("slug is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	subject := WildcardSubject
	if slug != WildcardSubject {
		subject = subjectPrefix + slug
	}

	now := cfg.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    Issuer,
		Audience:  jwt.ClaimStrings{Audience},
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	signed, err := token.SignedString(cfg.Key)
	if err != nil {
		return "", fmt.Errorf("sign preview token: %w", err)
	}
	return signed, nil
}

// Verify checks a token's signature and claims and reports whether it grants
// access to the draft with the given slug.
func Verify(cfg Config, token, slug string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("preview token is required")
	}
	if !cfg.Enabled() {
		return errors.New("preview is not configured")
	}

	var parsed previewClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return cfg.Key, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return fmt.Errorf("parse preview token: %w", err)
	}

	if parsed.Issuer != Issuer {
		return errors.New("preview token issuer mismatch")
	}
	if !audienceContains(parsed.Audience, Audience) {
		return errors.New("preview token audience mismatch")
	}
	if parsed.ExpiresAt == nil {
		return errors.New("preview token exp is required")
	}
	if !parsed.ExpiresAt.Time.UTC().After(cfg.now().UTC()) {
		return errors.New("preview token is expired")
	}

	if parsed.Subject == WildcardSubject {
		return nil
	}
	if parsed.Subject != subjectPrefix+slug {
		return errors.New("preview token subject mismatch")
	}
	return nil
}

func audienceContains(aud jwt.ClaimStrings, value string) bool {
	for _, item := range aud {
		if item == value {
			return true
		}
	}
	return false
}
