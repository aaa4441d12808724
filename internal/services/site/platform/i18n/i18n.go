// Package i18n builds typed page copy from the locale dictionary.
//
// Every visible string resolves through the dictionary with an English
// fallback literal, so a missing key degrades to readable copy instead of a
// blank page or a raw key.
package i18n

import (
	"fmt"
	"strings"

	"github.com/murmurhq/website/internal/platform/branding"
	"github.com/murmurhq/website/internal/platform/dictionary"
)

func dict() *dictionary.Bundle {
	return dictionary.Default()
}

// WithProductSuffix appends the product name to a page title. Titles that
// already mention the product stay as they are.
func WithProductSuffix(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return branding.AppName
	}
	if strings.Contains(trimmed, branding.AppName) {
		return trimmed
	}
	return fmt.Sprintf("%s | %s", trimmed, branding.AppName)
}

func localizeWithFallback(locale, key, fallback string, args ...any) string {
	if value, ok := dict().Lookup(locale, key); ok {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			if len(args) > 0 {
				return fmt.Sprintf(trimmed, args...)
			}
			return trimmed
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(fallback, args...)
	}
	return fallback
}

func listWithFallback(locale, key string, fallback []string) []string {
	if values, ok := dict().List(locale, key); ok && len(values) > 0 {
		return values
	}
	return fallback
}

// ChromeCopy holds the shared navigation and footer copy around every page.
type ChromeCopy struct {
	NavFeatures  string
	NavUseCases  string
	NavCompare   string
	NavBlog      string
	NavDownload  string
	NavLanguage  string
	FooterTag    string
	FooterProd   string
	FooterRes    string
	FooterBlog   string
	FooterDl     string
	FooterRSS    string
	FooterRights string
}

// Chrome returns the localized layout copy.
func Chrome(locale string) ChromeCopy {
	return ChromeCopy{
		NavFeatures:  localizeWithFallback(locale, "nav.features", "Features"),
		NavUseCases:  localizeWithFallback(locale, "nav.useCases", "Use cases"),
		NavCompare:   localizeWithFallback(locale, "nav.compare", "Compare"),
		NavBlog:      localizeWithFallback(locale, "nav.blog", "Blog"),
		NavDownload:  localizeWithFallback(locale, "nav.download", "Download"),
		NavLanguage:  localizeWithFallback(locale, "nav.language", "Language"),
		FooterTag:    localizeWithFallback(locale, "footer.tagline", "Dictation that keeps up with you."),
		FooterProd:   localizeWithFallback(locale, "footer.product", "Product"),
		FooterRes:    localizeWithFallback(locale, "footer.resources", "Resources"),
		FooterBlog:   localizeWithFallback(locale, "footer.blog", "Blog"),
		FooterDl:     localizeWithFallback(locale, "footer.download", "Download"),
		FooterRSS:    localizeWithFallback(locale, "footer.rss", "RSS feed"),
		FooterRights: localizeWithFallback(locale, "footer.rights", "All rights reserved."),
	}
}

// SubscribeCopy holds the responses of the newsletter endpoint.
type SubscribeCopy struct {
	InvalidEmail string
	Thanks       string
	Unavailable  string
}

// Subscribe returns the localized newsletter endpoint copy.
func Subscribe(locale string) SubscribeCopy {
	return SubscribeCopy{
		InvalidEmail: localizeWithFallback(locale, "subscribe.invalidEmail", "Enter a valid email address."),
		Thanks:       localizeWithFallback(locale, "subscribe.thanks", "Thanks, you are on the list."),
		Unavailable:  localizeWithFallback(locale, "subscribe.unavailable", "Subscriptions are temporarily unavailable. Try again later."),
	}
}

// MetaDescription returns the sitewide fallback meta description.
func MetaDescription(locale string) string {
	return localizeWithFallback(locale, "meta.defaultDescription",
		"Murmur is a private, on-device dictation app for macOS and Windows.")
}
