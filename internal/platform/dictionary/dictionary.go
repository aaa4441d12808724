// Package dictionary loads the website's locale dictionaries.
//
// Each locale is a JSON tree of nested objects whose leaves are strings or
// arrays of strings. Lookups address leaves by dotted path, for example
// "landing.hero.hook". Every locale must mirror the default locale's key
// structure exactly; structural drift is a load error so missing copy is
// caught before it ships.
package dictionary

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// DefaultLocale is the canonical source locale every other locale must mirror
// and the fallback for lookups in other locales.
const DefaultLocale = "en"

// Supported lists the locale codes the site serves, sorted.
var Supported = []string{"en", "es"}

// IsSupported reports whether code names a served locale.
func IsSupported(code string) bool {
	for _, locale := range Supported {
		if locale == code {
			return true
		}
	}
	return false
}

// ParseLocale normalizes a locale code, coercing anything unknown to the
// default locale so callers always hold a servable code.
func ParseLocale(code string) string {
	trimmed := strings.ToLower(strings.TrimSpace(code))
	if IsSupported(trimmed) {
		return trimmed
	}
	return DefaultLocale
}

type leafKind int

const (
	kindString leafKind = iota
	kindList
)

type localeDict struct {
	locale  string
	strings map[string]string
	lists   map[string][]string
	kinds   map[string]leafKind
}

// Bundle holds every loaded locale dictionary.
type Bundle struct {
	locales map[string]*localeDict
}

// ParityIssue describes how one locale's key structure deviates from the
// default locale.
type ParityIssue struct {
	Locale   string
	Missing  []string
	Extra    []string
	Mismatch []string
}

//go:embed locales/*.json
var embeddedFS embed.FS

var (
	loadDefaultOnce sync.Once
	defaultBundle   *Bundle
	defaultLoadErr  error
)

// Default returns the process-wide embedded dictionary bundle. It panics when
// a locale file breaks structural parity, so the failure surfaces on first
// page render rather than deep inside a template.
func Default() *Bundle {
	loadDefaultOnce.Do(func() {
		defaultBundle, defaultLoadErr = LoadEmbedded()
	})
	if defaultLoadErr != nil {
		panic(defaultLoadErr)
	}
	return defaultBundle
}

// LoadEmbedded loads and validates the dictionaries embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// ParseEmbedded loads the embedded dictionaries without enforcing parity.
// Reporting tools use it to describe states LoadEmbedded would reject.
func ParseEmbedded() (*Bundle, error) {
	return ParseFS(embeddedFS)
}

// LoadFromFS loads dictionaries from locales/*.json in the given filesystem
// and fails when any locale breaks structural parity with the default locale.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	bundle, err := ParseFS(fsys)
	if err != nil {
		return nil, err
	}
	if issues := bundle.Parity(); len(issues) > 0 {
		return nil, fmt.Errorf("dictionary parity: %s", describeIssues(issues))
	}
	return bundle, nil
}

// ParseFS loads dictionaries without enforcing parity. Tools that report on
// parity use this to inspect broken states LoadFromFS would reject.
func ParseFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.json")
	if err != nil {
		return nil, fmt.Errorf("glob locale dictionaries: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no dictionary files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{locales: map[string]*localeDict{}}

	for _, path := range paths {
		locale := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if locale == "" {
			return nil, fmt.Errorf("dictionary %s: empty locale name", path)
		}
		if _, exists := bundle.locales[locale]; exists {
			return nil, fmt.Errorf("dictionary %s: locale %q already loaded", path, locale)
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read dictionary %s: %w", path, err)
		}

		var tree map[string]any
		if err := json.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("parse dictionary %s: %w", path, err)
		}

		dict := &localeDict{
			locale:  locale,
			strings: map[string]string{},
			lists:   map[string][]string{},
			kinds:   map[string]leafKind{},
		}
		if err := flatten(dict, "", tree); err != nil {
			return nil, fmt.Errorf("dictionary %s: %w", path, err)
		}
		if len(dict.kinds) == 0 {
			return nil, fmt.Errorf("dictionary %s: no entries", path)
		}
		bundle.locales[locale] = dict
	}

	if _, ok := bundle.locales[DefaultLocale]; !ok {
		return nil, fmt.Errorf("default locale %s is not defined", DefaultLocale)
	}

	return bundle, nil
}

func flatten(dict *localeDict, prefix string, node map[string]any) error {
	for key, value := range node {
		trimmed := strings.TrimSpace(key)
		if trimmed == "" {
			return fmt.Errorf("blank key under %q", prefix)
		}
		if strings.Contains(trimmed, ".") {
			return fmt.Errorf("key %q under %q must not contain dots", trimmed, prefix)
		}
		path := trimmed
		if prefix != "" {
			path = prefix + "." + trimmed
		}

		switch typed := value.(type) {
		case string:
			if strings.TrimSpace(typed) == "" {
				return fmt.Errorf("empty value at %q", path)
			}
			dict.strings[path] = typed
			dict.kinds[path] = kindString
		case []any:
			if len(typed) == 0 {
				return fmt.Errorf("empty list at %q", path)
			}
			items := make([]string, 0, len(typed))
			for i, element := range typed {
				str, ok := element.(string)
				if !ok {
					return fmt.Errorf("list %q element %d is not a string", path, i)
				}
				if strings.TrimSpace(str) == "" {
					return fmt.Errorf("list %q element %d is empty", path, i)
				}
				items = append(items, str)
			}
			dict.lists[path] = items
			dict.kinds[path] = kindList
		case map[string]any:
			if len(typed) == 0 {
				return fmt.Errorf("empty object at %q", path)
			}
			if err := flatten(dict, path, typed); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported value at %q (want string, string array, or object)", path)
		}
	}
	return nil
}

// Parity compares every locale against the default locale and returns one
// issue per deviating locale. A clean bundle returns nil.
func (b *Bundle) Parity() []ParityIssue {
	if b == nil {
		return nil
	}
	base, ok := b.locales[DefaultLocale]
	if !ok {
		return nil
	}

	var issues []ParityIssue
	for _, locale := range b.Locales() {
		if locale == DefaultLocale {
			continue
		}
		dict := b.locales[locale]
		issue := ParityIssue{Locale: locale}
		for path, kind := range base.kinds {
			got, exists := dict.kinds[path]
			switch {
			case !exists:
				issue.Missing = append(issue.Missing, path)
			case got != kind:
				issue.Mismatch = append(issue.Mismatch, path)
			}
		}
		for path := range dict.kinds {
			if _, exists := base.kinds[path]; !exists {
				issue.Extra = append(issue.Extra, path)
			}
		}
		if len(issue.Missing) > 0 || len(issue.Extra) > 0 || len(issue.Mismatch) > 0 {
			sort.Strings(issue.Missing)
			sort.Strings(issue.Extra)
			sort.Strings(issue.Mismatch)
			issues = append(issues, issue)
		}
	}
	return issues
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns all loaded locale codes, sorted.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Keys returns every leaf path defined for a locale, sorted.
func (b *Bundle) Keys(locale string) []string {
	if b == nil {
		return nil
	}
	dict, ok := b.locales[strings.TrimSpace(locale)]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(dict.kinds))
	for path := range dict.kinds {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the string leaf at path for the locale, falling back to the
// default locale when the locale lacks the path.
func (b *Bundle) Lookup(locale, path string) (string, bool) {
	if b == nil {
		return "", false
	}
	trimmedLocale := strings.TrimSpace(locale)
	trimmedPath := strings.TrimSpace(path)
	if trimmedPath == "" {
		return "", false
	}
	if dict, ok := b.locales[trimmedLocale]; ok {
		if value, exists := dict.strings[trimmedPath]; exists {
			return value, true
		}
	}
	if trimmedLocale != DefaultLocale {
		if dict, ok := b.locales[DefaultLocale]; ok {
			value, exists := dict.strings[trimmedPath]
			return value, exists
		}
	}
	return "", false
}

// List returns the string-array leaf at path for the locale with the same
// fallback behavior as Lookup. The returned slice is a copy.
func (b *Bundle) List(locale, path string) ([]string, bool) {
	if b == nil {
		return nil, false
	}
	trimmedLocale := strings.TrimSpace(locale)
	trimmedPath := strings.TrimSpace(path)
	if trimmedPath == "" {
		return nil, false
	}
	if dict, ok := b.locales[trimmedLocale]; ok {
		if values, exists := dict.lists[trimmedPath]; exists {
			return copySlice(values), true
		}
	}
	if trimmedLocale != DefaultLocale {
		if dict, ok := b.locales[DefaultLocale]; ok {
			if values, exists := dict.lists[trimmedPath]; exists {
				return copySlice(values), true
			}
		}
	}
	return nil, false
}

func copySlice(source []string) []string {
	out := make([]string, len(source))
	copy(out, source)
	return out
}

func describeIssues(issues []ParityIssue) string {
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		parts = append(parts, fmt.Sprintf("locale %s: %d missing, %d extra, %d mismatched",
			issue.Locale, len(issue.Missing), len(issue.Extra), len(issue.Mismatch)))
	}
	return strings.Join(parts, "; ")
}
