// Package dictstatus reports locale dictionary coverage for translators.
package dictstatus

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"

	"github.com/murmurhq/website/internal/platform/dictionary"
)

// Config holds configuration for the dictionary status report.
type Config struct {
	JSON bool
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "emit the report as JSON")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Report summarizes every locale against the base locale.
type Report struct {
	BaseLocale string         `json:"base_locale"`
	Locales    []LocaleStatus `json:"locales"`
}

// LocaleStatus describes one locale's key coverage and structural drift.
type LocaleStatus struct {
	Locale     string   `json:"locale"`
	Keys       int      `json:"keys"`
	Missing    []string `json:"missing,omitempty"`
	Extra      []string `json:"extra,omitempty"`
	Mismatched []string `json:"mismatched,omitempty"`
	Completion float64  `json:"completion"`
}

// Broken reports whether any locale deviates from the base locale's key
// structure.
func (r Report) Broken() bool {
	for _, status := range r.Locales {
		if len(status.Missing) > 0 || len(status.Extra) > 0 || len(status.Mismatched) > 0 {
			return true
		}
	}
	return false
}

// BuildReport computes the status of every locale in the bundle.
func BuildReport(bundle *dictionary.Bundle) Report {
	baseKeys := len(bundle.Keys(dictionary.DefaultLocale))

	issues := map[string]dictionary.ParityIssue{}
	for _, issue := range bundle.Parity() {
		issues[issue.Locale] = issue
	}

	rep := Report{BaseLocale: dictionary.DefaultLocale}
	for _, locale := range bundle.Locales() {
		status := LocaleStatus{
			Locale:     locale,
			Keys:       len(bundle.Keys(locale)),
			Completion: 100,
		}
		if locale != dictionary.DefaultLocale {
			issue := issues[locale]
			status.Missing = issue.Missing
			status.Extra = issue.Extra
			status.Mismatched = issue.Mismatch
			status.Completion = percent(baseKeys-len(issue.Missing), baseKeys)
		}
		rep.Locales = append(rep.Locales, status)
	}
	return rep
}

// Run writes the status of the embedded dictionaries to out. It returns an
// error when structural parity is broken so builds can fail on drift.
func Run(cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	bundle, err := dictionary.ParseEmbedded()
	if err != nil {
		return fmt.Errorf("parse dictionaries: %w", err)
	}

	rep := BuildReport(bundle)
	if cfg.JSON {
		if err := writeJSON(out, rep); err != nil {
			return err
		}
	} else if err := writeText(out, rep); err != nil {
		return err
	}

	if rep.Broken() {
		return errors.New("dictionary parity is broken")
	}
	return nil
}

func writeJSON(out io.Writer, rep Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	_, err = out.Write(data)
	return err
}

func writeText(out io.Writer, rep Report) error {
	if _, err := fmt.Fprintf(out, "base locale: %s\n", rep.BaseLocale); err != nil {
		return err
	}
	for _, status := range rep.Locales {
		if _, err := fmt.Fprintf(out, "locale %s: %d keys, %.1f%% complete\n",
			status.Locale, status.Keys, status.Completion); err != nil {
			return err
		}
		for _, key := range status.Missing {
			if _, err := fmt.Fprintf(out, "  missing %s\n", key); err != nil {
				return err
			}
		}
		for _, key := range status.Extra {
			if _, err := fmt.Fprintf(out, "  extra %s\n", key); err != nil {
				return err
			}
		}
		for _, key := range status.Mismatched {
			if _, err := fmt.Fprintf(out, "  mismatched %s\n", key); err != nil {
				return err
			}
		}
	}
	return nil
}

func percent(numerator int, denominator int) float64 {
	if denominator <= 0 {
		return 100
	}
	value := float64(numerator) * 100 / float64(denominator)
	return math.Round(value*10) / 10
}
