package i18n

// VersusRow is one row of a competitor comparison table.
type VersusRow struct {
	Label string
	Us    string
	Them  string
}

// VersusCopy holds translatable copy for one comparison page.
type VersusCopy struct {
	Slug          string
	Competitor    string
	Title         string
	Description   string
	HeroHook      string
	HeroSubhook   string
	Intro         string
	FeatureColumn string
	Rows          []VersusRow
	VerdictTitle  string
	Verdict       string
	CTA           string
	FAQTitle      string
	FAQ           []QA
}

// Competitor display names are brands and stay untranslated.
var versusCompetitors = map[string]string{
	"talktype":     "TalkType",
	"swiftdictate": "SwiftDictate",
}

var versusSlugOrder = []string{"talktype", "swiftdictate"}

var versusRowKeys = map[string][]string{
	"talktype":     {"privacy", "offline", "accuracy", "latency", "price"},
	"swiftdictate": {"editing", "languages", "accuracy", "platforms", "price"},
}

// Comparison pages answer the two questions switchers actually ask, reusing
// the landing FAQ entries so the copy stays in one place.
var versusFAQKeys = []string{"privacy", "price"}

// VersusSlugs returns the competitors with a comparison page, in display order.
func VersusSlugs() []string {
	out := make([]string, len(versusSlugOrder))
	copy(out, versusSlugOrder)
	return out
}

// IsVersus reports whether slug names a known comparison page.
func IsVersus(slug string) bool {
	_, ok := versusCompetitors[slug]
	return ok
}

// CompetitorName returns the display name for a comparison slug.
func CompetitorName(slug string) string {
	return versusCompetitors[slug]
}

// Versus returns localized copy for one comparison page. Unknown slugs report
// ok false.
func Versus(locale, slug string) (VersusCopy, bool) {
	competitor, ok := versusCompetitors[slug]
	if !ok {
		return VersusCopy{}, false
	}

	prefix := "vs." + slug
	rowKeys := versusRowKeys[slug]
	rows := make([]VersusRow, 0, len(rowKeys))
	for _, key := range rowKeys {
		rows = append(rows, VersusRow{
			Label: localizeWithFallback(locale, prefix+".rows."+key+".label", key),
			Us:    localizeWithFallback(locale, prefix+".rows."+key+".us", ""),
			Them:  localizeWithFallback(locale, prefix+".rows."+key+".them", ""),
		})
	}

	faq := make([]QA, 0, len(versusFAQKeys))
	for _, key := range versusFAQKeys {
		faq = append(faq, QA{
			Question: localizeWithFallback(locale, "landing.faq."+key+".question", ""),
			Answer:   localizeWithFallback(locale, "landing.faq."+key+".answer", ""),
		})
	}

	return VersusCopy{
		Slug:          slug,
		Competitor:    competitor,
		Title:         localizeWithFallback(locale, prefix+".title", "Murmur vs "+competitor),
		Description:   localizeWithFallback(locale, prefix+".description", ""),
		HeroHook:      localizeWithFallback(locale, prefix+".hero.hook", "Murmur vs "+competitor),
		HeroSubhook:   localizeWithFallback(locale, prefix+".hero.subhook", ""),
		Intro:         localizeWithFallback(locale, prefix+".intro", ""),
		FeatureColumn: localizeWithFallback(locale, "vs.tableFeature", "Feature"),
		Rows:          rows,
		VerdictTitle:  localizeWithFallback(locale, "vs.verdictTitle", "The bottom line"),
		Verdict:       localizeWithFallback(locale, prefix+".verdict", ""),
		CTA:           localizeWithFallback(locale, prefix+".cta", "Try Murmur free"),
		FAQTitle:      localizeWithFallback(locale, "landing.faq.title", "Frequently asked questions"),
		FAQ:           faq,
	}, true
}
