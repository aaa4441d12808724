package i18n

// UseCaseCopy holds translatable copy for one use-case page.
type UseCaseCopy struct {
	Slug             string
	Title            string
	Description      string
	HeroHook         string
	HeroSubhook      string
	BenefitsTitle    string
	Benefits         []string
	WorkflowTitle    string
	WorkflowSteps    []string
	QuoteText        string
	QuoteAttribution string
	CTA              string
}

var useCaseSlugs = []string{"writers", "developers", "students"}

// UseCaseSlugs returns the audiences with a dedicated page, in display order.
func UseCaseSlugs() []string {
	out := make([]string, len(useCaseSlugs))
	copy(out, useCaseSlugs)
	return out
}

// IsUseCase reports whether slug names a known use-case page.
func IsUseCase(slug string) bool {
	for _, known := range useCaseSlugs {
		if known == slug {
			return true
		}
	}
	return false
}

// UseCasesIndexTitle returns the localized section label.
func UseCasesIndexTitle(locale string) string {
	return localizeWithFallback(locale, "useCases.title", "Use cases")
}

// UseCase returns localized copy for one use-case page. Unknown slugs report
// ok false.
func UseCase(locale, slug string) (UseCaseCopy, bool) {
	if !IsUseCase(slug) {
		return UseCaseCopy{}, false
	}
	prefix := "useCases." + slug
	return UseCaseCopy{
		Slug:             slug,
		Title:            localizeWithFallback(locale, prefix+".title", "Dictation with Murmur"),
		Description:      localizeWithFallback(locale, prefix+".description", ""),
		HeroHook:         localizeWithFallback(locale, prefix+".hero.hook", ""),
		HeroSubhook:      localizeWithFallback(locale, prefix+".hero.subhook", ""),
		BenefitsTitle:    localizeWithFallback(locale, prefix+".benefits.title", "Why dictate"),
		Benefits:         listWithFallback(locale, prefix+".benefits.items", nil),
		WorkflowTitle:    localizeWithFallback(locale, prefix+".workflow.title", "How it fits your day"),
		WorkflowSteps:    listWithFallback(locale, prefix+".workflow.steps", nil),
		QuoteText:        localizeWithFallback(locale, prefix+".quote.text", ""),
		QuoteAttribution: localizeWithFallback(locale, prefix+".quote.attribution", ""),
		CTA:              localizeWithFallback(locale, prefix+".cta", "Try Murmur free"),
	}, true
}
