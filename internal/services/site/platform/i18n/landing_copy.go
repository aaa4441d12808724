package i18n

// Feature is one card in the landing feature grid.
type Feature struct {
	Title string
	Body  string
}

// ComparisonRow is one row of the landing comparison table.
type ComparisonRow struct {
	Label  string
	Murmur string
	Typing string
}

// QA is one frequently asked question with its answer.
type QA struct {
	Question string
	Answer   string
}

// NewsletterCopy holds the signup form copy.
type NewsletterCopy struct {
	Title       string
	Body        string
	Placeholder string
	Button      string
	Success     string
	Error       string
}

// LandingCopy holds translatable copy for the landing page.
type LandingCopy struct {
	Title              string
	Description        string
	HeroHook           string
	HeroSubhook        string
	HeroCTA            string
	HeroSecondaryCTA   string
	HeroNote           string
	FeaturesTitle      string
	FeaturesSubtitle   string
	Features           []Feature
	ComparisonTitle    string
	ComparisonSubtitle string
	ComparisonFeature  string
	ComparisonMurmur   string
	ComparisonTyping   string
	ComparisonRows     []ComparisonRow
	FAQTitle           string
	FAQ                []QA
	Newsletter         NewsletterCopy
}

var landingFeatureKeys = []string{"accuracy", "speed", "privacy", "apps", "commands", "languages"}

var landingComparisonKeys = []string{"speed", "hands", "flow", "anywhere"}

var landingFAQKeys = []string{"privacy", "accuracy", "languages", "offline", "price"}

// Landing returns localized landing page copy.
func Landing(locale string) LandingCopy {
	features := make([]Feature, 0, len(landingFeatureKeys))
	for _, key := range landingFeatureKeys {
		features = append(features, Feature{
			Title: localizeWithFallback(locale, "landing.features."+key+".title", "Feature"),
			Body:  localizeWithFallback(locale, "landing.features."+key+".body", ""),
		})
	}

	rows := make([]ComparisonRow, 0, len(landingComparisonKeys))
	for _, key := range landingComparisonKeys {
		rows = append(rows, ComparisonRow{
			Label:  localizeWithFallback(locale, "landing.comparison.rows."+key+".label", key),
			Murmur: localizeWithFallback(locale, "landing.comparison.rows."+key+".murmur", ""),
			Typing: localizeWithFallback(locale, "landing.comparison.rows."+key+".typing", ""),
		})
	}

	faq := make([]QA, 0, len(landingFAQKeys))
	for _, key := range landingFAQKeys {
		faq = append(faq, QA{
			Question: localizeWithFallback(locale, "landing.faq."+key+".question", ""),
			Answer:   localizeWithFallback(locale, "landing.faq."+key+".answer", ""),
		})
	}

	return LandingCopy{
		Title:              localizeWithFallback(locale, "landing.title", "Voice dictation for people who think out loud"),
		Description:        localizeWithFallback(locale, "landing.description", "Murmur turns speech into polished text in any app on your Mac or PC."),
		HeroHook:           localizeWithFallback(locale, "landing.hero.hook", "Write at the speed of speech"),
		HeroSubhook:        localizeWithFallback(locale, "landing.hero.subhook", "Murmur turns your voice into clean, punctuated text in any application."),
		HeroCTA:            localizeWithFallback(locale, "landing.hero.cta", "Download for free"),
		HeroSecondaryCTA:   localizeWithFallback(locale, "landing.hero.secondaryCta", "See how it works"),
		HeroNote:           localizeWithFallback(locale, "landing.hero.note", "Free for 14 days. No account required."),
		FeaturesTitle:      localizeWithFallback(locale, "landing.features.title", "Everything a keyboard can do, minus the keyboard"),
		FeaturesSubtitle:   localizeWithFallback(locale, "landing.features.subtitle", "Built for long-form writing, quick replies, and everything in between."),
		Features:           features,
		ComparisonTitle:    localizeWithFallback(locale, "landing.comparison.title", "Typing had a good run"),
		ComparisonSubtitle: localizeWithFallback(locale, "landing.comparison.subtitle", "How dictating with Murmur stacks up against the keyboard."),
		ComparisonFeature:  localizeWithFallback(locale, "landing.comparison.feature", "What matters"),
		ComparisonMurmur:   localizeWithFallback(locale, "landing.comparison.murmur", "Murmur"),
		ComparisonTyping:   localizeWithFallback(locale, "landing.comparison.typing", "Typing"),
		ComparisonRows:     rows,
		FAQTitle:           localizeWithFallback(locale, "landing.faq.title", "Frequently asked questions"),
		FAQ:                faq,
		Newsletter:         newsletterCopy(locale),
	}
}

func newsletterCopy(locale string) NewsletterCopy {
	return NewsletterCopy{
		Title:       localizeWithFallback(locale, "landing.newsletter.title", "Murmur in your inbox"),
		Body:        localizeWithFallback(locale, "landing.newsletter.body", "Product updates and dictation tips, about once a month."),
		Placeholder: localizeWithFallback(locale, "landing.newsletter.placeholder", "you@example.com"),
		Button:      localizeWithFallback(locale, "landing.newsletter.button", "Subscribe"),
		Success:     localizeWithFallback(locale, "landing.newsletter.success", "Thanks, you are on the list."),
		Error:       localizeWithFallback(locale, "landing.newsletter.error", "That email does not look right."),
	}
}
