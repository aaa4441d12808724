package i18n

// PlatformCopy holds one download card.
type PlatformCopy struct {
	Title        string
	Requirements string
	Button       string
}

// DownloadCopy holds translatable copy for the download page.
type DownloadCopy struct {
	Title       string
	Description string
	HeroHook    string
	HeroSubhook string
	MacOS       PlatformCopy
	Windows     PlatformCopy
	Note        string
}

// Download returns localized download page copy.
func Download(locale string) DownloadCopy {
	return DownloadCopy{
		Title:       localizeWithFallback(locale, "download.title", "Download Murmur"),
		Description: localizeWithFallback(locale, "download.description", "Get Murmur for macOS or Windows."),
		HeroHook:    localizeWithFallback(locale, "download.hero.hook", "Get Murmur on your desk"),
		HeroSubhook: localizeWithFallback(locale, "download.hero.subhook", "One download, two minutes, and your voice becomes a keyboard."),
		MacOS: PlatformCopy{
			Title:        localizeWithFallback(locale, "download.macos.title", "Murmur for macOS"),
			Requirements: localizeWithFallback(locale, "download.macos.requirements", "macOS 13 Ventura or later"),
			Button:       localizeWithFallback(locale, "download.macos.button", "Download for macOS"),
		},
		Windows: PlatformCopy{
			Title:        localizeWithFallback(locale, "download.windows.title", "Murmur for Windows"),
			Requirements: localizeWithFallback(locale, "download.windows.requirements", "Windows 11 or Windows 10 64-bit"),
			Button:       localizeWithFallback(locale, "download.windows.button", "Download for Windows"),
		},
		Note: localizeWithFallback(locale, "download.note", "The trial is fully featured for 14 days."),
	}
}

// NotFoundCopy holds translatable copy for the 404 page.
type NotFoundCopy struct {
	Title string
	Body  string
	Back  string
}

// NotFound returns localized 404 page copy.
func NotFound(locale string) NotFoundCopy {
	return NotFoundCopy{
		Title: localizeWithFallback(locale, "notFound.title", "Page not found"),
		Body:  localizeWithFallback(locale, "notFound.body", "That page does not exist."),
		Back:  localizeWithFallback(locale, "notFound.back", "Back to the homepage"),
	}
}
