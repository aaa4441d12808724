package i18n

// BlogCopy holds translatable copy for the blog index and article pages.
type BlogCopy struct {
	Title       string
	Description string
	ReadMore    string
	TOCTitle    string
	BackToBlog  string
	DraftBanner string
	Empty       string
}

// Blog returns localized blog copy.
func Blog(locale string) BlogCopy {
	return BlogCopy{
		Title:       localizeWithFallback(locale, "blog.title", "The Murmur blog"),
		Description: localizeWithFallback(locale, "blog.description", "Dictation techniques and product updates."),
		ReadMore:    localizeWithFallback(locale, "blog.readMore", "Read more"),
		TOCTitle:    localizeWithFallback(locale, "blog.tocTitle", "On this page"),
		BackToBlog:  localizeWithFallback(locale, "blog.backToBlog", "All posts"),
		DraftBanner: localizeWithFallback(locale, "blog.draftBanner", "Draft preview. This post is not published yet."),
		Empty:       localizeWithFallback(locale, "blog.empty", "No posts yet."),
	}
}

// MinuteRead formats a reading-time estimate.
func MinuteRead(locale string, minutes int) string {
	return localizeWithFallback(locale, "blog.minuteRead", "%d min read", minutes)
}

// ByAuthor formats an article byline.
func ByAuthor(locale, author string) string {
	return localizeWithFallback(locale, "blog.byAuthor", "By %s", author)
}

// UpdatedOn formats an article's update note.
func UpdatedOn(locale, date string) string {
	return localizeWithFallback(locale, "blog.updatedOn", "Updated %s", date)
}
