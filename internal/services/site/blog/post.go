// Package blog holds the post registry and turns embedded Markdown articles
// into rendered pages with tables of contents.
package blog

import (
	"sort"
	"strconv"
	"time"

	"github.com/murmurhq/website/internal/platform/dictionary"
)

// Post is one article in the registry. Bodies live as embedded Markdown
// files named content/<slug>.<locale>.md; metadata lives here.
type Post struct {
	Slug    string
	Author  string
	Date    string
	Updated string
	Tags    []string
	Draft   bool
	Title   map[string]string
	Excerpt map[string]string
}

// LocalizedTitle returns the title for a locale, falling back to English.
func (p Post) LocalizedTitle(locale string) string {
	if title, ok := p.Title[locale]; ok {
		return title
	}
	return p.Title[dictionary.DefaultLocale]
}

// LocalizedExcerpt returns the excerpt for a locale, falling back to English.
func (p Post) LocalizedExcerpt(locale string) string {
	if excerpt, ok := p.Excerpt[locale]; ok {
		return excerpt
	}
	return p.Excerpt[dictionary.DefaultLocale]
}

// PublishedAt parses the post's ISO publish date. Posts with malformed dates
// report ok false and sort last.
func (p Post) PublishedAt() (time.Time, bool) {
	return parseISODate(p.Date)
}

var registry = []Post{
	{
		Slug:   "on-device-speech-models",
		Author: "Ben Calloway",
		Date:   "2026-08-10",
		Tags:   []string{"engineering", "privacy"},
		Draft:  false,
		Title: map[string]string{
			"en": "Why Murmur runs speech models on your device",
			"es": "Por qué Murmur ejecuta los modelos de voz en tu dispositivo",
		},
		Excerpt: map[string]string{
			"en": "Cloud transcription is easier to build and easier to monetize. We picked the hard road anyway. Here is what on-device buys you and what it costs us.",
			"es": "La transcripción en la nube es más fácil de construir y de monetizar. Aun así elegimos el camino difícil. Esto es lo que te da el procesamiento local y lo que nos cuesta.",
		},
	},
	{
		Slug:    "bilingual-dictation",
		Author:  "Sofía Reyes",
		Date:    "2026-07-18",
		Updated: "2026-08-02",
		Tags:    []string{"technique", "languages"},
		Draft:   false,
		Title: map[string]string{
			"en": "Bilingual dictation: switching languages mid-sentence",
			"es": "Dictado bilingüe: cambiar de idioma a mitad de frase",
		},
		Excerpt: map[string]string{
			"en": "Code-switching is how millions of people actually talk. Making a dictation engine follow along took three rewrites of our language detector.",
			"es": "Alternar idiomas es la forma en que millones de personas hablan de verdad. Lograr que un motor de dictado lo siga nos llevó tres reescrituras del detector de idioma.",
		},
	},
	{
		Slug:   "voice-editing-commands",
		Author: "Sofía Reyes",
		Date:   "2026-06-03",
		Tags:   []string{"technique"},
		Draft:  false,
		Title: map[string]string{
			"en": "Editing by voice, from scratch that to select last sentence",
			"es": "Editar con la voz, de borra eso a selecciona la última frase",
		},
		Excerpt: map[string]string{
			"en": "Dictation stops being a toy the day you can revise without touching the keyboard. A tour of Murmur's editing commands and the habits that make them stick.",
			"es": "El dictado deja de ser un juguete el día que puedes revisar sin tocar el teclado. Un recorrido por las órdenes de edición de Murmur y los hábitos que las fijan.",
		},
	},
	{
		Slug:   "dictation-longform-writing",
		Author: "Ben Calloway",
		Date:   "2026-05-12",
		Tags:   []string{"technique", "writing"},
		Draft:  false,
		Title: map[string]string{
			"en": "Dictating long-form writing without losing your voice",
			"es": "Dictar textos largos sin perder tu estilo",
		},
		Excerpt: map[string]string{
			"en": "Spoken first drafts read differently than typed ones, and that is mostly a feature. Techniques for outlining aloud, pacing, and revising dictated prose.",
			"es": "Los primeros borradores hablados se leen distinto que los tecleados, y eso es sobre todo una ventaja. Técnicas para esbozar en voz alta, marcar el ritmo y revisar prosa dictada.",
		},
	},
	{
		Slug:   "murmur-two-roadmap",
		Author: "Ben Calloway",
		Date:   "2026-09-01",
		Tags:   []string{"product"},
		Draft:  true,
		Title: map[string]string{
			"en": "The road to Murmur 2",
		},
		Excerpt: map[string]string{
			"en": "A first look at what the next major version focuses on: more languages, a smarter personal dictionary, and dictation profiles per app.",
		},
	},
}

// Posts returns published posts, newest first.
func Posts() []Post {
	out := make([]Post, 0, len(registry))
	for _, post := range registry {
		if !post.Draft {
			out = append(out, post)
		}
	}
	sortPosts(out)
	return out
}

// AllPosts returns every registered post including drafts, newest first.
func AllPosts() []Post {
	out := make([]Post, len(registry))
	copy(out, registry)
	sortPosts(out)
	return out
}

// BySlug finds a post by slug, drafts included.
func BySlug(slug string) (Post, bool) {
	for _, post := range registry {
		if post.Slug == slug {
			return post, true
		}
	}
	return Post{}, false
}

func sortPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		left, leftOK := posts[i].PublishedAt()
		right, rightOK := posts[j].PublishedAt()
		if leftOK != rightOK {
			return leftOK
		}
		if !left.Equal(right) {
			return left.After(right)
		}
		return posts[i].Slug < posts[j].Slug
	})
}

func parseISODate(value string) (time.Time, bool) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatDate renders an ISO date for display in the given locale. Malformed
// dates come back verbatim so a bad registry entry stays visible instead of
// breaking the page.
func FormatDate(locale, isoDate string) string {
	parsed, ok := parseISODate(isoDate)
	if !ok {
		return isoDate
	}
	if locale == "es" {
		return formatSpanishDate(parsed)
	}
	return parsed.Format("January 2, 2006")
}

func formatSpanishDate(t time.Time) string {
	month := spanishMonths[int(t.Month())-1]
	return strconv.Itoa(t.Day()) + " de " + month + " de " + strconv.Itoa(t.Year())
}
