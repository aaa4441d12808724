package blog

import "testing"

func TestPostsExcludesDraftsAndSortsNewestFirst(t *testing.T) {
	t.Parallel()

	posts := Posts()
	if len(posts) == 0 {
		t.Fatal("Posts() returned no posts")
	}

	for _, post := range posts {
		if post.Draft {
			t.Fatalf("Posts() returned draft %q", post.Slug)
		}
	}

	for i := 1; i < len(posts); i++ {
		prev, prevOK := posts[i-1].PublishedAt()
		cur, curOK := posts[i].PublishedAt()
		if !prevOK || !curOK {
			t.Fatalf("registry post has malformed date: %q or %q", posts[i-1].Date, posts[i].Date)
		}
		if cur.After(prev) {
			t.Fatalf("posts out of order: %s (%s) before %s (%s)", posts[i-1].Slug, posts[i-1].Date, posts[i].Slug, posts[i].Date)
		}
	}
}

func TestAllPostsIncludesDrafts(t *testing.T) {
	t.Parallel()

	all := AllPosts()
	published := Posts()
	if len(all) <= len(published) {
		t.Fatalf("len(AllPosts()) = %d, want more than %d", len(all), len(published))
	}

	var found bool
	for _, post := range all {
		if post.Draft {
			found = true
		}
	}
	if !found {
		t.Fatal("AllPosts() returned no draft")
	}
}

func TestBySlug(t *testing.T) {
	t.Parallel()

	post, ok := BySlug("bilingual-dictation")
	if !ok {
		t.Fatal("BySlug(bilingual-dictation) not found")
	}
	if post.Author != "Sofía Reyes" {
		t.Fatalf("Author = %q, want %q", post.Author, "Sofía Reyes")
	}
	if post.Updated == "" {
		t.Fatal("Updated is empty, want a revision date")
	}

	if _, ok := BySlug("missing-post"); ok {
		t.Fatal("BySlug(missing-post) found a post")
	}
}

func TestLocalizedTitleFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	post, ok := BySlug("murmur-two-roadmap")
	if !ok {
		t.Fatal("BySlug(murmur-two-roadmap) not found")
	}
	if post.Title["es"] != "" {
		t.Fatalf("test premise broken: draft has an es title %q", post.Title["es"])
	}
	if got := post.LocalizedTitle("es"); got != post.Title["en"] {
		t.Fatalf("LocalizedTitle(es) = %q, want english %q", got, post.Title["en"])
	}
	if got := post.LocalizedExcerpt("es"); got != post.Excerpt["en"] {
		t.Fatalf("LocalizedExcerpt(es) = %q, want english %q", got, post.Excerpt["en"])
	}
}

func TestEveryPublishedPostHasBothTitles(t *testing.T) {
	t.Parallel()

	for _, post := range Posts() {
		for _, locale := range []string{"en", "es"} {
			if post.Title[locale] == "" {
				t.Fatalf("post %s missing %s title", post.Slug, locale)
			}
			if post.Excerpt[locale] == "" {
				t.Fatalf("post %s missing %s excerpt", post.Slug, locale)
			}
		}
	}
}

func TestPublishedAtRejectsMalformedDate(t *testing.T) {
	t.Parallel()

	post := Post{Date: "next tuesday"}
	if _, ok := post.PublishedAt(); ok {
		t.Fatal("PublishedAt() ok = true for malformed date")
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		locale string
		iso    string
		want   string
	}{
		{name: "english", locale: "en", iso: "2026-07-18", want: "July 18, 2026"},
		{name: "spanish", locale: "es", iso: "2026-07-18", want: "18 de julio de 2026"},
		{name: "spanish january", locale: "es", iso: "2026-01-02", want: "2 de enero de 2026"},
		{name: "unknown locale uses english", locale: "fr", iso: "2026-07-18", want: "July 18, 2026"},
		{name: "malformed stays verbatim", locale: "en", iso: "18/07/2026", want: "18/07/2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatDate(tt.locale, tt.iso); got != tt.want {
				t.Fatalf("FormatDate(%q, %q) = %q, want %q", tt.locale, tt.iso, got, tt.want)
			}
		})
	}
}
