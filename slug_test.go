package citydesk

import (
	"testing"
)

func TestSlugifyBasic(t *testing.T) {
	cases := map[string]string{
		"Acme Co":                       "acme-co",
		"It's A Wonderful Life":         "its-a-wonderful-life",
		"  Leading & Trailing!  ":       "leading-trailing",
		"Multiple---Hyphens___Here":     "multiple-hyphens-here",
		"Numbers 123 stay":              "numbers-123-stay",
		"ALL CAPS TITLE":                "all-caps-title",
		"---":                           "",
		"":                              "",
		"Café del Mar":                  "caf-del-mar",
		"Breaking: News, At 11":         "breaking-news-at-11",
		"ends with punctuation!!!":      "ends-with-punctuation",
		"!!!starts with punctuation":    "starts-with-punctuation",
		"tabs\tand\nnewlines collapse":  "tabs-and-newlines-collapse",
	}

	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSlugifyAlphabet(t *testing.T) {
	titles := []string{
		"Acme Co", "It's A Wonderful Life", "日本語タイトル mixed ASCII",
		"--weird--input--", "UPPER lower 42", "a", "-a-", "a'b'c",
	}
	for _, title := range titles {
		slug := Slugify(title)
		for i := 0; i < len(slug); i++ {
			c := slug[i]
			if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-') {
				t.Errorf("Slugify(%q) produced %q with invalid byte %q", title, slug, c)
			}
		}
		if len(slug) > 0 && (slug[0] == '-' || slug[len(slug)-1] == '-') {
			t.Errorf("Slugify(%q) = %q has leading or trailing hyphen", title, slug)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	titles := []string{
		"Acme Co", "It's A Wonderful Life", "Breaking: News, At 11",
		"already-a-slug", "", "Café del Mar",
	}
	for _, title := range titles {
		once := Slugify(title)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q != %q", title, once, twice)
		}
	}
}

func TestBusinessHasCategory(t *testing.T) {
	b := Business{ID: "acme-co", Categories: []string{"retail", "hardware"}}
	if !b.HasCategory("retail") {
		t.Errorf("expected category retail to match")
	}
	if b.HasCategory("plumbing") {
		t.Errorf("unexpected category match")
	}
}

func TestBusinessSummaryFallbackTitle(t *testing.T) {
	b := Business{ID: "no-name"}
	if got := b.Summary().Title; got != "Untitled Business" {
		t.Errorf("expected fallback title, got %q", got)
	}
}
