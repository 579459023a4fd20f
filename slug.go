package citydesk

import (
	"strings"
)

// Slugify derives a URL-safe identifier from a title. Apostrophes are dropped
// before lowering so "it's" becomes "its" rather than "it-s"; every other run
// of non-alphanumeric characters collapses to a single hyphen, and leading or
// trailing hyphens are stripped. The transform is idempotent.
func Slugify(title string) string {
	s := strings.ReplaceAll(title, "'", "")
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteByte(c)
		} else {
			pendingHyphen = true
		}
	}
	return b.String()
}
