package domain

const (
	CollectionArticles   = "articles"
	CollectionBusinesses = "businesses"
)

const (
	// DefaultPageLimit applies when a listing request carries no usable
	// limit parameter.
	DefaultPageLimit = 10
	// MaxPageLimit caps caller-supplied limits.
	MaxPageLimit = 20
	// CursorPageLimit is the fixed page size of the cursor listing endpoint.
	CursorPageLimit = 10
)

// ClampLimit normalizes a caller-supplied page limit: non-positive values
// fall back to the default, anything above the cap is clamped.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageLimit
	}
	if limit > MaxPageLimit {
		return MaxPageLimit
	}
	return limit
}
