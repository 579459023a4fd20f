package usecase

// Paginate slices one page out of an ordered list. Pages are 1-based; the
// returned hasMore flag is true while further pages remain. Out-of-range
// pages yield an empty slice.
func Paginate[T any](items []T, page, limit int) ([]T, bool) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		return nil, false
	}

	start := (page - 1) * limit
	if start >= len(items) {
		return nil, false
	}

	end := start + limit
	if end > len(items) {
		end = len(items)
	}

	return items[start:end], end < len(items)
}
