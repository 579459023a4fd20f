package usecase

import (
	"testing"
)

func TestPaginateRoundTrip(t *testing.T) {
	const n, limit = 25, 10

	items := make([]int, n)
	for i := range items {
		items[i] = i
	}

	var gathered []int
	page := 1
	for {
		slice, hasMore := Paginate(items, page, limit)
		gathered = append(gathered, slice...)
		lastPage := page*limit >= n
		if hasMore == lastPage {
			t.Fatalf("page %d: hasMore = %v", page, hasMore)
		}
		if !hasMore {
			break
		}
		page++
	}

	if len(gathered) != n {
		t.Fatalf("expected %d items after paging, got %d", n, len(gathered))
	}
	for i, v := range gathered {
		if v != i {
			t.Fatalf("order broken at %d: got %d", i, v)
		}
	}
}

func TestPaginatePartialLastPage(t *testing.T) {
	items := make([]string, 25)
	slice, hasMore := Paginate(items, 3, 10)
	if len(slice) != 5 {
		t.Fatalf("expected 5 items on page 3, got %d", len(slice))
	}
	if hasMore {
		t.Fatalf("expected hasMore false on last page")
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	items := []int{1, 2, 3}
	slice, hasMore := Paginate(items, 5, 10)
	if len(slice) != 0 || hasMore {
		t.Fatalf("expected empty page, got %d items hasMore=%v", len(slice), hasMore)
	}
}

func TestPaginateGuardsBadInput(t *testing.T) {
	items := []int{1, 2, 3}

	slice, _ := Paginate(items, 0, 2)
	if len(slice) != 2 || slice[0] != 1 {
		t.Fatalf("page 0 should behave like page 1")
	}

	slice, hasMore := Paginate(items, 1, 0)
	if len(slice) != 0 || hasMore {
		t.Fatalf("non-positive limit should yield nothing")
	}
}
