package usecase

import (
	"context"
	"strings"

	"github.com/totegamma/citydesk"
	"github.com/totegamma/citydesk/internal/domain"
)

type BusinessUsecase struct {
	repo BusinessRepository
}

func NewBusinessUsecase(repo BusinessRepository) *BusinessUsecase {
	return &BusinessUsecase{repo: repo}
}

// Get looks up a business by id. A non-empty category acts as an equality
// filter: a record that exists but lacks the category is reported not found,
// not as an error.
func (uc *BusinessUsecase) Get(ctx context.Context, id, category string) (citydesk.Business, error) {
	business, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return citydesk.Business{}, err
	}

	if category != "" && !business.HasCategory(category) {
		return citydesk.Business{}, domain.NotFoundError{Resource: "business"}
	}

	return business, nil
}

// ListPage returns one offset-addressed page of summaries plus the total
// record count.
func (uc *BusinessUsecase) ListPage(ctx context.Context, page, limit int) ([]citydesk.BusinessSummary, int, error) {
	businesses, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	slice, _ := Paginate(businesses, page, limit)

	results := make([]citydesk.BusinessSummary, 0, len(slice))
	for _, b := range slice {
		results = append(results, b.Summary())
	}

	return results, len(businesses), nil
}

// ListCursor pages through summaries with the repository's native cursor at
// the fixed cursor page size. An empty next cursor means the listing is
// complete.
func (uc *BusinessUsecase) ListCursor(ctx context.Context, cursor string) ([]citydesk.BusinessSummary, string, error) {
	return uc.repo.List(ctx, cursor, domain.CursorPageLimit)
}

// Search returns all businesses whose title, categories, or address contain
// the query, case-insensitively.
func (uc *BusinessUsecase) Search(ctx context.Context, query string) ([]citydesk.Business, error) {
	businesses, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	results := make([]citydesk.Business, 0)
	for _, b := range businesses {
		if matchesQuery(b, q) {
			results = append(results, b)
		}
	}

	return results, nil
}

func matchesQuery(b citydesk.Business, q string) bool {
	if strings.Contains(strings.ToLower(b.Title), q) {
		return true
	}
	for _, c := range b.Categories {
		if strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(b.Address), q)
}
