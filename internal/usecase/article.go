package usecase

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/totegamma/citydesk"
	"github.com/totegamma/citydesk/internal/domain"
)

const indexCacheKey = "article-index"

type ArticleUsecase struct {
	repo      ArticleRepository
	publisher Publisher
	cache     *cache.Cache
}

func NewArticleUsecase(repo ArticleRepository, publisher Publisher) *ArticleUsecase {
	return &ArticleUsecase{
		repo:      repo,
		publisher: publisher,
		cache:     cache.New(time.Minute, 5*time.Minute),
	}
}

// Index returns the listing summaries for all articles. The index is a cache
// over the full set, memoized briefly and flushed on ReplaceAll.
func (uc *ArticleUsecase) Index(ctx context.Context) ([]citydesk.ArticleSummary, error) {
	if cached, found := uc.cache.Get(indexCacheKey); found {
		return cached.([]citydesk.ArticleSummary), nil
	}

	articles, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]citydesk.ArticleSummary, 0, len(articles))
	for _, a := range articles {
		summaries = append(summaries, citydesk.ArticleSummary{
			Title:         a.Title,
			URL:           "/api/articles/" + a.Key,
			Excerpt:       a.Excerpt,
			PublishedDate: a.PublishedDate,
		})
	}

	uc.cache.Set(indexCacheKey, summaries, cache.DefaultExpiration)
	return summaries, nil
}

func (uc *ArticleUsecase) GetByKey(ctx context.Context, key string) (citydesk.Article, error) {
	return uc.repo.GetByKey(ctx, key)
}

// GetBySlug scans all articles and returns the first whose derived slug
// matches. The scan is linear over the full set in stable listing order;
// acceptable while collections stay small, and collisions resolve to the
// first match.
func (uc *ArticleUsecase) GetBySlug(ctx context.Context, slug string) (citydesk.Article, error) {
	articles, err := uc.repo.ListAll(ctx)
	if err != nil {
		return citydesk.Article{}, err
	}

	for _, a := range articles {
		if a.Slug() == slug {
			return a, nil
		}
	}

	return citydesk.Article{}, domain.NotFoundError{Resource: "article"}
}

// ReplaceAll overwrites the stored article collection wholesale. Records
// without a key get one derived from their title. A change event is published
// after the store accepts the new set; publish failures do not fail the
// upload.
func (uc *ArticleUsecase) ReplaceAll(ctx context.Context, articles []citydesk.Article) error {
	for i := range articles {
		if articles[i].Key == "" {
			articles[i].Key = articles[i].Slug() + ".html"
		}
	}

	err := uc.repo.ReplaceAll(ctx, articles)
	if err != nil {
		return err
	}

	uc.cache.Delete(indexCacheKey)

	if uc.publisher != nil {
		_ = uc.publisher.Publish(ctx, citydesk.Event{
			Type:       "replace",
			Collection: domain.CollectionArticles,
			Count:      len(articles),
			Timestamp:  time.Now().UTC(),
		})
	}

	return nil
}
