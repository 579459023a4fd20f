package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/totegamma/citydesk"
	"github.com/totegamma/citydesk/internal/domain"
	"github.com/totegamma/citydesk/internal/infra/database/models"
)

type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) GetByKey(ctx context.Context, key string) (citydesk.Article, error) {
	var row models.Article
	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return citydesk.Article{}, domain.NotFoundError{Resource: "article"}
		}
		return citydesk.Article{}, domain.StoreError{Op: "get article", Err: err}
	}

	return articleToDomain(row), nil
}

// ListAll returns every article in listing order: publish date descending,
// insertion order on ties.
func (r *ArticleRepository) ListAll(ctx context.Context) ([]citydesk.Article, error) {
	var rows []models.Article
	err := r.db.WithContext(ctx).
		Order("published_date DESC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, domain.StoreError{Op: "list articles", Err: err}
	}

	articles := make([]citydesk.Article, 0, len(rows))
	for _, row := range rows {
		articles = append(articles, articleToDomain(row))
	}
	return articles, nil
}

// ReplaceAll swaps the stored collection for the given set in a single
// transaction. Overwrite semantics, never a merge.
func (r *ArticleRepository) ReplaceAll(ctx context.Context, articles []citydesk.Article) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.Article{}).Error; err != nil {
			return err
		}

		for _, a := range articles {
			row := models.Article{
				Key:           a.Key,
				Title:         a.Title,
				Content:       a.Content,
				Excerpt:       a.Excerpt,
				PublishedDate: a.PublishedDate,
				Author:        a.Author,
				SourceURL:     a.SourceURL,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return domain.StoreError{Op: "replace articles", Err: err}
	}
	return nil
}

func articleToDomain(row models.Article) citydesk.Article {
	return citydesk.Article{
		Key:           row.Key,
		Title:         row.Title,
		Content:       row.Content,
		Excerpt:       row.Excerpt,
		PublishedDate: row.PublishedDate,
		Author:        row.Author,
		SourceURL:     row.SourceURL,
	}
}
