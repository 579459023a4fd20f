package repository

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/totegamma/citydesk"
	"github.com/totegamma/citydesk/internal/domain"
	"github.com/totegamma/citydesk/internal/infra/database/models"
)

type BusinessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

func (r *BusinessRepository) GetByID(ctx context.Context, id string) (citydesk.Business, error) {
	var row models.Business
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return citydesk.Business{}, domain.NotFoundError{Resource: "business"}
		}
		return citydesk.Business{}, domain.StoreError{Op: "get business", Err: err}
	}

	business, err := businessToDomain(row)
	if err != nil {
		return citydesk.Business{}, domain.StoreError{Op: "decode business", Err: err}
	}
	return business, nil
}

func (r *BusinessRepository) ListAll(ctx context.Context) ([]citydesk.Business, error) {
	var rows []models.Business
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, domain.StoreError{Op: "list businesses", Err: err}
	}

	businesses := make([]citydesk.Business, 0, len(rows))
	for _, row := range rows {
		business, err := businessToDomain(row)
		if err != nil {
			// a single malformed record must not take the listing down
			slog.WarnContext(ctx, "skipping malformed business record",
				slog.String("id", row.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		businesses = append(businesses, business)
	}
	return businesses, nil
}

// List pages through summaries with a keyset cursor over the id column. The
// cursor is the base64 form of the last id seen; an empty next cursor marks
// the end of the listing.
func (r *BusinessRepository) List(ctx context.Context, cursor string, limit int) ([]citydesk.BusinessSummary, string, error) {
	limit = domain.ClampLimit(limit)

	query := r.db.WithContext(ctx).Order("id ASC").Limit(limit + 1)
	if cursor != "" {
		lastID, err := base64.URLEncoding.DecodeString(cursor)
		if err != nil {
			return nil, "", pkgerrors.Wrap(err, "invalid cursor")
		}
		query = query.Where("id > ?", string(lastID))
	}

	var rows []models.Business
	if err := query.Find(&rows).Error; err != nil {
		return nil, "", domain.StoreError{Op: "list businesses", Err: err}
	}

	next := ""
	if len(rows) > limit {
		rows = rows[:limit]
		next = base64.URLEncoding.EncodeToString([]byte(rows[limit-1].ID))
	}

	summaries := make([]citydesk.BusinessSummary, 0, len(rows))
	for _, row := range rows {
		business, err := businessToDomain(row)
		if err != nil {
			slog.WarnContext(ctx, "skipping malformed business record",
				slog.String("id", row.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		summaries = append(summaries, business.Summary())
	}
	return summaries, next, nil
}

func businessToDomain(row models.Business) (citydesk.Business, error) {
	var categories []string
	if row.Categories != "" {
		if err := json.Unmarshal([]byte(row.Categories), &categories); err != nil {
			return citydesk.Business{}, err
		}
	}

	return citydesk.Business{
		ID:          row.ID,
		Title:       row.Title,
		Address:     row.Address,
		Phone:       row.Phone,
		Website:     row.Website,
		Email:       row.Email,
		Description: row.Description,
		Categories:  categories,
	}, nil
}
