package usecase

import (
	"context"

	"github.com/totegamma/citydesk"
)

// ArticleRepository defines storage operations for articles. ListAll returns
// records in listing order: descending publish date, insertion order on ties.
type ArticleRepository interface {
	GetByKey(ctx context.Context, key string) (citydesk.Article, error)
	ListAll(ctx context.Context) ([]citydesk.Article, error)
	ReplaceAll(ctx context.Context, articles []citydesk.Article) error
}

// BusinessRepository defines storage operations for business listings.
// List pages through summaries with an opaque cursor; an empty next cursor
// means the listing is complete.
type BusinessRepository interface {
	GetByID(ctx context.Context, id string) (citydesk.Business, error)
	ListAll(ctx context.Context) ([]citydesk.Business, error)
	List(ctx context.Context, cursor string, limit int) ([]citydesk.BusinessSummary, string, error)
}

// AssetSource fetches static documents, typically through a read-through
// cache in front of the origin.
type AssetSource interface {
	Fetch(ctx context.Context, path string) (citydesk.Asset, error)
}

// Publisher broadcasts collection-change events to subscribers.
type Publisher interface {
	Publish(ctx context.Context, event citydesk.Event) error
}
