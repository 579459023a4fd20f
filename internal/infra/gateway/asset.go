package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/zeebo/xxh3"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/citydesk"
	"github.com/totegamma/citydesk/internal/usecase"
)

var tracer = otel.Tracer("asset")

const assetCacheTTL = 86400 // seconds, bounded staleness window

// Origin is the subset of the HTTP client used by the gateway.
type Origin interface {
	BaseURL() string
	FetchAsset(ctx context.Context, path string) (citydesk.Asset, error)
}

// Cache is the subset of the memcache client used by the gateway.
type Cache interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
}

// AssetGateway serves static documents through a read-through cache. Hits are
// served directly without revalidation; misses fetch from the origin and
// populate the cache in the background without blocking the caller. There is
// no invalidation path: entries age out on TTL only.
type AssetGateway struct {
	origin Origin
	mc     Cache
	wg     sync.WaitGroup
}

func NewAssetGateway(origin Origin, mc Cache) *AssetGateway {
	return &AssetGateway{
		origin: origin,
		mc:     mc,
	}
}

func (g *AssetGateway) Fetch(ctx context.Context, path string) (citydesk.Asset, error) {
	ctx, span := tracer.Start(ctx, "Asset.Gateway.Fetch")
	defer span.End()

	key := g.cacheKey(path)

	if g.mc != nil {
		if item, err := g.mc.Get(key); err == nil {
			var asset citydesk.Asset
			if err := json.Unmarshal(item.Value, &asset); err == nil {
				return asset, nil
			}
			// fall through to the origin on a corrupt entry
		}
	}

	asset, err := g.origin.FetchAsset(ctx, path)
	if err != nil {
		span.RecordError(err)
		return citydesk.Asset{}, err
	}

	if g.mc != nil {
		g.wg.Add(1)
		go func() {
			defer g.wg.Done()
			encoded, err := json.Marshal(asset)
			if err != nil {
				return
			}
			err = g.mc.Set(&memcache.Item{
				Key:        key,
				Value:      encoded,
				Expiration: assetCacheTTL,
			})
			if err != nil {
				slog.Warn("asset cache populate failed",
					slog.String("key", key),
					slog.String("error", err.Error()),
				)
			}
		}()
	}

	return asset, nil
}

// Close waits for in-flight cache population to finish.
func (g *AssetGateway) Close() {
	g.wg.Wait()
}

// cacheKey hashes the fully-qualified origin URL with the query string
// stripped, so ?v= style cache busters share an entry.
func (g *AssetGateway) cacheKey(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	full := g.origin.BaseURL() + "/" + strings.TrimLeft(path, "/")
	return "asset:" + strconv.FormatUint(xxh3.HashString(full), 16)
}

var _ usecase.AssetSource = (*AssetGateway)(nil)
