package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/totegamma/citydesk"
	"github.com/totegamma/citydesk/internal/domain"
	"github.com/totegamma/citydesk/internal/present/rest/presenter"
	"github.com/totegamma/citydesk/internal/service"
	"github.com/totegamma/citydesk/internal/usecase"
)

type Handler struct {
	article  *usecase.ArticleUsecase
	business *usecase.BusinessUsecase
	asset    *usecase.AssetUsecase
	render   *service.RenderService
	signal   *service.SignalService
}

func NewHandler(
	article *usecase.ArticleUsecase,
	business *usecase.BusinessUsecase,
	asset *usecase.AssetUsecase,
	render *service.RenderService,
	signal *service.SignalService,
) *Handler {
	return &Handler{
		article:  article,
		business: business,
		asset:    asset,
		render:   render,
		signal:   signal,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/listings", h.handleListings)
	e.GET("/biz/list", h.handleBusinessList)
	e.GET("/biz/search", h.handleBusinessSearch)
	e.GET("/biz/*", h.handleBusinessItem)
	e.GET("/api/articles", h.handleArticleIndex)
	e.GET("/api/articles/index.json", h.handleArticleIndex)
	e.GET("/api/articles/*", h.handleArticleItem)
	e.POST("/api/upload-articles", h.handleUploadArticles)
	e.GET("/assets/*", h.handleAsset)
	e.GET("/realtime", h.handleRealtime)
	e.GET("/*", h.handleFallback)
}

// handleListings serves the cursor-paginated business listing. The cursor is
// opaque to the client; null marks the end of the listing.
func (h *Handler) handleListings(c echo.Context) error {
	ctx := c.Request().Context()

	listings, next, err := h.business.ListCursor(ctx, c.QueryParam("cursor"))
	if err != nil {
		return presenter.InternalErrorDetails(c, "Failed to fetch listings", err)
	}

	var cursor any
	if next != "" {
		cursor = next
	}

	return presenter.Cached(c, echo.Map{
		"listings": listings,
		"cursor":   cursor,
	}, presenter.CacheCursor)
}

func (h *Handler) handleBusinessList(c echo.Context) error {
	ctx := c.Request().Context()

	// non-numeric or non-positive values fall back to the defaults
	page := 1
	if v := c.QueryParam("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	limit := domain.DefaultPageLimit
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = domain.ClampLimit(n)
		}
	}

	results, total, err := h.business.ListPage(ctx, page, limit)
	if err != nil {
		return presenter.InternalErrorDetails(c, "Failed to fetch listings", err)
	}

	return presenter.Cached(c, echo.Map{
		"page":    page,
		"limit":   limit,
		"total":   total,
		"results": results,
	}, presenter.CacheListing)
}

func (h *Handler) handleBusinessSearch(c echo.Context) error {
	ctx := c.Request().Context()

	query := c.QueryParam("q")
	if query == "" {
		return presenter.BadRequestMessage(c, "Search query required")
	}

	results, err := h.business.Search(ctx, query)
	if err != nil {
		return presenter.InternalError(c, err)
	}

	return presenter.Cached(c, results, presenter.CacheListing)
}

// handleBusinessItem resolves /biz/{id} and /biz/{category}/{id}. A category
// segment acts as an equality filter; a mismatch is a 404, not an error.
func (h *Handler) handleBusinessItem(c echo.Context) error {
	ctx := c.Request().Context()

	segments := strings.Split(strings.Trim(c.Param("*"), "/"), "/")
	var id, category string
	switch len(segments) {
	case 1:
		id = segments[0]
	case 2:
		category, id = segments[0], segments[1]
	default:
		return presenter.NotFound(c, "Invalid URL")
	}
	if id == "" {
		return presenter.NotFound(c, "Invalid URL")
	}

	business, err := h.business.Get(ctx, id, category)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "Business not found")
		}
		return presenter.InternalError(c, err)
	}

	return presenter.Cached(c, business, presenter.CacheListing)
}

func (h *Handler) handleArticleIndex(c echo.Context) error {
	ctx := c.Request().Context()

	index, err := h.article.Index(ctx)
	if err != nil {
		return presenter.InternalError(c, err)
	}

	return presenter.Cached(c, index, presenter.CacheDocument)
}

func (h *Handler) handleArticleItem(c echo.Context) error {
	ctx := c.Request().Context()

	article, err := h.article.GetByKey(ctx, c.Param("*"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "Article not found")
		}
		return presenter.InternalError(c, err)
	}

	return presenter.HTML(c, article.Content)
}

func (h *Handler) handleUploadArticles(c echo.Context) error {
	ctx := c.Request().Context()

	// a body that fails to decode is an upload failure, not a client 400
	var articles []citydesk.Article
	if err := c.Bind(&articles); err != nil {
		return presenter.InternalErrorDetails(c, "Failed to upload articles", err)
	}

	if err := h.article.ReplaceAll(ctx, articles); err != nil {
		return presenter.InternalErrorDetails(c, "Failed to upload articles", err)
	}

	return presenter.OK(c, echo.Map{"success": true})
}

func (h *Handler) handleAsset(c echo.Context) error {
	return h.serveAsset(c, "assets/"+c.Param("*"))
}

// handleFallback resolves bare paths: a business key rendered as HTML, then
// an article located by its title-derived slug, then the asset passthrough.
// Terminal in all cases, one response per request.
func (h *Handler) handleFallback(c echo.Context) error {
	ctx := c.Request().Context()
	path := strings.Trim(c.Param("*"), "/")

	if path != "" {
		business, err := h.business.Get(ctx, path, "")
		if err == nil {
			return presenter.HTML(c, h.render.BusinessHTML(ctx, business))
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return presenter.InternalError(c, err)
		}

		article, err := h.article.GetBySlug(ctx, path)
		if err == nil {
			return presenter.HTML(c, service.ArticlePage(article))
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return presenter.InternalError(c, err)
		}
	}

	return h.serveAsset(c, path)
}

func (h *Handler) serveAsset(c echo.Context, path string) error {
	ctx := c.Request().Context()

	asset, err := h.asset.Get(ctx, path)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.String(http.StatusNotFound, "Page not found")
		}
		slog.ErrorContext(ctx, "asset fetch failed",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return c.String(http.StatusServiceUnavailable, "Service unavailable")
	}

	return presenter.Blob(c, asset.ContentType, asset.Body)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleRealtime streams collection-change events over a websocket.
func (h *Handler) handleRealtime(c echo.Context) error {
	if h.signal == nil {
		return presenter.NotFound(c, "realtime not available")
	}

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"Failed to upgrade WebSocket",
			slog.String("error", err.Error()),
			slog.String("module", "socket"),
		)
		return err
	}
	defer ws.Close()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	output := make(chan citydesk.Event)
	go h.signal.Realtime(ctx, output)

	quit := make(chan struct{})

	go func() {
		defer close(quit)
		for {
			// the read loop only detects closure and heartbeats
			var msg map[string]any
			if err := ws.ReadJSON(&msg); err != nil {
				wsErr, ok := err.(*websocket.CloseError)
				if !ok || !(wsErr.Code == websocket.CloseNormalClosure || wsErr.Code == websocket.CloseGoingAway) {
					slog.DebugContext(
						ctx, "WebSocket closed",
						slog.String("error", err.Error()),
						slog.String("module", "socket"),
					)
				}
				return
			}
		}
	}()

	for {
		select {
		case <-quit:
			return nil
		case event := <-output:
			if err := ws.WriteJSON(event); err != nil {
				slog.ErrorContext(
					ctx, "Error writing message",
					slog.String("error", err.Error()),
					slog.String("module", "socket"),
				)
				return nil
			}
		}
	}
}
