package presenter

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Cache directives used across the content-serving endpoints. Dynamic
// listings get a short window, individual documents a longer one.
const (
	CacheListing  = "public, max-age=60"
	CacheCursor   = "public, max-age=300"
	CacheDocument = "public, max-age=3600"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// OK wraps a successful JSON response.
func OK(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

// Cached wraps a successful JSON response carrying a cache directive.
func Cached(c echo.Context, payload any, cacheControl string) error {
	c.Response().Header().Set("Cache-Control", cacheControl)
	return c.JSON(http.StatusOK, payload)
}

// HTML serves a rendered document with the long-lived document directive.
func HTML(c echo.Context, document string) error {
	c.Response().Header().Set("Cache-Control", CacheDocument)
	return c.HTML(http.StatusOK, document)
}

// Blob serves raw bytes with their stored content type.
func Blob(c echo.Context, contentType string, body []byte) error {
	return c.Blob(http.StatusOK, contentType, body)
}

func BadRequest(c echo.Context, err error) error {
	slog.Warn("bad request", slog.String("error", err.Error()))
	return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func BadRequestMessage(c echo.Context, msg string) error {
	slog.Warn("bad request", slog.String("error", msg))
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

func NotFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, errorResponse{Error: msg})
}

func InternalError(c echo.Context, err error) error {
	slog.Error("internal error", slog.String("error", err.Error()))
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

// InternalErrorDetails reports a failure with a stable message plus the
// underlying cause, the shape the listing endpoints expose.
func InternalErrorDetails(c echo.Context, msg string, err error) error {
	slog.Error("internal error", slog.String("error", err.Error()))
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: msg, Details: err.Error()})
}
