package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/totegamma/citydesk/internal/config"
)

// NewRouter builds the echo instance with the standard middleware chain and
// the preflight allow-list, then registers all routes.
func NewRouter(site config.Site, h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{site.AllowOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
		MaxAge:       86400,
	}))

	h.RegisterRoutes(e)
	return e
}
