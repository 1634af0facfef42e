// Package web wires the HTML front-end: middleware chain, templates, static
// assets and page handlers.
package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"

	"customerweb/internal/domain/customer"
	"customerweb/internal/infrastructure/http/web/handlers"
	"customerweb/internal/infrastructure/http/web/middleware"
	"customerweb/internal/infrastructure/http/web/views"
	"customerweb/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// CustomerAPI is the remote Customer API client
	CustomerAPI customer.APIClient

	// CustomerAPIBaseURL is reported by /health/info
	CustomerAPIBaseURL string

	// Logger for request logging
	Logger *logger.Logger

	// Development enables gin debug mode
	Development bool

	// SecureCookies marks the anti-forgery cookie Secure (HTTPS deployments)
	SecureCookies bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	if cfg.CustomerAPI == nil {
		return nil, fmt.Errorf("nil CustomerAPI is invalid")
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}

	if cfg.Development {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	tmpl, err := views.Load()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	// Global middleware (order matters!)
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.Exception(handlers.ErrorPath))

	router.StaticFS("/static", http.FS(views.Static()))

	// Health endpoints (no anti-forgery)
	handlers.NewHealthHandler(cfg.CustomerAPIBaseURL).RegisterRoutes(router.Group("/health"))

	// Pages
	pages := router.Group("")
	pages.Use(middleware.AntiForgery(cfg.SecureCookies))
	{
		baseHandler := handlers.NewBaseHandler()

		handlers.NewHomeHandler(baseHandler).RegisterRoutes(pages)
		handlers.NewCustomerHandler(baseHandler, cfg.CustomerAPI).RegisterRoutes(pages.Group("/Customer"))
	}

	return router, nil
}

// NewHandler builds the router and wraps it with gzip response compression.
func NewHandler(cfg RouterConfig) (http.Handler, error) {
	router, err := NewRouter(cfg)
	if err != nil {
		return nil, err
	}
	return gzhttp.GzipHandler(router), nil
}
