package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"mediabridge/internal/application/usecase/abstraction"
	"mediabridge/internal/presentation"
	"mediabridge/internal/presentation/middleware"
)

type Usecases struct {
	Uploader  abstraction.Uploader
	URLAdder  abstraction.URLAdder
	Lister    abstraction.Lister
	Deleter   abstraction.Deleter
	Inspector abstraction.Inspector
}

type RouterConfig struct {
	BodyLimit string
	// RateLimit is requests per second per client IP; 0 disables limiting.
	RateLimit float64
	// AccessLog enables echo's request logger.
	AccessLog bool
	Recorder  middleware.RequestRecorder
	Gatherer  prometheus.Gatherer
}

// NewRouter builds the bridge HTTP server with every route registered.
func NewRouter(cfg RouterConfig, u Usecases) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = presentation.HTTPErrorHandler

	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		MaxAge:       86400,
	}))
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	if cfg.AccessLog {
		e.Use(echoMiddleware.Logger())
	}
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	if cfg.Recorder != nil {
		e.Use(middleware.Metrics(cfg.Recorder))
	}

	bodyLimit := cfg.BodyLimit
	if bodyLimit == "" {
		bodyLimit = presentation.DefaultBodyLimit
	}
	e.Use(echoMiddleware.BodyLimit(bodyLimit))

	if cfg.RateLimit > 0 {
		e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit))))
	}

	api := e.Group("/api")
	api.GET("/health", NewHealthHandler().HandleHealth)
	api.GET("/pages", NewListHandler(u.Lister).HandleList)
	api.POST("/upload", NewUploadHandler(u.Uploader).HandleUpload)
	api.POST("/add-url", NewAddURLHandler(u.URLAdder).HandleAddURL)
	api.DELETE("/pages/:"+presentation.PageIDParam, NewDeleteHandler(u.Deleter).HandleDelete)
	api.GET("/debug/page/:"+presentation.PageIDParam, NewDebugHandler(u.Inspector).HandleDebug)

	if cfg.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	return e
}
