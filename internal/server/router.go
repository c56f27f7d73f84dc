package server

import (
	"log/slog"
	"net/http"

	"truestate/internal/handlers"
	"truestate/internal/middleware"
	"truestate/internal/services"
	"truestate/internal/validation"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps carries everything the HTTP surface needs
type RouterDeps struct {
	Transactions     services.TransactionServiceInterface
	FilterOptions    services.FilterOptionsServiceInterface
	Normalizer       *validation.Normalizer
	RateLimiter      *middleware.RateLimiter
	Registry         *prometheus.Registry
	Logger           *slog.Logger
	CORSAllowOrigins []string
}

// NewRouter builds the echo instance serving the dashboard API
func NewRouter(deps RouterDeps) *echo.Echo {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.NewErrorHandler(deps.Registry).Handle
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.NewHTTPMetrics(deps.Registry).Middleware())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  deps.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	if deps.RateLimiter != nil {
		e.Use(deps.RateLimiter.Middleware())
	}

	setupRoutes(e, deps)
	return e
}

func setupRoutes(e *echo.Echo, deps RouterDeps) {
	transactionHandler := handlers.NewTransactionHandler(deps.Transactions, deps.Normalizer)
	filterOptionsHandler := handlers.NewFilterOptionsHandler(deps.FilterOptions)
	healthHandler := handlers.NewHealthCheckHandler(deps.Transactions)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	api := e.Group("/api")
	api.GET("/transactions", transactionHandler.ListTransactions)
	api.GET("/filters/options", filterOptionsHandler.GetFilterOptions)
	api.GET("/filters/options/:field", filterOptionsHandler.GetFieldOptions)
}
