package routes

import (
	"nfc-transfer-service/internal/handlers"
	"nfc-transfer-service/internal/middleware"
	"nfc-transfer-service/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the HTTP handlers served by the API
type Handlers struct {
	Health   *handlers.HealthCheckHandler
	Accounts *handlers.AccountHandler
	Cards    *handlers.CardHandler
	Transfer *handlers.TransferHandler
	// Docs is optional
	Docs *handlers.DocsHandler
}

// Options carries what the route table needs besides handlers
type Options struct {
	TokenService services.TokenServiceInterface
	// TransferLimiter throttles the transfer RPC per client IP. Nil disables it.
	TransferLimiter *middleware.RateLimiter
	// Gatherer backs /metrics. Nil leaves the endpoint out.
	Gatherer prometheus.Gatherer
}

// Register mounts every route on e. Global middleware is installed by the caller.
func Register(e *echo.Echo, h Handlers, opts Options) {
	e.GET("/health", h.Health.HealthCheck)

	if h.Docs != nil {
		e.GET("/docs", h.Docs.ServeUI)
		e.GET("/docs/openapi.json", h.Docs.ServeSpec)
	}

	if opts.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	api := e.Group("/api/v1", middleware.RequireAuth(opts.TokenService))

	api.GET("/accounts", h.Accounts.FindAccounts)
	api.GET("/accounts/mine", h.Accounts.ListMyAccounts)
	api.GET("/profiles/:id", h.Accounts.GetProfile)

	api.GET("/cards", h.Cards.ListCards)
	api.PATCH("/cards/:id", h.Cards.UpdateCardStatus)

	var transferMiddleware []echo.MiddlewareFunc
	if opts.TransferLimiter != nil {
		transferMiddleware = append(transferMiddleware, opts.TransferLimiter.Middleware())
	}
	api.POST("/rpc/process_transfer", h.Transfer.ProcessTransfer, transferMiddleware...)
	api.GET("/transfers/:id", h.Transfer.GetTransfer)
}
