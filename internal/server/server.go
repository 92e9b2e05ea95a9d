package server

import (
	"context"
	goerrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"nfc-transfer-service/internal/config"
	"nfc-transfer-service/internal/database"
	"nfc-transfer-service/internal/handlers"
	"nfc-transfer-service/internal/jobs"
	"nfc-transfer-service/internal/middleware"
	"nfc-transfer-service/internal/payload"
	"nfc-transfer-service/internal/repositories"
	"nfc-transfer-service/internal/routes"
	"nfc-transfer-service/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const maxRequestBody = "64K"

// Registry is where the service registers and reads its metrics
type Registry interface {
	prometheus.Registerer
	prometheus.Gatherer
}

// Server is the assembled transfer API: routes, middleware and background jobs
type Server struct {
	Echo *echo.Echo

	cfg       *config.Config
	limiter   *middleware.RateLimiter
	scheduler *jobs.Scheduler
	logger    *slog.Logger

	// ctx scopes background work; cancel is called once from Shutdown
	ctx    context.Context
	cancel context.CancelFunc
}

// New wires repositories, services and handlers on top of db
func New(db *database.DB, cfg *config.Config, logger *slog.Logger, reg Registry) (*Server, error) {
	key, err := payload.DeriveKey(cfg.Transfer.Passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to derive transfer key: %w", err)
	}

	accountRepo := repositories.NewAccountRepository(db.DB)
	profileRepo := repositories.NewProfileRepository(db.DB)
	cardRepo := repositories.NewCardRepository(db.DB)
	transferRepo := repositories.NewTransferRepository(db.DB)
	auditRepo := repositories.NewAuditLogRepository(db.DB)

	auditLogger := services.NewAuditLogger(logger)
	metrics := services.NewPrometheusMetrics(reg)
	tokenService := services.NewTokenService(&cfg.JWT)

	processor := services.NewTransferProcessor(key, accountRepo, cardRepo, transferRepo, auditRepo, auditLogger, metrics, logger)
	cardService := services.NewCardService(cardRepo, auditRepo, auditLogger, metrics, logger)
	queryService := services.NewAccountQueryService(accountRepo, profileRepo)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(logger, reg)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.BodyLimit(maxRequestBody))
	if len(cfg.Server.CORSAllowOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: cfg.Server.CORSAllowOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch},
			AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		}))
	}

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)

	opts := routes.Options{
		TokenService:    tokenService,
		TransferLimiter: limiter,
	}
	if cfg.Server.MetricsEnabled {
		opts.Gatherer = reg
	}

	h := routes.Handlers{
		Health:   handlers.NewHealthCheckHandler(db.DB),
		Accounts: handlers.NewAccountHandler(queryService),
		Cards:    handlers.NewCardHandler(cardService),
		Transfer: handlers.NewTransferHandler(processor),
	}
	if cfg.Server.DocsDir != "" {
		h.Docs = handlers.NewDocsHandler(cfg.Server.DocsDir)
	}
	routes.Register(e, h, opts)

	scheduler := jobs.NewScheduler(logger)
	retention := jobs.NewAuditRetentionJob(auditRepo, cfg.Jobs.AuditRetention, logger)
	if err := scheduler.AddAuditRetention(cfg.Jobs.AuditRetentionSchedule, retention); err != nil {
		return nil, err
	}

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		Echo:      e,
		cfg:       cfg,
		limiter:   limiter,
		scheduler: scheduler,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}, nil
}

// Start runs background work and serves HTTP until Shutdown is called
func (s *Server) Start() error {
	go s.limiter.Run(s.ctx)
	s.scheduler.Start()

	addr := net.JoinHostPort(s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info("HTTP server listening", "addr", addr, "environment", s.cfg.Server.Environment)

	if err := s.Echo.Start(addr); err != nil && !goerrors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops background jobs
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()
	s.scheduler.Stop(ctx)

	return s.Echo.Shutdown(ctx)
}
