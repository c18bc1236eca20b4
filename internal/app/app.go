package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerfiles "github.com/swaggo/files"
	swagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Rakeshkoyya/skillverse/docs"
	"github.com/Rakeshkoyya/skillverse/internal/catalog"
	"github.com/Rakeshkoyya/skillverse/internal/config"
	"github.com/Rakeshkoyya/skillverse/internal/handlers"
	"github.com/Rakeshkoyya/skillverse/internal/handlers/eduwarrior"
	"github.com/Rakeshkoyya/skillverse/internal/handlers/subscription"
	"github.com/Rakeshkoyya/skillverse/internal/handlers/webinar"
	"github.com/Rakeshkoyya/skillverse/internal/metrics"
	"github.com/Rakeshkoyya/skillverse/internal/services/logger"
	"github.com/Rakeshkoyya/skillverse/internal/services/sheets"
	"github.com/Rakeshkoyya/skillverse/internal/services/submissions"
	"github.com/Rakeshkoyya/skillverse/internal/validation"
)

const (
	timeoutDuration = 5 * time.Second

	metricsNamespace = "skillverse"
)

type ServiceContainer struct {
	SubmissionService *submissions.Service
	Catalog           *catalog.Catalog

	Router     *gin.Engine
	Srv        *http.Server
	M          *metrics.Metrics
	fileLogger *zap.Logger
	closeLog   func() error
}

type App struct {
	cfg config.Config
	l   zerolog.Logger
}

func New(cfg config.Config, logger zerolog.Logger) *App {
	logger = logger.With().Str("component", "app").Logger()
	return &App{cfg: cfg, l: logger}
}

// Start serves HTTP until ctx is canceled or the listener fails, then shuts
// down gracefully.
func (a *App) Start(ctx context.Context) error {
	srvContainer, err := a.Init()
	if err != nil {
		return err
	}
	a.RegisterRoutes(srvContainer)

	errCh := make(chan error, 1)
	go func() {
		a.l.Info().Str("http_addr", a.cfg.ServerAddress()).Msg("HTTP server listening")
		if err := srvContainer.Srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		a.l.Info().Msg("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			a.l.Error().Err(err).Msg("HTTP server error")
			_ = a.Stop(srvContainer)
			return err
		}
	}

	return a.Stop(srvContainer)
}

func (a *App) Stop(srvContainer ServiceContainer) error {
	a.l.Info().Msg("Stopping application")

	ctx, cancel := context.WithTimeout(context.Background(), timeoutDuration)
	defer cancel()

	var shutdownErr error
	if err := srvContainer.Srv.Shutdown(ctx); err != nil {
		a.l.Error().Err(err).Msg("HTTP shutdown error")
		shutdownErr = err
	} else {
		a.l.Info().Msg("HTTP server stopped")
	}

	if err := srvContainer.fileLogger.Sync(); err != nil {
		a.l.Warn().Err(err).Msg("failed to sync outbound request log")
	}
	if err := srvContainer.closeLog(); err != nil {
		a.l.Warn().Err(err).Msg("failed to close outbound request log")
	}

	a.l.Info().Msg("Application shutdown complete")
	return shutdownErr
}

// Init builds every dependency without binding a port.
func (a *App) Init() (ServiceContainer, error) {
	a.l.Info().
		Str("http_addr", a.cfg.ServerAddress()).
		Int("webhooks", len(a.cfg.Sheets.URLs())).
		Msg("Initializing application")

	gin.SetMode(a.cfg.GinMode)

	cat, err := catalog.Default()
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("load catalog: %w", err)
	}

	fileLogger, closeLog, err := logger.NewFileLogger(a.cfg.HTTPLogsPath)
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create outbound request log: %w", err)
	}

	m := metrics.NewMetrics(metricsNamespace)

	svc := submissions.NewService(
		validation.New(),
		a.webhookTargets(fileLogger),
		m,
		a.l.With().Str("component", "submissions").Logger(),
		submissions.WithDeliveryTimeout(a.cfg.Sheets.DeliveryTimeout()),
	)

	router := gin.New()

	httpSrv := &http.Server{
		Addr:        a.cfg.ServerAddress(),
		Handler:     router,
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	return ServiceContainer{
		SubmissionService: svc,
		Catalog:           cat,
		Router:            router,
		Srv:               httpSrv,
		M:                 m,
		fileLogger:        fileLogger,
		closeLog:          closeLog,
	}, nil
}

func (a *App) RegisterRoutes(srvContainer ServiceContainer) {
	router := srvContainer.Router
	router.Use(
		gin.Recovery(),
		handlers.RequestID(),
		srvContainer.M.HTTPMiddleware(),
		handlers.AccessLog(a.l),
	)

	subHandler := subscription.NewHandler(srvContainer.SubmissionService, a.l)
	eduHandler := eduwarrior.NewHandler(srvContainer.SubmissionService, a.l)
	webinarHandler := webinar.NewHandler(srvContainer.SubmissionService, srvContainer.Catalog.WebinarEvent, a.l)

	api := router.Group("/api")
	{
		api.POST("/subscribe", subHandler.Subscribe)
		api.GET("/subscribe", subHandler.Describe)
		api.POST("/eduwarrior/apply", eduHandler.Apply)
		api.GET("/eduwarrior/apply", eduHandler.Describe)
		api.POST("/webinar/register", webinarHandler.Register)
		api.GET("/webinar/register", webinarHandler.Describe)
	}

	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(srvContainer.M.Handler()))
	router.GET("/swagger/*any", swagger.WrapHandler(swaggerfiles.Handler))
}

// webhookTargets wraps every configured webhook in a logging transport and,
// when BREAKER_REPEAT_NUM is set, a circuit breaker.
func (a *App) webhookTargets(fileLogger *zap.Logger) submissions.Targets {
	httpClient := &http.Client{
		Transport: logger.NewRoundTripper(fileLogger),
		Timeout:   a.cfg.Sheets.DeliveryTimeout(),
	}
	policy := a.cfg.Breaker.Policy()

	targets := submissions.Targets{}
	for form, url := range a.cfg.Sheets.URLs() {
		l := a.l.With().Str("form", form.String()).Logger()
		client := sheets.NewWebhookClient(url, httpClient, l)
		targets[form] = sheets.Guard(form.String()+"-sheet", policy, client, l)
	}
	return targets
}
