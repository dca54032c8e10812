package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/dotenv"
	"storefront/internal/pkg/middlewares/graceful_shutdown"
	"storefront/internal/pkg/middlewares/metrics"
	"storefront/internal/pkg/middlewares/rate_limiter"
	"storefront/internal/pkg/middlewares/timeout"
	"storefront/internal/pkg/storestub"
	"storefront/pkg/logger"
	"storefront/pkg/logger/zap_adapter"
	"storefront/pkg/token_bucket"
)

func main() {
	err := dotenv.Load(dotenv.Flag{
		Name:  "port",
		Env:   "STORE_MOCK_PORT",
		Usage: "Server port (overrides STORE_MOCK_PORT environment variable)",
	})
	if err != nil {
		stdlog.Fatalf("failed to load environment: %v", err)
	}

	cfg, err := config.LoadStoreMock()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Log.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting store mock")

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("store mock failed", logger.NewField("error", err))
		return
	}
}

func run(ctx context.Context, cfg *config.StoreMock, log logger.Logger) error {
	const (
		shutdownPeriod = 10 * time.Second
		requestTimeout = 10 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With(logger.NewField("port", cfg.Port))

	store := storestub.New(log)
	if cfg.Seed {
		store.Seed()
	}

	// ongoingCtx не отменяется по сигналу: in-flight запросы дорабатывают до Shutdown.
	ongoingCtx, stopOngoing := context.WithCancel(context.Background())
	defer stopOngoing()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: initRouter(log, &isShuttingDown, store, cfg, requestTimeout),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting", logger.NewField("seeded", cfg.Seed))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		runLog.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	stopOngoing()
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	runLog.Info("server stopped")
	return nil
}

func initRouter(
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	store *storestub.Store,
	cfg *config.StoreMock,
	requestTimeout time.Duration,
) http.Handler {
	middlewares := []mux.MiddlewareFunc{
		graceful_shutdown.Middleware(isShuttingDown),
		timeout.Middleware(requestTimeout),
		metrics.Middleware(log),
	}
	if cfg.RateLimitQPS > 0 {
		bucket := token_bucket.NewTokenBucket(cfg.RateLimitQPS, float64(cfg.RateLimitQPS))
		middlewares = append(middlewares, rate_limiter.Middleware(log, cfg.RateLimitQPS, bucket))
	}

	router := store.Router(middlewares...)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return router
}
