package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${DEBUG_SERVER_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "storefront/internal/app"
	"storefront/internal/handlers/rest/healthcheck_head"
	"storefront/internal/handlers/rest/views_get"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/console"
	"storefront/internal/pkg/dotenv"
	"storefront/internal/pkg/httpclient"
	metrics_system "storefront/internal/pkg/metrics"
	"storefront/internal/pkg/middlewares/graceful_shutdown"
	"storefront/pkg/logger"
	"storefront/pkg/logger/zap_adapter"
)

func main() {
	err := dotenv.Load(dotenv.Flag{
		Name:  "base-url",
		Env:   "STORE_BASE_URL",
		Usage: "Store API base URL (overrides STORE_BASE_URL environment variable)",
	})
	if err != nil {
		stdlog.Fatalf("failed to load environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Log.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		// sync на stderr в терминале возвращает EINVAL, это не ошибка
		_ = zapLogger.Sync()
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(logger.NewField("store", cfg.Store.BaseURL))

	mainLog.Info("starting storefront")

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const shutdownPeriod = 5 * time.Second

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	client, err := httpclient.New(ctx, log, &cfg.Store)
	if err != nil {
		return fmt.Errorf("http client: %w", err)
	}
	defer client.CloseIdleConnections()

	term := console.New(os.Stdin, os.Stdout)

	app, err := application.InitializeApplication(log, client, term, cfg)
	if err != nil {
		return fmt.Errorf("application: %w", err)
	}

	var debugServer *http.Server
	var debugServerErr chan error
	if cfg.DebugServer.Enabled {
		collectorDone := metrics_system.StartSystemMetricsCollector(ctx)
		defer func() { <-collectorDone }()

		debugServer = &http.Server{
			Addr:    fmt.Sprintf("localhost:%s", cfg.DebugServer.Port),
			Handler: initDebugRouter(log, &isShuttingDown, app),
			BaseContext: func(_ net.Listener) context.Context {
				return ctx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		debugServerErr = make(chan error, 1)
		go func() {
			defer close(debugServerErr)
			runLog.Info("debug server starting",
				logger.NewField("port", cfg.DebugServer.Port),
			)
			if err := debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				debugServerErr <- err
			}
		}()
	}

	shellErr := make(chan error, 1)
	go func() {
		shellErr <- app.Shell.Run(ctx)
	}()

	select {
	case err = <-shellErr:
		if err != nil {
			err = fmt.Errorf("shell: %w", err)
		}
	case err = <-debugServerErr: // nil-канал, если debug сервер выключен
		stop()
		<-shellErr
		err = fmt.Errorf("debug server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	if debugServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
		defer cancel()

		if shutdownErr := debugServer.Shutdown(shutdownCtx); shutdownErr != nil {
			runLog.Error("debug server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("debug server stopped")
		}
	}

	runLog.Info("storefront stopped")
	return err
}

func initDebugRouter(log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown))

	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, app.Prober)).Methods(http.MethodHead)
	router.Handle("/debug/views", views_get.New(log, app.Catalog, app.Admin)).Methods(http.MethodGet)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
