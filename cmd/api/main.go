package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	_ "resumen-backend/docs" // swagger docs
	"resumen-backend/internal/config"
	hhttp "resumen-backend/internal/handler/http"
	"resumen-backend/internal/handler/http/middleware"
	"resumen-backend/internal/handler/http/requestid"
	hsummary "resumen-backend/internal/handler/http/summary"
	"resumen-backend/internal/infra/summarizer"
	"resumen-backend/internal/observability/logging"
	"resumen-backend/internal/observability/metrics"
	"resumen-backend/internal/observability/tracing"
	sumUC "resumen-backend/internal/usecase/summary"
)

// @title           Resumen API
// @version         1.0
// @description     Resume textos largos con un modelo generativo y extrae sus ideas principales.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:10000
// @BasePath  /

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg)

	shutdownTracing := tracing.Init(cfg.Version)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("failed to shut down tracer provider", slog.Any("error", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider, err := summarizer.New(ctx, cfg.SummarizerModel())
	if err != nil {
		logger.Error("failed to initialize summarizer", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := provider.Close(); err != nil {
			logger.Error("failed to close summarizer", slog.Any("error", err))
		}
	}()

	handler, err := setupServer(logger, cfg, provider)
	if err != nil {
		logger.Error("failed to set up server", slog.Any("error", err))
		os.Exit(1)
	}

	if err := runServer(ctx, logger, cfg, handler); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// initLogger builds the process logger from LOG_LEVEL and LOG_FORMAT and
// installs it as the slog default.
func initLogger(cfg *config.Config) *slog.Logger {
	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)
	return logger
}

// setupServer wires the use case, routes and middleware chain.
func setupServer(logger *slog.Logger, cfg *config.Config, provider summarizer.Provider) (http.Handler, error) {
	instruction, err := cfg.LoadInstruction()
	if err != nil {
		return nil, fmt.Errorf("load prompt: %w", err)
	}

	summaryCfg := cfg.SummaryConfig()
	summaryCfg.Instruction = instruction
	svc := sumUC.NewService(provider, summaryCfg, sumUC.WithMetrics(metrics.NewSummaryRecorder()))

	mux := http.NewServeMux()
	hsummary.Register(mux, svc)
	hhttp.RegisterOps(mux, &hhttp.HealthHandler{
		Version:  cfg.Version,
		Provider: provider,
		Model:    cfg.SummarizerModel().WithDefaults().Model,
	})

	corsConfig, err := middleware.NewCORSConfig(middleware.Settings{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}, &middleware.SlogAdapter{Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("cors: %w", err)
	}

	return hhttp.Chain(mux,
		tracing.Middleware,
		requestid.Middleware,
		logging.Middleware(logger),
		hhttp.Logging(logger),
		hhttp.MetricsMiddleware,
		middleware.CORS(*corsConfig),
		hhttp.Recover(logger),
		hhttp.LimitRequestBody(cfg.MaxBodyBytes),
	), nil
}

// runServer serves until ctx is cancelled, then shuts down gracefully.
func runServer(ctx context.Context, logger *slog.Logger, cfg *config.Config, handler http.Handler) error {
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", cfg.Version),
			slog.String("provider", cfg.Provider()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}
