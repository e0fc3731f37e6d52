// Package main serves the read-only article API.
//
//	GET /articles?min_views=N&keyword=TEXT
//	GET /health
//	GET /metrics
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"article-filter/internal/config"
	hhttp "article-filter/internal/handler/http"
	harticle "article-filter/internal/handler/http/article"
	"article-filter/internal/handler/http/requestid"
	"article-filter/internal/infra/adapter/persistence"
	infradb "article-filter/internal/infra/db"
	"article-filter/internal/observability/logging"
	"article-filter/internal/observability/tracing"
	artUC "article-filter/internal/usecase/article"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("api terminated", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewLogger(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	slog.SetDefault(logger)

	if cfg.Tracing.Enabled {
		tp, err := initTracing(ctx, cfg.Tracing)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				logger.Error("failed to shut down tracer provider", slog.Any("error", err))
			}
		}()
		logger.Info("tracing enabled",
			slog.String("endpoint", cfg.Tracing.Endpoint),
			slog.Float64("sample_ratio", cfg.Tracing.SampleRatio))
	}

	db, err := infradb.Open(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := infradb.MigrateUp(ctx, db, cfg.Database.Driver); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	handler, err := newHandler(db, *cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", slog.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})
	return g.Wait()
}

func initTracing(ctx context.Context, cfg config.TracingConfig) (*sdktrace.TracerProvider, error) {
	exp, err := tracing.NewOTLPExporter(ctx, cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	return tracing.NewProvider(cfg.SampleRatio,
		sdktrace.WithBatcher(exp),
		tracing.WithServiceName(cfg.ServiceName),
	), nil
}

// newHandler wires the article store, routes and middleware onto db.
func newHandler(db *sql.DB, cfg config.Config, logger *slog.Logger) (http.Handler, error) {
	store, err := persistence.NewStore(db, cfg, logger)
	if err != nil {
		return nil, err
	}
	svc := artUC.Service{Repo: store.Repo, Logger: logger}

	health := &hhttp.HealthHandler{DB: db}
	if store.Breaker != nil {
		health.Breaker = store.Breaker
	}

	mux := http.NewServeMux()
	harticle.Register(mux, svc, logger)
	mux.Handle("GET /health", health)
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	limiter := hhttp.NewRateLimiter(cfg.Server.RateLimitPerMinute, cfg.Server.RateLimitBurst)

	return hhttp.Chain(mux,
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		limiter.Middleware,
		hhttp.MetricsMiddleware,
	), nil
}
