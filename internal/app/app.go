package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	memaudit "github.com/heartmarshall/readinglist-backend/internal/adapter/memory/audit"
	mementry "github.com/heartmarshall/readinglist-backend/internal/adapter/memory/entry"
	"github.com/heartmarshall/readinglist-backend/internal/adapter/postgres"
	pgaudit "github.com/heartmarshall/readinglist-backend/internal/adapter/postgres/audit"
	pgentry "github.com/heartmarshall/readinglist-backend/internal/adapter/postgres/entry"
	"github.com/heartmarshall/readinglist-backend/internal/config"
	"github.com/heartmarshall/readinglist-backend/internal/service/audit"
	"github.com/heartmarshall/readinglist-backend/internal/service/readinglist"
	"github.com/heartmarshall/readinglist-backend/internal/transport/middleware"
	"github.com/heartmarshall/readinglist-backend/internal/transport/rest"
)

// App owns the wired application: the HTTP server, the rate limiter's
// cleanup goroutine, and the connection pool when the postgres backend
// is selected.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	server  *http.Server
	limiter *middleware.RateLimiter
	pool    *pgxpool.Pool
}

// New wires the storage backend, services, and HTTP transport according
// to cfg. With the postgres backend it connects the pool and applies
// pending migrations before serving; the default backend keeps entries
// and audit records in process memory.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	var (
		svc      *readinglist.Service
		auditLog *audit.Logger
		pool     *pgxpool.Pool
	)

	switch cfg.Storage.Backend {
	case config.StorageBackendPostgres:
		var err error
		pool, err = postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			pool.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		svc = readinglist.NewService(log, pgentry.New(pool))
		auditLog = audit.NewLogger(log, pgaudit.New(pool))
	default:
		svc = readinglist.NewService(log, mementry.New())
		auditLog = audit.NewLogger(log, memaudit.New())
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)

	router := rest.NewRouter(
		rest.NewEntryHandler(svc, auditLog, log),
		rest.NewHealthHandler(),
		limiter,
		cfg.Server.MaxBodyBytes,
		log,
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		cfg:     cfg,
		log:     log,
		server:  server,
		limiter: limiter,
		pool:    pool,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests
// within the configured shutdown timeout and releases the limiter and
// the pool.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.log.Info("http server listening",
			slog.String("addr", a.server.Addr),
			slog.String("backend", a.cfg.Storage.Backend),
		)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	err := a.server.Shutdown(shutdownCtx)
	a.close()
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	a.log.Info("server stopped")
	return nil
}

func (a *App) close() {
	a.limiter.Stop()
	if a.pool != nil {
		a.pool.Close()
	}
}
