package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"strata/internal/content"
	contentmetrics "strata/internal/content/metrics"
	"strata/internal/content/service"
	"strata/internal/editmode"
	"strata/internal/platform/config"
	"strata/internal/platform/httpserver"
	"strata/internal/platform/logger"
	"strata/internal/platform/metrics"
	"strata/internal/platform/middleware"
	platformpg "strata/internal/platform/postgres"
	platformredis "strata/internal/platform/redis"
	"strata/internal/rowstore"
	"strata/internal/rowstore/memory"
	rowpg "strata/internal/rowstore/postgres"
	"strata/internal/rowstore/postgrest"
	"strata/pkg/platform/httputil"
	"strata/pkg/platform/middleware/metadata"
)

type infra struct {
	gateway  rowstore.Gateway
	db       *sql.DB
	redis    *platformredis.Client
	sessions editmode.SessionStore
}

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inf, err := buildInfra(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize infrastructure", "error", err)
		os.Exit(1)
	}
	defer inf.close(log)

	verifier, err := editmode.VerifierFromConfig(cfg.EditMode)
	if err != nil {
		log.Error("invalid edit mode configuration", "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	httpMetrics := metrics.New(reg)

	services := content.NewServices(inf.gateway,
		service.WithLogger(log),
		service.WithMetrics(contentmetrics.New(reg)),
	)
	editManager := editmode.NewManager(inf.sessions, verifier, log)

	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Logger(log))
	r.Use(middleware.LatencyMiddleware(httpMetrics))

	r.Get("/healthz", inf.health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Use(editmode.Session(editManager, cfg.EditMode.CookieSecure, log))
		editmode.NewHandler(editManager, log).Register(r)
		content.NewHandler(services, editmode.RequireEditMode(log), log).Register(r)
	})

	srv := httpserver.New(cfg.Addr, otelhttp.NewHandler(r, "strata"))

	go func() {
		log.Info("starting strata",
			"addr", cfg.Addr,
			"storage_backend", cfg.Storage.Backend,
			"edit_session_store", cfg.EditMode.SessionStore,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

func buildInfra(ctx context.Context, cfg config.Server, log *slog.Logger) (*infra, error) {
	inf := &infra{}

	switch cfg.Storage.Backend {
	case config.BackendPostgREST:
		client, err := postgrest.New(postgrest.Config{
			URL:             cfg.Gateway.URL,
			APIKey:          cfg.Gateway.APIKey,
			BreakerFailures: cfg.Gateway.BreakerFailures,
			BreakerCooldown: cfg.Gateway.BreakerCooldown,
		})
		switch {
		case errors.Is(err, rowstore.ErrNotConfigured):
			// Reads degrade to empty and writes to failure until configured.
			log.Warn("data gateway not configured; content operations will fail")
			inf.gateway = rowstore.Unconfigured{}
		case err != nil:
			return nil, err
		default:
			inf.gateway = client
		}
	case config.BackendPostgres:
		db, err := platformpg.Open(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := platformpg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		inf.db = db
		inf.gateway = rowpg.New(db)
	default:
		log.Info("using in-memory content storage")
		inf.gateway = memory.New()
	}

	switch cfg.EditMode.SessionStore {
	case config.SessionStoreRedis:
		client, err := platformredis.New(ctx, cfg.Redis)
		if err != nil {
			inf.close(log)
			return nil, err
		}
		if client == nil {
			inf.close(log)
			return nil, errors.New("redis session store requires REDIS_URL")
		}
		inf.redis = client
		inf.sessions = editmode.NewRedisStore(client.Client)
	default:
		inf.sessions = editmode.NewMemoryStore()
	}
	return inf, nil
}

func (inf *infra) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := map[string]string{"status": "ok"}
	code := http.StatusOK
	if inf.db != nil {
		if err := inf.db.PingContext(ctx); err != nil {
			status["postgres"] = "unreachable"
			code = http.StatusServiceUnavailable
		}
	}
	if inf.redis != nil {
		if err := inf.redis.Health(ctx); err != nil {
			status["redis"] = "unreachable"
			code = http.StatusServiceUnavailable
		}
	}
	if code != http.StatusOK {
		status["status"] = "degraded"
	}
	httputil.WriteJSON(w, code, status)
}

func (inf *infra) close(log *slog.Logger) {
	if inf.redis != nil {
		if err := inf.redis.Close(); err != nil {
			log.Warn("closing redis", "error", err)
		}
	}
	if inf.db != nil {
		if err := inf.db.Close(); err != nil {
			log.Warn("closing postgres", "error", err)
		}
	}
}
