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

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"coverline/internal/claims/cache"
	"coverline/internal/claims/handler"
	"coverline/internal/claims/lifecycle"
	claimsmetrics "coverline/internal/claims/metrics"
	"coverline/internal/claims/service"
	claimsmemory "coverline/internal/claims/store/memory"
	claimspostgres "coverline/internal/claims/store/postgres"
	"coverline/internal/platform/config"
	"coverline/internal/platform/httpserver"
	"coverline/internal/platform/logger"
	"coverline/internal/platform/metrics"
	"coverline/internal/platform/middleware"
	"coverline/internal/platform/postgres"
	"coverline/internal/platform/redis"
	"coverline/pkg/platform/audit"
	"coverline/pkg/platform/audit/publisher"
	auditmemory "coverline/pkg/platform/audit/store/memory"
	auditpostgres "coverline/pkg/platform/audit/store/postgres"
	"coverline/pkg/platform/middleware/metadata"
	"coverline/pkg/platform/middleware/requesttime"
)

const version = "1.0.0"

// infra holds the process-wide resources main owns and closes.
type infra struct {
	cfg      config.Server
	log      *slog.Logger
	registry *prometheus.Registry
	db       *sql.DB
	redis    *redis.Client
}

// backend is the storage the service runs on.
type backend struct {
	store service.Store
	tx    service.StoreTx
	audit audit.Store
	ping  handler.HealthCheck
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Environment, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	in, err := openInfra(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer in.close()

	be := in.backend()
	svc := in.service(be)
	router := in.router(svc, be)
	srv := httpserver.New(cfg.Addr, router, cfg.RequestTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting coverline",
			"addr", cfg.Addr,
			"env", cfg.Environment,
			"storage", cfg.Storage,
			"cache", in.redis != nil,
			"permissive_transitions", cfg.PermissiveTransitions,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func openInfra(ctx context.Context, cfg config.Server, log *slog.Logger) (*infra, error) {
	in := &infra{cfg: cfg, log: log, registry: prometheus.NewRegistry()}
	in.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if cfg.Storage == config.StoragePostgres {
		db, err := postgres.Open(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		in.db = db
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, db); err != nil {
				in.close()
				return nil, err
			}
			log.Info("database schema applied")
		}
	}

	client, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		in.close()
		return nil, err
	}
	in.redis = client
	return in, nil
}

func (in *infra) close() {
	if in.redis != nil {
		if err := in.redis.Close(); err != nil {
			in.log.Warn("failed to close redis", "error", err)
		}
	}
	if in.db != nil {
		if err := in.db.Close(); err != nil {
			in.log.Warn("failed to close database", "error", err)
		}
	}
}

func (in *infra) backend() backend {
	if in.db != nil {
		store := claimspostgres.New(in.db)
		return backend{
			store: store,
			tx:    newClaimsPostgresTx(in.db, in.cfg.TxTimeout),
			audit: auditpostgres.New(in.db),
			ping:  store.Ping,
		}
	}
	in.log.Warn("using in-memory storage; data is lost on restart")
	store := claimsmemory.New()
	return backend{
		store: store,
		tx:    store,
		audit: auditmemory.NewInMemoryStore(),
		ping:  store.Ping,
	}
}

func (in *infra) service(be backend) *service.Service {
	auditPublisher := publisher.New(be.audit,
		publisher.WithLogger(in.log),
		publisher.WithMetrics(publisher.NewMetrics(in.registry)),
	)
	opts := []service.Option{
		service.WithTx(be.tx),
		service.WithLogger(in.log),
		service.WithMetrics(claimsmetrics.New(in.registry)),
		service.WithAuditPublisher(auditPublisher),
		service.WithMachine(lifecycle.NewMachine(lifecycle.WithPermissive(in.cfg.PermissiveTransitions))),
	}
	if in.redis != nil {
		opts = append(opts, service.WithCache(cache.NewRedisCache(in.redis.Client, cache.WithTTL(in.cfg.Redis.CacheTTL))))
	}
	return service.New(be.store, opts...)
}

func (in *infra) router(svc *service.Service, be backend) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Recovery(in.log))
	r.Use(middleware.Logger(in.log))
	r.Use(middleware.Timeout(in.cfg.RequestTimeout))
	r.Use(requesttime.Middleware)
	r.Use(middleware.LatencyMiddleware(metrics.New(in.registry)))
	r.Use(middleware.ContentTypeJSON)
	r.Use(chimw.StripSlashes)

	opts := []handler.Option{
		handler.WithVersion(version),
		handler.WithHealthCheck("storage", be.ping),
	}
	if in.redis != nil {
		opts = append(opts, handler.WithHealthCheck("cache", in.redis.Health))
	}
	handler.New(svc, in.log, opts...).Register(r)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(in.registry, promhttp.HandlerOpts{}))
	return r
}
