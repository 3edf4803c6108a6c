package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/agendaamiga/agenda-backend/internal/adapter/postgres"
	doselogrepo "github.com/agendaamiga/agenda-backend/internal/adapter/postgres/doselog"
	medicamentorepo "github.com/agendaamiga/agenda-backend/internal/adapter/postgres/medicamento"
	pacienterepo "github.com/agendaamiga/agenda-backend/internal/adapter/postgres/paciente"
	sharelinkrepo "github.com/agendaamiga/agenda-backend/internal/adapter/postgres/sharelink"
	"github.com/agendaamiga/agenda-backend/internal/adapter/redis"
	"github.com/agendaamiga/agenda-backend/internal/adapter/redis/eventbus"
	"github.com/agendaamiga/agenda-backend/internal/clock"
	"github.com/agendaamiga/agenda-backend/internal/config"
	"github.com/agendaamiga/agenda-backend/internal/domain"
	"github.com/agendaamiga/agenda-backend/internal/service/dose"
	"github.com/agendaamiga/agenda-backend/internal/service/medicamento"
	"github.com/agendaamiga/agenda-backend/internal/service/paciente"
	"github.com/agendaamiga/agenda-backend/internal/service/sharelink"
	"github.com/agendaamiga/agenda-backend/internal/transport/middleware"
	"github.com/agendaamiga/agenda-backend/internal/transport/rest"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

type eventPublisher interface {
	Publish(ctx context.Context, events ...domain.Event) error
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and optionally Redis, wires the services into the REST router
// and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var rc *goredis.Client
	if cfg.Redis.Enabled() {
		rc, err = redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rc.Close()
	}

	router, stop := NewHandler(Deps{
		Config:   cfg,
		Log:      logger,
		Pool:     pool,
		Redis:    rc,
		Registry: reg,
	})
	defer stop()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg.Server.ShutdownTimeout)
}

// Deps are the external resources NewHandler builds on.
type Deps struct {
	Config   *config.Config
	Log      *slog.Logger
	Pool     *pgxpool.Pool
	Redis    *goredis.Client // nil logs events instead of streaming them
	Registry *prometheus.Registry
}

// NewHandler wires repositories, services and handlers into the REST
// router. stop releases background workers.
func NewHandler(d Deps) (handler http.Handler, stop func()) {
	cfg, logger := d.Config, d.Log

	health := rest.NewHealthHandler(d.Pool, BuildVersion())

	var publisher eventPublisher
	if d.Redis != nil {
		publisher = eventbus.NewPublisher(logger, d.Redis, cfg.Redis.Stream, cfg.Redis.MaxLen, eventbus.NewMetrics(d.Registry))
		health.WithCheck("redis", func(ctx context.Context) error { return d.Redis.Ping(ctx).Err() })
		logger.Info("publishing events to redis stream", slog.String("stream", cfg.Redis.Stream))
	} else {
		publisher = eventbus.NewLogPublisher(logger)
		logger.Warn("redis not configured, events are only logged")
	}

	sysClock := clock.System{}
	txm := postgres.NewTxManager(d.Pool)

	pacientes := pacienterepo.New(d.Pool)
	medicamentos := medicamentorepo.New(d.Pool)
	doses := doselogrepo.New(d.Pool)
	links := sharelinkrepo.New(d.Pool)

	pacienteSvc := paciente.NewService(logger, pacientes, sysClock)
	doseSvc := dose.NewService(logger, doses, txm, publisher, sysClock)
	medicamentoSvc := medicamento.NewService(logger, medicamentos, doses, txm, publisher, sysClock)
	shareLinkSvc := sharelink.NewService(logger, links, txm, publisher, sysClock, sharelink.Options{
		DefaultTTL: cfg.ShareLink.DefaultTTL,
		MaxTTL:     cfg.ShareLink.MaxTTL,
	})

	stop = func() {}
	var limiter *middleware.RateLimiter
	if cfg.RateLimit.RequestsPerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, time.Minute)
		stop = limiter.Stop
	}

	handler = rest.NewRouter(rest.RouterDeps{
		Log:          logger,
		CORS:         cfg.CORS,
		RateLimiter:  limiter,
		Metrics:      middleware.NewHTTPMetrics(d.Registry),
		Gatherer:     d.Registry,
		Health:       health,
		Pacientes:    rest.NewPacienteHandler(pacienteSvc, logger),
		Doses:        rest.NewDoseHandler(doseSvc, logger),
		Medicamentos: rest.NewMedicamentoHandler(medicamentoSvc, logger),
		ShareLinks:   rest.NewShareLinkHandler(shareLinkSvc, logger),
	})
	return handler, stop
}

// serve runs srv until ctx is done, then shuts it down within timeout.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, timeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
