package server

import (
	"context"
	"log/slog"
	"net/http"

	appleaders "github.com/jmaliksi/blaseball-reference.com/internal/app/leaders"
	appplayers "github.com/jmaliksi/blaseball-reference.com/internal/app/players"
	appsearch "github.com/jmaliksi/blaseball-reference.com/internal/app/search"
	appteams "github.com/jmaliksi/blaseball-reference.com/internal/app/teams"
	"github.com/jmaliksi/blaseball-reference.com/internal/config"
	httpserver "github.com/jmaliksi/blaseball-reference.com/internal/http"
	"github.com/jmaliksi/blaseball-reference.com/internal/http/handlers"
	"github.com/jmaliksi/blaseball-reference.com/internal/logging"
	"github.com/jmaliksi/blaseball-reference.com/internal/metrics"
	"github.com/jmaliksi/blaseball-reference.com/internal/poller"
	"github.com/jmaliksi/blaseball-reference.com/internal/providers"
	"github.com/jmaliksi/blaseball-reference.com/internal/snapshots"
	"github.com/jmaliksi/blaseball-reference.com/internal/store"
)

var metricsSetup = metrics.Setup

// Server owns the service's long-lived components: the reference poller, the
// snapshot syncer, and the HTTP and metrics listeners.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	httpServer    httpServer
	metricsServer httpServer
	poller        *poller.Poller
	syncer        *snapshots.Syncer
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProviders(cfg, logger, nil, nil, nil)
}

// newServerWithProviders allows tests to inject providers and a recorder.
func newServerWithProviders(cfg config.Config, logger *slog.Logger, stats providers.StatsProvider, search providers.SearchProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if stats == nil {
		stats, search = newProviderFactory(logger, recorder).build(cfg)
	}

	memoryStore := store.NewMemoryStore()
	plr := poller.New(stats, stats, memoryStore, logger, recorder, cfg.PollInterval)
	snaps := buildSnapshots(cfg, stats, logger)
	httpSrv := buildHTTPServer(cfg, memoryStore, stats, search, snaps, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		syncer:        snaps.syncer,
		metricsStop:   metricsShutdown,
	}
}

func buildHTTPServer(cfg config.Config, memoryStore *store.MemoryStore, stats providers.StatsProvider, search providers.SearchProvider, snaps snapshotComponents, logger *slog.Logger, recorder *metrics.Recorder, plr *poller.Poller) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(handlers.Deps{
		Players:  appplayers.NewService(memoryStore, stats),
		Teams:    appteams.NewService(memoryStore, stats),
		Leaders:  appleaders.NewService(stats, cfg.LeadersCount),
		Search:   appsearch.NewService(search, logger),
		Games:    stats,
		Seasons:  memoryStore,
		Snaps:    snaps.store,
		Logger:   logger,
		StatusFn: statusFn,
		OnSnapshotFallback: func(kind string) {
			recorder.RecordSnapshotFallback(kind)
		},
	})

	var admin *handlers.AdminHandler
	if cfg.Snapshots.AdminToken != "" {
		admin = handlers.NewAdminHandler(snaps.writer, stats, memoryStore, cfg.Snapshots.AdminToken, logger)
	}

	router := httpserver.NewRouter(handler, admin, logger, recorder)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the listeners, the poller, and the snapshot backfill, then waits
// for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)
	if s.syncer != nil {
		go s.syncer.Run(ctx)
	}

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
