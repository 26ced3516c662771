// Package server assembles the cache, upstream client and HTTP surface
// into a runnable service.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	appgames "mlb-stats-service/internal/app/games"
	apppostseason "mlb-stats-service/internal/app/postseason"
	appstandings "mlb-stats-service/internal/app/standings"
	appteams "mlb-stats-service/internal/app/teams"
	"mlb-stats-service/internal/cache"
	"mlb-stats-service/internal/config"
	httpserver "mlb-stats-service/internal/http"
	"mlb-stats-service/internal/metrics"
	"mlb-stats-service/internal/refstore"
	"mlb-stats-service/internal/statsapi"
)

var metricsSetup = metrics.Setup

// Server owns every long-lived component of the service.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	refStore      refstore.Store
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New wires the full dependency graph from configuration.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	store := buildCacheStore(cfg, logger)
	documentCache := cache.New(store, logger, recorder)
	fetcher := buildFetcher(cfg, logger, recorder)
	ref := buildRefStore(cfg, logger)

	httpSrv := buildHTTPServer(cfg, documentCache, fetcher, ref, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		refStore:      ref,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildCacheStore(cfg config.Config, logger *slog.Logger) cache.Store {
	switch cfg.Cache.Backend {
	case "redis":
		opts, err := redis.ParseURL(cfg.Cache.RedisURL)
		if err != nil {
			logger.Warn("invalid redis url, falling back to filesystem cache", "error", err)
			break
		}
		client := redis.NewClient(opts)
		pingCtx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			logger.Warn("redis unreachable, falling back to filesystem cache", "error", err)
			break
		}
		logger.Info("using redis cache backend", slog.String("addr", opts.Addr))
		return cache.NewRedisStore(client)
	case "memory":
		return cache.NewMemoryStore()
	}
	return cache.NewFSStore(cfg.Cache.Dir)
}

func buildFetcher(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) statsapi.Fetcher {
	var fetcher statsapi.Fetcher = statsapi.NewClient(statsapi.Config{
		Timeout:  cfg.Upstream.Timeout,
		Logger:   logger,
		Recorder: recorder,
	})
	if cfg.Upstream.BreakerEnabled {
		fetcher = statsapi.NewBreakerFetcher(fetcher, logger)
	}
	return statsapi.NewRetryingFetcher(fetcher, logger, cfg.Upstream.RetryAttempts, cfg.Upstream.RetryBackoff)
}

func buildRefStore(cfg config.Config, logger *slog.Logger) refstore.Store {
	if cfg.Reference.SQLitePath == "" {
		return refstore.NewStatic(nil, nil)
	}
	store, err := refstore.OpenSQLite(cfg.Reference.SQLitePath)
	if err != nil {
		logger.Warn("reference database unavailable, serving upstream names",
			slog.String("path", cfg.Reference.SQLitePath), "error", err)
		return refstore.NewStatic(nil, nil)
	}
	logger.Info("reference database opened", slog.String("path", cfg.Reference.SQLitePath))
	return store
}

func buildHTTPServer(cfg config.Config, documentCache *cache.Cache, fetcher statsapi.Fetcher, ref refstore.Store, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	base := cfg.Upstream.BaseURL

	gamesSvc := appgames.New(appgames.Config{
		BaseURL:     base,
		ScheduleTTL: cfg.Cache.ScheduleTTL,
		LiveTTL:     cfg.Cache.LiveTTL,
	}, documentCache, fetcher, ref, logger)

	postseasonSvc := apppostseason.New(apppostseason.Config{
		BaseURL:           base,
		PostseasonTTL:     cfg.Cache.PostseasonTTL,
		PostseasonLiveTTL: cfg.Cache.PostseasonLiveTTL,
		SettledTTL:        cfg.Cache.ProfileTTL,
	}, documentCache, fetcher, ref, logger)

	standingsSvc := appstandings.New(appstandings.Config{
		BaseURL:      base,
		StandingsTTL: cfg.Cache.StandingsTTL,
	}, documentCache, fetcher, ref, logger)

	teamsSvc := appteams.New(appteams.Config{
		BaseURL:    base,
		ProfileTTL: cfg.Cache.ProfileTTL,
		RosterTTL:  cfg.Cache.RosterTTL,
	}, documentCache, fetcher, logger)

	handler := httpserver.NewHandler(gamesSvc, postseasonSvc, standingsSvc, teamsSvc, logger)
	router := httpserver.NewRouter(handler, logger, recorder)

	return stdHTTPServer{srv: &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}
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
			logger.Warn("metrics setup failed, continuing without telemetry", "error", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = stdHTTPServer{srv: &http.Server{
			Addr:    ":" + recCfg.Port,
			Handler: handler,
		}}
	}
	return rec, metricsSrv, shutdown
}

// Run starts the HTTP and metrics servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}
	s.gracefulShutdown()
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

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if closer, ok := s.refStore.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil && s.logger != nil {
			s.logger.Warn("reference store close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
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
