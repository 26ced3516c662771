package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"mlb-stats-service/internal/config"
)

type stubServer struct {
	addr       string
	listenErr  error
	shutdowns  atomic.Int32
	listenDone chan struct{}
}

func newStubServer(addr string, listenErr error) *stubServer {
	return &stubServer{addr: addr, listenErr: listenErr, listenDone: make(chan struct{})}
}

func (s *stubServer) ListenAndServe() error {
	<-s.listenDone
	if s.listenErr != nil {
		return s.listenErr
	}
	return http.ErrServerClosed
}

func (s *stubServer) Shutdown(ctx context.Context) error {
	s.shutdowns.Add(1)
	select {
	case <-s.listenDone:
	default:
		close(s.listenDone)
	}
	return nil
}

func (s *stubServer) Addr() string          { return s.addr }
func (s *stubServer) Handler() http.Handler { return http.NewServeMux() }

func testConfig() config.Config {
	return config.Config{
		Port:  "0",
		Cache: config.CacheConfig{Backend: "memory"},
	}
}

func TestRunShutsDownOnContextCancel(t *testing.T) {
	stub := newStubServer(":0", nil)
	srv := newServerWithDeps(testConfig(), slog.Default(), stub)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	if stub.shutdowns.Load() != 1 {
		t.Errorf("shutdowns = %d, want 1", stub.shutdowns.Load())
	}
}

func TestRunStopsOnListenFailure(t *testing.T) {
	stub := newStubServer(":0", errors.New("port in use"))
	srv := newServerWithDeps(testConfig(), slog.Default(), stub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	// Let the listener fail; Run should cancel itself and return.
	close(stub.listenDone)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after listen failure")
	}
}

func TestBuildCacheStoreBackends(t *testing.T) {
	logger := slog.Default()

	cfg := testConfig()
	if store := buildCacheStore(cfg, logger); store == nil {
		t.Error("memory backend should build")
	}

	cfg.Cache.Backend = "fs"
	cfg.Cache.Dir = t.TempDir()
	if store := buildCacheStore(cfg, logger); store == nil {
		t.Error("fs backend should build")
	}

	// A malformed redis URL falls back to the filesystem store rather
	// than failing startup.
	cfg.Cache.Backend = "redis"
	cfg.Cache.RedisURL = "://not-a-url"
	if store := buildCacheStore(cfg, logger); store == nil {
		t.Error("redis fallback should build")
	}
}

func TestBuildRefStoreFallsBackToStatic(t *testing.T) {
	cfg := testConfig()
	if store := buildRefStore(cfg, slog.Default()); store == nil {
		t.Error("empty path should yield a static store")
	}
}

func TestBuildFetcherChain(t *testing.T) {
	cfg := testConfig()
	cfg.Upstream.BreakerEnabled = true
	cfg.Upstream.RetryAttempts = 2
	if fetcher := buildFetcher(cfg, slog.Default(), nil); fetcher == nil {
		t.Error("fetcher chain should build")
	}
}

func TestNewServerBuildsHandler(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false
	srv := New(cfg, slog.Default())
	if srv.Handler() == nil {
		t.Error("server handler missing")
	}
}
