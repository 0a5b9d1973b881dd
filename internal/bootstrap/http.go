package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shoetrack/shoetrack-ui/config"
	"github.com/shoetrack/shoetrack-ui/internal/adapters/reaper"
	httpx "github.com/shoetrack/shoetrack-ui/internal/http"
)

const (
	shutdownTimeout   = 15 * time.Second
	idleTimeout       = 120 * time.Second
	limiterSweepEvery = time.Minute
	defaultListenAddr = ":8080"
	readHeaderTimeout = 10 * time.Second
)

// BuildHandler builds the router over services.
func BuildHandler(cfg *config.AppConfig, services ServiceContainer, logger *slog.Logger) (http.Handler, error) {
	rs := httpx.RouterServices{
		Auth:         services.Auth,
		Shoes:        services.Shoes,
		Catalog:      services.Catalog,
		Models:       services.Models,
		Accounts:     services.Accounts,
		Charts:       services.Charts,
		Backup:       services.Backup,
		Upstream:     services.Upstream,
		LoginLimiter: services.LoginLimiter,
		Cookies: httpx.CookieOptions{
			Name:   cfg.Session.CookieName,
			Domain: cfg.HTTP.CookieDomain,
			Secure: cfg.HTTP.CookieSecure,
		},
		Metrics: services.Metrics,
		IsDev:   cfg.IsDev,
		Logger:  logger,
	}
	if services.Prometheus != nil {
		rs.MetricsHandler = services.Prometheus.Handler()
		rs.MetricsPath = cfg.Observability.Metrics.Path
	}
	if cfg.HTTP.CompressionEnabled {
		logger.Info("HTTP compression enabled", "level", cfg.HTTP.CompressionLevel)
		rs.Compression = &httpx.CompressionConfig{Level: cfg.HTTP.CompressionLevel, Logger: logger}
	}
	return httpx.NewRouter(rs)
}

// NewServer builds the HTTP server with the configured timeouts.
func NewServer(cfg config.HTTPConfig, handler http.Handler) *http.Server {
	addr := cfg.Addr
	if addr == "" {
		addr = defaultListenAddr
	}
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       idleTimeout,
	}
}

// Serve runs srv on ln alongside the background loops until ctx is done,
// then shuts the server down gracefully. The first failure stops everything.
func Serve(ctx context.Context, srv *http.Server, ln net.Listener, services ServiceContainer, cfg *config.AppConfig, logger *slog.Logger) error {
	var sessionReaper *reaper.Runner
	if services.Sweeper != nil {
		runner, err := reaper.NewRunner(reaper.RunnerOptions{
			Sweeper:  services.Sweeper,
			Interval: cfg.Session.SweepInterval,
			Logger:   logger,
		})
		if err != nil {
			return fmt.Errorf("create session reaper: %w", err)
		}
		sessionReaper = runner
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(gctx, "starting HTTP server", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		logger.Info("HTTP server stopped")
		return nil
	})

	if services.LoginLimiter != nil {
		g.Go(func() error {
			services.LoginLimiter.Run(gctx, limiterSweepEvery)
			return nil
		})
	}

	if sessionReaper != nil {
		g.Go(func() error { return sessionReaper.Run(gctx) })
	}

	return g.Wait()
}

// Run connects infrastructure, wires services and serves until ctx is done.
func Run(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) error {
	deps := ServiceDeps{Config: cfg, Logger: logger}
	if cfg.Redis.Enabled {
		client, err := ConnectRedis(ctx, cfg.Redis, logger)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer func() {
			if cerr := client.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
		deps.RedisClient = client
	} else {
		logger.InfoContext(ctx, "redis disabled; using in-memory sessions and catalog cache")
	}

	services, err := NewServices(deps)
	if err != nil {
		return err
	}
	handler, err := BuildHandler(cfg, services, logger)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	srv := NewServer(cfg.HTTP, handler)
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}
	return Serve(ctx, srv, ln, services, cfg, logger)
}
