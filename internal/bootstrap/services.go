package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/shoetrack/shoetrack-ui/config"
	"github.com/shoetrack/shoetrack-ui/internal/adapters/memory"
	"github.com/shoetrack/shoetrack-ui/internal/adapters/reaper"
	redisadapter "github.com/shoetrack/shoetrack-ui/internal/adapters/redis"
	"github.com/shoetrack/shoetrack-ui/internal/adapters/upstream"
	"github.com/shoetrack/shoetrack-ui/internal/chart"
	httpx "github.com/shoetrack/shoetrack-ui/internal/http"
	"github.com/shoetrack/shoetrack-ui/internal/observability/metrics"
	"github.com/shoetrack/shoetrack-ui/internal/ports"
	"github.com/shoetrack/shoetrack-ui/internal/search"
	"github.com/shoetrack/shoetrack-ui/internal/service"
)

const (
	sessionKeyPrefix = "shoetrack:session:"
	cacheKeyPrefix   = "shoetrack:cache:"
)

// ServiceContainer holds every wired service the server and admin CLI use.
type ServiceContainer struct {
	Auth     *service.AuthService
	Shoes    *service.ShoeService
	Catalog  *service.CatalogService
	Models   *service.ModelService
	Accounts *service.AccountService
	Charts   *service.ChartService
	Backup   *service.BackupService

	Upstream *upstream.Client
	Sessions ports.SessionAdmin
	// Sweeper purges expired sessions and releases the state they held.
	Sweeper      reaper.Sweeper
	LoginLimiter *httpx.LoginLimiter

	Metrics    metrics.Sink
	Prometheus *metrics.Prometheus // nil when the scrape endpoint is disabled
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient // nil selects the in-memory stores
	HTTPClient  *http.Client          // optional upstream transport
	Logger      *slog.Logger
}

// NewServices wires the upstream client, stores and services.
func NewServices(deps ServiceDeps) (ServiceContainer, error) {
	if deps.Config == nil {
		return ServiceContainer{}, errors.New("config is required")
	}
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var c ServiceContainer
	c.Metrics = metrics.Noop{}
	if cfg.Observability.Metrics.IsEnabled() {
		c.Prometheus = metrics.NewPrometheus()
		c.Metrics = c.Prometheus
	}

	client, err := upstream.NewClient(upstream.Config{
		BaseURL:   cfg.Upstream.BaseURL,
		APIPrefix: cfg.Upstream.APIPrefix,
		Timeout:   cfg.Upstream.Timeout,
		APIKey:    cfg.Upstream.APIKey,
		Client:    deps.HTTPClient,
		Metrics:   c.Metrics,
		Logger:    logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create upstream client: %w", err)
	}
	c.Upstream = client

	var cache ports.CacheRepository
	var expired service.ExpiredSessionSweeper
	if deps.RedisClient != nil {
		c.Sessions = redisadapter.NewSessionStoreWithPrefix(deps.RedisClient, sessionKeyPrefix)
		cache = redisadapter.NewCacheRepo(deps.RedisClient, cacheKeyPrefix)
	} else {
		store := memory.NewSessionStore(nil)
		c.Sessions = store
		expired = store
		cache = memory.NewCache(nil)
	}

	c.Auth = service.NewAuthService(service.AuthServiceOptions{
		Gateway:  client,
		Sessions: c.Sessions,
		Config:   service.AuthConfig{TTL: cfg.Session.TTL, Logger: logger},
	})
	c.Catalog = service.NewCatalogService(service.CatalogServiceOptions{
		Gateway: client,
		Cache:   cache,
		Config:  service.CatalogConfig{TTL: cfg.Cache.CatalogTTL, Logger: logger},
	})
	c.Shoes = service.NewShoeService(service.ShoeServiceOptions{
		Gateway: client,
		Models:  client,
		Search:  search.NewPipeline(cfg.Search.Debounce, c.Metrics),
	})
	c.Models = service.NewModelService(service.ModelServiceOptions{
		Gateway: client,
		Listing: service.ListingSources{Users: client, Summary: client},
		Catalog: c.Catalog,
	})
	c.Accounts = service.NewAccountService(service.AccountServiceOptions{Gateway: client})
	c.Charts = service.NewChartService(service.ChartServiceOptions{
		Gateway:  client,
		Registry: chart.NewRegistry(c.Metrics),
	})
	c.Backup = service.NewBackupService(service.BackupServiceOptions{Gateway: client, Logger: logger})

	c.Auth.OnSessionEnd(c.Charts.Release)
	c.Auth.OnSessionEnd(c.Shoes.Forget)
	janitor, err := service.NewSessionJanitor(service.SessionJanitorOptions{
		Auth:    c.Auth,
		Store:   expired,
		Holders: []service.SessionStateHolder{c.Charts, c.Shoes},
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create session janitor: %w", err)
	}
	c.Sweeper = janitor

	c.LoginLimiter = httpx.NewLoginLimiter(httpx.LoginLimiterConfig{
		PerMinute: cfg.Login.PerMinute,
		Burst:     cfg.Login.Burst,
		Metrics:   c.Metrics,
	})
	return c, nil
}
