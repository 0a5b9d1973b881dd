package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
	"github.com/shoetrack/shoetrack-ui/internal/ports"
)

const catalogCacheKey = "catalog:models"

// CatalogConfig tunes the model catalog cache.
type CatalogConfig struct {
	TTL    time.Duration
	Logger *slog.Logger
}

// CatalogServiceOptions groups dependencies for CatalogService.
type CatalogServiceOptions struct {
	Gateway ports.ModelGateway
	Cache   ports.CacheRepository // Optional
	Config  CatalogConfig
}

// CatalogService serves the model list used to populate the entry form.
// The catalog is the same for every user, so one cached copy is shared.
type CatalogService struct {
	gateway ports.ModelGateway
	cache   ports.CacheRepository
	ttl     time.Duration
	logger  *slog.Logger
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(opts CatalogServiceOptions) *CatalogService {
	if opts.Gateway == nil {
		panic("ModelGateway is required")
	}
	logger := opts.Config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{gateway: opts.Gateway, cache: opts.Cache, ttl: opts.Config.TTL, logger: logger}
}

// Models returns the catalog, from cache when possible. Cache failures are
// logged and fall through to the record server.
func (s *CatalogService) Models(ctx context.Context, creds domainauth.Credentials) ([]model.ShoeModel, error) {
	if cached, ok := s.cached(ctx); ok {
		return cached, nil
	}

	models, err := s.gateway.ListModels(ctx, creds)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && s.ttl > 0 {
		if data, marshalErr := json.Marshal(models); marshalErr == nil {
			if setErr := s.cache.Set(ctx, catalogCacheKey, data, s.ttl); setErr != nil {
				s.logger.WarnContext(ctx, "catalog cache write failed", "error", setErr)
			}
		}
	}
	return models, nil
}

// Invalidate drops the cached catalog.
func (s *CatalogService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Delete(ctx, catalogCacheKey); err != nil {
		s.logger.WarnContext(ctx, "catalog cache invalidation failed", "error", err)
	}
}

func (s *CatalogService) cached(ctx context.Context) ([]model.ShoeModel, bool) {
	if s.cache == nil || s.ttl <= 0 {
		return nil, false
	}
	data, err := s.cache.Get(ctx, catalogCacheKey)
	if err != nil {
		s.logger.WarnContext(ctx, "catalog cache read failed", "error", err)
		return nil, false
	}
	if data == nil {
		return nil, false
	}
	var models []model.ShoeModel
	if err := json.Unmarshal(data, &models); err != nil {
		s.logger.WarnContext(ctx, "catalog cache entry unreadable", "error", err)
		return nil, false
	}
	return models, true
}
