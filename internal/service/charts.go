package service

import (
	"context"
	"errors"
	"strings"

	"github.com/shoetrack/shoetrack-ui/internal/chart"
	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
	apperrors "github.com/shoetrack/shoetrack-ui/internal/errors"
	"github.com/shoetrack/shoetrack-ui/internal/ports"
)

// ChartServiceOptions groups dependencies for ChartService.
type ChartServiceOptions struct {
	Gateway  ports.ChartGateway
	Registry *chart.Registry
}

// ChartService fetches creation series and keeps one rendered chart per session.
type ChartService struct {
	gateway  ports.ChartGateway
	registry *chart.Registry
}

// NewChartService constructs a ChartService.
func NewChartService(opts ChartServiceOptions) *ChartService {
	if opts.Gateway == nil {
		panic("ChartGateway is required")
	}
	if opts.Registry == nil {
		opts.Registry = chart.NewRegistry(nil)
	}
	return &ChartService{gateway: opts.Gateway, registry: opts.Registry}
}

// Options returns the models and operators offered as filters.
func (s *ChartService) Options(ctx context.Context, creds domainauth.Credentials) (model.ProductionSummary, error) {
	return s.gateway.ProductionSummary(ctx, creds)
}

// Update replaces the session's chart with one built from filter. The prior
// chart is released first, whatever happens next. An empty series returns
// chart.ErrNoData and leaves the session without a chart.
func (s *ChartService) Update(
	ctx context.Context,
	sessionID string,
	creds domainauth.Credentials,
	filter model.ChartFilter,
) (*chart.Handle, error) {
	filter.Normalize()
	if err := filter.Validate(); err != nil {
		s.registry.Release(sessionID)
		return nil, apperrors.Validation(capitalize(err.Error()) + ".")
	}

	return s.registry.Replace(sessionID, filter, func() (chart.Image, error) {
		points, err := s.gateway.CreationSeries(ctx, creds, filter)
		if err != nil {
			return chart.Image{}, err
		}
		return chart.Render(points)
	})
}

// Current returns the session's live chart.
func (s *ChartService) Current(sessionID string) (*chart.Handle, bool) {
	return s.registry.Get(sessionID)
}

// Release drops the session's chart.
func (s *ChartService) Release(sessionID string) { s.registry.Release(sessionID) }

// SessionIDs lists the sessions holding a chart.
func (s *ChartService) SessionIDs() []string { return s.registry.Keys() }

// IsNoData reports whether err means the filters matched nothing.
func IsNoData(err error) bool { return errors.Is(err, chart.ErrNoData) }

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
