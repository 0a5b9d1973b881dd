package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
	apperrors "github.com/shoetrack/shoetrack-ui/internal/errors"
	"github.com/shoetrack/shoetrack-ui/internal/ports"
)

// ErrNotConfirmed is returned when a destructive action was not confirmed.
// Nothing is sent upstream.
var ErrNotConfirmed = errors.New("action not confirmed")

// ListingSources are the secondary reads made alongside the model list.
type ListingSources struct {
	Users   ports.AccountGateway
	Summary ports.ChartGateway
}

// ModelServiceOptions groups dependencies for ModelService.
type ModelServiceOptions struct {
	Gateway ports.ModelGateway
	Listing ListingSources
	Catalog *CatalogService
}

// ModelService manages the shoe model catalog.
type ModelService struct {
	gateway ports.ModelGateway
	listing ListingSources
	catalog *CatalogService
}

// NewModelService constructs a ModelService.
func NewModelService(opts ModelServiceOptions) *ModelService {
	if opts.Gateway == nil || opts.Listing.Users == nil || opts.Listing.Summary == nil {
		panic("ModelGateway and listing sources are required")
	}
	if opts.Catalog == nil {
		opts.Catalog = NewCatalogService(CatalogServiceOptions{Gateway: opts.Gateway})
	}
	return &ModelService{gateway: opts.Gateway, listing: opts.Listing, catalog: opts.Catalog}
}

// ModelListing is everything the model listing screen loads.
type ModelListing struct {
	Models  []model.ShoeModel
	Users   []model.Account
	Summary model.ProductionSummary
}

// Listing loads models, users and the production summary concurrently. The
// first failure cancels the others and is returned alone. A permission
// refusal on the secondary reads leaves that part empty.
func (s *ModelService) Listing(ctx context.Context, creds domainauth.Credentials) (ModelListing, error) {
	var out ModelListing
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		models, err := s.gateway.ListModels(gctx, creds)
		if err != nil {
			return fmt.Errorf("list models: %w", err)
		}
		out.Models = models
		return nil
	})
	g.Go(func() error {
		users, err := s.listing.Users.ListUsers(gctx, creds)
		if err != nil && !apperrors.IsForbidden(err) {
			return fmt.Errorf("list users: %w", err)
		}
		out.Users = users
		return nil
	})
	g.Go(func() error {
		summary, err := s.listing.Summary.ProductionSummary(gctx, creds)
		if err != nil && !apperrors.IsForbidden(err) {
			return fmt.Errorf("production summary: %w", err)
		}
		out.Summary = summary
		return nil
	})

	if err := g.Wait(); err != nil {
		return ModelListing{}, err
	}
	return out, nil
}

// Get finds model id in the full list.
func (s *ModelService) Get(ctx context.Context, creds domainauth.Credentials, id int64) (model.ShoeModel, error) {
	models, err := s.gateway.ListModels(ctx, creds)
	if err != nil {
		return model.ShoeModel{}, err
	}
	m, ok := model.FindModel(models, id)
	if !ok {
		return model.ShoeModel{}, apperrors.NotFound("Shoe model not found.")
	}
	return m, nil
}

// Create adds a model and drops the cached catalog.
func (s *ModelService) Create(ctx context.Context, creds domainauth.Credentials, fields model.ShoeModelFields) (string, error) {
	fields.Normalize()
	msg, err := s.gateway.CreateModel(ctx, creds, fields)
	if err != nil {
		return "", err
	}
	s.catalog.Invalidate(ctx)
	return msg, nil
}

// Update replaces every field of model id.
func (s *ModelService) Update(
	ctx context.Context,
	creds domainauth.Credentials,
	id int64,
	fields model.ShoeModelFields,
) (string, error) {
	fields.Normalize()
	msg, err := s.gateway.UpdateModel(ctx, creds, id, fields)
	if err != nil {
		return "", err
	}
	s.catalog.Invalidate(ctx)
	return msg, nil
}

// Delete removes model id once confirmed.
func (s *ModelService) Delete(ctx context.Context, creds domainauth.Credentials, id int64, confirmed bool) (string, error) {
	if !confirmed {
		return "", ErrNotConfirmed
	}
	msg, err := s.gateway.DeleteModel(ctx, creds, id)
	if err != nil {
		return "", err
	}
	s.catalog.Invalidate(ctx)
	return msg, nil
}
