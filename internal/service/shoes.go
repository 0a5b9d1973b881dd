package service

import (
	"context"
	"strings"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
	apperrors "github.com/shoetrack/shoetrack-ui/internal/errors"
	"github.com/shoetrack/shoetrack-ui/internal/ports"
	"github.com/shoetrack/shoetrack-ui/internal/search"
)

// ShoeServiceOptions groups dependencies for ShoeService.
type ShoeServiceOptions struct {
	Gateway ports.ShoeGateway
	Models  ports.ModelGateway
	Search  *search.Pipeline
}

// ShoeService records units and runs the live record search.
type ShoeService struct {
	gateway  ports.ShoeGateway
	models   ports.ModelGateway
	pipeline *search.Pipeline
}

// NewShoeService constructs a ShoeService.
func NewShoeService(opts ShoeServiceOptions) *ShoeService {
	if opts.Gateway == nil || opts.Models == nil {
		panic("ShoeGateway and ModelGateway are required")
	}
	if opts.Search == nil {
		opts.Search = search.NewPipeline(0, nil)
	}
	return &ShoeService{gateway: opts.Gateway, models: opts.Models, pipeline: opts.Search}
}

// ModelDetails returns the model an entry derives its read-only fields from.
func (s *ShoeService) ModelDetails(ctx context.Context, creds domainauth.Credentials, name string) (model.ShoeModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.ShoeModel{}, apperrors.ValidationField("model_name", "Model Name is required.")
	}
	return s.models.ModelDetails(ctx, creds, name)
}

// Create posts entry as entered.
func (s *ShoeService) Create(ctx context.Context, creds domainauth.Credentials, entry model.ShoeEntry) (string, error) {
	entry.Normalize()
	return s.gateway.CreateShoe(ctx, creds, entry)
}

// List fetches records immediately, bypassing the search pipeline. Callers
// showing a fresh listing should Forget the session first so no older search
// lands over it.
func (s *ShoeService) List(ctx context.Context, creds domainauth.Credentials, q model.ShoeQuery) ([]model.ShoeRecord, error) {
	return s.gateway.SearchShoes(ctx, creds, normalizeQuery(q))
}

// Search runs q through the per-session pipeline. It returns
// search.ErrSuperseded or search.ErrStale when the result must not be shown.
func (s *ShoeService) Search(
	ctx context.Context,
	sessionID string,
	creds domainauth.Credentials,
	q model.ShoeQuery,
	immediate bool,
) ([]model.ShoeRecord, error) {
	q = normalizeQuery(q)
	var rows []model.ShoeRecord
	err := s.pipeline.Submit(ctx, sessionID, immediate, func(ctx context.Context) error {
		var fetchErr error
		rows, fetchErr = s.gateway.SearchShoes(ctx, creds, q)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Forget drops search state held for sessionID.
func (s *ShoeService) Forget(sessionID string) { s.pipeline.Forget(sessionID) }

// SessionIDs lists the sessions with search state.
func (s *ShoeService) SessionIDs() []string { return s.pipeline.Keys() }

// normalizeQuery defaults the search field. The term is sent as typed.
func normalizeQuery(q model.ShoeQuery) model.ShoeQuery {
	q.Type = model.ParseSearchField(string(q.Type))
	return q
}
