package upstream

import (
	"context"
	"net/http"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
)

// ProductionSummary lists the models and operators offered as chart filters.
func (c *Client) ProductionSummary(ctx context.Context, creds domainauth.Credentials) (model.ProductionSummary, error) {
	resp, err := c.send(ctx, request{
		name:   "shoe_models_and_operators",
		method: http.MethodGet,
		path:   "/shoe_models_and_operators",
		creds:  &creds,
	})
	if err != nil {
		return model.ProductionSummary{}, err
	}
	var out model.ProductionSummary
	if err := resp.decode(&out); err != nil {
		return model.ProductionSummary{}, err
	}
	return out, nil
}

// CreationSeries returns daily creation counts for filter.
func (c *Client) CreationSeries(ctx context.Context, creds domainauth.Credentials, filter model.ChartFilter) ([]model.ChartPoint, error) {
	resp, err := c.send(ctx, request{
		name:   "shoe_creation_data",
		method: http.MethodGet,
		path:   "/shoe_creation_data",
		query:  filter.Query(),
		creds:  &creds,
	})
	if err != nil {
		return nil, err
	}
	var out []model.ChartPoint
	if err := resp.decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
