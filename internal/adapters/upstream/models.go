package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
)

// ListModels returns the full catalog.
func (c *Client) ListModels(ctx context.Context, creds domainauth.Credentials) ([]model.ShoeModel, error) {
	resp, err := c.send(ctx, request{name: "shoe_models", method: http.MethodGet, path: "/shoe_models", creds: &creds})
	if err != nil {
		return nil, err
	}
	var out []model.ShoeModel
	if err := resp.decode(&out); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Normalize()
	}
	return out, nil
}

// ModelDetails looks up one model by its exact name.
func (c *Client) ModelDetails(ctx context.Context, creds domainauth.Credentials, name string) (model.ShoeModel, error) {
	resp, err := c.send(ctx, request{
		name:   "shoe_model_details",
		method: http.MethodGet,
		path:   "/shoe_model_details/" + url.PathEscape(name),
		creds:  &creds,
	})
	if err != nil {
		return model.ShoeModel{}, err
	}
	var out model.ShoeModel
	if err := resp.decode(&out); err != nil {
		return model.ShoeModel{}, err
	}
	out.Normalize()
	return out, nil
}

// CreateModel adds a catalog entry.
func (c *Client) CreateModel(ctx context.Context, creds domainauth.Credentials, fields model.ShoeModelFields) (string, error) {
	resp, err := c.send(ctx, request{
		name:   "add_shoe_model",
		method: http.MethodPost,
		path:   "/add_shoe_model",
		body:   fields,
		creds:  &creds,
	})
	if err != nil {
		return "", err
	}
	return resp.result()
}

// UpdateModel replaces every field of model id.
func (c *Client) UpdateModel(ctx context.Context, creds domainauth.Credentials, id int64, fields model.ShoeModelFields) (string, error) {
	resp, err := c.send(ctx, request{
		name:   "edit_shoe_model",
		method: http.MethodPut,
		path:   "/edit_shoe_model/" + strconv.FormatInt(id, 10),
		body:   fields,
		creds:  &creds,
	})
	if err != nil {
		return "", err
	}
	return resp.result()
}

// DeleteModel removes model id.
func (c *Client) DeleteModel(ctx context.Context, creds domainauth.Credentials, id int64) (string, error) {
	resp, err := c.send(ctx, request{
		name:   "delete_shoe_model",
		method: http.MethodDelete,
		path:   "/delete_shoe_model/" + strconv.FormatInt(id, 10),
		creds:  &creds,
	})
	if err != nil {
		return "", err
	}
	return resp.result()
}
