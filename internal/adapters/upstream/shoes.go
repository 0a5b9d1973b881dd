package upstream

import (
	"context"
	"net/http"
	"net/url"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
)

// CreateShoe records one manufactured unit.
func (c *Client) CreateShoe(ctx context.Context, creds domainauth.Credentials, entry model.ShoeEntry) (string, error) {
	resp, err := c.send(ctx, request{
		name:   "shoe_entry",
		method: http.MethodPost,
		path:   "/shoe_entry",
		body:   entry,
		creds:  &creds,
	})
	if err != nil {
		return "", err
	}
	return resp.result()
}

// SearchShoes lists records. Both parameters are always sent; the server
// ignores the type when the search term is empty.
func (c *Client) SearchShoes(ctx context.Context, creds domainauth.Credentials, q model.ShoeQuery) ([]model.ShoeRecord, error) {
	field := q.Type
	if field == "" {
		field = model.DefaultSearchField
	}
	resp, err := c.send(ctx, request{
		name:   "view_shoes",
		method: http.MethodGet,
		path:   "/view_shoes",
		query:  url.Values{"search": {q.Search}, "type": {string(field)}},
		creds:  &creds,
	})
	if err != nil {
		return nil, err
	}
	var out []model.ShoeRecord
	if err := resp.decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
