package upstream

import (
	"context"
	"net/http"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
)

// ListUsers returns every account.
func (c *Client) ListUsers(ctx context.Context, creds domainauth.Credentials) ([]model.Account, error) {
	resp, err := c.send(ctx, request{name: "users", method: http.MethodGet, path: "/users", creds: &creds})
	if err != nil {
		return nil, err
	}
	var out []model.Account
	if err := resp.decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAccount adds an account.
func (c *Client) CreateAccount(ctx context.Context, creds domainauth.Credentials, req model.CreateAccountRequest) (string, error) {
	resp, err := c.send(ctx, request{
		name:   "create_account",
		method: http.MethodPost,
		path:   "/create_account",
		body:   req,
		creds:  &creds,
	})
	if err != nil {
		return "", err
	}
	return resp.result()
}

// UpdateUserRole changes an account's role.
func (c *Client) UpdateUserRole(ctx context.Context, creds domainauth.Credentials, update model.RoleUpdate) (string, error) {
	resp, err := c.send(ctx, request{
		name:   "update_user_role",
		method: http.MethodPost,
		path:   "/update_user_role",
		body:   update,
		creds:  &creds,
	})
	if err != nil {
		return "", err
	}
	return resp.result()
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, creds domainauth.Credentials, id int64) (string, error) {
	resp, err := c.send(ctx, request{
		name:   "delete_user",
		method: http.MethodPost,
		path:   "/delete_user",
		body:   map[string]int64{"user_id": id},
		creds:  &creds,
	})
	if err != nil {
		return "", err
	}
	return resp.result()
}
