package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
	apperrors "github.com/shoetrack/shoetrack-ui/internal/errors"
)

// InvalidCredentialsMessage is used when the server rejects a login without a message.
const InvalidCredentialsMessage = "Invalid username or password"

type loginResponse struct {
	Success       bool   `json:"success"`
	ResetRequired bool   `json:"reset_required"`
	Message       string `json:"message"`
	Error         string `json:"error"`
	User          *struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"user"`
}

// Login authenticates against the record server and captures the cookies it issues.
// A rejected login is a validation error carrying the server's message; it never
// reads as a stale session.
func (c *Client) Login(ctx context.Context, username, password string) (domainauth.LoginResult, error) {
	resp, err := c.send(ctx, request{
		name:   "login",
		method: http.MethodPost,
		path:   "/login",
		body:   map[string]string{"username": username, "password": password},
	})
	if err != nil {
		return domainauth.LoginResult{}, err
	}

	var body loginResponse
	decodeErr := json.Unmarshal(resp.body, &body)

	if body.ResetRequired {
		return domainauth.LoginResult{
			Username:      username,
			ResetRequired: true,
			Message:       strings.TrimSpace(body.Message),
		}, nil
	}

	if !resp.ok() || !body.Success {
		msg := envelope{Message: body.Message, Error: body.Error}.text()
		if resp.status >= http.StatusInternalServerError {
			return domainauth.LoginResult{}, newAPIError(resp.status, msg, resp.name)
		}
		if msg == "" {
			msg = InvalidCredentialsMessage
		}
		return domainauth.LoginResult{}, &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: msg,
			Cause:   &APIError{Status: resp.status, Message: msg, Endpoint: resp.name},
		}
	}
	if decodeErr != nil || body.User == nil {
		return domainauth.LoginResult{}, apperrors.Unavailable(apperrors.GenericFailureMessage)
	}

	role, err := domainauth.ParseRole(body.User.Role)
	if err != nil {
		return domainauth.LoginResult{}, apperrors.Wrap(err, apperrors.ErrCodeUnavailable, apperrors.GenericFailureMessage)
	}

	name := strings.TrimSpace(body.User.Username)
	if name == "" {
		name = username
	}
	return domainauth.LoginResult{
		Username: name,
		Role:     role,
		Message:  strings.TrimSpace(body.Message),
		Cookies:  resp.cookies,
	}, nil
}

// Logout ends the upstream session.
func (c *Client) Logout(ctx context.Context, creds domainauth.Credentials) (string, error) {
	resp, err := c.send(ctx, request{name: "logout", method: http.MethodGet, path: "/logout", creds: &creds})
	if err != nil {
		return "", err
	}
	return resp.result()
}

// ResetPassword changes a password. It is sent without a session.
func (c *Client) ResetPassword(ctx context.Context, req model.ResetPasswordRequest) (string, error) {
	resp, err := c.send(ctx, request{
		name:   "reset_password",
		method: http.MethodPost,
		path:   "/reset_password",
		body:   req,
	})
	if err != nil {
		return "", err
	}
	return resp.result()
}

// Ping reports whether the record server answers. Any response below 500,
// including an authentication challenge, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.send(ctx, request{name: "ping", method: http.MethodGet, path: "/shoe_models"})
	if err != nil {
		return err
	}
	if resp.status >= http.StatusInternalServerError {
		return apperrors.Unavailable(fmt.Sprintf("record server returned %d", resp.status))
	}
	return nil
}
