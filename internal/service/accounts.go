package service

import (
	"context"
	"strings"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
	apperrors "github.com/shoetrack/shoetrack-ui/internal/errors"
	"github.com/shoetrack/shoetrack-ui/internal/ports"
)

// AccountServiceOptions groups dependencies for AccountService.
type AccountServiceOptions struct {
	Gateway ports.AccountGateway
}

// AccountService manages user accounts. The record server enforces who may.
type AccountService struct {
	gateway ports.AccountGateway
}

// NewAccountService constructs an AccountService.
func NewAccountService(opts AccountServiceOptions) *AccountService {
	if opts.Gateway == nil {
		panic("AccountGateway is required")
	}
	return &AccountService{gateway: opts.Gateway}
}

// List returns every account.
func (s *AccountService) List(ctx context.Context, creds domainauth.Credentials) ([]model.Account, error) {
	return s.gateway.ListUsers(ctx, creds)
}

// Create adds an account.
func (s *AccountService) Create(ctx context.Context, creds domainauth.Credentials, req model.CreateAccountRequest) (string, error) {
	req.Username = strings.TrimSpace(req.Username)
	if _, err := domainauth.ParseRole(string(req.Role)); err != nil {
		return "", apperrors.ValidationField("role", "Role is invalid.")
	}
	return s.gateway.CreateAccount(ctx, creds, req)
}

// UpdateRole changes an account's role.
func (s *AccountService) UpdateRole(ctx context.Context, creds domainauth.Credentials, update model.RoleUpdate) (string, error) {
	if _, err := domainauth.ParseRole(string(update.NewRole)); err != nil {
		return "", apperrors.ValidationField("role", "Role is invalid.")
	}
	return s.gateway.UpdateUserRole(ctx, creds, update)
}

// Delete removes account id once confirmed.
func (s *AccountService) Delete(ctx context.Context, creds domainauth.Credentials, id int64, confirmed bool) (string, error) {
	if !confirmed {
		return "", ErrNotConfirmed
	}
	return s.gateway.DeleteUser(ctx, creds, id)
}
