package ports

import (
	"context"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
)

// The gateways below are the record server's API, split by concern. Methods
// that return a string return the server's success message verbatim.

// AuthGateway signs users in and out of the record server.
type AuthGateway interface {
	Login(ctx context.Context, username, password string) (domainauth.LoginResult, error)
	Logout(ctx context.Context, creds domainauth.Credentials) (string, error)
	ResetPassword(ctx context.Context, req model.ResetPasswordRequest) (string, error)
}

// ShoeGateway records and lists manufactured units.
type ShoeGateway interface {
	CreateShoe(ctx context.Context, creds domainauth.Credentials, entry model.ShoeEntry) (string, error)
	SearchShoes(ctx context.Context, creds domainauth.Credentials, q model.ShoeQuery) ([]model.ShoeRecord, error)
}

// ModelGateway manages the shoe model catalog.
type ModelGateway interface {
	ListModels(ctx context.Context, creds domainauth.Credentials) ([]model.ShoeModel, error)
	ModelDetails(ctx context.Context, creds domainauth.Credentials, name string) (model.ShoeModel, error)
	CreateModel(ctx context.Context, creds domainauth.Credentials, fields model.ShoeModelFields) (string, error)
	UpdateModel(ctx context.Context, creds domainauth.Credentials, id int64, fields model.ShoeModelFields) (string, error)
	DeleteModel(ctx context.Context, creds domainauth.Credentials, id int64) (string, error)
}

// ChartGateway serves production aggregates.
type ChartGateway interface {
	ProductionSummary(ctx context.Context, creds domainauth.Credentials) (model.ProductionSummary, error)
	CreationSeries(ctx context.Context, creds domainauth.Credentials, filter model.ChartFilter) ([]model.ChartPoint, error)
}

// AccountGateway manages user accounts.
type AccountGateway interface {
	ListUsers(ctx context.Context, creds domainauth.Credentials) ([]model.Account, error)
	CreateAccount(ctx context.Context, creds domainauth.Credentials, req model.CreateAccountRequest) (string, error)
	UpdateUserRole(ctx context.Context, creds domainauth.Credentials, update model.RoleUpdate) (string, error)
	DeleteUser(ctx context.Context, creds domainauth.Credentials, id int64) (string, error)
}

// BackupGateway triggers database backups on the record server.
type BackupGateway interface {
	ManualBackup(ctx context.Context, creds domainauth.Credentials) (model.BackupResult, error)
	ConfirmBackupOverwrite(ctx context.Context, creds domainauth.Credentials) (string, error)
}

// UpstreamPinger checks that the record server answers at all.
type UpstreamPinger interface {
	Ping(ctx context.Context) error
}
