package service

import (
	"context"
	"log/slog"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
	apperrors "github.com/shoetrack/shoetrack-ui/internal/errors"
	"github.com/shoetrack/shoetrack-ui/internal/ports"
)

// BackupServiceOptions groups dependencies for BackupService.
type BackupServiceOptions struct {
	Gateway ports.BackupGateway
	Logger  *slog.Logger
}

// BackupService triggers record server backups.
type BackupService struct {
	gateway ports.BackupGateway
	logger  *slog.Logger
}

// NewBackupService constructs a BackupService.
func NewBackupService(opts BackupServiceOptions) *BackupService {
	if opts.Gateway == nil {
		panic("BackupGateway is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &BackupService{gateway: opts.Gateway, logger: opts.Logger}
}

// Run requests a backup. A result with existing files needs Confirm.
func (s *BackupService) Run(ctx context.Context, creds domainauth.Credentials) (model.BackupResult, error) {
	res, err := s.gateway.ManualBackup(ctx, creds)
	if err != nil {
		return model.BackupResult{}, backupError(err)
	}
	if res.NeedsConfirmation() {
		s.logger.InfoContext(ctx, "backup files already exist", "files", res.ExistingFiles)
	}
	return res, nil
}

// Confirm overwrites existing backups when confirmed. Declining sends nothing.
func (s *BackupService) Confirm(ctx context.Context, creds domainauth.Credentials, confirmed bool) (string, error) {
	if !confirmed {
		return model.BackupCancelledMessage, nil
	}
	msg, err := s.gateway.ConfirmBackupOverwrite(ctx, creds)
	if err != nil {
		return "", backupError(err)
	}
	return msg, nil
}

// backupError keeps server refusals verbatim and replaces transport failures
// with the backup-specific message.
func backupError(err error) error {
	if apperrors.IsUnavailable(err) || apperrors.IsTimeout(err) {
		return apperrors.Wrap(err, apperrors.GetCode(err), model.BackupFailedMessage)
	}
	return err
}
