package upstream

import (
	"context"
	"net/http"
	"strings"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
)

// ManualBackup asks for today's backup. A success:false answer listing
// existing files is a normal outcome that needs operator confirmation.
func (c *Client) ManualBackup(ctx context.Context, creds domainauth.Credentials) (model.BackupResult, error) {
	resp, err := c.send(ctx, request{
		name:   "manual_backup",
		method: http.MethodPost,
		path:   "/manual_backup",
		creds:  &creds,
	})
	if err != nil {
		return model.BackupResult{}, err
	}
	var out model.BackupResult
	if err := resp.decode(&out); err != nil {
		return model.BackupResult{}, err
	}
	if !out.Success && !out.NeedsConfirmation() {
		msg := strings.TrimSpace(out.Message)
		if msg == "" {
			msg = model.BackupFailedMessage
		}
		return model.BackupResult{}, newAPIError(resp.status, msg, resp.name)
	}
	return out, nil
}

// ConfirmBackupOverwrite replaces today's existing backup files.
func (c *Client) ConfirmBackupOverwrite(ctx context.Context, creds domainauth.Credentials) (string, error) {
	resp, err := c.send(ctx, request{
		name:   "confirm_backup_overwrite",
		method: http.MethodPost,
		path:   "/confirm_backup_overwrite",
		creds:  &creds,
	})
	if err != nil {
		return "", err
	}
	return resp.result()
}
