package model

// Backup messages shown on the control panel.
const (
	BackupCancelledMessage  = "Backup cancelled."
	BackupFailedMessage     = "An error occurred while performing the backup."
	BackupExistingFiles     = "The following backup files already exist:"
	BackupOverwriteQuestion = "Do you want to overwrite them?"
)

// BackupResult is the record server's answer to a backup request.
// ExistingFiles is non-empty when today's backup already exists and the
// operator must confirm an overwrite.
type BackupResult struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	ExistingFiles []string `json:"existing_files"`
}

// NeedsConfirmation reports whether an overwrite prompt must be shown.
func (r BackupResult) NeedsConfirmation() bool { return len(r.ExistingFiles) > 0 }
