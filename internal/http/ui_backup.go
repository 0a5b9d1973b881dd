package httpx

import (
	"net/http"

	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
)

func backupMeta() PageMeta {
	return PageMeta{Title: "Backup Database", CurrentPage: PageBackup}
}

// BackupPage renders the backup control panel.
func (h *UIHandlers) BackupPage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{Meta: backupMeta()})
}

// RunBackup requests a backup. Existing files turn into an overwrite prompt.
func (h *UIHandlers) RunBackup(w http.ResponseWriter, r *http.Request) {
	res, err := h.Backup.Run(r.Context(), session(r).Credentials())
	builder := NewTemplateData(r, backupMeta())
	status := http.StatusOK
	switch {
	case err != nil:
		if h.expireIfStale(w, r, err) {
			return
		}
		h.logger().WarnContext(r.Context(), "backup failed", "error", err)
		builder.WithError(UserMessage(err))
		status = StatusForError(err)
	case res.NeedsConfirmation():
		builder.
			With("ExistingFiles", res.ExistingFiles).
			With("ExistingHeading", model.BackupExistingFiles).
			With("Question", model.BackupOverwriteQuestion)
	default:
		builder.WithSuccess(res.Message)
	}
	h.renderPage(w, r, status, builder.Build())
}

// ConfirmBackup overwrites existing backups when answered yes. Any other
// answer sends nothing and reports the cancellation.
func (h *UIHandlers) ConfirmBackup(w http.ResponseWriter, r *http.Request) {
	yes := confirmed(r)
	msg, err := h.Backup.Confirm(r.Context(), session(r).Credentials(), yes)
	builder := NewTemplateData(r, backupMeta())
	status := http.StatusOK
	switch {
	case err != nil:
		if h.expireIfStale(w, r, err) {
			return
		}
		h.logger().WarnContext(r.Context(), "backup overwrite failed", "error", err)
		builder.WithError(UserMessage(err))
		status = StatusForError(err)
	case !yes:
		builder.With("InfoMessage", msg)
	default:
		builder.WithSuccess(msg)
	}
	h.renderPage(w, r, status, builder.Build())
}
