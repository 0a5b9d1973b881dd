package httpx

import (
	"net/http"
)

// ErrorPageOpts describes a full error screen.
type ErrorPageOpts struct {
	Status  int
	Title   string
	Message string
}

// RenderErrorPage renders the error screen inside the normal layout so the
// navigation stays usable.
func (h *UIHandlers) RenderErrorPage(w http.ResponseWriter, r *http.Request, opts ErrorPageOpts) {
	if opts.Status == 0 {
		opts.Status = http.StatusInternalServerError
	}
	if opts.Title == "" {
		opts.Title = http.StatusText(opts.Status)
	}
	data := NewTemplateData(r, PageMeta{Title: opts.Title, CurrentPage: PageError}).
		With("Status", opts.Status).
		WithError(opts.Message).
		Build()
	h.renderPage(w, r, opts.Status, data)
}

// NotFound renders the 404 page.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.RenderErrorPage(w, r, ErrorPageOpts{Status: http.StatusNotFound, Title: "Not Found", Message: MsgNotFound})
}

// Forbidden renders the 403 page for screens the role is not offered.
func (h *UIHandlers) Forbidden(w http.ResponseWriter, r *http.Request) {
	h.RenderErrorPage(w, r, ErrorPageOpts{Status: http.StatusForbidden, Title: "Forbidden", Message: MsgForbidden})
}

// TooManyLogins answers a throttled login attempt.
func (h *UIHandlers) TooManyLogins(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Retry-After", "60")
	data := NewTemplateData(r, PageMeta{Title: "Login", CurrentPage: PageLogin}).
		WithError(MsgTooManyLogins).
		With("Username", formValue(r, "username")).
		Build()
	h.renderPage(w, r, http.StatusTooManyRequests, data)
}

// CSRFFailed answers a state-changing request without a valid token.
func (h *UIHandlers) CSRFFailed(w http.ResponseWriter, r *http.Request) {
	h.RenderErrorPage(w, r, ErrorPageOpts{
		Status:  http.StatusForbidden,
		Title:   "Forbidden",
		Message: "Your form has expired. Please reload the page and try again.",
	})
}

// renderServiceError shows err on the error screen, or expires a stale session.
func (h *UIHandlers) renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if h.expireIfStale(w, r, err) {
		return
	}
	h.logger().WarnContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	h.RenderErrorPage(w, r, ErrorPageOpts{Status: StatusForError(err), Message: UserMessage(err)})
}
