package httpx

import (
	"context"
	"html"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shoetrack/shoetrack-ui/internal/chart"
	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
	apperrors "github.com/shoetrack/shoetrack-ui/internal/errors"
	"github.com/shoetrack/shoetrack-ui/internal/http/ui/viewmodel"
	"github.com/shoetrack/shoetrack-ui/internal/service"
)

// AuthService is the session lifecycle as the UI needs it.
type AuthService interface {
	SessionReader
	Login(ctx context.Context, username, password string) (service.LoginOutcome, error)
	Logout(ctx context.Context, sess domainauth.Session) (string, error)
	Expire(ctx context.Context, sessionID string) error
	ResetPassword(ctx context.Context, req model.ResetPasswordRequest) (string, error)
}

// ShoeService records and searches shoes.
type ShoeService interface {
	ModelDetails(ctx context.Context, creds domainauth.Credentials, name string) (model.ShoeModel, error)
	Create(ctx context.Context, creds domainauth.Credentials, entry model.ShoeEntry) (string, error)
	List(ctx context.Context, creds domainauth.Credentials, q model.ShoeQuery) ([]model.ShoeRecord, error)
	Search(
		ctx context.Context,
		sessionID string,
		creds domainauth.Credentials,
		q model.ShoeQuery,
		immediate bool,
	) ([]model.ShoeRecord, error)
	Forget(sessionID string)
}

// CatalogService serves the cached model dictionary.
type CatalogService interface {
	Models(ctx context.Context, creds domainauth.Credentials) ([]model.ShoeModel, error)
}

// ModelService manages shoe models.
type ModelService interface {
	Listing(ctx context.Context, creds domainauth.Credentials) (service.ModelListing, error)
	Get(ctx context.Context, creds domainauth.Credentials, id int64) (model.ShoeModel, error)
	Create(ctx context.Context, creds domainauth.Credentials, fields model.ShoeModelFields) (string, error)
	Update(ctx context.Context, creds domainauth.Credentials, id int64, fields model.ShoeModelFields) (string, error)
	Delete(ctx context.Context, creds domainauth.Credentials, id int64, confirmed bool) (string, error)
}

// AccountService manages user accounts.
type AccountService interface {
	List(ctx context.Context, creds domainauth.Credentials) ([]model.Account, error)
	Create(ctx context.Context, creds domainauth.Credentials, req model.CreateAccountRequest) (string, error)
	UpdateRole(ctx context.Context, creds domainauth.Credentials, update model.RoleUpdate) (string, error)
	Delete(ctx context.Context, creds domainauth.Credentials, id int64, confirmed bool) (string, error)
}

// ChartService builds and holds per-session charts.
type ChartService interface {
	Options(ctx context.Context, creds domainauth.Credentials) (model.ProductionSummary, error)
	Update(
		ctx context.Context,
		sessionID string,
		creds domainauth.Credentials,
		filter model.ChartFilter,
	) (*chart.Handle, error)
	Current(sessionID string) (*chart.Handle, bool)
}

// BackupService triggers record server backups.
type BackupService interface {
	Run(ctx context.Context, creds domainauth.Credentials) (model.BackupResult, error)
	Confirm(ctx context.Context, creds domainauth.Credentials, confirmed bool) (string, error)
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ AuthService    = (*service.AuthService)(nil)
	_ ShoeService    = (*service.ShoeService)(nil)
	_ CatalogService = (*service.CatalogService)(nil)
	_ ModelService   = (*service.ModelService)(nil)
	_ AccountService = (*service.AccountService)(nil)
	_ ChartService   = (*service.ChartService)(nil)
	_ BackupService  = (*service.BackupService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T        *TemplateRenderer
	Auth     AuthService
	Shoes    ShoeService
	Catalog  CatalogService
	Models   ModelService
	Accounts AccountService
	Charts   ChartService
	Backup   BackupService
	Cookies  CookieOptions
	IsDev    bool // Development mode flag for enhanced error reporting
	Logger   *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// buildLayout constructs shared layout metadata from the request/session context.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
		CSRFToken:   GetCSRFToken(r),
	}
	if layout.PageTitle == "" {
		layout.PageTitle = meta.Title
	}

	session := GetSessionFromContext(r.Context())
	if session == nil {
		return layout
	}
	layout.IsAuthenticated = true
	layout.User = &viewmodel.User{
		Username:  session.Username,
		Role:      string(session.Role),
		RoleLabel: session.Role.Label(),
	}
	for _, a := range domainauth.ActionsFor(session.Role) {
		layout.Nav = append(layout.Nav, viewmodel.NavItem{
			Action: string(a),
			Label:  a.Label(),
			Path:   ActionPath(a),
			Active: actionPages[a] == meta.CurrentPage,
		})
	}
	return layout
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	return map[string]any{
		"Layout":          layout,
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"CurrentPage":     layout.CurrentPage,
		"CSRFToken":       layout.CSRFToken,
		"IsAuthenticated": layout.IsAuthenticated,
		"User":            layout.User,
		"Nav":             layout.Nav,
	}
}

// PageSpec defines metadata and an optional fetch for page-specific data.
type PageSpec struct {
	Meta   PageMeta
	Status int
	Fetch  func(ctx context.Context, data map[string]any) error
}

// Page builds base data, optionally fetches content data, and renders.
// A fetch error is shown on the page unless it means the session is stale.
func (h *UIHandlers) Page(w http.ResponseWriter, r *http.Request, spec PageSpec) {
	data := basePageData(r, spec.Meta)
	if spec.Fetch != nil {
		if err := spec.Fetch(r.Context(), data); err != nil {
			if h.expireIfStale(w, r, err) {
				return
			}
			h.logger().WarnContext(r.Context(), "page data fetch failed",
				"page", spec.Meta.CurrentPage, "error", err)
			markPageError(data, err)
		}
	}
	h.renderPage(w, r, spec.Status, data)
}

// renderPage renders data as a full page, or for htmx navigations as the
// content partial with out-of-band title and navigation updates.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, status int, data map[string]any) {
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	if kind, msg, ok := popFlash(w, r); ok {
		data["Flash"] = &viewmodel.Flash{Kind: kind, Message: msg}
	}

	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, status, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	layout, _ := data["Layout"].(viewmodel.Layout)
	var buf strings.Builder
	// Include a <title> element so htmx updates document.title on partial swaps
	buf.WriteString(`<title>` + html.EscapeString(layout.Title) + `</title>`)
	buf.WriteString(`<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` +
		html.EscapeString(layout.PageTitle) + `</h1>`)
	if err := h.T.Execute(&buf, "nav-oob", data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial nav render")
		return
	}
	if err := h.T.Execute(&buf, ContentTemplateFor(layout.CurrentPage), data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status != 0 && status != http.StatusOK {
		w.WriteHeader(status)
	}
	if _, err := w.Write([]byte(buf.String())); err != nil {
		h.logger().Error("failed to write partial", "error", err)
	}
}

// renderFragment renders one named template for an in-place htmx swap.
func (h *UIHandlers) renderFragment(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := h.T.RenderNamed(w, name, data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "fragment "+name)
	}
}

func markPageError(data map[string]any, err error) {
	data["Error"] = true
	if _, ok := data["ErrorMessage"]; ok {
		return
	}
	data["ErrorMessage"] = UserMessage(err)
}

// expireIfStale ends the local session when the record server no longer
// accepts its credentials and sends the browser to the login page. It
// reports whether the response has been written.
func (h *UIHandlers) expireIfStale(w http.ResponseWriter, r *http.Request, err error) bool {
	if !apperrors.IsUnauthorized(err) {
		return false
	}
	sess := GetSessionFromContext(r.Context())
	if sess == nil {
		return false
	}
	if expireErr := h.Auth.Expire(r.Context(), sess.ID); expireErr != nil {
		h.logger().WarnContext(r.Context(), "failed to expire stale session", "error", expireErr)
	}
	clearCookie(w, h.sessionCookieName())
	setFlash(w, FlashInfo, MsgSessionExpired)
	redirect(w, r, "/login")
	return true
}

func (h *UIHandlers) sessionCookieName() string {
	if h.Cookies.Name != "" {
		return h.Cookies.Name
	}
	return DefaultSessionCookieName
}

// triggerToast sends a standardized HX-Trigger payload for toast notifications.
func triggerToast(w http.ResponseWriter, message, toastType string) {
	if w == nil || strings.TrimSpace(message) == "" {
		return
	}
	HTMX(w).Trigger("showToast", map[string]any{
		"message": message,
		"type":    strings.TrimSpace(toastType),
	})
}

// session returns the request's session. Routes that call it are wrapped by
// RequireSession.
func session(r *http.Request) domainauth.Session {
	if s := GetSessionFromContext(r.Context()); s != nil {
		return *s
	}
	return domainauth.Session{}
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<pre class="template-error">Template error (` + html.EscapeString(context) + `): ` +
			html.EscapeString(err.Error()) + `</pre>`))
		return
	}

	http.Error(w, "internal server error", http.StatusInternalServerError)
}
