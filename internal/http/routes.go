package httpx

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	shoetrack "github.com/shoetrack/shoetrack-ui"
	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/observability/metrics"
	"github.com/shoetrack/shoetrack-ui/internal/ports"
)

// RouterServices holds everything the HTTP router serves.
type RouterServices struct {
	Auth     AuthService
	Shoes    ShoeService
	Catalog  CatalogService
	Models   ModelService
	Accounts AccountService
	Charts   ChartService
	Backup   BackupService

	// Upstream backs /readyz. Optional.
	Upstream ports.UpstreamPinger
	// LoginLimiter throttles POST /login. Optional.
	LoginLimiter *LoginLimiter

	Cookies     CookieOptions
	Compression *CompressionConfig // nil disables gzip

	Metrics        metrics.Sink
	MetricsHandler http.Handler // nil disables the scrape endpoint
	MetricsPath    string

	// TemplateFS and StaticFS override the embedded or on-disk assets.
	TemplateFS fs.FS
	StaticFS   fs.FS

	IsDev  bool         // Development mode flag for hot reloading, etc.
	Logger *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter builds the complete handler: routes wrapped by request logging,
// panic recovery, optional compression, session loading and CSRF checks.
func NewRouter(services RouterServices) (http.Handler, error) {
	if services.Logger == nil {
		services.Logger = slog.Default()
	}
	if services.Metrics == nil {
		services.Metrics = metrics.Noop{}
	}

	ui, err := setupUIHandlers(services)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	rr := routeRegistrar{mux: mux, ui: ui}

	rr.handle("GET /healthz", http.HandlerFunc(healthHandler))
	rr.handle("GET /readyz", readinessHandler(services.Upstream, services.Logger))
	if services.MetricsHandler != nil {
		path := services.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		rr.handle("GET "+path, services.MetricsHandler)
	}
	static, err := staticHandler(services)
	if err != nil {
		return nil, err
	}
	rr.handle("GET /static/", static)

	registerAuthRoutes(rr, services.LoginLimiter)
	registerShoeRoutes(rr)
	registerModelRoutes(rr)
	registerAccountRoutes(rr)
	registerChartRoutes(rr)
	registerBackupRoutes(rr)
	rr.handle("/", http.HandlerFunc(ui.NotFound))

	var handler http.Handler = mux
	handler = CSRFProtection(CSRFConfig{
		Cookie:    CookieOptions{Domain: services.Cookies.Domain, Secure: services.Cookies.Secure},
		OnFailure: http.HandlerFunc(ui.CSRFFailed),
	})(handler)
	handler = LoadSession(SessionOptions{
		Sessions:   services.Auth,
		CookieName: ui.sessionCookieName(),
		Logger:     services.Logger,
	})(handler)
	if services.Compression != nil {
		cfg := *services.Compression
		if cfg.Logger == nil {
			cfg.Logger = services.Logger
		}
		handler = Compression(cfg)(handler)
	}
	handler = Recover(services.Logger)(handler)
	handler = Logging(LoggingOptions{Logger: services.Logger, Metrics: services.Metrics})(handler)
	return handler, nil
}

// routeRegistrar registers routes tagged with their pattern for metrics.
type routeRegistrar struct {
	mux *http.ServeMux
	ui  *UIHandlers
}

func (rr routeRegistrar) handle(pattern string, h http.Handler) {
	rr.mux.Handle(pattern, tagRoute(pattern, h))
}

// signedIn registers a route open to any session.
func (rr routeRegistrar) signedIn(pattern string, fn http.HandlerFunc) {
	rr.handle(pattern, RequireSession(fn))
}

// screen registers a route open to roles offered action.
func (rr routeRegistrar) screen(pattern string, action domainauth.Action, fn http.HandlerFunc) {
	guard := RequireAction(action, http.HandlerFunc(rr.ui.Forbidden))
	rr.handle(pattern, RequireSession(guard(fn)))
}

func registerAuthRoutes(rr routeRegistrar, limiter *LoginLimiter) {
	ui := rr.ui
	rr.handle("GET /login", http.HandlerFunc(ui.LoginPage))
	var login http.Handler = http.HandlerFunc(ui.Login)
	if limiter != nil {
		login = limiter.Middleware(http.HandlerFunc(ui.TooManyLogins))(login)
	}
	rr.handle("POST /login", login)
	rr.handle("GET /reset-password", http.HandlerFunc(ui.ResetPasswordPage))
	rr.handle("POST /reset-password", http.HandlerFunc(ui.ResetPassword))
	rr.signedIn("POST /logout", ui.Logout)
	rr.signedIn("GET /{$}", ui.Home)
}

func registerShoeRoutes(rr routeRegistrar) {
	ui := rr.ui
	rr.screen("GET /shoes/new", domainauth.ActionEnterShoe, ui.ShoeEntryPage)
	rr.screen("GET /shoes/model-details", domainauth.ActionEnterShoe, ui.ShoeModelDetails)
	rr.screen("POST /shoes", domainauth.ActionEnterShoe, ui.CreateShoe)
	rr.screen("GET /shoes", domainauth.ActionViewShoes, ui.ShoesPage)
	rr.screen("GET /shoes/search", domainauth.ActionViewShoes, ui.SearchShoes)
}

func registerModelRoutes(rr routeRegistrar) {
	ui := rr.ui
	rr.screen("GET /models/new", domainauth.ActionCreateModel, ui.NewModelPage)
	rr.screen("POST /models", domainauth.ActionCreateModel, ui.CreateModel)
	rr.screen("GET /models", domainauth.ActionViewModels, ui.ModelsPage)
	rr.screen("GET /models/{id}/edit", domainauth.ActionViewModels, ui.EditModelPage)
	rr.screen("POST /models/{id}", domainauth.ActionViewModels, ui.UpdateModel)
	rr.screen("GET /models/{id}/delete", domainauth.ActionViewModels, ui.ConfirmDeleteModelPage)
	rr.screen("POST /models/{id}/delete", domainauth.ActionViewModels, ui.DeleteModel)
}

func registerAccountRoutes(rr routeRegistrar) {
	ui := rr.ui
	rr.screen("GET /accounts/new", domainauth.ActionCreateAccount, ui.NewAccountPage)
	rr.screen("POST /accounts", domainauth.ActionCreateAccount, ui.CreateAccount)
	rr.screen("GET /accounts", domainauth.ActionManageAccounts, ui.AccountsPage)
	rr.screen("POST /accounts/{id}/role", domainauth.ActionManageAccounts, ui.UpdateAccountRole)
	rr.screen("GET /accounts/{id}/delete", domainauth.ActionManageAccounts, ui.ConfirmDeleteAccountPage)
	rr.screen("POST /accounts/{id}/delete", domainauth.ActionManageAccounts, ui.DeleteAccount)
}

func registerChartRoutes(rr routeRegistrar) {
	ui := rr.ui
	rr.screen("GET /charts", domainauth.ActionCreateGraphs, ui.ChartsPage)
	rr.screen("GET /charts/data", domainauth.ActionCreateGraphs, ui.ChartData)
	rr.screen("GET /charts/download.png", domainauth.ActionCreateGraphs, ui.ChartDownload)
}

func registerBackupRoutes(rr routeRegistrar) {
	ui := rr.ui
	rr.screen("GET /backup", domainauth.ActionBackup, ui.BackupPage)
	rr.screen("POST /backup", domainauth.ActionBackup, ui.RunBackup)
	rr.screen("POST /backup/confirm", domainauth.ActionBackup, ui.ConfirmBackup)
}

// setupUIHandlers creates UI handlers with the template renderer.
// In dev mode templates are read from disk so edits show without a rebuild.
func setupUIHandlers(services RouterServices) (*UIHandlers, error) {
	if services.Auth == nil {
		return nil, fmt.Errorf("auth service is required")
	}
	templateFS := services.TemplateFS
	if templateFS == nil {
		if services.IsDev {
			templateFS = os.DirFS(TemplatePathFromRoot)
		} else {
			sub, err := fs.Sub(shoetrack.TemplateFS, TemplatePathFromRoot)
			if err != nil {
				return nil, fmt.Errorf("template sub-filesystem: %w", err)
			}
			templateFS = sub
		}
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS,
		Logger:     services.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create template renderer: %w", err)
	}

	return &UIHandlers{
		T:        tr,
		Auth:     services.Auth,
		Shoes:    services.Shoes,
		Catalog:  services.Catalog,
		Models:   services.Models,
		Accounts: services.Accounts,
		Charts:   services.Charts,
		Backup:   services.Backup,
		Cookies:  services.Cookies,
		IsDev:    services.IsDev,
		Logger:   services.Logger,
	}, nil
}

// staticHandler serves /static/* from disk in dev mode and from the
// embedded filesystem otherwise.
func staticHandler(services RouterServices) (http.Handler, error) {
	staticFS := services.StaticFS
	if staticFS == nil {
		if services.IsDev {
			staticFS = os.DirFS("frontend/static")
		} else {
			sub, err := fs.Sub(shoetrack.StaticFS, "frontend/static")
			if err != nil {
				return nil, fmt.Errorf("static sub-filesystem: %w", err)
			}
			staticFS = sub
		}
	}
	files := http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))
	cacheControl := "public, max-age=3600"
	if services.IsDev {
		cacheControl = "no-cache"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cacheControl)
		files.ServeHTTP(w, r)
	}), nil
}
