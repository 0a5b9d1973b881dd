package httpx

import domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"

// CurrentPage constants define the page identifiers used in templates and navigation.
const (
	PageHome          = "home"
	PageLogin         = "login"
	PageResetPassword = "reset-password"

	PageShoeEntry = "shoe-entry"
	PageShoes     = "shoes"

	PageModels      = "models"
	PageModelForm   = "model-form"
	PageModelDelete = "model-delete"

	PageAccounts      = "accounts"
	PageAccountForm   = "account-form"
	PageAccountDelete = "account-delete"

	PageCharts = "charts"
	PageBackup = "backup"

	PageError    = "error"
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)

// FormMode represents the mode of a form (create or edit).
type FormMode string

const (
	FormModeEdit   FormMode = "edit"
	FormModeCreate FormMode = "create"
)

// Confirmation answers posted by the delete and overwrite dialogs.
const (
	confirmField = "confirm"
	confirmYes   = "yes"
)

// User-facing messages owned by the front end.
const (
	MsgSessionExpired  = "Your session has expired. Please log in again."
	MsgTooManyLogins   = "Too many login attempts. Please wait and try again."
	MsgForbidden       = "You do not have permission to view this page."
	MsgNotFound        = "The page you requested could not be found."
	MsgConfirmDelModel = "Are you sure you want to delete this shoe model?"
	MsgConfirmDelUser  = "Are you sure you want to delete this user?"
	MsgCannotDelAdmin  = "Cannot delete admin"
	MsgDeleteCancelled = "Delete cancelled."
	errMsgFixBelow     = "Please fix the errors below."
)

//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageHome:          "home-content",
	PageLogin:         "login-content",
	PageResetPassword: "reset-password-content",
	PageShoeEntry:     "shoe-entry-content",
	PageShoes:         "shoes-content",
	PageModels:        "models-content",
	PageModelForm:     "model-form-content",
	PageModelDelete:   "model-delete-content",
	PageAccounts:      "accounts-content",
	PageAccountForm:   "account-form-content",
	PageAccountDelete: "account-delete-content",
	PageCharts:        "charts-content",
	PageBackup:        "backup-content",
	PageError:         "error-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to home-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := ContentTemplateMap()[currentPage]; ok {
		return name
	}
	return "home-content"
}

//nolint:gochecknoglobals // static read-only lookup
var actionPaths = map[domainauth.Action]string{
	domainauth.ActionEnterShoe:      "/shoes/new",
	domainauth.ActionViewShoes:      "/shoes",
	domainauth.ActionCreateModel:    "/models/new",
	domainauth.ActionViewModels:     "/models",
	domainauth.ActionCreateGraphs:   "/charts",
	domainauth.ActionCreateAccount:  "/accounts/new",
	domainauth.ActionManageAccounts: "/accounts",
	domainauth.ActionBackup:         "/backup",
}

//nolint:gochecknoglobals // static read-only lookup
var actionPages = map[domainauth.Action]string{
	domainauth.ActionEnterShoe:      PageShoeEntry,
	domainauth.ActionViewShoes:      PageShoes,
	domainauth.ActionCreateModel:    PageModelForm,
	domainauth.ActionViewModels:     PageModels,
	domainauth.ActionCreateGraphs:   PageCharts,
	domainauth.ActionCreateAccount:  PageAccountForm,
	domainauth.ActionManageAccounts: PageAccounts,
	domainauth.ActionBackup:         PageBackup,
}

// ActionPath returns the route that opens action.
func ActionPath(a domainauth.Action) string { return actionPaths[a] }
