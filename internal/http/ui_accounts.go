package httpx

import (
	"context"
	"errors"
	"net/http"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
	"github.com/shoetrack/shoetrack-ui/internal/service"
)

// RoleOption is one entry of a role select.
type RoleOption struct {
	Value string
	Label string
}

func roleOptions() []RoleOption {
	roles := domainauth.Roles()
	out := make([]RoleOption, 0, len(roles))
	for _, role := range roles {
		out = append(out, RoleOption{Value: string(role), Label: role.Label()})
	}
	return out
}

func accountsMeta() PageMeta {
	return PageMeta{Title: "Manage Accounts", CurrentPage: PageAccounts}
}

// AccountsPage lists accounts with an inline role selector.
func (h *UIHandlers) AccountsPage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: accountsMeta(),
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Roles"] = roleOptions()
			accounts, err := h.Accounts.List(ctx, session(r).Credentials())
			data["Accounts"] = accounts
			return err
		},
	})
}

// NewAccountPage renders the create account form.
func (h *UIHandlers) NewAccountPage(w http.ResponseWriter, r *http.Request) {
	h.renderAccountForm(w, r, AccountForm{Role: string(domainauth.RoleUser)}, FormState{})
}

// CreateAccount creates an account and shows the server's message on the listing.
func (h *UIHandlers) CreateAccount(w http.ResponseWriter, r *http.Request) {
	creds := session(r).Credentials()
	HandleForm(FormHandlerOpts[AccountForm]{
		UI:     h,
		W:      w,
		R:      r,
		Parser: parseAccountForm,
		Submit: func(ctx context.Context, f AccountForm) (string, error) {
			return h.Accounts.Create(ctx, creds, f.Request())
		},
		Renderer: h.renderAccountForm,
		OnSuccess: func(w http.ResponseWriter, r *http.Request, msg string) {
			setFlash(w, FlashSuccess, msg)
			redirect(w, r, "/accounts")
		},
	})
}

func (h *UIHandlers) renderAccountForm(w http.ResponseWriter, r *http.Request, form AccountForm, state FormState) {
	form.Password = ""
	builder := NewTemplateData(r, PageMeta{Title: "Create New Account", CurrentPage: PageAccountForm}).
		With("Form", form).
		With("Roles", roleOptions()).
		With("Notice", model.PasswordRotationNotice).
		WithFieldErrors(state.FieldErrors)
	if state.ErrorMessage != "" {
		builder.WithError(state.ErrorMessage)
	}
	h.renderPage(w, r, state.Status, builder.Build())
}

// UpdateAccountRole changes a role from the listing's select and re-renders
// the table. A refusal is shown as a toast and the table reverts.
func (h *UIHandlers) UpdateAccountRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	creds := session(r).Credentials()
	role, err := domainauth.ParseRole(r.PostFormValue("new_role"))
	msg := ""
	if err == nil {
		msg, err = h.Accounts.UpdateRole(r.Context(), creds, model.RoleUpdate{UserID: id, NewRole: role})
	}
	if err != nil {
		if h.expireIfStale(w, r, err) {
			return
		}
		triggerToast(w, UserMessage(err), FlashError)
	} else {
		triggerToast(w, msg, FlashSuccess)
	}

	accounts, listErr := h.Accounts.List(r.Context(), creds)
	if listErr != nil {
		if h.expireIfStale(w, r, listErr) {
			return
		}
		h.renderFragment(w, r, "accounts-table", map[string]any{"ErrorMessage": UserMessage(listErr)})
		return
	}
	h.renderFragment(w, r, "accounts-table", map[string]any{
		"Accounts":  accounts,
		"Roles":     roleOptions(),
		"CSRFToken": GetCSRFToken(r),
	})
}

// ConfirmDeleteAccountPage asks before deleting an account. Admin accounts
// cannot be deleted from here.
func (h *UIHandlers) ConfirmDeleteAccountPage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	accounts, err := h.Accounts.List(r.Context(), session(r).Credentials())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	account, found := findAccount(accounts, id)
	if !found {
		h.NotFound(w, r)
		return
	}
	if !account.CanDelete() {
		h.RenderErrorPage(w, r, ErrorPageOpts{Status: http.StatusForbidden, Title: "Forbidden", Message: MsgCannotDelAdmin})
		return
	}
	data := NewTemplateData(r, PageMeta{Title: "Delete Account", CurrentPage: PageAccountDelete}).
		With("Account", account).
		With("Question", MsgConfirmDelUser).
		Build()
	h.renderPage(w, r, http.StatusOK, data)
}

// DeleteAccount deletes an account only when the dialog was answered yes.
func (h *UIHandlers) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	msg, err := h.Accounts.Delete(r.Context(), session(r).Credentials(), id, confirmed(r))
	switch {
	case errors.Is(err, service.ErrNotConfirmed):
		setFlash(w, FlashInfo, MsgDeleteCancelled)
	case err != nil:
		if h.expireIfStale(w, r, err) {
			return
		}
		h.logger().WarnContext(r.Context(), "account delete failed", "id", id, "error", err)
		setFlash(w, FlashError, UserMessage(err))
	default:
		setFlash(w, FlashSuccess, msg)
	}
	redirect(w, r, "/accounts")
}

func findAccount(accounts []model.Account, id int64) (model.Account, bool) {
	for _, a := range accounts {
		if a.ID == id {
			return a, true
		}
	}
	return model.Account{}, false
}
