package httpx

import (
	"net/http"
	"net/url"

	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
)

func loginMeta() PageMeta {
	return PageMeta{Title: "Login", CurrentPage: PageLogin}
}

func resetMeta() PageMeta {
	return PageMeta{Title: "Reset Password", CurrentPage: PageResetPassword}
}

// LoginPage renders the login form. Signed-in users go to the main menu.
func (h *UIHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if GetSessionFromContext(r.Context()) != nil {
		redirect(w, r, "/")
		return
	}
	data := NewTemplateData(r, loginMeta()).
		With("Username", r.URL.Query().Get("username")).
		Build()
	h.renderPage(w, r, http.StatusOK, data)
}

// Login authenticates against the record server. A forced password change
// goes to the reset screen without creating a session.
func (h *UIHandlers) Login(w http.ResponseWriter, r *http.Request) {
	username := formValue(r, "username")
	outcome, err := h.Auth.Login(r.Context(), username, r.PostFormValue("password"))
	if err != nil {
		h.logger().InfoContext(r.Context(), "login failed", "username", username, "error", err)
		data := NewTemplateData(r, loginMeta()).
			WithError(UserMessage(err)).
			With("Username", username).
			Build()
		h.renderPage(w, r, StatusForError(err), data)
		return
	}

	if outcome.ResetRequired {
		setFlash(w, FlashInfo, outcome.Message)
		redirect(w, r, "/reset-password?username="+url.QueryEscape(outcome.Username))
		return
	}

	sess := outcome.Session
	setSessionCookie(w, r, h.Cookies, sess.ID, sess.ExpiresAt)
	setFlash(w, FlashSuccess, outcome.Message)
	redirect(w, r, "/")
}

// ResetPasswordPage renders the password reset form.
func (h *UIHandlers) ResetPasswordPage(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, resetMeta()).
		With("Username", r.URL.Query().Get("username")).
		Build()
	h.renderPage(w, r, http.StatusOK, data)
}

// ResetPassword posts a password change. Success returns to the login page
// with the record server's message.
func (h *UIHandlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	req := model.ResetPasswordRequest{
		Username:        formValue(r, "username"),
		CurrentPassword: r.PostFormValue("current_password"),
		NewPassword:     r.PostFormValue("new_password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	}
	msg, err := h.Auth.ResetPassword(r.Context(), req)
	if err != nil {
		state := formErrorState(err)
		data := NewTemplateData(r, resetMeta()).
			WithError(state.ErrorMessage).
			WithFieldErrors(state.FieldErrors).
			With("Username", req.Username).
			Build()
		h.renderPage(w, r, state.Status, data)
		return
	}
	setFlash(w, FlashSuccess, msg)
	redirect(w, r, "/login?username="+url.QueryEscape(req.Username))
}

// Logout ends the session once the record server confirms. On failure the
// session is kept and the error is shown where the user is.
func (h *UIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	msg, err := h.Auth.Logout(r.Context(), sess)
	if err != nil {
		h.logger().WarnContext(r.Context(), "logout failed", "username", sess.Username, "error", err)
		if IsHTMX(r) {
			triggerToast(w, UserMessage(err), FlashError)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		setFlash(w, FlashError, UserMessage(err))
		redirect(w, r, "/")
		return
	}
	clearCookie(w, h.sessionCookieName())
	setFlash(w, FlashSuccess, msg)
	redirect(w, r, "/login")
}

// Home renders the main menu for the session's role.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{Meta: PageMeta{Title: "Main Menu", CurrentPage: PageHome}})
}
