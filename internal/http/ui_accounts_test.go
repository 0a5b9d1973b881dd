package httpx

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
	apperrors "github.com/shoetrack/shoetrack-ui/internal/errors"
)

func seedAccounts(env *testEnv) {
	env.accounts.accounts = []model.Account{
		{ID: 1, Username: "root", Role: domainauth.RoleAdmin},
		{ID: 2, Username: "ana", Role: domainauth.RoleUser},
	}
}

func TestAccountsPage(t *testing.T) {
	env := newTestEnv(t)
	seedAccounts(env)
	sid := env.signIn(domainauth.RoleAdmin)

	w := env.do(t, testRequest{Target: "/accounts", Session: sid})
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, ContainsAll(body, []string{
		`hx-post="/accounts/2/role"`,
		`<option value="user" selected>`,
		`href="/accounts/2/delete"`,
	}), body)
	assert.NotContains(t, body, `href="/accounts/1/delete"`, "admins have no delete control")
	assert.Contains(t, body, `<span class="muted">`+MsgCannotDelAdmin+`</span>`)
	assert.Equal(t, 1, strings.Count(body, MsgCannotDelAdmin), "only the admin row carries the notice")
}

func TestAccountScreens_AdminOnly(t *testing.T) {
	env := newTestEnv(t)
	sid := env.signIn(domainauth.RoleProdEng)
	for _, target := range []string{"/accounts", "/accounts/new", "/backup"} {
		w := env.do(t, testRequest{Target: target, Session: sid})
		assert.Equal(t, http.StatusForbidden, w.Code, target)
	}
}

func TestNewAccountPage_ShowsNotice(t *testing.T) {
	env := newTestEnv(t)
	sid := env.signIn(domainauth.RoleAdmin)

	w := env.do(t, testRequest{Target: "/accounts/new", Session: sid})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), model.PasswordRotationNotice)
	assert.Contains(t, w.Body.String(), `<option value="user" selected>`)
}

func TestCreateAccount(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		env := newTestEnv(t)
		sid := env.signIn(domainauth.RoleAdmin)
		w := env.do(t, testRequest{
			Method:  http.MethodPost,
			Target:  "/accounts",
			Form:    url.Values{"username": {"lee"}, "password": {"pw"}, "role": {"prodeng"}},
			Session: sid,
		})
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/accounts", w.Header().Get("Location"))
		require.Len(t, env.accounts.created, 1)
		assert.Equal(t, domainauth.RoleProdEng, env.accounts.created[0].Role)
	})

	t.Run("password never echoed", func(t *testing.T) {
		env := newTestEnv(t)
		sid := env.signIn(domainauth.RoleAdmin)
		w := env.do(t, testRequest{
			Method:  http.MethodPost,
			Target:  "/accounts",
			Form:    url.Values{"username": {""}, "password": {"hunter2"}, "role": {"user"}},
			Session: sid,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Username is required.")
		assert.NotContains(t, w.Body.String(), "hunter2")
		assert.Empty(t, env.accounts.created)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		env := newTestEnv(t)
		sid := env.signIn(domainauth.RoleAdmin)
		w := env.do(t, testRequest{
			Method:  http.MethodPost,
			Target:  "/accounts",
			Form:    url.Values{"username": {"lee"}, "password": {"pw"}, "role": {"root"}},
			Session: sid,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Select a valid role.")
	})
}

func TestUpdateAccountRole(t *testing.T) {
	t.Run("success re-renders table", func(t *testing.T) {
		env := newTestEnv(t)
		seedAccounts(env)
		sid := env.signIn(domainauth.RoleAdmin)

		w := env.do(t, testRequest{
			Method:  http.MethodPost,
			Target:  "/accounts/2/role",
			Form:    url.Values{"new_role": {"prodeng"}},
			Session: sid,
			HTMX:    true,
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []model.RoleUpdate{{UserID: 2, NewRole: domainauth.RoleProdEng}}, env.accounts.updates)
		assert.Contains(t, w.Header().Get("Hx-Trigger"), "Role updated successfully")
		assert.Contains(t, w.Body.String(), `id="accounts-table"`)
	})

	t.Run("refusal reverts", func(t *testing.T) {
		env := newTestEnv(t)
		seedAccounts(env)
		env.accounts.updateErr = apperrors.Forbidden("Cannot change your own role")
		sid := env.signIn(domainauth.RoleAdmin)

		w := env.do(t, testRequest{
			Method:  http.MethodPost,
			Target:  "/accounts/1/role",
			Form:    url.Values{"new_role": {"user"}},
			Session: sid,
			HTMX:    true,
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Hx-Trigger"), "Cannot change your own role")
		assert.Contains(t, w.Body.String(), `<option value="admin" selected>`)
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Run("admin cannot be deleted", func(t *testing.T) {
		env := newTestEnv(t)
		seedAccounts(env)
		sid := env.signIn(domainauth.RoleAdmin)

		w := env.do(t, testRequest{Target: "/accounts/1/delete", Session: sid})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), MsgCannotDelAdmin)
	})

	t.Run("confirm page", func(t *testing.T) {
		env := newTestEnv(t)
		seedAccounts(env)
		sid := env.signIn(domainauth.RoleAdmin)

		w := env.do(t, testRequest{Target: "/accounts/2/delete", Session: sid})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgConfirmDelUser)
		assert.Contains(t, w.Body.String(), `action="/accounts/2/delete"`)
	})

	t.Run("declined sends nothing", func(t *testing.T) {
		env := newTestEnv(t)
		sid := env.signIn(domainauth.RoleAdmin)
		w := env.do(t, testRequest{Method: http.MethodPost, Target: "/accounts/2/delete", Form: url.Values{}, Session: sid})

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Empty(t, env.accounts.deleted)
		_, msg := flashFrom(t, w)
		assert.Equal(t, MsgDeleteCancelled, msg)
	})

	t.Run("confirmed", func(t *testing.T) {
		env := newTestEnv(t)
		sid := env.signIn(domainauth.RoleAdmin)
		w := env.do(t, testRequest{
			Method:  http.MethodPost,
			Target:  "/accounts/2/delete",
			Form:    url.Values{"confirm": {"yes"}},
			Session: sid,
		})
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/accounts", w.Header().Get("Location"))
		assert.Equal(t, []int64{2}, env.accounts.deleted)
	})
}
