package httpx

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
	apperrors "github.com/shoetrack/shoetrack-ui/internal/errors"
	"github.com/shoetrack/shoetrack-ui/internal/service"
	"github.com/shoetrack/shoetrack-ui/internal/testutil"
)

func validModelForm() url.Values {
	return url.Values{
		"model_name":   {"Pegasus 41"},
		"brand":        {"Nike"},
		"category":     {"Running"},
		"gender":       {"Unisex"},
		"material":     {"Knit"},
		"sole_type":    {"EVA"},
		"closure_type": {"Lace-up"},
		"color":        {"Black"},
		"weight_grams": {"280"},
		"price":        {"129.99"},
		"release_date": {"2024-06-01"},
	}
}

func TestModelsPage(t *testing.T) {
	env := newTestEnv(t)
	env.models.listing = service.ModelListing{
		Models: []model.ShoeModel{testutil.NewShoeModel().WithPrice(89.9).Build(7)},
		Users:  []model.Account{{ID: 1}, {ID: 2}},
		Summary: model.ProductionSummary{
			Operators: []string{"ana"},
		},
	}
	sid := env.signIn(domainauth.RoleProdEng)

	w := env.do(t, testRequest{Target: "/models", Session: sid})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, ContainsAll(w.Body.String(), []string{
		"Pegasus 41",
		"89.90",
		"2 users, 1 operators",
		`href="/models/7/edit"`,
		`href="/models/7/delete"`,
	}))
}

func TestModelsPage_FailureShowsError(t *testing.T) {
	env := newTestEnv(t)
	env.models.listErr = apperrors.Unavailable("Record server unavailable")
	sid := env.signIn(domainauth.RoleAdmin)

	w := env.do(t, testRequest{Target: "/models", Session: sid})
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Record server unavailable")
	assert.Contains(t, body, "No shoe models yet.")
}

func TestModelScreens_ForbiddenForUsers(t *testing.T) {
	env := newTestEnv(t)
	sid := env.signIn(domainauth.RoleUser)

	for _, target := range []string{"/models", "/models/new", "/models/1/edit", "/charts"} {
		w := env.do(t, testRequest{Target: target, Session: sid})
		assert.Equal(t, http.StatusForbidden, w.Code, target)
	}
}

func TestCreateModel(t *testing.T) {
	t.Run("valid form goes to main menu", func(t *testing.T) {
		env := newTestEnv(t)
		sid := env.signIn(domainauth.RoleProdEng)
		w := env.do(t, testRequest{Method: http.MethodPost, Target: "/models", Form: validModelForm(), Session: sid})

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		require.Len(t, env.models.created, 1)
		assert.Equal(t, model.Number(129.99), env.models.created[0].Price)
		assert.Equal(t, model.Number(280), env.models.created[0].WeightGrams)
	})

	t.Run("invalid values stay on the form", func(t *testing.T) {
		env := newTestEnv(t)
		sid := env.signIn(domainauth.RoleProdEng)
		form := validModelForm()
		form.Set("brand", "Acme")
		form.Set("weight_grams", "0")
		form.Set("price", "-1")
		form.Set("release_date", "06/01/2024")

		w := env.do(t, testRequest{Method: http.MethodPost, Target: "/models", Form: form, Session: sid})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Empty(t, env.models.created)
		assert.True(t, ContainsAll(w.Body.String(), []string{
			"Select a valid brand.",
			"Weight must be a number greater than 0.",
			"Price must be a number of 0 or more.",
			"Release date must be a date in YYYY-MM-DD format.",
			`value="Pegasus 41"`,
		}))
	})
}

func TestEditModelPage_PrefillsForm(t *testing.T) {
	env := newTestEnv(t)
	env.models.listing.Models = []model.ShoeModel{testutil.NewShoeModel().WithColor("Red").Build(3)}
	sid := env.signIn(domainauth.RoleProdEng)

	w := env.do(t, testRequest{Target: "/models/3/edit", Session: sid})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, ContainsAll(w.Body.String(), []string{
		`action="/models/3"`,
		`<option value="Red" selected>`,
		`value="129.99"`,
		`value="2024-06-01"`,
		"Save Changes",
	}))
}

func TestEditModelPage_UnknownID(t *testing.T) {
	env := newTestEnv(t)
	sid := env.signIn(domainauth.RoleProdEng)

	w := env.do(t, testRequest{Target: "/models/99/edit", Session: sid})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, testRequest{Target: "/models/abc/edit", Session: sid})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateModel_ReturnsToList(t *testing.T) {
	env := newTestEnv(t)
	var gotID int64
	env.models.updateFn = func(id int64, _ model.ShoeModelFields) (string, error) {
		gotID = id
		return "Shoe model updated successfully", nil
	}
	sid := env.signIn(domainauth.RoleAdmin)

	w := env.do(t, testRequest{Method: http.MethodPost, Target: "/models/3", Form: validModelForm(), Session: sid})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/models", w.Header().Get("Location"))
	assert.Equal(t, int64(3), gotID)
}

func TestDeleteModel(t *testing.T) {
	t.Run("confirm page asks first", func(t *testing.T) {
		env := newTestEnv(t)
		env.models.listing.Models = []model.ShoeModel{testutil.NewShoeModel().Build(4)}
		sid := env.signIn(domainauth.RoleProdEng)

		w := env.do(t, testRequest{Target: "/models/4/delete", Session: sid})
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, ContainsAll(w.Body.String(), []string{
			MsgConfirmDelModel,
			`action="/models/4/delete"`,
			`name="confirm" value="yes"`,
			`name="confirm" value="no"`,
		}))
		assert.Zero(t, env.models.deleteCall)
	})

	t.Run("declined sends nothing", func(t *testing.T) {
		env := newTestEnv(t)
		sid := env.signIn(domainauth.RoleProdEng)

		w := env.do(t, testRequest{
			Method:  http.MethodPost,
			Target:  "/models/4/delete",
			Form:    url.Values{"confirm": {"no"}},
			Session: sid,
		})
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/models", w.Header().Get("Location"))
		assert.Empty(t, env.models.deleted)
		kind, msg := flashFrom(t, w)
		assert.Equal(t, FlashInfo, kind)
		assert.Equal(t, MsgDeleteCancelled, msg)
	})

	t.Run("confirmed deletes", func(t *testing.T) {
		env := newTestEnv(t)
		sid := env.signIn(domainauth.RoleProdEng)

		w := env.do(t, testRequest{
			Method:  http.MethodPost,
			Target:  "/models/4/delete",
			Form:    url.Values{"confirm": {"yes"}},
			Session: sid,
		})
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, []int64{4}, env.models.deleted)
		_, msg := flashFrom(t, w)
		assert.Equal(t, "Shoe model deleted successfully", msg)
	})
}
