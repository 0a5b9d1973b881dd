package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shoetrack/shoetrack-ui/internal/chart"
	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
	apperrors "github.com/shoetrack/shoetrack-ui/internal/errors"
	"github.com/shoetrack/shoetrack-ui/internal/ports"
	"github.com/shoetrack/shoetrack-ui/internal/service"
)

const (
	staticPathFromTest = "../../frontend/static"
	testCSRFToken      = "test-csrf-token"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// RequireTemplateRenderer creates a TemplateRenderer for tests, skipping the test if templates are not available.
func RequireTemplateRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TemplatePathFromTest),
		Logger:     discardLogger(),
	})
	if err != nil {
		t.Skipf("Templates not available, skipping: %v", err)
		return nil
	}
	return tr
}

// fakeAuth keeps sessions in a map and answers logins from loginFn.
type fakeAuth struct {
	mu        sync.Mutex
	sessions  map[string]domainauth.Session
	loginFn   func(username, password string) (service.LoginOutcome, error)
	logoutErr error
	resetFn   func(req model.ResetPasswordRequest) (string, error)
	expired   []string
	loggedOut []string
}

func newFakeAuth() *fakeAuth {
	return &fakeAuth{sessions: map[string]domainauth.Session{}}
}

func (f *fakeAuth) add(sess domainauth.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[sess.ID] = sess
}

func (f *fakeAuth) has(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.sessions[id]
	return ok
}

func (f *fakeAuth) GetSession(_ context.Context, id string) (domainauth.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sess, ok := f.sessions[id]
	if !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (f *fakeAuth) Login(_ context.Context, username, password string) (service.LoginOutcome, error) {
	if f.loginFn == nil {
		return service.LoginOutcome{}, apperrors.Unauthorized("Invalid username or password")
	}
	out, err := f.loginFn(username, password)
	if err == nil && out.Session != nil {
		f.add(*out.Session)
	}
	return out, err
}

func (f *fakeAuth) Logout(_ context.Context, sess domainauth.Session) (string, error) {
	if f.logoutErr != nil {
		return "", f.logoutErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, sess.ID)
	f.loggedOut = append(f.loggedOut, sess.ID)
	return "Logged out successfully", nil
}

func (f *fakeAuth) Expire(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, id)
	f.expired = append(f.expired, id)
	return nil
}

func (f *fakeAuth) ResetPassword(_ context.Context, req model.ResetPasswordRequest) (string, error) {
	if f.resetFn == nil {
		return "Password reset successfully", nil
	}
	return f.resetFn(req)
}

type fakeShoes struct {
	models   map[string]model.ShoeModel
	created  []model.ShoeEntry
	createFn func(model.ShoeEntry) (string, error)
	rows     []model.ShoeRecord
	listErr  error
	searchFn func(q model.ShoeQuery, immediate bool) ([]model.ShoeRecord, error)
	queries  []model.ShoeQuery
	forgot   []string
}

func (f *fakeShoes) ModelDetails(_ context.Context, _ domainauth.Credentials, name string) (model.ShoeModel, error) {
	m, ok := f.models[name]
	if !ok {
		return model.ShoeModel{}, apperrors.NotFound("Model not found")
	}
	return m, nil
}

func (f *fakeShoes) Create(_ context.Context, _ domainauth.Credentials, entry model.ShoeEntry) (string, error) {
	if f.createFn != nil {
		return f.createFn(entry)
	}
	f.created = append(f.created, entry)
	return "Shoe entry added successfully", nil
}

func (f *fakeShoes) List(_ context.Context, _ domainauth.Credentials, q model.ShoeQuery) ([]model.ShoeRecord, error) {
	f.queries = append(f.queries, q)
	return f.rows, f.listErr
}

func (f *fakeShoes) Search(
	_ context.Context,
	_ string,
	_ domainauth.Credentials,
	q model.ShoeQuery,
	immediate bool,
) ([]model.ShoeRecord, error) {
	f.queries = append(f.queries, q)
	if f.searchFn != nil {
		return f.searchFn(q, immediate)
	}
	return f.rows, nil
}

func (f *fakeShoes) Forget(sessionID string) { f.forgot = append(f.forgot, sessionID) }

type fakeCatalog struct {
	models []model.ShoeModel
	err    error
}

func (f *fakeCatalog) Models(context.Context, domainauth.Credentials) ([]model.ShoeModel, error) {
	return f.models, f.err
}

type fakeModels struct {
	listing    service.ModelListing
	listErr    error
	updateFn   func(id int64, fields model.ShoeModelFields) (string, error)
	created    []model.ShoeModelFields
	deleted    []int64
	deleteCall int
}

func (f *fakeModels) Listing(context.Context, domainauth.Credentials) (service.ModelListing, error) {
	return f.listing, f.listErr
}

func (f *fakeModels) Get(_ context.Context, _ domainauth.Credentials, id int64) (model.ShoeModel, error) {
	if m, ok := model.FindModel(f.listing.Models, id); ok {
		return m, nil
	}
	return model.ShoeModel{}, apperrors.NotFound("Model not found")
}

func (f *fakeModels) Create(_ context.Context, _ domainauth.Credentials, fields model.ShoeModelFields) (string, error) {
	f.created = append(f.created, fields)
	return "Shoe model added successfully", nil
}

func (f *fakeModels) Update(
	_ context.Context,
	_ domainauth.Credentials,
	id int64,
	fields model.ShoeModelFields,
) (string, error) {
	if f.updateFn != nil {
		return f.updateFn(id, fields)
	}
	return "Shoe model updated successfully", nil
}

func (f *fakeModels) Delete(_ context.Context, _ domainauth.Credentials, id int64, confirmed bool) (string, error) {
	f.deleteCall++
	if !confirmed {
		return "", service.ErrNotConfirmed
	}
	f.deleted = append(f.deleted, id)
	return "Shoe model deleted successfully", nil
}

type fakeAccounts struct {
	accounts  []model.Account
	listErr   error
	created   []model.CreateAccountRequest
	updateErr error
	updates   []model.RoleUpdate
	deleted   []int64
}

func (f *fakeAccounts) List(context.Context, domainauth.Credentials) ([]model.Account, error) {
	return f.accounts, f.listErr
}

func (f *fakeAccounts) Create(_ context.Context, _ domainauth.Credentials, req model.CreateAccountRequest) (string, error) {
	f.created = append(f.created, req)
	return "Account created successfully", nil
}

func (f *fakeAccounts) UpdateRole(_ context.Context, _ domainauth.Credentials, update model.RoleUpdate) (string, error) {
	if f.updateErr != nil {
		return "", f.updateErr
	}
	f.updates = append(f.updates, update)
	for i := range f.accounts {
		if f.accounts[i].ID == update.UserID {
			f.accounts[i].Role = update.NewRole
		}
	}
	return "Role updated successfully", nil
}

func (f *fakeAccounts) Delete(_ context.Context, _ domainauth.Credentials, id int64, confirmed bool) (string, error) {
	if !confirmed {
		return "", service.ErrNotConfirmed
	}
	f.deleted = append(f.deleted, id)
	return "User deleted successfully", nil
}

type fakeCharts struct {
	summary  model.ProductionSummary
	current  map[string]*chart.Handle
	updateFn func(filter model.ChartFilter) (*chart.Handle, error)
}

func (f *fakeCharts) Options(context.Context, domainauth.Credentials) (model.ProductionSummary, error) {
	return f.summary, nil
}

func (f *fakeCharts) Update(
	_ context.Context,
	sessionID string,
	_ domainauth.Credentials,
	filter model.ChartFilter,
) (*chart.Handle, error) {
	filter.Normalize()
	if f.updateFn == nil {
		return nil, chart.ErrNoData
	}
	h, err := f.updateFn(filter)
	if err != nil {
		return nil, err
	}
	if f.current == nil {
		f.current = map[string]*chart.Handle{}
	}
	f.current[sessionID] = h
	return h, nil
}

func (f *fakeCharts) Current(sessionID string) (*chart.Handle, bool) {
	h, ok := f.current[sessionID]
	return h, ok
}

type fakeBackup struct {
	result    model.BackupResult
	runErr    error
	confirmed []bool
}

func (f *fakeBackup) Run(context.Context, domainauth.Credentials) (model.BackupResult, error) {
	return f.result, f.runErr
}

func (f *fakeBackup) Confirm(_ context.Context, _ domainauth.Credentials, confirmed bool) (string, error) {
	f.confirmed = append(f.confirmed, confirmed)
	if !confirmed {
		return model.BackupCancelledMessage, nil
	}
	return "Backup completed successfully", nil
}

// testEnv is a full router over fake services.
type testEnv struct {
	handler  http.Handler
	auth     *fakeAuth
	shoes    *fakeShoes
	catalog  *fakeCatalog
	models   *fakeModels
	accounts *fakeAccounts
	charts   *fakeCharts
	backup   *fakeBackup
}

func newTestEnv(t *testing.T, opts ...func(*RouterServices)) *testEnv {
	t.Helper()
	if _, err := os.Stat(TemplatePathFromTest); os.IsNotExist(err) {
		t.Skip("Templates not available, skipping integration test")
	}
	env := &testEnv{
		auth:     newFakeAuth(),
		shoes:    &fakeShoes{models: map[string]model.ShoeModel{}},
		catalog:  &fakeCatalog{},
		models:   &fakeModels{},
		accounts: &fakeAccounts{},
		charts:   &fakeCharts{},
		backup:   &fakeBackup{},
	}
	services := RouterServices{
		Auth:       env.auth,
		Shoes:      env.shoes,
		Catalog:    env.catalog,
		Models:     env.models,
		Accounts:   env.accounts,
		Charts:     env.charts,
		Backup:     env.backup,
		TemplateFS: os.DirFS(TemplatePathFromTest),
		StaticFS:   os.DirFS(staticPathFromTest),
		Logger:     discardLogger(),
	}
	for _, opt := range opts {
		opt(&services)
	}
	h, err := NewRouter(services)
	require.NoError(t, err)
	env.handler = h
	return env
}

// signIn stores a session for role and returns its id.
func (e *testEnv) signIn(role domainauth.Role) string {
	id := "sess-" + string(role)
	e.auth.add(domainauth.Session{
		ID:        id,
		Username:  string(role) + "-user",
		Role:      role,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	})
	return id
}

// testRequest describes one browser request against the router.
type testRequest struct {
	Method  string
	Target  string
	Form    url.Values
	Session string
	HTMX    bool
	NoCSRF  bool
	Cookies []*http.Cookie
}

func (e *testEnv) do(t *testing.T, tr testRequest) *httptest.ResponseRecorder {
	t.Helper()
	if tr.Method == "" {
		tr.Method = http.MethodGet
	}
	var body io.Reader
	if tr.Form != nil {
		body = strings.NewReader(tr.Form.Encode())
	}
	r := httptest.NewRequest(tr.Method, tr.Target, body)
	if tr.Form != nil {
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if !tr.NoCSRF {
		r.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
		r.Header.Set(DefaultCSRFHeaderName, testCSRFToken)
	}
	if tr.Session != "" {
		r.AddCookie(&http.Cookie{Name: DefaultSessionCookieName, Value: tr.Session})
	}
	for _, c := range tr.Cookies {
		r.AddCookie(c)
	}
	if tr.HTMX {
		r.Header.Set("Hx-Request", "true")
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, r)
	return w
}

// responseCookie returns the named Set-Cookie from w, if any.
func responseCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// flashFrom decodes the flash cookie set on w.
func flashFrom(t *testing.T, w *httptest.ResponseRecorder) (kind, message string) {
	t.Helper()
	c := responseCookie(w, flashCookieName)
	require.NotNil(t, c, "expected a flash cookie")
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(c)
	kind, message, ok := popFlash(httptest.NewRecorder(), r)
	require.True(t, ok, "flash cookie did not decode")
	return kind, message
}

// ContainsAll checks if a string contains all the given substrings.
func ContainsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
