package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csrfTestHandler() http.Handler {
	return CSRFProtection(CSRFConfig{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(GetCSRFToken(r)))
	}))
}

func TestCSRFProtection_GetIssuesToken(t *testing.T) {
	w := httptest.NewRecorder()
	csrfTestHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))

	require.Equal(t, http.StatusOK, w.Code)
	c := responseCookie(w, DefaultCSRFCookieName)
	require.NotNil(t, c)
	assert.NotEmpty(t, c.Value)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.Equal(t, c.Value, w.Body.String(), "templates see the cookie token")
}

func TestCSRFProtection_ExistingCookieReused(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "existing"})
	w := httptest.NewRecorder()
	csrfTestHandler().ServeHTTP(w, r)
	assert.Nil(t, responseCookie(w, DefaultCSRFCookieName))
	assert.Equal(t, "existing", w.Body.String())
}

func TestCSRFProtection_UnsafeMethods(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		header string
		form   string
		want   int
	}{
		{name: "no cookie", header: "tok", want: http.StatusForbidden},
		{name: "no token", cookie: "tok", want: http.StatusForbidden},
		{name: "header mismatch", cookie: "tok", header: "other", want: http.StatusForbidden},
		{name: "header match", cookie: "tok", header: "tok", want: http.StatusOK},
		{name: "form match", cookie: "tok", form: "tok", want: http.StatusOK},
		{name: "form mismatch", cookie: "tok", form: "nope", want: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := url.Values{"serial_number": {"SN-1"}}
			if tt.form != "" {
				body.Set(CSRFFormField, tt.form)
			}
			r := httptest.NewRequest(http.MethodPost, "/shoes", strings.NewReader(body.Encode()))
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				r.Header.Set(DefaultCSRFHeaderName, tt.header)
			}
			w := httptest.NewRecorder()
			csrfTestHandler().ServeHTTP(w, r)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestCSRFProtection_CustomFailureHandler(t *testing.T) {
	h := CSRFProtection(CSRFConfig{
		OnFailure: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}),
	})(okHandler())
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/x", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestCSRFProtection_SecureBehindTLSProxy(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-Proto", "https")
	w := httptest.NewRecorder()
	csrfTestHandler().ServeHTTP(w, r)
	c := responseCookie(w, DefaultCSRFCookieName)
	require.NotNil(t, c)
	assert.True(t, c.Secure)
}
