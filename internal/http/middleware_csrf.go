package httpx

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
)

// CSRF defaults.
const (
	DefaultCSRFCookieName = "shoetrack_csrf"
	DefaultCSRFHeaderName = "X-Csrf-Token"
	CSRFFormField         = "csrf_token"

	csrfTokenBytes = 32
	csrfMaxAge     = 12 * 60 * 60
)

// CSRFConfig configures CSRFProtection.
type CSRFConfig struct {
	Cookie     CookieOptions
	HeaderName string
	OnFailure  http.Handler
}

type csrfTokenKey struct{}

// CSRFProtection guards state-changing requests with a double-submit cookie.
// The layout renders the token into hx-headers on <body> so every htmx
// request carries the header; plain forms post it as csrf_token.
func CSRFProtection(cfg CSRFConfig) func(http.Handler) http.Handler {
	if cfg.Cookie.Name == "" {
		cfg.Cookie.Name = DefaultCSRFCookieName
	}
	if cfg.HeaderName == "" {
		cfg.HeaderName = DefaultCSRFHeaderName
	}
	if cfg.OnFailure == nil {
		cfg.OnFailure = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "CSRF token validation failed", http.StatusForbidden)
		})
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if c, err := r.Cookie(cfg.Cookie.Name); err == nil {
				token = c.Value
			}
			fresh := token == ""
			if fresh {
				var err error
				if token, err = newCSRFToken(); err != nil {
					http.Error(w, "unable to generate CSRF token", http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.Cookie.Name,
					Value:    token,
					Path:     "/",
					Domain:   cfg.Cookie.Domain,
					MaxAge:   csrfMaxAge,
					HttpOnly: true,
					Secure:   cfg.Cookie.secureFor(r),
					SameSite: http.SameSiteStrictMode,
				})
			}

			r = r.WithContext(context.WithValue(r.Context(), csrfTokenKey{}, token))
			if isUnsafeMethod(r.Method) && (fresh || !csrfMatches(r, token, cfg.HeaderName)) {
				cfg.OnFailure.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isUnsafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return false
	default:
		return true
	}
}

// newCSRFToken fails closed when the system random source is unavailable.
func newCSRFToken() (string, error) {
	b := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("csrf token generation failed: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// csrfMatches compares the submitted token, header first, in constant time.
func csrfMatches(r *http.Request, want, header string) bool {
	got := r.Header.Get(header)
	if got == "" {
		ct := r.Header.Get("Content-Type")
		if strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data") {
			if err := r.ParseForm(); err != nil {
				return false
			}
			got = r.PostFormValue(CSRFFormField)
		}
	}
	if got == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

// GetCSRFToken returns the token for the current request, for templates.
func GetCSRFToken(r *http.Request) string {
	if token, ok := r.Context().Value(csrfTokenKey{}).(string); ok {
		return token
	}
	return ""
}
