package httpx

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultSessionCookieName is used when no cookie name is configured.
const DefaultSessionCookieName = "shoetrack_session"

const flashCookieName = "shoetrack_flash"

// CookieOptions holds the attributes shared by the cookies this service sets.
type CookieOptions struct {
	Name   string
	Domain string
	Secure bool
}

func (o CookieOptions) secureFor(r *http.Request) bool {
	return o.Secure || r.TLS != nil || isForwardedHTTPS(r)
}

// setSessionCookie issues the opaque session id cookie.
func setSessionCookie(w http.ResponseWriter, r *http.Request, opts CookieOptions, id string, expires time.Time) {
	name := opts.Name
	if name == "" {
		name = DefaultSessionCookieName
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    id,
		Path:     "/",
		Domain:   opts.Domain,
		Expires:  expires,
		HttpOnly: true,
		Secure:   opts.secureFor(r),
		SameSite: http.SameSiteLaxMode,
	})
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// isForwardedHTTPS checks if the request was forwarded over HTTPS.
// Handles comma-separated values in X-Forwarded-Proto header.
func isForwardedHTTPS(r *http.Request) bool {
	for _, proto := range strings.Split(r.Header.Get("X-Forwarded-Proto"), ",") {
		if strings.EqualFold(strings.TrimSpace(proto), "https") {
			return true
		}
	}
	return false
}

// Flash kinds.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// setFlash stores a one-shot message shown by the next full page render.
func setFlash(w http.ResponseWriter, kind, message string) {
	if strings.TrimSpace(message) == "" {
		return
	}
	v := url.Values{}
	v.Set("k", kind)
	v.Set("m", message)
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(v.Encode()),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads and clears the pending flash message.
func popFlash(w http.ResponseWriter, r *http.Request) (kind, message string, ok bool) {
	c, err := r.Cookie(flashCookieName)
	if err != nil || c.Value == "" {
		return "", "", false
	}
	clearCookie(w, flashCookieName)
	raw, err := url.QueryUnescape(c.Value)
	if err != nil {
		return "", "", false
	}
	v, err := url.ParseQuery(raw)
	if err != nil || v.Get("m") == "" {
		return "", "", false
	}
	return v.Get("k"), v.Get("m"), true
}
