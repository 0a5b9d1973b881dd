package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"fmt"
	"strings"
	"time"
)

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleUser    Role = "user"
	RoleProdEng Role = "prodeng"
	RoleAdmin   Role = "admin"
)

// Roles lists every assignable role in ascending order of privilege.
func Roles() []Role { return []Role{RoleUser, RoleProdEng, RoleAdmin} }

// ParseRole normalises s and reports an error for unknown roles.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleUser, RoleProdEng, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Label is the human-readable role name shown in account screens.
func (r Role) Label() string {
	switch r {
	case RoleUser:
		return "User"
	case RoleProdEng:
		return "Product Engineer"
	case RoleAdmin:
		return "Admin"
	default:
		return string(r)
	}
}

// UpstreamCookie is a cookie issued by the record server at login and
// replayed on every call made on behalf of the session.
type UpstreamCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Path    string    `json:"path,omitempty"`
	Domain  string    `json:"domain,omitempty"`
	Expires time.Time `json:"expires,omitempty"`
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier handed to the browser as a cookie.
type Session struct {
	ID              string           `json:"id"`
	Username        string           `json:"username"`
	Role            Role             `json:"role"`
	UpstreamCookies []UpstreamCookie `json:"upstream_cookies,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	ExpiresAt       time.Time        `json:"expires_at"`
}

// IsExpired reports whether the session is past its expiry at now.
// A zero ExpiresAt never expires.
func (s Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// IsAdmin returns true if the session role is admin.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// Credentials authenticate calls to the record server on a user's behalf.
type Credentials struct {
	Cookies []UpstreamCookie
}

// Credentials returns the upstream credentials held by the session.
func (s Session) Credentials() Credentials {
	return Credentials{Cookies: s.UpstreamCookies}
}

// LoginResult is the record server's answer to a login attempt that did not
// fail outright. Exactly one of ResetRequired or a populated Username holds.
type LoginResult struct {
	Username      string
	Role          Role
	ResetRequired bool
	Message       string
	Cookies       []UpstreamCookie
}
