package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
	apperrors "github.com/shoetrack/shoetrack-ui/internal/errors"
	"github.com/shoetrack/shoetrack-ui/internal/ports"
)

// Messages produced locally, before anything is sent upstream.
const (
	MsgPasswordsDontMatch  = "New passwords don't match!"
	MsgPasswordMustChange  = "New password must be different from the current password!"
	MsgCredentialsRequired = "Please enter both username and password."
	MsgResetFieldsRequired = "All fields are required."
	MsgLoggedOut           = "Logged out successfully."
)

const defaultSessionTTL = 8 * time.Hour

// AuthConfig tunes session lifetime.
type AuthConfig struct {
	TTL    time.Duration
	Now    func() time.Time
	Logger *slog.Logger
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Gateway  ports.AuthGateway
	Sessions ports.SessionStore
	Config   AuthConfig
}

// AuthService owns the session lifecycle: login against the record server,
// server-side session storage, logout and password reset.
type AuthService struct {
	gateway  ports.AuthGateway
	sessions ports.SessionStore
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger

	hooksMu sync.RWMutex
	hooks   []func(sessionID string)
}

// NewAuthService constructs an AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Gateway == nil {
		panic("AuthGateway is required")
	}
	if opts.Sessions == nil {
		panic("SessionStore is required")
	}
	cfg := opts.Config
	if cfg.TTL <= 0 {
		cfg.TTL = defaultSessionTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &AuthService{
		gateway:  opts.Gateway,
		sessions: opts.Sessions,
		ttl:      cfg.TTL,
		now:      cfg.Now,
		logger:   cfg.Logger,
	}
}

// OnSessionEnd registers fn to run whenever a session is ended by logout,
// found stale upstream, or found expired. fn may run more than once for an
// id and must tolerate ids it holds nothing for.
func (s *AuthService) OnSessionEnd(fn func(sessionID string)) {
	s.hooksMu.Lock()
	s.hooks = append(s.hooks, fn)
	s.hooksMu.Unlock()
}

// LoginOutcome is the result of a login attempt that reached the record server.
// Exactly one of Session or ResetRequired is set.
type LoginOutcome struct {
	Session       *domainauth.Session
	ResetRequired bool
	Username      string
	Message       string
}

// Login authenticates username and stores a session on success.
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginOutcome, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return LoginOutcome{}, apperrors.Validation(MsgCredentialsRequired)
	}

	res, err := s.gateway.Login(ctx, username, password)
	if err != nil {
		return LoginOutcome{}, err
	}
	if res.ResetRequired {
		s.logger.InfoContext(ctx, "password reset required", "username", username)
		return LoginOutcome{ResetRequired: true, Username: username, Message: res.Message}, nil
	}

	now := s.now()
	sess := domainauth.Session{
		ID:              uuid.NewString(),
		Username:        res.Username,
		Role:            res.Role,
		UpstreamCookies: res.Cookies,
		CreatedAt:       now,
		ExpiresAt:       now.Add(s.ttl),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return LoginOutcome{}, fmt.Errorf("save session: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in", "username", sess.Username, "role", sess.Role)
	return LoginOutcome{Session: &sess, Username: sess.Username, Message: res.Message}, nil
}

// GetSession returns the live session for id. Unknown and expired ids both
// yield ports.ErrSessionNotFound.
func (s *AuthService) GetSession(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	sess, err := s.lookup(ctx, id)
	if errors.Is(err, ports.ErrSessionNotFound) {
		// The store may have expired it on its own; state held for it goes too.
		s.runHooks(id)
	}
	return sess, err
}

// ReleaseEnded runs the session-end hooks for every id whose session has
// expired or is gone from the store, and returns how many that was.
func (s *AuthService) ReleaseEnded(ctx context.Context, ids []string) (int, error) {
	released := 0
	for _, id := range ids {
		_, err := s.lookup(ctx, id)
		switch {
		case err == nil:
			continue
		case errors.Is(err, ports.ErrSessionNotFound):
			s.runHooks(id)
			released++
		default:
			return released, err
		}
	}
	return released, nil
}

// lookup returns the live session for id, deleting it when it has expired.
func (s *AuthService) lookup(ctx context.Context, id string) (domainauth.Session, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return domainauth.Session{}, err
		}
		return domainauth.Session{}, fmt.Errorf("get session: %w", err)
	}
	if sess.IsExpired(s.now()) {
		if deleteErr := s.sessions.Delete(ctx, id); deleteErr != nil {
			s.logger.WarnContext(ctx, "failed to delete expired session", "error", deleteErr)
		}
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

// Logout ends the upstream session and, only once the record server has
// confirmed, the local one. An upstream 401 counts as confirmation since the
// record server no longer holds the session. Any other failure keeps the
// session so the user can retry.
func (s *AuthService) Logout(ctx context.Context, sess domainauth.Session) (string, error) {
	msg, err := s.gateway.Logout(ctx, sess.Credentials())
	if err != nil {
		if !apperrors.IsUnauthorized(err) {
			return "", err
		}
		msg = MsgLoggedOut
	}
	if msg == "" {
		msg = MsgLoggedOut
	}
	if err := s.end(ctx, sess.ID); err != nil {
		return "", err
	}
	s.logger.InfoContext(ctx, "user logged out", "username", sess.Username)
	return msg, nil
}

// Expire drops a session the record server no longer recognises.
func (s *AuthService) Expire(ctx context.Context, sessionID string) error {
	s.logger.InfoContext(ctx, "session expired upstream", "session_id", sessionID)
	return s.end(ctx, sessionID)
}

func (s *AuthService) end(ctx context.Context, id string) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.runHooks(id)
	return nil
}

func (s *AuthService) runHooks(id string) {
	s.hooksMu.RLock()
	hooks := append([]func(string){}, s.hooks...)
	s.hooksMu.RUnlock()
	for _, fn := range hooks {
		fn(id)
	}
}

// ResetPassword checks the form locally and then forwards it without a session.
func (s *AuthService) ResetPassword(ctx context.Context, req model.ResetPasswordRequest) (string, error) {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.CurrentPassword == "" || req.NewPassword == "" || req.ConfirmPassword == "" {
		return "", apperrors.Validation(MsgResetFieldsRequired)
	}
	if req.NewPassword != req.ConfirmPassword {
		return "", apperrors.ValidationField("confirm_password", MsgPasswordsDontMatch)
	}
	if req.NewPassword == req.CurrentPassword {
		return "", apperrors.ValidationField("new_password", MsgPasswordMustChange)
	}
	msg, err := s.gateway.ResetPassword(ctx, req)
	if err != nil {
		return "", err
	}
	s.logger.InfoContext(ctx, "password reset", "username", req.Username)
	return msg, nil
}
