package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/observability/metrics"
	"github.com/shoetrack/shoetrack-ui/internal/ports"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-Id"

// LoggingOptions configures the Logging middleware.
type LoggingOptions struct {
	Logger  *slog.Logger
	Metrics metrics.Sink
}

// Logging returns a middleware that assigns a request id, logs each request
// once it completes, and records it with the metrics sink under its route.
func Logging(opts LoggingOptions) func(http.Handler) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sink := opts.Metrics
	if sink == nil {
		sink = metrics.Noop{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > 64 {
				id = uuid.NewString()
			}
			info := &requestInfo{ID: id}
			w.Header().Set(RequestIDHeader, id)

			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r.WithContext(withRequestInfo(r.Context(), info)))

			elapsed := time.Since(start)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", elapsed),
				slog.String("request_id", id),
			)
			sink.HTTPRequest(info.Route, ww.status, elapsed)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *respWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// tagRoute records the matched pattern so Logging can label metrics with it.
func tagRoute(pattern string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if info := requestInfoFrom(r.Context()); info != nil {
			info.Route = pattern
		}
		next.ServeHTTP(w, r)
	})
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler { //nolint:errorlint // sentinel compared as panic value
						panic(err)
					}
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("request_id", RequestID(r.Context())),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// SessionReader is the part of the auth service the session middleware needs.
type SessionReader interface {
	GetSession(ctx context.Context, id string) (domainauth.Session, error)
}

// SessionOptions configures LoadSession.
type SessionOptions struct {
	Sessions   SessionReader
	CookieName string
	Logger     *slog.Logger
}

// LoadSession attaches the caller's session, if any, to the request context.
// A cookie naming an unknown or expired session is cleared.
func LoadSession(opts SessionOptions) func(http.Handler) http.Handler {
	if opts.Sessions == nil {
		panic("SessionReader is required")
	}
	if opts.CookieName == "" {
		opts.CookieName = DefaultSessionCookieName
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(opts.CookieName)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}
			sess, err := opts.Sessions.GetSession(r.Context(), c.Value)
			switch {
			case err == nil:
				r = r.WithContext(SetSessionInContext(r.Context(), &sess))
			case errors.Is(err, ports.ErrSessionNotFound):
				clearCookie(w, opts.CookieName)
			default:
				opts.Logger.WarnContext(r.Context(), "session lookup failed", "error", err)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession sends callers without a session to the login page.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetSessionFromContext(r.Context()) == nil {
			redirect(w, r, "/login")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAction rejects sessions whose role is not offered action. The
// session must already be in context.
func RequireAction(action domainauth.Action, denied http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := GetSessionFromContext(r.Context())
			if sess == nil {
				redirect(w, r, "/login")
				return
			}
			if !domainauth.Can(sess.Role, action) {
				denied.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
