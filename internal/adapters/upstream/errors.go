package upstream

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/shoetrack/shoetrack-ui/internal/errors"
)

// SessionExpiredMessage is shown when the record server no longer knows the session.
const SessionExpiredMessage = "Your session has expired. Please log in again."

// APIError is a refusal reported by the record server. Message is the
// server's own text and is meant to be shown to the user verbatim.
type APIError struct {
	Status   int
	Message  string
	Endpoint string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("record server %s: %d %s", e.Endpoint, e.Status, e.Message)
}

// envelope is the {success, message} shape most endpoints answer with.
// Some error paths use "error" instead of "message".
type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e envelope) text() string {
	if m := strings.TrimSpace(e.Message); m != "" {
		return m
	}
	return strings.TrimSpace(e.Error)
}

// newAPIError classifies a server refusal by status, keeping the message.
// A 5xx without a readable message is treated like a transport failure.
func newAPIError(status int, message, endpoint string) error {
	code := apperrors.ErrCodeValidation
	switch status {
	case http.StatusUnauthorized:
		code = apperrors.ErrCodeUnauthorized
	case http.StatusForbidden:
		code = apperrors.ErrCodeForbidden
	case http.StatusNotFound:
		code = apperrors.ErrCodeNotFound
	default:
		if status >= http.StatusInternalServerError && message == "" {
			code = apperrors.ErrCodeUnavailable
		}
	}
	if message == "" {
		message = fallbackMessage(status)
	}
	apiErr := &APIError{Status: status, Message: message, Endpoint: endpoint}
	return &apperrors.AppError{Code: code, Message: message, Cause: apiErr}
}

func fallbackMessage(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return SessionExpiredMessage
	case status == http.StatusForbidden:
		return "You do not have permission to perform this action."
	case status == http.StatusNotFound:
		return "The requested record was not found."
	default:
		return apperrors.GenericFailureMessage
	}
}

// err returns nil for 2xx and a classified APIError otherwise. A body that
// is not JSON (Flask's HTML error pages) falls back to a status message.
func (r *response) err() error {
	if r.ok() {
		return nil
	}
	var env envelope
	_ = json.Unmarshal(r.body, &env)
	return newAPIError(r.status, env.text(), r.name)
}
