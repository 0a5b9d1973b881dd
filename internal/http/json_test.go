package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/shoetrack/shoetrack-ui/internal/errors"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"unavailable"}`, w.Body.String())
}

func TestWriteJSON_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusOK, map[string]any{"bad": make(chan int)})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperrors.Validation("bad"), http.StatusUnprocessableEntity},
		{apperrors.NotFound("gone"), http.StatusNotFound},
		{apperrors.Unauthorized("stale"), http.StatusUnauthorized},
		{apperrors.Forbidden("no"), http.StatusForbidden},
		{apperrors.Unavailable("down"), http.StatusBadGateway},
		{&apperrors.AppError{Code: apperrors.ErrCodeTimeout, Message: "slow"}, http.StatusGatewayTimeout},
		{fmt.Errorf("wrapped: %w", apperrors.NotFound("gone")), http.StatusNotFound},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForError(tt.err))
		})
	}
}

func TestUserMessage(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
	assert.Equal(t, "Model name already exists",
		UserMessage(apperrors.Wrap(context.DeadlineExceeded, apperrors.ErrCodeValidation, "Model name already exists")))
	assert.Equal(t, apperrors.GenericFailureMessage, UserMessage(errors.New("dial tcp: refused")))
}
