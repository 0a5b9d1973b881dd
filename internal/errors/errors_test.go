package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err:  &AppError{Code: ErrCodeNotFound, Message: "shoe model not found"},
			want: "shoe model not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeUnavailable,
				Message: "record server unreachable",
				Cause:   errors.New("connection refused"),
			},
			want: "record server unreachable: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &AppError{Code: ErrCodeInternal, Message: "wrapped error", Cause: cause}

	if unwrapped := err.Unwrap(); !errors.Is(unwrapped, cause) {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
		msg  string
	}{
		{"not found", NotFound("missing"), ErrCodeNotFound, "missing"},
		{"not found formatted", NotFoundf("model %d not found", 7), ErrCodeNotFound, "model 7 not found"},
		{"validation", Validation("bad"), ErrCodeValidation, "bad"},
		{"validation formatted", Validationf("field %s", "size"), ErrCodeValidation, "field size"},
		{"unauthorized", Unauthorized("login"), ErrCodeUnauthorized, "login"},
		{"forbidden", Forbidden("nope"), ErrCodeForbidden, "nope"},
		{"unavailable", Unavailable("down"), ErrCodeUnavailable, "down"},
		{"internal", Internal("boom"), ErrCodeInternal, "boom"},
		{"internal formatted", Internalf("boom %d", 2), ErrCodeInternal, "boom 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %v, want %v", tt.err.Code, tt.code)
			}
			if tt.err.Message != tt.msg {
				t.Errorf("Message = %q, want %q", tt.err.Message, tt.msg)
			}
		})
	}
}

func TestValidationField(t *testing.T) {
	err := ValidationField("serial_number", "Serial number is required")
	if err.Field != "serial_number" {
		t.Errorf("Field = %q", err.Field)
	}
	if GetField(err) != "serial_number" {
		t.Errorf("GetField() = %q", GetField(err))
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("eof")
	err := Wrapf(cause, ErrCodeUnavailable, "decode %s", "users")
	if err.Code != ErrCodeUnavailable || err.Message != "decode users" {
		t.Fatalf("unexpected wrap result: %+v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped error should match its cause")
	}
}

func TestWrap_NilError(t *testing.T) {
	if err := Wrap(nil, ErrCodeInternal, "nothing"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestIsHelpers(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", Unauthorized("session expired"))

	if !IsUnauthorized(wrapped) {
		t.Error("IsUnauthorized should see through fmt.Errorf wrapping")
	}
	if IsValidation(wrapped) || IsNotFound(wrapped) || IsForbidden(wrapped) {
		t.Error("unexpected code match")
	}
	if !IsUnavailable(Unavailable("x")) || !IsInternal(Internal("x")) {
		t.Error("code helpers disagree with constructors")
	}
	if IsNotFound(errors.New("plain")) {
		t.Error("plain errors have no code")
	}
}

func TestGetCodeAndMessage(t *testing.T) {
	err := fmt.Errorf("outer: %w", Wrap(errors.New("inner"), ErrCodeValidation, "Serial number already exists"))
	if GetCode(err) != ErrCodeValidation {
		t.Errorf("GetCode() = %v", GetCode(err))
	}
	if GetMessage(err) != "Serial number already exists" {
		t.Errorf("GetMessage() = %q", GetMessage(err))
	}
	if GetCode(errors.New("plain")) != "" || GetMessage(errors.New("plain")) != "" {
		t.Error("plain errors should yield empty code and message")
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

var _ net.Error = timeoutErr{}

func TestMapTransportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"deadline", fmt.Errorf("get: %w", context.DeadlineExceeded), ErrCodeTimeout},
		{"canceled", context.Canceled, ErrCodeCanceled},
		{"net timeout", timeoutErr{}, ErrCodeTimeout},
		{"dial", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, ErrCodeUnavailable},
		{"unknown", errors.New("unexpected EOF"), ErrCodeUnavailable},
		{"app error kept", NotFound("gone"), ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(MapTransportError(tt.err)); got != tt.want {
				t.Fatalf("code = %v, want %v", got, tt.want)
			}
		})
	}

	if MapTransportError(nil) != nil {
		t.Error("nil should map to nil")
	}
	if GetMessage(MapTransportError(errors.New("x"))) != GenericFailureMessage {
		t.Error("unavailable errors should carry the generic message")
	}
}
