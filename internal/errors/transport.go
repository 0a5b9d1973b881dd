package errors

import (
	"context"
	"errors"
	"net"
)

// GenericFailureMessage is shown when the record server cannot be reached.
const GenericFailureMessage = "An error occurred. Please try again."

// MapTransportError maps failures from an outbound HTTP call to AppError instances:
//   - context deadline → Timeout
//   - context cancellation → Canceled
//   - network timeouts → Timeout
//   - everything else (dial, DNS, reset, undecodable body) → Unavailable
//
// Errors that are already AppErrors are returned unchanged.
func MapTransportError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{Code: ErrCodeTimeout, Message: "Request timed out. Please try again.", Cause: err}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{Code: ErrCodeCanceled, Message: "Request was canceled.", Cause: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &AppError{Code: ErrCodeTimeout, Message: "Request timed out. Please try again.", Cause: err}
	}

	return &AppError{Code: ErrCodeUnavailable, Message: GenericFailureMessage, Cause: err}
}
