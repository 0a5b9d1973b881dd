package httpx

import (
	"context"
	"net/http"

	apperrors "github.com/shoetrack/shoetrack-ui/internal/errors"
)

// FormParser parses form data from an HTTP request and returns the parsed data
// along with any field-level validation errors.
type FormParser[T any] func(r *http.Request) (T, map[string]string)

// FormState is what a form re-render needs besides the submitted values.
type FormState struct {
	Status       int
	FieldErrors  map[string]string
	ErrorMessage string
}

// FormRenderer renders the form with the submitted values and state.
type FormRenderer[T any] func(w http.ResponseWriter, r *http.Request, form T, state FormState)

// FormHandlerOpts contains all options needed to handle a form submission.
type FormHandlerOpts[T any] struct {
	UI       *UIHandlers
	W        http.ResponseWriter
	R        *http.Request
	Parser   FormParser[T]
	Submit   func(ctx context.Context, form T) (string, error)
	Renderer FormRenderer[T]
	// OnSuccess receives the record server's message.
	OnSuccess func(w http.ResponseWriter, r *http.Request, message string)
}

// HandleForm parses and validates a form, submits it, and either re-renders
// the form with errors or hands the success message to OnSuccess.
func HandleForm[T any](opts FormHandlerOpts[T]) {
	if opts.UI == nil || opts.Parser == nil || opts.Submit == nil || opts.Renderer == nil || opts.OnSuccess == nil {
		http.Error(opts.W, "misconfigured form handler", http.StatusInternalServerError)
		return
	}

	form, fieldErrors := opts.Parser(opts.R)
	if len(fieldErrors) > 0 {
		opts.Renderer(opts.W, opts.R, form, FormState{
			Status:       http.StatusUnprocessableEntity,
			FieldErrors:  fieldErrors,
			ErrorMessage: errMsgFixBelow,
		})
		return
	}

	msg, err := opts.Submit(opts.R.Context(), form)
	if err != nil {
		if opts.UI.expireIfStale(opts.W, opts.R, err) {
			return
		}
		opts.UI.logger().InfoContext(opts.R.Context(), "form submission rejected",
			"path", opts.R.URL.Path, "error", err)
		opts.Renderer(opts.W, opts.R, form, formErrorState(err))
		return
	}

	opts.OnSuccess(opts.W, opts.R, msg)
}

// formErrorState maps a service error onto the form: a field-scoped error is
// shown under its field, anything else above the form.
func formErrorState(err error) FormState {
	state := FormState{Status: StatusForError(err), ErrorMessage: UserMessage(err)}
	if field := apperrors.GetField(err); field != "" {
		state.FieldErrors = map[string]string{field: UserMessage(err)}
	}
	return state
}
