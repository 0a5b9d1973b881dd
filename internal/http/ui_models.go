package httpx

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
	"github.com/shoetrack/shoetrack-ui/internal/service"
)

// ModelOptions are the fixed choices offered by the model form.
type ModelOptions struct {
	Brand       []string
	Category    []string
	Gender      []string
	Material    []string
	SoleType    []string
	ClosureType []string
	Color       []string
}

func modelOptions() ModelOptions {
	return ModelOptions{
		Brand:       model.BrandOptions,
		Category:    model.CategoryOptions,
		Gender:      model.GenderOptions,
		Material:    model.MaterialOptions,
		SoleType:    model.SoleTypeOptions,
		ClosureType: model.ClosureTypeOptions,
		Color:       model.ColorOptions,
	}
}

func modelFormMeta(mode FormMode) PageMeta {
	if mode == FormModeEdit {
		return PageMeta{Title: "Edit Shoe Model", CurrentPage: PageModelForm}
	}
	return PageMeta{Title: "Create Shoe Model", CurrentPage: PageModelForm}
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ModelsPage lists models alongside user and operator counts. Nothing is
// shown unless all three reads succeed.
func (h *UIHandlers) ModelsPage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "View Shoe Models", CurrentPage: PageModels},
		Fetch: func(ctx context.Context, data map[string]any) error {
			listing, err := h.Models.Listing(ctx, session(r).Credentials())
			if err != nil {
				return err
			}
			data["Models"] = listing.Models
			data["UserCount"] = len(listing.Users)
			data["OperatorCount"] = len(listing.Summary.Operators)
			return nil
		},
	})
}

// NewModelPage renders an empty model form.
func (h *UIHandlers) NewModelPage(w http.ResponseWriter, r *http.Request) {
	h.renderModelForm(w, r, modelFormView{Mode: FormModeCreate}, FormState{})
}

// EditModelPage pre-fills the model form from the current list.
func (h *UIHandlers) EditModelPage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	m, err := h.Models.Get(r.Context(), session(r).Credentials(), id)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	h.renderModelForm(w, r, modelFormView{Mode: FormModeEdit, ID: id, Form: modelFormFrom(m.ShoeModelFields)}, FormState{})
}

// CreateModel adds a model and returns to the main menu.
func (h *UIHandlers) CreateModel(w http.ResponseWriter, r *http.Request) {
	creds := session(r).Credentials()
	HandleForm(FormHandlerOpts[ModelForm]{
		UI:     h,
		W:      w,
		R:      r,
		Parser: parseModelForm,
		Submit: func(ctx context.Context, f ModelForm) (string, error) {
			return h.Models.Create(ctx, creds, f.Fields())
		},
		Renderer: func(w http.ResponseWriter, r *http.Request, f ModelForm, state FormState) {
			h.renderModelForm(w, r, modelFormView{Mode: FormModeCreate, Form: f}, state)
		},
		OnSuccess: func(w http.ResponseWriter, r *http.Request, msg string) {
			setFlash(w, FlashSuccess, msg)
			redirect(w, r, "/")
		},
	})
}

// UpdateModel replaces every field of a model and returns to the listing.
func (h *UIHandlers) UpdateModel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	creds := session(r).Credentials()
	HandleForm(FormHandlerOpts[ModelForm]{
		UI:     h,
		W:      w,
		R:      r,
		Parser: parseModelForm,
		Submit: func(ctx context.Context, f ModelForm) (string, error) {
			return h.Models.Update(ctx, creds, id, f.Fields())
		},
		Renderer: func(w http.ResponseWriter, r *http.Request, f ModelForm, state FormState) {
			h.renderModelForm(w, r, modelFormView{Mode: FormModeEdit, ID: id, Form: f}, state)
		},
		OnSuccess: func(w http.ResponseWriter, r *http.Request, msg string) {
			setFlash(w, FlashSuccess, msg)
			redirect(w, r, "/models")
		},
	})
}

type modelFormView struct {
	Mode FormMode
	ID   int64
	Form ModelForm
}

func (h *UIHandlers) renderModelForm(w http.ResponseWriter, r *http.Request, view modelFormView, state FormState) {
	builder := NewTemplateData(r, modelFormMeta(view.Mode)).
		With("Mode", string(view.Mode)).
		With("ModelID", view.ID).
		With("Form", view.Form).
		With("Options", modelOptions()).
		WithFieldErrors(state.FieldErrors)
	if state.ErrorMessage != "" {
		builder.WithError(state.ErrorMessage)
	}
	h.renderPage(w, r, state.Status, builder.Build())
}

// ConfirmDeleteModelPage asks before deleting a model.
func (h *UIHandlers) ConfirmDeleteModelPage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	m, err := h.Models.Get(r.Context(), session(r).Credentials(), id)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	data := NewTemplateData(r, PageMeta{Title: "Delete Shoe Model", CurrentPage: PageModelDelete}).
		With("Model", m).
		With("Question", MsgConfirmDelModel).
		Build()
	h.renderPage(w, r, http.StatusOK, data)
}

// DeleteModel deletes a model only when the dialog was answered yes.
func (h *UIHandlers) DeleteModel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	msg, err := h.Models.Delete(r.Context(), session(r).Credentials(), id, confirmed(r))
	switch {
	case errors.Is(err, service.ErrNotConfirmed):
		setFlash(w, FlashInfo, MsgDeleteCancelled)
	case err != nil:
		if h.expireIfStale(w, r, err) {
			return
		}
		h.logger().WarnContext(r.Context(), "model delete failed", "id", id, "error", err)
		setFlash(w, FlashError, UserMessage(err))
	default:
		setFlash(w, FlashSuccess, msg)
	}
	redirect(w, r, "/models")
}
