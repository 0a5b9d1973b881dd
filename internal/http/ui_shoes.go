package httpx

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
	"github.com/shoetrack/shoetrack-ui/internal/search"
)

func shoeEntryMeta() PageMeta {
	return PageMeta{Title: "Enter Shoe Data", CurrentPage: PageShoeEntry}
}

// ShoeEntryPage renders the shoe entry form bound to the model dictionary.
func (h *UIHandlers) ShoeEntryPage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: shoeEntryMeta(),
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Form"] = ShoeEntryForm{}
			models, err := h.Catalog.Models(ctx, session(r).Credentials())
			data["Models"] = models
			return err
		},
	})
}

// ShoeModelDetails returns the read-only fields derived from the selected model.
func (h *UIHandlers) ShoeModelDetails(w http.ResponseWriter, r *http.Request) {
	form := ShoeEntryForm{ModelName: formValue(r, "model_name")}
	data := map[string]any{"Form": form, "Errors": map[string]string{}}
	if form.ModelName == "" {
		h.renderFragment(w, r, "shoe-derived-fields", data)
		return
	}

	m, err := h.Shoes.ModelDetails(r.Context(), session(r).Credentials(), form.ModelName)
	if err != nil {
		if h.expireIfStale(w, r, err) {
			return
		}
		data["ErrorMessage"] = UserMessage(err)
		h.renderFragment(w, r, "shoe-derived-fields", data)
		return
	}

	entry := form.Entry()
	entry.ApplyModel(m)
	data["Form"] = shoeEntryFormFrom(entry)
	h.renderFragment(w, r, "shoe-derived-fields", data)
}

// CreateShoe records a unit. On success the form is cleared and the user stays
// on the entry screen with the server's message as a toast.
func (h *UIHandlers) CreateShoe(w http.ResponseWriter, r *http.Request) {
	creds := session(r).Credentials()
	HandleForm(FormHandlerOpts[ShoeEntryForm]{
		UI:     h,
		W:      w,
		R:      r,
		Parser: parseShoeEntryForm,
		Submit: func(ctx context.Context, f ShoeEntryForm) (string, error) {
			return h.Shoes.Create(ctx, creds, f.Entry())
		},
		Renderer: h.renderShoeEntryForm,
		OnSuccess: func(w http.ResponseWriter, r *http.Request, msg string) {
			if !IsHTMX(r) {
				setFlash(w, FlashSuccess, msg)
				redirect(w, r, "/shoes/new")
				return
			}
			triggerToast(w, msg, FlashSuccess)
			h.renderShoeEntryForm(w, r, ShoeEntryForm{}, FormState{Status: http.StatusOK})
		},
	})
}

func (h *UIHandlers) renderShoeEntryForm(w http.ResponseWriter, r *http.Request, form ShoeEntryForm, state FormState) {
	builder := NewTemplateData(r, shoeEntryMeta()).
		With("Form", form).
		WithFieldErrors(state.FieldErrors)
	if state.ErrorMessage != "" {
		builder.WithError(state.ErrorMessage)
	}
	models, err := h.Catalog.Models(r.Context(), session(r).Credentials())
	if err != nil {
		h.logger().WarnContext(r.Context(), "model dictionary unavailable", "error", err)
	}
	builder.With("Models", models)
	h.renderPage(w, r, state.Status, builder.Build())
}

func shoeEntryFormFrom(e model.ShoeEntry) ShoeEntryForm {
	return ShoeEntryForm{
		ModelName:    e.ModelName,
		SerialNumber: e.SerialNumber,
		BatchNumber:  e.BatchNumber,
		Brand:        e.Brand,
		Category:     e.Category,
		Gender:       e.Gender,
		Material:     e.Material,
		SoleType:     e.SoleType,
		ClosureType:  e.ClosureType,
		Color:        e.Color,
		WeightGrams:  e.WeightGrams,
	}
}

// ShoesPage lists every record, searched by model name with an empty term.
// Searches still pending or in flight for the session are dropped first.
func (h *UIHandlers) ShoesPage(w http.ResponseWriter, r *http.Request) {
	q := model.ShoeQuery{Type: model.DefaultSearchField}
	h.Shoes.Forget(session(r).ID)
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "View Shoe Data", CurrentPage: PageShoes},
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Query"] = q
			data["SearchFields"] = model.SearchFields()
			rows, err := h.Shoes.List(ctx, session(r).Credentials(), q)
			data["Rows"] = rows
			return err
		},
	})
}

// SearchShoes runs a debounced, sequenced search and swaps in the table.
// A superseded or stale search answers 204 so the current table stays.
func (h *UIHandlers) SearchShoes(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	q := model.ShoeQuery{
		Search: r.URL.Query().Get("search"),
		Type:   model.ParseSearchField(r.URL.Query().Get("type")),
	}
	immediate, _ := strconv.ParseBool(r.URL.Query().Get("immediate"))

	rows, err := h.Shoes.Search(r.Context(), sess.ID, sess.Credentials(), q, immediate)
	switch {
	case errors.Is(err, search.ErrSuperseded), errors.Is(err, search.ErrStale):
		w.WriteHeader(http.StatusNoContent)
		return
	case err != nil:
		if h.expireIfStale(w, r, err) {
			return
		}
		if errors.Is(err, context.Canceled) || r.Context().Err() != nil {
			return
		}
		h.logger().WarnContext(r.Context(), "shoe search failed", "error", err)
		h.renderFragment(w, r, "shoes-table", map[string]any{"Rows": nil, "ErrorMessage": UserMessage(err)})
		return
	}
	h.renderFragment(w, r, "shoes-table", map[string]any{"Rows": rows, "Query": q})
}
