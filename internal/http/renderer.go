package httpx

import (
	"bytes"
	"errors"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/http"

	corefuncs "github.com/shoetrack/shoetrack-ui/internal/http/templates/core"
)

// TemplateRenderer renders HTML templates for UI responses.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS   fs.FS        // Filesystem containing templates (required)
	StaticPrefix string       // URL prefix for static assets (default /static/)
	Logger       *slog.Logger // Logger for template errors (optional)
}

// NewTemplateRenderer parses the layout, pages and partials from cfg.TemplateFS.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	var t *template.Template
	funcs := corefuncs.Funcs(corefuncs.Deps{
		Template:           &t,
		ContentTemplateFor: ContentTemplateFor,
		StaticPrefix:       cfg.StaticPrefix,
	})
	t, err := template.New("root").Funcs(funcs).ParseFS(cfg.TemplateFS,
		"*.tmpl",
		"pages/*.tmpl",
		"partials/*.tmpl",
	)
	if err != nil {
		cfg.Logger.Error("template parsing failed",
			slog.Any("error", err),
			slog.String("phase", "initialization"),
		)
		return nil, err
	}
	return &TemplateRenderer{t: t, logger: cfg.Logger}, nil
}

// RenderFull renders the full page (layout + page content).
func (r *TemplateRenderer) RenderFull(w http.ResponseWriter, status int, data any) error {
	return r.render(w, status, "layout", data)
}

// RenderNamed renders a single named template, typically a fragment.
func (r *TemplateRenderer) RenderNamed(w http.ResponseWriter, name string, data any) error {
	return r.render(w, http.StatusOK, name, data)
}

// Execute writes the named template to out without touching headers.
func (r *TemplateRenderer) Execute(out io.Writer, name string, data any) error {
	if err := r.t.ExecuteTemplate(out, name, data); err != nil {
		r.logTemplateError(name, err)
		return err
	}
	return nil
}

func (r *TemplateRenderer) render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := r.Execute(&buf, name, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status != 0 && status != http.StatusOK {
		w.WriteHeader(status)
	}
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Error("failed to write rendered template",
			slog.String("template", name),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

func (r *TemplateRenderer) logTemplateError(name string, err error) {
	r.logger.Error("template execution failed",
		slog.String("template", name),
		slog.Any("error", err),
	)
}
