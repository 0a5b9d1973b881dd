package core

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
	"github.com/shoetrack/shoetrack-ui/internal/http/uiutil"
)

// Deps holds optional dependencies for constructing the core template func map.
type Deps struct {
	Template           **template.Template
	ContentTemplateFor func(string) string
	StaticPrefix       string
}

// Funcs returns a template.FuncMap containing helpers that are broadly useful across templates.
func Funcs(deps Deps) template.FuncMap {
	prefix := deps.StaticPrefix
	if prefix == "" {
		prefix = "/static/"
	}
	funcs := template.FuncMap{
		"asset":      func(name string) string { return prefix + strings.TrimPrefix(name, "/") },
		"display":    display,
		"serverTime": serverTime,
		"fixed":      func(n model.Number, prec int) string { return n.Fixed(prec) },
		"fieldError": fieldError,
		"dict":       dict,
	}

	addRenderFuncs(funcs, deps)
	return funcs
}

func addRenderFuncs(funcs template.FuncMap, deps Deps) {
	funcs["renderSection"] = func(page string, data any) (template.HTML, error) {
		if deps.Template == nil || *deps.Template == nil {
			return "", errors.New("template not initialized")
		}
		var buf bytes.Buffer
		if err := (*deps.Template).ExecuteTemplate(&buf, deps.ContentTemplateFor(page), data); err != nil {
			return "", err
		}
		// #nosec G203 - rendered by our own html/template set; values were escaped during execution.
		return template.HTML(buf.String()), nil
	}
}

// display renders a value from the record server, substituting N/A for
// anything missing.
func display(v any) string {
	switch t := v.(type) {
	case model.Text:
		return t.Display()
	case *model.Text:
		if t == nil {
			return model.NotAvailable
		}
		return t.Display()
	case string:
		if strings.TrimSpace(t) == "" {
			return model.NotAvailable
		}
		return t
	case model.Number:
		return t.String()
	case nil:
		return model.NotAvailable
	default:
		return model.NotAvailable
	}
}

func serverTime(t model.Text) string {
	if !t.Valid || strings.TrimSpace(t.Value) == "" {
		return model.NotAvailable
	}
	return uiutil.FormatServerTime(t.Value)
}

// dict builds a map from alternating keys and values so partials can take
// more than one argument.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	out := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		out[key] = pairs[i+1]
	}
	return out, nil
}

func fieldError(errs map[string]string, field string) string {
	if errs == nil {
		return ""
	}
	return errs[field]
}
