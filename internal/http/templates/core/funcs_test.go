package core

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
)

func TestDisplay(t *testing.T) {
	var nilText *model.Text
	present := model.NewText("Nike")
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"present text", model.NewText("42"), "42"},
		{"absent text", model.Text{}, model.NotAvailable},
		{"blank text", model.NewText("  "), model.NotAvailable},
		{"text pointer", &present, "Nike"},
		{"nil text pointer", nilText, model.NotAvailable},
		{"string", "Runner", "Runner"},
		{"empty string", "", model.NotAvailable},
		{"number", model.Number(89.5), "89.5"},
		{"nil", nil, model.NotAvailable},
		{"other", 12, model.NotAvailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, display(tt.in))
		})
	}
}

func TestServerTime(t *testing.T) {
	assert.Equal(t, model.NotAvailable, serverTime(model.Text{}))
	assert.Equal(t, "Mar 4, 2024 2:05 PM", serverTime(model.NewText("2024-03-04 14:05:00")))
	assert.Equal(t, "whenever", serverTime(model.NewText("whenever")))
}

func TestDict(t *testing.T) {
	m, err := dict("Question", "Sure?", "Count", 2)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Question": "Sure?", "Count": 2}, m)

	_, err = dict("odd")
	require.Error(t, err)

	_, err = dict(1, "value")
	require.Error(t, err)
}

func TestFieldError(t *testing.T) {
	assert.Empty(t, fieldError(nil, "username"))
	assert.Equal(t, "Username is required.", fieldError(map[string]string{"username": "Username is required."}, "username"))
}

func TestFuncs_InTemplate(t *testing.T) {
	var tmpl *template.Template
	funcs := Funcs(Deps{
		Template:           &tmpl,
		ContentTemplateFor: func(page string) string { return page + "-content" },
	})
	tmpl = template.Must(template.New("root").Funcs(funcs).Parse(
		`{{define "home-content"}}<p>{{.Name}}</p>{{end}}` +
			`{{asset "/css/app.css"}}|{{fixed .Price 2}}|{{renderSection "home" .}}`,
	))

	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "root", map[string]any{"Name": "Air", "Price": model.Number(120)})
	require.NoError(t, err)
	assert.Equal(t, "/static/css/app.css|120.00|<p>Air</p>", buf.String())
}
