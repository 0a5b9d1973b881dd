package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoeRecord_MissingFieldsRenderNA(t *testing.T) {
	raw := `{"id": 12, "model_name": "Air Zoom", "serial_number": "SN-1", "batch_number": "B-7",
		"size": 10.5, "brand": "", "shoe_model_id": null}`

	var rec ShoeRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	assert.Equal(t, "12", rec.ID.Display())
	assert.Equal(t, "Air Zoom", rec.ModelName.Display())
	assert.Equal(t, "10.5", rec.Size.Display())
	assert.Equal(t, NotAvailable, rec.Brand.Display(), "blank renders N/A")
	assert.Equal(t, NotAvailable, rec.ShoeModelID.Display(), "null renders N/A")
	assert.Equal(t, NotAvailable, rec.CreatedAt.Display(), "absent renders N/A")
	assert.Equal(t, NotAvailable, rec.CreatedBy.Display())
	assert.Equal(t, NotAvailable, rec.ShoeType.Display())
}

func TestText_RejectsComposite(t *testing.T) {
	var txt Text
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &txt))
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &txt))
}

func TestText_Marshal(t *testing.T) {
	b, err := json.Marshal(struct {
		A Text `json:"a"`
		B Text `json:"b"`
	}{A: NewText("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":null}`, string(b))
}

func TestNumber_Unmarshal(t *testing.T) {
	tests := []struct {
		raw  string
		want Number
	}{
		{`250`, 250},
		{`"250"`, 250},
		{`"89.99"`, 89.99},
		{`""`, 0},
		{`null`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &n))
			assert.Equal(t, tt.want, n)
		})
	}

	var n Number
	assert.Error(t, json.Unmarshal([]byte(`"heavy"`), &n))
}

func TestNumber_Format(t *testing.T) {
	assert.Equal(t, "250", Number(250).String())
	assert.Equal(t, "89.99", Number(89.99).String())
	assert.Equal(t, "90.00", Number(90).Fixed(2))
}

func TestParseNumber(t *testing.T) {
	n, err := ParseNumber(" 12.5 ")
	require.NoError(t, err)
	assert.Equal(t, Number(12.5), n)

	_, err = ParseNumber("abc")
	assert.Error(t, err)
}
