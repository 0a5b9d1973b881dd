package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NotAvailable is rendered in place of any absent record field.
const NotAvailable = "N/A"

// Text is a scalar JSON value kept as text. The record server is loose about
// types (sizes arrive as numbers or strings, some rows lack columns), so list
// fields decode through Text and render N/A when absent, null or blank.
type Text struct {
	Value string
	Valid bool
}

// NewText returns a present Text.
func NewText(v string) Text { return Text{Value: v, Valid: true} }

// UnmarshalJSON accepts strings, numbers, booleans and null.
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || string(b) == "null":
		*t = Text{}
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text{Value: s, Valid: true}
		return nil
	case b[0] == '{' || b[0] == '[':
		return fmt.Errorf("text field: unexpected composite value %s", b)
	default:
		*t = Text{Value: string(b), Valid: true}
		return nil
	}
}

// MarshalJSON writes null for absent values.
func (t Text) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.Value)
}

// Display returns the value, or N/A when it is absent or blank.
func (t Text) Display() string {
	if !t.Valid || strings.TrimSpace(t.Value) == "" {
		return NotAvailable
	}
	return t.Value
}

func (t Text) String() string { return t.Display() }

// Number is a JSON number that also accepts numeric strings, because form
// posts reach the record server as strings and are stored as such.
type Number float64

// ParseNumber parses a form value into a Number.
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return Number(f), nil
}

// UnmarshalJSON accepts numbers, numeric strings, empty strings and null.
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*n = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := ParseNumber(s)
		if err != nil {
			return err
		}
		*n = v
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// String formats without trailing zeros (250, 89.99).
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// Fixed formats with exactly prec decimals.
func (n Number) Fixed(prec int) string {
	return strconv.FormatFloat(float64(n), 'f', prec, 64)
}
