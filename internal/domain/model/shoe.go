// Package model defines the record types exchanged with the record server and
// rendered by the UI.
package model

import "strings"

// ShoeRecord is one manufactured unit as listed by the record server.
// It is read-only here: created through a ShoeEntry and never mutated.
type ShoeRecord struct {
	ID           Text `json:"id"`
	ModelName    Text `json:"model_name"`
	SerialNumber Text `json:"serial_number"`
	BatchNumber  Text `json:"batch_number"`
	ShoeType     Text `json:"shoe_type"`
	Size         Text `json:"size"`
	Brand        Text `json:"brand"`
	ShoeModelID  Text `json:"shoe_model_id"`
	CreatedAt    Text `json:"created_at"`
	CreatedBy    Text `json:"created_by"`
}

// ShoeEntry is the payload of the shoe entry form. The derived model
// fields are posted as displayed, alongside the identity fields.
type ShoeEntry struct {
	ModelName    string `json:"model_name"`
	SerialNumber string `json:"serial_number"`
	BatchNumber  string `json:"batch_number"`

	Brand       string `json:"brand,omitempty"`
	Category    string `json:"category,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Material    string `json:"material,omitempty"`
	SoleType    string `json:"sole_type,omitempty"`
	ClosureType string `json:"closure_type,omitempty"`
	Color       string `json:"color,omitempty"`
	WeightGrams string `json:"weight_grams,omitempty"`
}

// Normalize trims every field.
func (e *ShoeEntry) Normalize() {
	for _, f := range []*string{
		&e.ModelName, &e.SerialNumber, &e.BatchNumber,
		&e.Brand, &e.Category, &e.Gender, &e.Material,
		&e.SoleType, &e.ClosureType, &e.Color, &e.WeightGrams,
	} {
		*f = strings.TrimSpace(*f)
	}
}

// ApplyModel fills the derived fields from m.
func (e *ShoeEntry) ApplyModel(m ShoeModel) {
	e.Brand = m.Brand
	e.Category = m.Category
	e.Gender = m.Gender
	e.Material = m.Material
	e.SoleType = m.SoleType
	e.ClosureType = m.ClosureType
	e.Color = m.Color
	if m.WeightGrams != 0 {
		e.WeightGrams = m.WeightGrams.String()
	} else {
		e.WeightGrams = ""
	}
}

// SearchField selects which record column the server searches.
type SearchField string

const (
	SearchByModelName    SearchField = "model_name"
	SearchBySerialNumber SearchField = "serial_number"
	SearchByBatchNumber  SearchField = "batch_number"
	SearchByBrand        SearchField = "brand"
	SearchByCreatedBy    SearchField = "created_by"
)

// DefaultSearchField is used when the selector is missing or unknown.
const DefaultSearchField = SearchByModelName

// SearchFields lists the selector options in display order.
func SearchFields() []SearchField {
	return []SearchField{SearchByModelName, SearchBySerialNumber, SearchByBatchNumber, SearchByBrand, SearchByCreatedBy}
}

// Label is the selector text.
func (f SearchField) Label() string {
	switch f {
	case SearchByModelName:
		return "Model Name"
	case SearchBySerialNumber:
		return "Serial Number"
	case SearchByBatchNumber:
		return "Batch Number"
	case SearchByBrand:
		return "Brand"
	case SearchByCreatedBy:
		return "Created By"
	default:
		return string(f)
	}
}

// ParseSearchField returns the matching field, or the default for unknown input.
func ParseSearchField(s string) SearchField {
	f := SearchField(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SearchFields() {
		if f == known {
			return f
		}
	}
	return DefaultSearchField
}

// ShoeQuery is forwarded verbatim to the listing endpoint; filtering is server-side.
type ShoeQuery struct {
	Search string
	Type   SearchField
}

// Key identifies the query for logging and metrics.
func (q ShoeQuery) Key() string { return string(q.Type) + ":" + q.Search }
