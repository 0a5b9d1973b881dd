package model

import (
	"strings"
	"time"
)

// ReleaseDateLayout is the wire and form format of ShoeModel.ReleaseDate.
const ReleaseDateLayout = "2006-01-02"

// Option lists offered by the model forms.
var (
	BrandOptions       = []string{"Nike", "Adidas", "Puma", "Reebok"}
	CategoryOptions    = []string{"Running", "Basketball", "Casual", "Football"}
	GenderOptions      = []string{"Men", "Women", "Unisex"}
	MaterialOptions    = []string{"Leather", "Synthetic", "Canvas", "Knit"}
	SoleTypeOptions    = []string{"Rubber", "EVA", "PU", "TPU"}
	ClosureTypeOptions = []string{"Lace-up", "Slip-on", "Velcro", "Buckle"}
	ColorOptions       = []string{"Black", "White", "Red", "Blue"}
)

// ShoeModelFields is the full editable record. Updates replace all of it.
type ShoeModelFields struct {
	ModelName   string `json:"model_name"`
	Brand       string `json:"brand"`
	Category    string `json:"category"`
	Gender      string `json:"gender"`
	Material    string `json:"material"`
	SoleType    string `json:"sole_type"`
	ClosureType string `json:"closure_type"`
	Color       string `json:"color"`
	WeightGrams Number `json:"weight_grams"`
	Price       Number `json:"price"`
	ReleaseDate string `json:"release_date"`
}

// ShoeModel is a catalog entry describing a shoe design.
type ShoeModel struct {
	ID int64 `json:"id"`
	ShoeModelFields
}

// Normalize trims text fields and cuts timestamps down to a date.
func (f *ShoeModelFields) Normalize() {
	for _, s := range []*string{
		&f.ModelName, &f.Brand, &f.Category, &f.Gender, &f.Material,
		&f.SoleType, &f.ClosureType, &f.Color, &f.ReleaseDate,
	} {
		*s = strings.TrimSpace(*s)
	}
	if len(f.ReleaseDate) > len(ReleaseDateLayout) {
		if t, err := time.Parse(time.RFC3339, f.ReleaseDate); err == nil {
			f.ReleaseDate = t.Format(ReleaseDateLayout)
		} else if _, err := time.Parse(ReleaseDateLayout, f.ReleaseDate[:len(ReleaseDateLayout)]); err == nil {
			f.ReleaseDate = f.ReleaseDate[:len(ReleaseDateLayout)]
		}
	}
}

// FindModel returns the model with id, if present.
func FindModel(models []ShoeModel, id int64) (ShoeModel, bool) {
	for _, m := range models {
		if m.ID == id {
			return m, true
		}
	}
	return ShoeModel{}, false
}

// ModelRef is the short model reference used by the chart filters.
type ModelRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductionSummary lists chartable models and the operators that created records.
type ProductionSummary struct {
	Models    []ModelRef `json:"models"`
	Operators []string   `json:"operators"`
}
