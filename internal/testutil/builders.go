package testutil

import (
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
)

// ShoeModelBuilder provides a fluent interface for building shoe models in tests.
type ShoeModelBuilder struct {
	m model.ShoeModelFields
}

// NewShoeModel creates a builder with valid defaults for every field.
func NewShoeModel() *ShoeModelBuilder {
	return &ShoeModelBuilder{m: model.ShoeModelFields{
		ModelName:   "Pegasus 41",
		Brand:       "Nike",
		Category:    "Running",
		Gender:      "Unisex",
		Material:    "Knit",
		SoleType:    "EVA",
		ClosureType: "Lace-up",
		Color:       "Black",
		WeightGrams: 280,
		Price:       129.99,
		ReleaseDate: "2024-06-01",
	}}
}

// WithName sets the model name.
func (b *ShoeModelBuilder) WithName(name string) *ShoeModelBuilder {
	b.m.ModelName = name
	return b
}

// WithBrand sets the brand.
func (b *ShoeModelBuilder) WithBrand(brand string) *ShoeModelBuilder {
	b.m.Brand = brand
	return b
}

// WithColor sets the color.
func (b *ShoeModelBuilder) WithColor(color string) *ShoeModelBuilder {
	b.m.Color = color
	return b
}

// WithPrice sets the price.
func (b *ShoeModelBuilder) WithPrice(price float64) *ShoeModelBuilder {
	b.m.Price = model.Number(price)
	return b
}

// WithWeight sets the weight in grams.
func (b *ShoeModelBuilder) WithWeight(grams float64) *ShoeModelBuilder {
	b.m.WeightGrams = model.Number(grams)
	return b
}

// Fields returns the built fields.
func (b *ShoeModelBuilder) Fields() model.ShoeModelFields {
	return b.m
}

// Build returns a model with the given id.
func (b *ShoeModelBuilder) Build(id int64) model.ShoeModel {
	return model.ShoeModel{ID: id, ShoeModelFields: b.m}
}
