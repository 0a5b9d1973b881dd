// Package validation checks submitted forms with go-playground/validator and
// turns failures into per-field messages keyed by form field name.
package validation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
)

// Validator validates form structs. Fields are named by their `form` tag and
// described in messages by their `label` tag.
type Validator struct {
	v *validator.Validate
}

//nolint:gochecknoglobals // static read-only lookup
var optionLists = map[string][]string{
	"brand":        model.BrandOptions,
	"category":     model.CategoryOptions,
	"gender":       model.GenderOptions,
	"material":     model.MaterialOptions,
	"sole_type":    model.SoleTypeOptions,
	"closure_type": model.ClosureTypeOptions,
	"color":        model.ColorOptions,
}

// New builds a Validator with the custom rules used by the forms.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	mustRegister(v, "option", isOption)
	mustRegister(v, "positive", func(fl validator.FieldLevel) bool {
		n, ok := parseNumber(fl.Field().String())
		return ok && n > 0
	})
	mustRegister(v, "nonnegative", func(fl validator.FieldLevel) bool {
		n, ok := parseNumber(fl.Field().String())
		return ok && n >= 0
	})
	mustRegister(v, "date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(model.ReleaseDateLayout, strings.TrimSpace(fl.Field().String()))
		return err == nil
	})
	mustRegister(v, "role", func(fl validator.FieldLevel) bool {
		_, err := domainauth.ParseRole(fl.Field().String())
		return err == nil
	})
	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

func isOption(fl validator.FieldLevel) bool {
	options, ok := optionLists[fl.Param()]
	if !ok {
		return false
	}
	value := strings.TrimSpace(fl.Field().String())
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

func parseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return n, err == nil
}

// Struct validates s and returns field messages, or nil when s is valid.
func (v *Validator) Struct(s any) map[string]string {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors) //nolint:errorlint // validator returns the concrete slice
	if !ok {
		return map[string]string{"": err.Error()}
	}

	t := reflect.Indirect(reflect.ValueOf(s)).Type()
	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe, labelFor(t, fe))
	}
	return out
}

func labelFor(t reflect.Type, fe validator.FieldError) string {
	if f, ok := t.FieldByName(fe.StructField()); ok {
		if l := f.Tag.Get("label"); l != "" {
			return l
		}
	}
	return fe.Field()
}

func message(fe validator.FieldError, label string) string {
	switch fe.Tag() {
	case "required":
		return label + " is required."
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters.", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
	case "option":
		return "Select a valid " + strings.ToLower(label) + "."
	case "positive":
		return label + " must be a number greater than 0."
	case "nonnegative":
		return label + " must be a number of 0 or more."
	case "date":
		return label + " must be a date in YYYY-MM-DD format."
	case "role":
		return "Select a valid role."
	default:
		return label + " is invalid."
	}
}
