package httpx

import (
	"net/http"
	"strings"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
	"github.com/shoetrack/shoetrack-ui/internal/http/validation"
)

//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use
var formValidator = validation.New()

// ShoeEntryForm is the shoe entry screen. The derived model fields are
// read-only on screen and posted back as displayed.
type ShoeEntryForm struct {
	ModelName    string `form:"model_name"    label:"Model"         validate:"required,max=100"`
	SerialNumber string `form:"serial_number" label:"Serial number" validate:"required,max=100"`
	BatchNumber  string `form:"batch_number"  label:"Batch number"  validate:"required,max=100"`
	Brand        string `form:"brand"`
	Category     string `form:"category"`
	Gender       string `form:"gender"`
	Material     string `form:"material"`
	SoleType     string `form:"sole_type"`
	ClosureType  string `form:"closure_type"`
	Color        string `form:"color"`
	WeightGrams  string `form:"weight_grams"`
}

// Entry converts the form to the upstream payload.
func (f ShoeEntryForm) Entry() model.ShoeEntry {
	return model.ShoeEntry{
		ModelName:    f.ModelName,
		SerialNumber: f.SerialNumber,
		BatchNumber:  f.BatchNumber,
		Brand:        f.Brand,
		Category:     f.Category,
		Gender:       f.Gender,
		Material:     f.Material,
		SoleType:     f.SoleType,
		ClosureType:  f.ClosureType,
		Color:        f.Color,
		WeightGrams:  f.WeightGrams,
	}
}

func parseShoeEntryForm(r *http.Request) (ShoeEntryForm, map[string]string) {
	f := ShoeEntryForm{
		ModelName:    formValue(r, "model_name"),
		SerialNumber: formValue(r, "serial_number"),
		BatchNumber:  formValue(r, "batch_number"),
		Brand:        formValue(r, "brand"),
		Category:     formValue(r, "category"),
		Gender:       formValue(r, "gender"),
		Material:     formValue(r, "material"),
		SoleType:     formValue(r, "sole_type"),
		ClosureType:  formValue(r, "closure_type"),
		Color:        formValue(r, "color"),
		WeightGrams:  formValue(r, "weight_grams"),
	}
	return f, formValidator.Struct(f)
}

// ModelForm is the create/edit shoe model form.
type ModelForm struct {
	ModelName   string `form:"model_name"   label:"Model name"   validate:"required,max=100"`
	Brand       string `form:"brand"        label:"Brand"        validate:"required,option=brand"`
	Category    string `form:"category"     label:"Category"     validate:"required,option=category"`
	Gender      string `form:"gender"       label:"Gender"       validate:"required,option=gender"`
	Material    string `form:"material"     label:"Material"     validate:"required,option=material"`
	SoleType    string `form:"sole_type"    label:"Sole type"    validate:"required,option=sole_type"`
	ClosureType string `form:"closure_type" label:"Closure type" validate:"required,option=closure_type"`
	Color       string `form:"color"        label:"Color"        validate:"required,option=color"`
	WeightGrams string `form:"weight_grams" label:"Weight"       validate:"required,positive"`
	Price       string `form:"price"        label:"Price"        validate:"required,nonnegative"`
	ReleaseDate string `form:"release_date" label:"Release date" validate:"required,date"`
}

// modelFormFrom pre-fills the form from an existing model.
func modelFormFrom(m model.ShoeModelFields) ModelForm {
	m.Normalize()
	f := ModelForm{
		ModelName:   m.ModelName,
		Brand:       m.Brand,
		Category:    m.Category,
		Gender:      m.Gender,
		Material:    m.Material,
		SoleType:    m.SoleType,
		ClosureType: m.ClosureType,
		Color:       m.Color,
		ReleaseDate: m.ReleaseDate,
	}
	if m.WeightGrams != 0 {
		f.WeightGrams = m.WeightGrams.String()
	}
	f.Price = m.Price.Fixed(2)
	return f
}

// Fields converts a validated form to the upstream record.
func (f ModelForm) Fields() model.ShoeModelFields {
	weight, _ := model.ParseNumber(f.WeightGrams)
	price, _ := model.ParseNumber(f.Price)
	return model.ShoeModelFields{
		ModelName:   f.ModelName,
		Brand:       f.Brand,
		Category:    f.Category,
		Gender:      f.Gender,
		Material:    f.Material,
		SoleType:    f.SoleType,
		ClosureType: f.ClosureType,
		Color:       f.Color,
		WeightGrams: weight,
		Price:       price,
		ReleaseDate: f.ReleaseDate,
	}
}

func parseModelForm(r *http.Request) (ModelForm, map[string]string) {
	f := ModelForm{
		ModelName:   formValue(r, "model_name"),
		Brand:       formValue(r, "brand"),
		Category:    formValue(r, "category"),
		Gender:      formValue(r, "gender"),
		Material:    formValue(r, "material"),
		SoleType:    formValue(r, "sole_type"),
		ClosureType: formValue(r, "closure_type"),
		Color:       formValue(r, "color"),
		WeightGrams: formValue(r, "weight_grams"),
		Price:       formValue(r, "price"),
		ReleaseDate: formValue(r, "release_date"),
	}
	return f, formValidator.Struct(f)
}

// AccountForm is the create account form.
type AccountForm struct {
	Username string `form:"username" label:"Username" validate:"required,max=80"`
	Password string `form:"password" label:"Password" validate:"required"`
	Role     string `form:"role"     label:"Role"     validate:"required,role"`
}

// Request converts a validated form to the upstream payload.
func (f AccountForm) Request() model.CreateAccountRequest {
	role, _ := domainauth.ParseRole(f.Role)
	return model.CreateAccountRequest{Username: f.Username, Password: f.Password, Role: role}
}

func parseAccountForm(r *http.Request) (AccountForm, map[string]string) {
	f := AccountForm{
		Username: formValue(r, "username"),
		Password: r.PostFormValue("password"),
		Role:     formValue(r, "role"),
	}
	if f.Role == "" {
		f.Role = string(domainauth.RoleUser)
	}
	return f, formValidator.Struct(f)
}

// formValue returns a trimmed form value.
func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

// confirmed reports whether a confirmation dialog was answered yes.
func confirmed(r *http.Request) bool {
	return strings.EqualFold(strings.TrimSpace(r.PostFormValue(confirmField)), confirmYes)
}
