package form

import (
	"fmt"
	"reflect"
	"strings"

	"cafewifi/model"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

type Kind string

const (
	KindText   Kind = "text"
	KindURL    Kind = "url"
	KindChoice Kind = "choice"
)

type Choice struct {
	Value string
	Label string
}

// Field describes one input of the add form for the templates.
type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool
	Choices  []Choice
	Value    string
	Error    string
}

var yesNo = []Choice{{Value: "Yes", Label: "Yes"}, {Value: "No", Label: "No"}}

// CafeForm is the submitted add form. Amenity fields carry the raw choice
// token and are converted to model.Answer by Cafe.
type CafeForm struct {
	Name         string `form:"name" validate:"notblank,max=250"`
	MapURL       string `form:"map_url" validate:"notblank,url,max=500"`
	ImgURL       string `form:"img_url" validate:"notblank,url,max=500"`
	Location     string `form:"location" validate:"notblank,max=250"`
	Seats        string `form:"seats" validate:"notblank,max=250"`
	HasToilet    string `form:"has_toilet" validate:"required,oneof=Yes No"`
	HasWifi      string `form:"has_wifi" validate:"required,oneof=Yes No"`
	HasSockets   string `form:"has_sockets" validate:"required,oneof=Yes No"`
	CanTakeCalls string `form:"can_take_calls" validate:"required,oneof=Yes No"`
	CoffeePrice  string `form:"coffee_price" validate:"max=250"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Blank returns an empty form with every amenity defaulted to "Yes".
func Blank() *CafeForm {
	return &CafeForm{
		HasToilet:    "Yes",
		HasWifi:      "Yes",
		HasSockets:   "Yes",
		CanTakeCalls: "Yes",
	}
}

// Validate returns field-level error messages keyed by form field name. An
// empty map means the form is valid.
func (f *CafeForm) Validate() map[string]string {
	return FormatValidationErrors(validate.Struct(f))
}

// Cafe converts a valid form into a new, unsaved cafe.
func (f *CafeForm) Cafe() (model.Cafe, error) {
	answers := make([]model.Answer, 4)
	for i, token := range []string{f.HasToilet, f.HasWifi, f.HasSockets, f.CanTakeCalls} {
		a, err := model.ParseChoice(token)
		if err != nil {
			return model.Cafe{}, err
		}
		answers[i] = a
	}

	cafe := model.Cafe{
		Name:         f.Name,
		MapURL:       f.MapURL,
		ImgURL:       f.ImgURL,
		Location:     f.Location,
		Seats:        f.Seats,
		HasToilet:    answers[0],
		HasWifi:      answers[1],
		HasSockets:   answers[2],
		CanTakeCalls: answers[3],
	}
	if strings.TrimSpace(f.CoffeePrice) != "" {
		price := f.CoffeePrice
		cafe.CoffeePrice = &price
	}
	return cafe, nil
}

// Fields builds the render descriptor, carrying the current values and any
// errors.
func (f *CafeForm) Fields(errs map[string]string) []Field {
	fields := []Field{
		{Name: "name", Label: "Name of Cafe", Kind: KindText, Required: true, Value: f.Name},
		{Name: "map_url", Label: "Copy and paste a link to the cafe on Maps", Kind: KindURL, Required: true, Value: f.MapURL},
		{Name: "img_url", Label: "An image link of the cafe", Kind: KindURL, Required: true, Value: f.ImgURL},
		{Name: "location", Label: "Location of new cafe", Kind: KindText, Required: true, Value: f.Location},
		{Name: "seats", Label: "Min number - Max number of seats", Kind: KindText, Required: true, Value: f.Seats},
		{Name: "has_toilet", Label: "Are there toilets available?", Kind: KindChoice, Required: true, Choices: yesNo, Value: f.HasToilet},
		{Name: "has_wifi", Label: "Is there WiFi available?", Kind: KindChoice, Required: true, Choices: yesNo, Value: f.HasWifi},
		{Name: "has_sockets", Label: "Are there sockets for charging?", Kind: KindChoice, Required: true, Choices: yesNo, Value: f.HasSockets},
		{Name: "can_take_calls", Label: "Is there mobile signal?", Kind: KindChoice, Required: true, Choices: yesNo, Value: f.CanTakeCalls},
		{Name: "coffee_price", Label: "How much is an Americano?", Kind: KindText, Value: f.CoffeePrice},
	}
	for i := range fields {
		fields[i].Error = errs[fields[i].Name]
	}
	return fields
}

// ValidateCafe checks a cafe built outside the web form, e.g. an imported row.
func ValidateCafe(cafe *model.Cafe) map[string]string {
	return FormatValidationErrors(validate.Struct(cafe))
}

// FormatValidationErrors converts validator errors into one message per field.
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	if err == nil {
		return errs
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = err.Error()
		return errs
	}
	for _, e := range validationErrs {
		field := e.Field()
		if _, seen := errs[field]; seen {
			continue
		}
		switch e.Tag() {
		case "required", "notblank":
			errs[field] = "This field is required."
		case "url":
			errs[field] = "Invalid URL."
		case "max":
			errs[field] = fmt.Sprintf("Field cannot be longer than %s characters.", e.Param())
		case "oneof":
			errs[field] = "Not a valid choice."
		default:
			errs[field] = "Invalid value."
		}
	}
	return errs
}
