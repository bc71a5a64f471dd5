// Package validation enforces field-level rules on student input before it
// reaches the store. It is a pure mapping: a raw input either normalizes into
// a clean StudentInput or yields an ordered list of field errors, never both.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// phonePattern matches digits only, 7 to 15 characters.
var phonePattern = regexp.MustCompile(`^[0-9]{7,15}$`)

// FieldError describes a single validation failure.
// The shape matches what the front-end renders from a 422 response.
type FieldError struct {
	Msg      string `json:"msg"`
	Param    string `json:"param"`
	Location string `json:"location"`
}

// Errors is an ordered list of field errors. It implements error so the
// service can return it through its normal error path.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Msg
	}
	return strings.Join(msgs, ", ")
}

// StudentInput is the raw field set accepted for create and update.
// Field order matters: errors are reported in declaration order.
type StudentInput struct {
	Name    string `json:"name" validate:"min=3"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,phone"`
}

// messages maps failing fields to their fixed error messages.
var messages = map[string]string{
	"name":  "Name minimum 3 characters",
	"email": "Invalid email",
	"phone": "Phone: 7-15 digits",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the json field names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Tag "phone": digits only, 7-15 characters.
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// Student checks a raw input against the field rules.
//
// On success it returns the normalized input: name trimmed of surrounding
// whitespace, every other field passed through (absent fields are already
// empty strings after JSON decoding). On failure it returns a non-empty
// error list with every violation, in field order.
func Student(in StudentInput) (StudentInput, Errors) {
	in.Name = strings.TrimSpace(in.Name)

	err := validate.Struct(in)
	if err == nil {
		return in, nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Only possible with an invalid struct definition.
		panic(err)
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()]
		if !ok {
			msg = "Invalid " + fe.Field()
		}
		out = append(out, FieldError{
			Msg:      msg,
			Param:    fe.Field(),
			Location: "body",
		})
	}

	return StudentInput{}, out
}
