package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator. It satisfies echo.Validator and
// additionally reports errors per form field.
type Validator struct {
	v *validator.Validate
}

// NewValidator returns a Validator that names fields after their `form` tag.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	return &Validator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (fv *Validator) Validate(i any) error {
	errs := fv.Check(i)
	if !errs.Any() {
		return nil
	}
	return errs
}

// Check validates i and returns the failures keyed by form field.
func (fv *Validator) Check(i any) Errors {
	errs := Errors{}
	if err := fv.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			errs.Add(NonFieldErrors, err.Error())
			return errs
		}
		for _, fe := range ve {
			errs.Add(fe.Field(), fieldError(fe))
		}
	}
	return errs
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	case "datetime":
		return "Enter a valid date."
	default:
		return fmt.Sprintf("Invalid value (%s).", fe.Tag())
	}
}
