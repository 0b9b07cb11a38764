package validator

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/podomus/clinic-api/pkg/errors"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return humanize(name)
	})
	return v
}

// Validate checks an input struct against its validate tags and returns a
// validation error naming the first offending field. It runs before any
// store access and has no side effects.
func Validate(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperrors.Validation(message(fieldErrs[0]))
	}
	return apperrors.Validation(err.Error())
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Valid email is required"
	case "gt":
		if fe.Param() == "0" {
			return fe.Field() + " must be positive"
		}
		return fe.Field() + " must be greater than " + fe.Param()
	case "oneof":
		return fe.Field() + " must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return fe.Field() + " is invalid"
	}
}

func humanize(name string) string {
	s := strings.ReplaceAll(name, "_", " ")
	r := []rune(s)
	if len(r) > 0 {
		r[0] = unicode.ToUpper(r[0])
	}
	return string(r)
}
