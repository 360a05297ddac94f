// file: internals/helpers/validator.go
package helper

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// NewValidator reports json field names and knows the hex6 rule.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("hex6", func(fl validator.FieldLevel) bool {
		return hexColorRe.MatchString(fl.Field().String())
	})
	return v
}

// ValidateStruct runs the struct tags of s and reports the first failing
// field as a ValidationError.
func ValidateStruct(v *validator.Validate, s any) error {
	return FirstValidationError(v.Struct(s))
}

// FirstValidationError converts validator output into a ValidationError;
// other errors pass through unchanged.
func FirstValidationError(err error) error {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return err
	}
	fe := ve[0]
	return &ValidationError{Field: fe.Field(), Message: validationMessage(fe.Field(), fe.Tag(), fe.Param())}
}

// ValidationErrorsMap flattens validator errors to {field: [msg]}.
func ValidationErrorsMap(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["non_field_errors"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		field := fe.Field()
		out[field] = append(out[field], validationMessage(field, fe.Tag(), fe.Param()))
	}
	return out
}

func validationMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "hex6":
		return fmt.Sprintf("%s must be a #RRGGBB hex color", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
