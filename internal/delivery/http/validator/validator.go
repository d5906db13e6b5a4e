// Package validator plugs go-playground/validator into echo.
package validator

import (
	"reflect"
	"strings"

	"koerplan/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports JSON field names
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &Validator{validate: v}
}

// Validate validates a request struct
func (v *Validator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}

// FieldErrors lists the JSON names of the fields that failed validation
func FieldErrors(err error) []string {
	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return nil
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fe.Field())
	}

	return fields
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}

	return name
}
