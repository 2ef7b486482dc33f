package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	ierr "github.com/thetrinh16698/coding-test-The-Trinh/internal/errors"
)

// Validator checks request structs against their validate tags. Field paths in
// reported details use json names, e.g. "cart.lines[0].quantity".
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	return &Validator{validate: validate}
}

// Struct validates req and returns an ierr.ErrValidation carrying one detail per
// failed field
func (v *Validator) Struct(req interface{}) error {
	if v == nil || v.validate == nil {
		return ierr.NewError("validator not initialized").
			WithHint("Validator must be initialized before using it").
			Mark(ierr.ErrSystem)
	}

	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	details := make(map[string]any)
	var validateErrs validator.ValidationErrors
	if ierr.As(err, &validateErrs) {
		for _, fe := range validateErrs {
			details[fieldPath(fe)] = fe.Error()
		}
	}
	return ierr.WithError(err).
		WithHint("Request validation failed").
		WithReportableDetails(details).
		Mark(ierr.ErrValidation)
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

// fieldPath drops the root type name from the namespace
func fieldPath(fe validator.FieldError) string {
	if _, path, found := strings.Cut(fe.Namespace(), "."); found {
		return path
	}
	return fe.Namespace()
}
