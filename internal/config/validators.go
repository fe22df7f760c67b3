package config

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// newValidator builds the validator with the custom "exclusive" rule
// registered.
func newValidator() (*validator.Validate, error) {
	validate := validator.New()

	if err := validate.RegisterValidation("exclusive", validateExclusive); err != nil {
		return nil, fmt.Errorf("registering exclusive validation: %w", err)
	}

	return validate, nil
}

// validateExclusive checks if two fields are mutually exclusive.
// Returns false if both fields have non-empty values.
func validateExclusive(fl validator.FieldLevel) bool {
	otherFieldName := fl.Param()
	field := fl.Field()

	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}

	otherField := parent.FieldByName(otherFieldName)

	if !field.IsValid() || !otherField.IsValid() {
		return true
	}

	if field.Kind() == reflect.String && otherField.Kind() == reflect.String {
		currentValue := field.String()
		otherValue := otherField.String()

		return !(currentValue != "" && otherValue != "")
	}

	return true
}
