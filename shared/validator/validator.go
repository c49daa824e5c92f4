package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	val "github.com/go-playground/validator/v10"

	"luxeroom/shared/failure"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
}

// Validate reads from the given io.Reader into the given struct, and then
// performs validation on the struct using the validator package.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// ValidateStruct validates a struct based on its validation tags and returns a
// bad-request failure listing every violated field.
func ValidateStruct(data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(val.ValidationErrors)
	if !ok {
		return failure.BadRequest(err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, messageFor(fieldError))
	}

	return failure.BadRequestFromString(strings.Join(messages, "; "))
}

func messageFor(fieldError val.FieldError) string {
	field := fieldError.Field()

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fieldError.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fieldError.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldError.Param())
	case "datetime":
		return fmt.Sprintf("%s must match the %s format", field, fieldError.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", field, fieldError.Tag())
	}
}
