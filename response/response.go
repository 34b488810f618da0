package response

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

type SuccessResponse struct {
	Data any `json:"data"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse carries per-field messages for a 422.
type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// NewValidationError shapes a gin binding failure into field-level detail.
// Non-validator errors (malformed JSON, wrong types) fall back to a single
// body-level message.
func NewValidationError(err error) ValidationErrorResponse {
	out := ValidationErrorResponse{
		Message: "The given data was invalid.",
		Errors:  map[string][]string{},
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out.Errors["body"] = []string{err.Error()}
		return out
	}

	for _, fe := range verrs {
		field := snakeCase(fe.Field())
		out.Errors[field] = append(out.Errors[field], fieldMessage(field, fe))
	}
	return out
}

func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters.", field, fe.Param())
	case "max":
		return fmt.Sprintf("The %s field may not be greater than %s characters.", field, fe.Param())
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
