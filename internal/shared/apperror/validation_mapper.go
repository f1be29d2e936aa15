package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, field+" is required", http.StatusBadRequest)
}

func RequiredFields(fields []string) *AppError {
	return New(CodeInvalidInput, joinFields(fields)+" are required", http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, field+" is invalid", http.StatusBadRequest)
}

// formatFieldName turns a snake_case wire name into a readable label.
// Fields tagged in the legacy PascalCase style pass through unchanged.
func formatFieldName(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// joinFields renders "A", "A and B", "A, B, and C".
func joinFields(fields []string) string {
	switch len(fields) {
	case 1:
		return fields[0]
	case 2:
		return fields[0] + " and " + fields[1]
	default:
		return strings.Join(fields[:len(fields)-1], ", ") + ", and " + fields[len(fields)-1]
	}
}

// MapValidationError converts a gin binding failure into a 400 AppError
// naming every missing field, so no query runs on incomplete input.
// Anything that is not a validator.ValidationErrors collapses to a generic
// invalid-input error.
func MapValidationError(err error) *AppError {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return New(CodeInvalidInput, "Invalid input", http.StatusBadRequest)
	}

	var missing []string
	for _, e := range errs {
		if e.Tag() == "required" {
			missing = append(missing, formatFieldName(e.Field()))
		}
	}

	switch len(missing) {
	case 0:
		return InvalidField(formatFieldName(errs[0].Field()))
	case 1:
		return RequiredField(missing[0])
	default:
		return RequiredFields(missing)
	}
}
