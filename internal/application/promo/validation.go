package promo

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/velocitynoir/storefront/internal/domain/shared"
)

// newValidator configures a validator that reports JSON field names
// in error messages.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationDetail describes a single failed field.
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validateStruct runs struct validation and converts failures into a
// DomainError whose message lists every offending field.
func validateStruct(v *validator.Validate, req any) ([]ValidationDetail, error) {
	err := v.Struct(req)
	if err == nil {
		return nil, nil
	}

	var details []ValidationDetail
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			details = append(details, ValidationDetail{
				Field:   e.Field(),
				Message: getValidationMessage(e),
			})
		}
	}

	fields := make([]string, 0, len(details))
	for _, d := range details {
		fields = append(fields, d.Field)
	}
	return details, shared.NewDomainError(
		"INVALID_INPUT",
		"Please fill in all required fields: "+strings.Join(fields, ", "),
	)
}

// getValidationMessage returns a human-readable validation message
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return "Must be at least " + e.Param()
	case "max":
		return "Must be at most " + e.Param()
	case "oneof":
		return "Must be one of: " + e.Param()
	default:
		return "Invalid value"
	}
}
