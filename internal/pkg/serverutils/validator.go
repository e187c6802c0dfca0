package serverutils

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"ai-catalog-be/internal/apperror"
)

var validate = validator.New()

// ValidateRequest checks a bound request DTO against its validate tags.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Validation("invalid request body")
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fe.Field())
	}
	return apperror.Validation("invalid fields: %s", strings.Join(fields, ", "))
}
