package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TranslateValidationError turns validator tag failures into messages fit for
// an API response.
func TranslateValidationError(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}

	var messages []string
	for _, fe := range ve {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "email":
			messages = append(messages, "invalid email format")
		case "min":
			messages = append(messages, field+" must be at least "+fe.Param()+" characters")
		case "max":
			messages = append(messages, field+" must be at most "+fe.Param()+" characters")
		case "oneof":
			messages = append(messages, field+" must be one of: "+fe.Param())
		case "len":
			messages = append(messages, field+" must be exactly "+fe.Param()+" characters")
		case "numeric":
			messages = append(messages, field+" must contain only numbers")
		case "datetime":
			messages = append(messages, field+" must be a date in YYYY-MM-DD format")
		default:
			messages = append(messages, field+" is invalid")
		}
	}
	return strings.Join(messages, ", ")
}
