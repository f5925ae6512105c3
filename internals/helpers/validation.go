package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationMap converts validator.v10 errors into the per-field error shape
// used by JsonValidationError. Non-validator errors produce a single
// "request" entry.
func ValidationMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["request"] = []string{"invalid input"}
		return out
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "email":
			msg = "must be a valid email address"
		case "min":
			msg = "must be at least " + fe.Param() + " characters"
		case "max":
			msg = "must be at most " + fe.Param() + " characters"
		case "oneof":
			msg = "must be one of: " + fe.Param()
		case "url":
			msg = "must be a valid URL"
		case "gte":
			msg = "must be >= " + fe.Param()
		case "uuid":
			msg = "must be a valid UUID"
		default:
			msg = "is invalid"
		}
		out[field] = append(out[field], msg)
	}
	return out
}
