package helper

import (
	"github.com/go-playground/validator/v10"
)

// one shared instance; validator.Validate is safe for concurrent use
var validate = validator.New()

// ValidateStruct runs the validate tags on a request/DTO struct.
// Callers must run this before any create/update reaches the tree
// or workflow operations; failures are reported, never corrected.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidationMessages flattens validator.ValidationErrors into a
// field → failed-tag map for caller-facing reporting.
func ValidationMessages(err error) map[string]string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
