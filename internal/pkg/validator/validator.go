package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - validates a struct against its validate tags
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - returns the validator for custom configuration
func GetValidator() *validator.Validate {
	return validate
}
