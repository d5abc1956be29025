package utils

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateStruct checks a request DTO against its validate tags and returns a
// field -> message map suitable for ValidationError.
func ValidateStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, fieldErr := range err.(validator.ValidationErrors) {
		errors[fieldErr.Field()] = "failed on " + fieldErr.Tag()
	}
	return errors
}
