package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationFieldError รายละเอียด error ต่อ field
type ValidationFieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value,omitempty"`
}

// ValidateStruct ตรวจ struct ตาม validate tags
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors แปลง validator error เป็น field errors
func GetValidationErrors(err error) []ValidationFieldError {
	var fieldErrors []ValidationFieldError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range validationErrors {
			fieldErrors = append(fieldErrors, ValidationFieldError{
				Field: fieldErr.Field(),
				Tag:   fieldErr.Tag(),
				Value: fieldErr.Param(),
			})
		}
	}

	return fieldErrors
}
