package validation

import (
	"github.com/go-playground/validator/v10"
)

// interviewStyles enumerates the supported interviewer personas.
var interviewStyles = map[string]bool{
	"behavioral": true,
	"technical":  true,
}

// ValidateInterviewStyle checks that a style names a known persona.
func ValidateInterviewStyle(fl validator.FieldLevel) bool {
	return interviewStyles[fl.Field().String()]
}

// RegisterInterviewValidators registers all interview-related custom validators
func RegisterInterviewValidators(v *validator.Validate) {
	v.RegisterValidation("interview_style", ValidateInterviewStyle)
}
