package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	yearPattern  = regexp.MustCompile(`^\d{4}$`)
	monthPattern = regexp.MustCompile(`^[A-Z][a-z]+$`)
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance with the timeline-specific
// validations registered
func New() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("timeline_year", func(fl validator.FieldLevel) bool {
		return yearPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("timeline_month", func(fl validator.FieldLevel) bool {
		return monthPattern.MatchString(fl.Field().String())
	})
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
