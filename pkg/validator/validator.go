package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("persona", validatePersona)
	v.RegisterValidation("taskfilter", validateTaskFilter)
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

func validatePersona(fl validator.FieldLevel) bool {
	return entities.UserPersona(fl.Field().String()).IsValid()
}

func validateTaskFilter(fl validator.FieldLevel) bool {
	return entities.TaskFilter(fl.Field().String()).IsValid()
}
