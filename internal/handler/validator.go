package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/GLATools_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Names are parsed the same way the calculators parse them
	_ = v.RegisterValidation("tier", validateKey(func(s string) error { _, err := domain.ParsePotionTier(s); return err }))
	_ = v.RegisterValidation("slot", validateKey(func(s string) error { _, err := domain.ParseSlot(s); return err }))
	_ = v.RegisterValidation("tab", validateKey(func(s string) error { _, err := domain.ParseTab(s); return err }))

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required", "required_without":
			errs[field] = "This field is required"
		case "tier":
			errs[field] = "Invalid potion tier"
		case "slot":
			errs[field] = "Invalid equipment slot"
		case "tab":
			errs[field] = "Invalid tab"
		case "max", "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min", "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validateKey accepts empty values so optional names fall back to their defaults
func validateKey(parse func(string) error) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		return parse(s) == nil
	}
}
