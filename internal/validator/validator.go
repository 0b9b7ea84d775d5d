// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("obligation_kind", validateObligationKind)
		_ = v.RegisterValidation("recurring_frequency", validateRecurringFrequency)
	}
}

func validateObligationKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "expense", "income":
		return true
	}
	return false
}

// validateRecurringFrequency accepts the canonical units plus the aliases
// still present in records imported from the previous system.
func validateRecurringFrequency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "days", "weeks", "months", "years",
		"monthly", "quarterly", "biannually", "annually":
		return true
	}
	return false
}
