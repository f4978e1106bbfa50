package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/radieske/tinkazo-platform/internal/settlement"
)

// NewValidator registra as regras próprias dos payloads da API
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("score", func(fl validator.FieldLevel) bool {
		_, ok := settlement.ParseScore(fl.Field().String())
		return ok
	})
	return v
}
