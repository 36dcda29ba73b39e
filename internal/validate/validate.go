package validate

import (
	"github.com/go-playground/validator/v10"
)

// Validator plugs go-playground/validator into echo's Validator slot.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
