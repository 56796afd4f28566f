package models

import (
	"fmt"
	"sync"

	"github.com/dmitrijs2005/coordinet/internal/common"
	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the struct tags of a New* input. Failures wrap
// common.ErrValidation.
func Validate(v any) error {
	if err := validatorInstance().Struct(v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return nil
}
