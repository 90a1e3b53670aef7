package suite

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	contractIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
	fieldPathPattern  = regexp.MustCompile(`^[A-Za-z0-9_-]+(\.[A-Za-z0-9_-]+)*$`)
)

// validatorInstance configures and returns the shared validator instance
// used across the suite package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("contract_id", func(fl validator.FieldLevel) bool {
			return contractIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("field_path", func(fl validator.FieldLevel) bool {
			return fieldPathPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}
