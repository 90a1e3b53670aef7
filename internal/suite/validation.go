package suite

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	vowerrors "github.com/alexisbeaulieu97/vow/pkg/errors"
)

// Validate performs schema and cross-field validation on a suite.
func Validate(s *Suite) error {
	if s == nil {
		return vowerrors.NewSuiteError("", "suite is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(s); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(s.Contracts))
	for _, spec := range s.Contracts {
		if _, exists := seen[spec.ID]; exists {
			return vowerrors.NewSuiteError("", fmt.Sprintf("duplicate contract id %q", spec.ID), nil)
		}
		seen[spec.ID] = struct{}{}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return vowerrors.NewSuiteError("", msg, err)
	}

	return vowerrors.NewSuiteError("", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
