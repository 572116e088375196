package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"mystore/internal/core/apperror"
	"mystore/internal/core/types"
	"mystore/internal/infrastructure/http/v1/dto"
)

var validate = validator.New()

func init() {
	// Money fields are compared as numbers by gt/min rules.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(types.Amount); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, types.Amount{})

	// Report failing fields by their JSON/query names.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
}

// validationError maps validator output to a VALIDATION_ERROR with one
// entry per failed field.
func validationError(message string, err error) *apperror.AppError {
	appErr := apperror.NewValidation(message)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return appErr.WithDetail("error", err.Error())
	}

	fields := make([]dto.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, dto.FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return appErr.WithDetail("fields", fields)
}
