package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// SingleLine rejects values that would break a semicolon separated row.
const SingleLine = "singleline"

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation(SingleLine, func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), ";\r\n")
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
