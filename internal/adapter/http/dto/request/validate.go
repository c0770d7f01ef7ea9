package request

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate runs struct-tag validation on a bound payload. Gin's binding
// covers JSON bodies; multipart forms are bound first and validated here.
func Validate(payload interface{}) error {
	return validate.Struct(payload)
}
