// Package validator installs the custom binding rules used by the request
// DTOs.
package validator

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register adds the "bit" rule to gin's binding engine. The completion
// flag is represented as 0/1 on the wire and must never hold another
// value.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("bit", func(fl validator.FieldLevel) bool {
		n := fl.Field().Int()
		return n == 0 || n == 1
	})
}
