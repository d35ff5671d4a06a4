package handlers

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerCustomValidations installs custom binding validations on gin's
// validator engine. Safe to call more than once.
func registerCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("businessdate", validateBusinessDate)
}

// validateBusinessDate accepts dates in YYYY-MM-DD form, the format used by
// the cash register endpoints.
func validateBusinessDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
