package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/temucosoft/retail-backend/internal/domain/shared/valueobject"
)

// SetupValidator configures gin's validator with JSON field names in error
// messages and the custom `rut` tag for Chilean tax IDs.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	_ = v.RegisterValidation("rut", func(fl validator.FieldLevel) bool {
		return valueobject.ValidateRUT(fl.Field().String()) == nil
	})
}
