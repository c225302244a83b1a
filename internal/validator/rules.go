package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	zipCodeRe = regexp.MustCompile(`^\d{5}$`)
	otpCodeRe = regexp.MustCompile(`^\d{6}$`)
)

func registerCustomRules(v *validator.Validate) {
	_ = v.RegisterValidation("zipcode", func(fl validator.FieldLevel) bool {
		return zipCodeRe.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("otpcode", func(fl validator.FieldLevel) bool {
		return otpCodeRe.MatchString(fl.Field().String())
	})
}
