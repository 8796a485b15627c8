package utils

import (
	"medibook-client/internal/pkg/constvars"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	emailPattern = regexp.MustCompile(constvars.RegexEmail)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("booking_email", validateEmail)
	validate.RegisterValidation("trimmed_min", validateTrimmedMin)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func validateEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

// trimmed_min behaves like min but ignores surrounding whitespace.
func validateTrimmedMin(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len([]rune(strings.TrimSpace(fl.Field().String()))) >= limit
}
