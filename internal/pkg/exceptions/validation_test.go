package exceptions

import (
	"errors"
	"medibook-client/internal/pkg/constvars"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestFormatFirstValidationError(t *testing.T) {
	validate := validator.New()

	t.Run("Nil Error", func(t *testing.T) {
		assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatFirstValidationError(nil))
	})

	t.Run("Not A Validation Error", func(t *testing.T) {
		assert.Equal(t, constvars.ErrDevInvalidInput, FormatFirstValidationError(errors.New("boom")))
	})

	t.Run("Field Message Wins", func(t *testing.T) {
		err := validate.Struct(struct {
			Password string `validate:"required,min=6"`
		}{Password: "123"})
		assert.Equal(t, constvars.ErrClientPasswordTooShort, FormatFirstValidationError(err))
	})

	t.Run("Only First Field Reported", func(t *testing.T) {
		err := validate.Struct(struct {
			Email    string `validate:"required"`
			Password string `validate:"required"`
		}{})
		assert.Equal(t, constvars.ErrClientInvalidEmail, FormatFirstValidationError(err))
	})

	t.Run("Generic Message With Param", func(t *testing.T) {
		err := validate.Struct(struct {
			Title string `validate:"max=3"`
		}{Title: "too long"})
		assert.Equal(t, "title maximum at 3 characters long", FormatFirstValidationError(err))
	})

	t.Run("Input Validation Error Carries Message", func(t *testing.T) {
		err := validate.Struct(struct {
			Email string `validate:"required"`
		}{})
		customErr := ErrInputValidation(err)
		assert.Equal(t, constvars.ErrClientInvalidEmail, customErr.ClientMessage)
		assert.Equal(t, KindValidation, KindOf(customErr))
	})
}
