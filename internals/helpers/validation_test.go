package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email string `json:"email" validate:"required,email"`
	Size  string `json:"size" validate:"omitempty,oneof=small large"`
	Bio   string `json:"bio" validate:"max=5"`
}

func TestValidationError(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(sample{Email: "a@b.co"}))

	err := v.Struct(sample{Email: "nope", Size: "huge", Bio: "too long"})
	appErr := ValidationError(err)
	assert.Equal(t, KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Message, "email must be a valid email address")
	assert.Contains(t, appErr.Message, "size must be one of [small large]")
	assert.Contains(t, appErr.Message, "bio must be at most 5")

	err = v.Struct(sample{})
	assert.Contains(t, ValidationError(err).Message, "email is required")
}
