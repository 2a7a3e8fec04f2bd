package utils

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gin's binding validator reads the `binding` tag.
type sampleBindingRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token" binding:"required,uuid"`
}

func bindingValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v
}

func TestFormatFieldErrors_UsesJSONFieldNames(t *testing.T) {
	err := bindingValidator(t).Struct(sampleBindingRequest{})
	require.Error(t, err)

	validationErrors, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	msg := formatFieldErrors(validationErrors)
	assert.Contains(t, msg, "name is required")
	assert.Contains(t, msg, "email is required")
	assert.Contains(t, msg, "token is required")
}

func TestFormatFieldErrors_TagMessages(t *testing.T) {
	err := bindingValidator(t).Struct(sampleBindingRequest{
		Name:  "ok",
		Email: "not-an-email",
		Token: "not-a-uuid",
	})
	require.Error(t, err)

	validationErrors, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	msg := formatFieldErrors(validationErrors)
	assert.Contains(t, msg, "email must be a valid email address")
	assert.Contains(t, msg, "token must be a valid UUID")
}
