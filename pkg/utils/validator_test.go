package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	type loginForm struct {
		Username string `validate:"required,min=1,max=100"`
		Password string `validate:"required"`
	}

	assert.NoError(t, ValidateStruct(&loginForm{Username: "admin", Password: "x"}))

	err := ValidateStruct(&loginForm{Username: "admin"})
	require.Error(t, err)

	fieldErrors := GetValidationErrors(err)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "Password", fieldErrors[0].Field)
	assert.Equal(t, "required", fieldErrors[0].Tag)
}
