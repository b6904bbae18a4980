package validation_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/omaroid/user-service/pkg/validation"
)

func TestMessage(t *testing.T) {
	assert.Empty(t, validation.Message(nil))

	var syntaxErr error = &json.SyntaxError{}
	assert.Equal(t, "Invalid JSON format", validation.Message(syntaxErr))

	var typeErr error = &json.UnmarshalTypeError{}
	assert.Equal(t, "Invalid JSON format", validation.Message(typeErr))

	assert.Equal(t, "Invalid request format", validation.Message(errors.New("EOF")))
}

func TestMessage_ValidationErrors(t *testing.T) {
	type payload struct {
		Name string `json:"name" validate:"required"`
	}

	v := validator.New()
	err := v.Struct(payload{})
	assert.Contains(t, validation.Message(err), "is required")
}
