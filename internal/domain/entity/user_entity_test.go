package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omaroid/user-service/internal/domain/entity"
)

func TestNewUserID(t *testing.T) {
	id, err := entity.NewUserID(1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, id.Int64())

	for _, v := range []int64{0, -1, -100} {
		_, err := entity.NewUserID(v)
		assert.EqualError(t, err, "User ID must be positive", "value %d", v)
	}
}

func TestNewEmail(t *testing.T) {
	email, err := entity.NewEmail("john@example.com")
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", email.String())

	for _, v := range []string{"", "   ", "\t"} {
		_, err := entity.NewEmail(v)
		assert.EqualError(t, err, "Email cannot be blank", "value %q", v)
	}

	_, err = entity.NewEmail("missing-at-symbol.com")
	assert.EqualError(t, err, "Email must contain @ symbol")
}

func TestNewEmail_ShallowValidationOnly(t *testing.T) {
	// Anything with an @ passes; the check is deliberately weak.
	for _, v := range []string{"a@b", "@", "x@@y", "weird @ spacing"} {
		_, err := entity.NewEmail(v)
		assert.NoError(t, err, "value %q", v)
	}
}
