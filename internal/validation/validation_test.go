package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestStruct_Valid(t *testing.T) {
	t.Parallel()

	err := Struct(registerPayload{Name: "Alice", Email: "alice@x.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestStruct_FirstViolationMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload registerPayload
		message string
	}{
		{
			name:    "missing name",
			payload: registerPayload{Email: "alice@x.com", Password: "secret1"},
			message: "name is required",
		},
		{
			name:    "bad email",
			payload: registerPayload{Name: "Alice", Email: "not-an-email", Password: "secret1"},
			message: "email must be a valid email",
		},
		{
			name:    "short password",
			payload: registerPayload{Name: "Alice", Email: "alice@x.com", Password: "abc"},
			message: "password must be at least 6 characters",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Struct(tc.payload)
			require.Error(t, err)
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

func TestStruct_EnumAndRange(t *testing.T) {
	t.Parallel()

	type gearPayload struct {
		Type  string   `json:"type" validate:"required,oneof=guitar bass amp"`
		Year  *int     `json:"year" validate:"omitempty,gte=1900,notfutureyear"`
		Price *float64 `json:"price" validate:"omitempty,gte=0"`
	}

	err := Struct(gearPayload{Type: "banjo"})
	require.Error(t, err)
	assert.Equal(t, "type must be one of [guitar bass amp]", err.Error())

	early := 1850
	err = Struct(gearPayload{Type: "guitar", Year: &early})
	require.Error(t, err)
	assert.Equal(t, "year must be 1900 or greater", err.Error())

	future := time.Now().Year() + 1
	err = Struct(gearPayload{Type: "guitar", Year: &future})
	require.Error(t, err)
	assert.Equal(t, "year cannot be in the future", err.Error())

	negative := -10.0
	err = Struct(gearPayload{Type: "guitar", Price: &negative})
	require.Error(t, err)
	assert.Equal(t, "price must be 0 or greater", err.Error())

	current := time.Now().Year()
	zero := 0.0
	assert.NoError(t, Struct(gearPayload{Type: "guitar", Year: &current, Price: &zero}))
}
