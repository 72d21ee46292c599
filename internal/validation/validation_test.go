package validation

import (
	"strings"
	"testing"

	"teamboard/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "ana@uaemex.mx", false},
		{"surrounding space", "  ana@uaemex.mx ", false},
		{"empty", "", true},
		{"no at", "ana.uaemex.mx", true},
		{"too long", strings.Repeat("a", 250) + "@x.mx", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email(tt.email)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.HasCode(err, errors.ErrValidationFailed))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPassword(t *testing.T) {
	assert.Error(t, Password(""))
	assert.NoError(t, Password(strings.Repeat("x", 100)))
	assert.Error(t, Password(strings.Repeat("x", 2000)))
}

func TestPortNumber(t *testing.T) {
	assert.NoError(t, PortNumber("port", 8000))
	assert.Error(t, PortNumber("port", 0))
	assert.Error(t, PortNumber("port", 70000))
}

type loginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func TestStructUsesJSONNames(t *testing.T) {
	err := Struct(loginBody{Email: "nope", Password: "x"})
	require.Error(t, err)
	te, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, "email: must be a valid email address", te.Details)

	err = NewEchoValidator().Validate(loginBody{Email: "a@b.mx"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password: is required")

	assert.NoError(t, Struct(loginBody{Email: "a@b.mx", Password: "x"}))
}
