//go:build unit

package auth_test

import (
	"testing"

	"pcapi/internal/domain/auth"
	"pcapi/internal/domain/user"
	"pcapi/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewCredentials(t *testing.T) {
	t.Run("email is normalised", func(t *testing.T) {
		c, err := auth.NewCredentials("  Jeune@Example.com ", "password123")
		require.NoError(t, err)
		assert.Equal(t, "jeune@example.com", c.Email().Value())
		assert.Equal(t, "password123", c.Password().Value())
	})

	t.Run("bad email", func(t *testing.T) {
		_, err := auth.NewCredentials("nope", "password123")
		assert.True(t, errs.Is(err, auth.ErrInvalidCredentials))
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("display name is not an email", func(t *testing.T) {
		_, err := auth.NewCredentials("Jeanne <jeune@example.com>", "password123")
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := auth.NewCredentials("jeune@example.com", "short")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	right, err := auth.NewCredentials("jeune@example.com", "password123")
	require.NoError(t, err)
	wrong, err := auth.NewCredentials("jeune@example.com", "password124")
	require.NoError(t, err)

	tests := []struct {
		name    string
		creds   auth.Credentials
		account *auth.StoredAccount
		want    error
	}{
		{name: "match", creds: right, account: &auth.StoredAccount{PasswordHash: string(hash), IsActive: true}},
		{name: "wrong password", creds: wrong, account: &auth.StoredAccount{PasswordHash: string(hash), IsActive: true}, want: auth.ErrInvalidCredentials},
		{name: "no account", creds: right, want: auth.ErrInvalidCredentials},
		{name: "subscribed without password", creds: right, account: &auth.StoredAccount{IsActive: true}, want: auth.ErrInvalidCredentials},
		{name: "inactive with the right password", creds: right, account: &auth.StoredAccount{PasswordHash: string(hash)}, want: auth.ErrAccountInactive},
		{name: "inactive with a wrong password", creds: wrong, account: &auth.StoredAccount{PasswordHash: string(hash)}, want: auth.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Authenticate(tt.account)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPasswordIsRedacted(t *testing.T) {
	p, err := user.NewPassword("password123")
	require.NoError(t, err)
	assert.NotContains(t, p.String(), "password123")
}
