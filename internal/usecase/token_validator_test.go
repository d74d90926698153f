//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"pcapi/internal/domain/user"
	"pcapi/internal/pkg/jwt"
	"pcapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateToken(t *testing.T) {
	svc := jwt.NewService("test-secret-key", 15*time.Minute, time.Hour)
	validator := usecase.NewTokenValidator(svc)
	userID := uuid.New()

	t.Run("access token", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID, user.RoleBeneficiary)
		require.NoError(t, err)

		gotID, role, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, gotID)
		assert.Equal(t, user.RoleBeneficiary, role)
	})

	t.Run("refresh token is refused", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(userID, user.RoleBeneficiary)
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		other := jwt.NewService("another-secret", 15*time.Minute, time.Hour)
		token, err := other.GenerateAccessToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, _, err := validator.ValidateToken("not-a-jwt")
		assert.Error(t, err)
	})
}
