package usecase

import (
	"pcapi/internal/domain/user"
	"pcapi/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves a bearer token to the caller for the auth middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

// accessTokenValidator accepts access tokens only. Refresh tokens open
// nothing but the refresh endpoint, which parses them itself.
type accessTokenValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &accessTokenValidator{jwt: jwtService}
}

func (v *accessTokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwt.ValidateToken(tokenString)
	switch {
	case err != nil:
		return uuid.Nil, "", err
	case claims.TokenType != jwt.TokenTypeAccess, claims.UserID == uuid.Nil:
		return uuid.Nil, "", jwt.ErrInvalidToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}
	return claims.UserID, role, nil
}
