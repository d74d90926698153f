package request

import (
	"pcapi/internal/domain/auth"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jeune@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"password123"`
}

// ToDomain applies the domain email rules on top of the binding checks.
func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

// RefreshRequest is only read when the refresh cookie is absent.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token,omitempty"`
}
