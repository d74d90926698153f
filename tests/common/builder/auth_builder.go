//go:build unit || e2e

package builder

import (
	reqdto "pcapi/internal/handler/dto/request"
)

// AuthBuilder defaults to the seeded beneficiary's login.
type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{Email: "jeune@example.com", Password: "password123"}
}

func (a *AuthBuilder) WithCredentials(email, password string) *AuthBuilder {
	a.Email, a.Password = email, password
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: a.Email, Password: a.Password}
}
