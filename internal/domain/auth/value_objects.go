package auth

import (
	"pcapi/internal/domain/user"
	"pcapi/internal/pkg/errs"
	"pcapi/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrAccountInactive    = errs.New("account is inactive")
)

// Credentials are what a beneficiary, pro or admin types on the login form.
type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(email, plain string) (Credentials, error) {
	e, err := user.NewEmail(email)
	if err != nil {
		return Credentials{}, errs.Mark(err, ErrInvalidCredentials)
	}
	p, err := user.NewPassword(plain)
	if err != nil {
		return Credentials{}, errs.Mark(err, ErrInvalidCredentials)
	}
	return Credentials{email: e, password: p}, nil
}

func (c Credentials) Email() user.Email       { return c.email }
func (c Credentials) Password() user.Password { return c.password }

// StoredAccount is the part of a user row login needs.
type StoredAccount struct {
	PasswordHash string
	IsActive     bool
}

// Authenticate checks the password before the account state, so a
// deactivated account is only revealed to someone holding its password.
func (c Credentials) Authenticate(account *StoredAccount) error {
	if account == nil || account.PasswordHash == "" {
		return ErrInvalidCredentials
	}
	if err := password.ComparePassword(account.PasswordHash, c.password.Value()); err != nil {
		return ErrInvalidCredentials
	}
	if !account.IsActive {
		return ErrAccountInactive
	}
	return nil
}
