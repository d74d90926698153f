package user

import (
	"net/mail"
	"strings"

	"pcapi/internal/pkg/errs"
)

var (
	ErrInvalidEmail       = errs.New("invalid email format")
	ErrInvalidRole        = errs.New("invalid role")
	ErrInvalidEligibility = errs.New("invalid eligibility")
	ErrPasswordTooWeak    = errs.New("password must be at least 8 characters long")
)

const minPasswordLength = 8

// Email is stored lower-cased so uniqueness checks are case insensitive.
// Display names ("Jeanne <jeanne@example.com>") are rejected.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || !strings.Contains(s[strings.LastIndexByte(s, '@')+1:], ".") {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Password is a plain text password in transit. It is never stored or logged.
type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < minPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

func (p Password) String() string {
	return "********"
}
