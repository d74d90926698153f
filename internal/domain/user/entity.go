package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCannotUpgradeRole = errors.New("user cannot be upgraded to the requested beneficiary role")
	ErrMissingIdentity   = errors.New("first name, last name and birth date are required")
)

type User struct {
	id               uuid.UUID
	email            Email
	passwordHash     string
	role             Role
	identity         Identity
	isEmailValidated bool
	isActive         bool
	lastLogin        *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

// Identity is what the identity check provider told us about the person.
type Identity struct {
	FirstName      string
	LastName       string
	DateOfBirth    *time.Time
	PostalCode     string
	DepartmentCode string
	IDPieceNumber  *string
}

func NewUser(email Email, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

type ReconstructParams struct {
	ID               uuid.UUID
	Email            Email
	PasswordHash     string
	Role             Role
	Identity         Identity
	IsEmailValidated bool
	IsActive         bool
	LastLogin        *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func Reconstruct(p ReconstructParams) *User {
	return &User{
		id:               p.ID,
		email:            p.Email,
		passwordHash:     p.PasswordHash,
		role:             p.Role,
		identity:         p.Identity,
		isEmailValidated: p.IsEmailValidated,
		isActive:         p.IsActive,
		lastLogin:        p.LastLogin,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
	}
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) Email() Email           { return u.email }
func (u *User) PasswordHash() string   { return u.passwordHash }
func (u *User) Role() Role             { return u.role }
func (u *User) Identity() Identity     { return u.identity }
func (u *User) IsEmailValidated() bool { return u.isEmailValidated }
func (u *User) LastLogin() *time.Time  { return u.lastLogin }
func (u *User) IsActive() bool         { return u.isActive }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) UpdatedAt() time.Time   { return u.updatedAt }

// CanUpgradeBeneficiaryRole: a plain account can take any grant, an
// underage beneficiary can move on to the 18 years old grant.
func (u *User) CanUpgradeBeneficiaryRole(e Eligibility) bool {
	if !u.isActive {
		return false
	}
	switch e {
	case EligibilityAge18:
		return u.role == RoleUser || u.role == RoleUnderageBeneficiary
	case EligibilityUnderage:
		return u.role == RoleUser
	default:
		return false
	}
}

func (u *User) UpgradeToBeneficiary(e Eligibility, identity Identity, now time.Time) error {
	if !u.CanUpgradeBeneficiaryRole(e) {
		return ErrCannotUpgradeRole
	}
	if identity.FirstName == "" || identity.LastName == "" || identity.DateOfBirth == nil {
		return ErrMissingIdentity
	}
	u.role = e.BeneficiaryRole()
	u.identity = identity
	u.isEmailValidated = true
	u.updatedAt = now
	return nil
}
