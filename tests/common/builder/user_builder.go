//go:build unit || e2e

package builder

import (
	"time"

	"pcapi/internal/domain/user"
	sqlc "pcapi/internal/infra/sqlc/generated"
	"pcapi/internal/pkg/pgconv"
	"pcapi/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID             uuid.UUID
	Email          string
	PasswordHash   string
	Role           string
	FirstName      string
	LastName       string
	DateOfBirth    *time.Time
	PostalCode     string
	DepartmentCode string
	IDPieceNumber  *string
	IsActive       bool
	CreatedAt      time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "jeune@example.com",
		PasswordHash: "hashed_password",
		Role:         "user",
		IsActive:     true,
		CreatedAt:    time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.Reconstruct(user.ReconstructParams{
		ID:           u.ID,
		Email:        email,
		PasswordHash: u.PasswordHash,
		Role:         role,
		Identity: user.Identity{
			FirstName:      u.FirstName,
			LastName:       u.LastName,
			DateOfBirth:    u.DateOfBirth,
			PostalCode:     u.PostalCode,
			DepartmentCode: u.DepartmentCode,
			IDPieceNumber:  u.IDPieceNumber,
		},
		IsEmailValidated: u.Role != "user",
		IsActive:         u.IsActive,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.CreatedAt,
	}), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	return sqlc.Users{
		ID:               u.ID,
		Email:            u.Email,
		PasswordHash:     u.PasswordHash,
		Role:             u.Role,
		FirstName:        pgtype.Text{String: u.FirstName, Valid: u.FirstName != ""},
		LastName:         pgtype.Text{String: u.LastName, Valid: u.LastName != ""},
		DateOfBirth:      pgconv.DatePtrToPgtype(u.DateOfBirth),
		PostalCode:       pgtype.Text{String: u.PostalCode, Valid: u.PostalCode != ""},
		DepartmentCode:   pgtype.Text{String: u.DepartmentCode, Valid: u.DepartmentCode != ""},
		IdPieceNumber:    pgconv.StringPtrToPgtype(u.IDPieceNumber),
		IsEmailValidated: u.Role != "user",
		IsActive:         u.IsActive,
		CreatedAt:        pgconv.TimeToPgtype(u.CreatedAt),
		UpdatedAt:        pgconv.TimeToPgtype(u.CreatedAt),
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsActive:  u.IsActive,
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

// AsBeneficiary fills the identity a subscribed beneficiary carries.
func (u *UserBuilder) AsBeneficiary(dateOfBirth time.Time) *UserBuilder {
	u.Role = "beneficiary"
	u.FirstName = "Jeanne"
	u.LastName = "Doux"
	u.DateOfBirth = &dateOfBirth
	u.PostalCode = "75011"
	u.DepartmentCode = "75"
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
