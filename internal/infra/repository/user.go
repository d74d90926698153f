package repository

import (
	"context"

	"pcapi/internal/domain/user"
	"pcapi/internal/infra"
	sqlc "pcapi/internal/infra/sqlc/generated"
	"pcapi/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	UpdateUserBeneficiary(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserBeneficiaryParams) error
	FindUserByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	id := u.Identity()
	params := sqlc.CreateUserParams{
		ID:               u.ID(),
		Email:            u.Email().Value(),
		PasswordHash:     u.PasswordHash(),
		Role:             u.Role().String(),
		FirstName:        optionalText(id.FirstName),
		LastName:         optionalText(id.LastName),
		DateOfBirth:      pgconv.DatePtrToPgtype(id.DateOfBirth),
		PostalCode:       optionalText(id.PostalCode),
		DepartmentCode:   optionalText(id.DepartmentCode),
		IdPieceNumber:    pgconv.StringPtrToPgtype(id.IDPieceNumber),
		IsEmailValidated: u.IsEmailValidated(),
		IsActive:         u.IsActive(),
		CreatedAt:        pgconv.TimeToPgtype(u.CreatedAt()),
	}

	if err := r.queries.CreateUser(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateBeneficiary(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	id := u.Identity()
	params := sqlc.UpdateUserBeneficiaryParams{
		ID:               u.ID(),
		Role:             u.Role().String(),
		FirstName:        optionalText(id.FirstName),
		LastName:         optionalText(id.LastName),
		DateOfBirth:      pgconv.DatePtrToPgtype(id.DateOfBirth),
		PostalCode:       optionalText(id.PostalCode),
		DepartmentCode:   optionalText(id.DepartmentCode),
		IdPieceNumber:    pgconv.StringPtrToPgtype(id.IDPieceNumber),
		IsEmailValidated: u.IsEmailValidated(),
		UpdatedAt:        pgconv.TimeToPgtype(u.UpdatedAt()),
	}

	if err := r.queries.UpdateUserBeneficiary(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	return nil
}

func (r *UserRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.FindUserByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock user", err)
	}
	return UserFromRow(row)
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	if err := r.queries.UpdateUserLastLogin(ctx, tx, userID); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

// UserFromRow rebuilds the aggregate from a users row.
func UserFromRow(row sqlc.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted user email", err)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted user role", err)
	}

	return user.Reconstruct(user.ReconstructParams{
		ID:           row.ID,
		Email:        email,
		PasswordHash: row.PasswordHash,
		Role:         role,
		Identity: user.Identity{
			FirstName:      row.FirstName.String,
			LastName:       row.LastName.String,
			DateOfBirth:    pgconv.DatePtrFromPgtype(row.DateOfBirth),
			PostalCode:     row.PostalCode.String,
			DepartmentCode: row.DepartmentCode.String,
			IDPieceNumber:  pgconv.StringPtrFromPgtype(row.IdPieceNumber),
		},
		IsEmailValidated: row.IsEmailValidated,
		IsActive:         row.IsActive,
		LastLogin:        pgconv.TimePtrFromPgtype(row.LastLogin),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func optionalText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
