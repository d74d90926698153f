package readstore

import (
	"context"

	"pcapi/internal/domain/user"
	"pcapi/internal/infra"
	"pcapi/internal/infra/repository"
	sqlc "pcapi/internal/infra/sqlc/generated"
	"pcapi/internal/pkg/pgconv"
	"pcapi/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAuthorizedUserView(row), nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.findByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	return toAuthorizedUserView(row), row.PasswordHash, nil
}

func (r *UserReadStore) FindAggregateByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return repository.UserFromRow(row)
}

func (r *UserReadStore) FindAggregateByEmail(ctx context.Context, email string) (*user.User, error) {
	row, err := r.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return repository.UserFromRow(row)
}

func (r *UserReadStore) findByID(ctx context.Context, id uuid.UUID) (sqlc.Users, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.Users{}, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return sqlc.Users{}, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return row, nil
}

func (r *UserReadStore) findByEmail(ctx context.Context, email string) (sqlc.Users, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.Users{}, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return sqlc.Users{}, infra.WrapRepoErr("failed to find user by email", err)
	}
	return row, nil
}

func toAuthorizedUserView(row sqlc.Users) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:             row.ID,
		Email:          row.Email,
		Role:           row.Role,
		FirstName:      row.FirstName.String,
		LastName:       row.LastName.String,
		DepartmentCode: row.DepartmentCode.String,
		IsActive:       row.IsActive,
	}
}
