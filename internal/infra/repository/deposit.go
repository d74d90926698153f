package repository

import (
	"context"

	"pcapi/internal/domain/booking"
	"pcapi/internal/infra"
	sqlc "pcapi/internal/infra/sqlc/generated"
	"pcapi/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DepositWriteQueries interface {
	CreateDeposit(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDepositParams) error
	FindLatestDepositByUserForUpdate(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.Deposits, error)
}

type DepositRepository struct {
	queries DepositWriteQueries
}

func NewDepositRepository(queries DepositWriteQueries) *DepositRepository {
	return &DepositRepository{
		queries: queries,
	}
}

func (r *DepositRepository) Create(ctx context.Context, tx sqlc.DBTX, d *booking.Deposit, source string) error {
	err := r.queries.CreateDeposit(ctx, tx, sqlc.CreateDepositParams{
		ID:             d.ID(),
		UserID:         d.UserID(),
		Type:           string(d.Type()),
		Amount:         pgconv.DecimalToNumeric(d.Amount()),
		ExpirationDate: pgconv.TimePtrToPgtype(d.ExpirationDate()),
		Source:         source,
		CreatedAt:      pgconv.TimeToPgtype(d.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create deposit", err)
	}
	return nil
}

func (r *DepositRepository) FindActiveByUserForUpdate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (*booking.Deposit, error) {
	row, err := r.queries.FindLatestDepositByUserForUpdate(ctx, tx, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to lock deposit", err)
	}
	return DepositFromRow(row)
}

func DepositFromRow(row sqlc.Deposits) (*booking.Deposit, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted deposit amount", err)
	}
	return booking.ReconstructDeposit(
		row.ID,
		row.UserID,
		booking.DepositType(row.Type),
		amount,
		pgconv.TimePtrFromPgtype(row.ExpirationDate),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
