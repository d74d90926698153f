package readstore

import (
	"context"

	"pcapi/internal/domain/booking"
	"pcapi/internal/infra"
	"pcapi/internal/infra/repository"
	sqlc "pcapi/internal/infra/sqlc/generated"
	"pcapi/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type WalletQueries interface {
	FindLatestDepositByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.Deposits, error)
	SumActiveIndividualBookingAmount(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (pgtype.Numeric, error)
}

type WalletReadStore struct {
	queries WalletQueries
	db      sqlc.DBTX
}

func NewWalletReadStore(queries WalletQueries, db sqlc.DBTX) *WalletReadStore {
	return &WalletReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *WalletReadStore) FindLatestDeposit(ctx context.Context, userID uuid.UUID) (*booking.Deposit, error) {
	row, err := r.queries.FindLatestDepositByUser(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find deposit", err)
	}
	return repository.DepositFromRow(row)
}

func (r *WalletReadStore) SumActiveIndividualAmount(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	total, err := r.queries.SumActiveIndividualBookingAmount(ctx, r.db, userID)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to sum active bookings", err)
	}
	d, err := pgconv.DecimalFromNumeric(total)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("invalid booking total", err)
	}
	return d, nil
}
