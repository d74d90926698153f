package readstore

import (
	"context"

	"pcapi/internal/domain/booking"
	"pcapi/internal/infra"
	"pcapi/internal/infra/repository"
	sqlc "pcapi/internal/infra/sqlc/generated"
	"pcapi/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type StockQueries interface {
	FindStockForBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindStockForBookingRow, error)
}

type StockReadStore struct {
	queries StockQueries
	db      sqlc.DBTX
}

func NewStockReadStore(queries StockQueries, db sqlc.DBTX) *StockReadStore {
	return &StockReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *StockReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Stock, error) {
	row, err := r.queries.FindStockForBooking(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("stock not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find stock", err)
	}
	return repository.StockFromRow(row)
}
