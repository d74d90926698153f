package repository

import (
	"context"

	"pcapi/internal/domain/booking"
	"pcapi/internal/infra"
	sqlc "pcapi/internal/infra/sqlc/generated"
	"pcapi/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type StockWriteQueries interface {
	FindStockForBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindStockForBookingRow, error)
	ReserveStockQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.ReserveStockQuantityParams) (int64, error)
	ReleaseStockQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseStockQuantityParams) (int64, error)
}

type StockRepository struct {
	queries StockWriteQueries
}

func NewStockRepository(queries StockWriteQueries) *StockRepository {
	return &StockRepository{
		queries: queries,
	}
}

func (r *StockRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Stock, error) {
	row, err := r.queries.FindStockForBooking(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("stock not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find stock", err)
	}
	return StockFromRow(row)
}

// Reserve moves dn_booked_quantity in a single conditional update so that two
// concurrent bookings cannot both take the last unit.
func (r *StockRepository) Reserve(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, quantity int) (bool, error) {
	n, err := r.queries.ReserveStockQuantity(ctx, tx, sqlc.ReserveStockQuantityParams{
		Quantity: int32(quantity), // #nosec G115 -- quantity is 1 or 2
		ID:       id,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to reserve stock quantity", err)
	}
	return n == 1, nil
}

func (r *StockRepository) Release(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, quantity int) error {
	n, err := r.queries.ReleaseStockQuantity(ctx, tx, sqlc.ReleaseStockQuantityParams{
		Quantity: int32(quantity), // #nosec G115 -- quantity is 1 or 2
		ID:       id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to release stock quantity", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booked quantity already released", nil, infra.KindConflict)
	}
	return nil
}

func StockFromRow(row sqlc.FindStockForBookingRow) (*booking.Stock, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted stock price", err)
	}
	return booking.ReconstructStock(booking.StockParams{
		ID:             row.ID,
		OfferID:        row.OfferID,
		VenueID:        row.VenueID,
		OffererID:      row.OffererID,
		SubcategoryID:  row.SubcategoryID,
		IsDuo:          row.IsDuo,
		IsEducational:  row.IsEducational,
		Price:          price,
		Quantity:       pgconv.IntPtrFromPgtype(row.Quantity),
		BookedQuantity: int(row.DnBookedQuantity),
		IsSoftDeleted:  row.IsSoftDeleted,
	}), nil
}
