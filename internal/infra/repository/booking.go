package repository

import (
	"context"
	"time"

	"pcapi/internal/domain/booking"
	"pcapi/internal/infra"
	sqlc "pcapi/internal/infra/sqlc/generated"
	"pcapi/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) error
	FindBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindBookingByIDForUpdateRow, error)
	SumActiveIndividualBookingAmount(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (pgtype.Numeric, error)
	ListReimbursableBookingIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReimbursableBookingIDsParams) ([]uuid.UUID, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{
		queries: queries,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	params := sqlc.CreateBookingParams{
		ID:                 b.ID(),
		UserID:             b.UserID(),
		StockID:            b.StockID(),
		OffererID:          b.OffererID(),
		VenueID:            b.VenueID(),
		Quantity:           int32(b.Quantity()), // #nosec G115 -- quantity is 1 or 2
		Amount:             pgconv.DecimalToNumeric(b.Amount()),
		Status:             b.Status().String(),
		Token:              b.Token().String(),
		Individual:         b.IsIndividual(),
		DateCreated:        pgconv.TimeToPgtype(b.DateCreated()),
		DateUsed:           pgconv.TimePtrToPgtype(b.DateUsed()),
		CancellationDate:   pgconv.TimePtrToPgtype(b.CancellationDate()),
		CancellationReason: reasonToPgtype(b.CancellationReason()),
	}

	if err := r.queries.CreateBooking(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	params := sqlc.UpdateBookingParams{
		ID:                  b.ID(),
		Status:              b.Status().String(),
		DateUsed:            pgconv.TimePtrToPgtype(b.DateUsed()),
		CancellationDate:    pgconv.TimePtrToPgtype(b.CancellationDate()),
		CancellationReason:  reasonToPgtype(b.CancellationReason()),
		ReimbursementDate:   pgconv.TimePtrToPgtype(b.ReimbursementDate()),
		ReimbursedAmount:    pgconv.DecimalPtrToNumeric(b.ReimbursedAmount()),
		ReimbursementRuleID: pgconv.UUIDPtrToPgtype(b.ReimbursementRuleID()),
		UpdatedAt:           pgconv.TimeToPgtype(time.Now()),
	}

	if err := r.queries.UpdateBooking(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.FindBookingByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return bookingFromRow(row)
}

func (r *BookingRepository) SumActiveIndividualAmount(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (decimal.Decimal, error) {
	total, err := r.queries.SumActiveIndividualBookingAmount(ctx, tx, userID)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to sum active bookings", err)
	}
	d, err := pgconv.DecimalFromNumeric(total)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("invalid booking total", err)
	}
	return d, nil
}

func (r *BookingRepository) ListReimbursableIDs(ctx context.Context, tx sqlc.DBTX, offererID uuid.UUID, cutoff time.Time, limit int32) ([]uuid.UUID, error) {
	ids, err := r.queries.ListReimbursableBookingIDs(ctx, tx, sqlc.ListReimbursableBookingIDsParams{
		OffererID: offererID,
		Cutoff:    pgconv.TimeToPgtype(cutoff),
		PageLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reimbursable bookings", err)
	}
	return ids, nil
}

func bookingFromRow(row sqlc.FindBookingByIDForUpdateRow) (*booking.Booking, error) {
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted booking status", err)
	}
	token, err := booking.NewToken(row.Token)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted booking token", err)
	}
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted booking amount", err)
	}
	reimbursed, err := pgconv.DecimalPtrFromNumeric(row.ReimbursedAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted reimbursed amount", err)
	}
	var reason *booking.CancellationReason
	if row.CancellationReason.Valid {
		r, err := booking.NewCancellationReason(row.CancellationReason.String)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupted cancellation reason", err)
		}
		reason = &r
	}

	return booking.Reconstruct(booking.ReconstructParams{
		ID:                  row.ID,
		UserID:              row.UserID,
		StockID:             row.StockID,
		OfferID:             row.OfferID,
		VenueID:             row.VenueID,
		OffererID:           row.OffererID,
		SubcategoryID:       row.SubcategoryID,
		Quantity:            int(row.Quantity),
		Amount:              amount,
		Status:              status,
		Token:               token,
		Individual:          row.Individual,
		DateCreated:         pgconv.TimeFromPgtype(row.DateCreated),
		DateUsed:            pgconv.TimePtrFromPgtype(row.DateUsed),
		CancellationDate:    pgconv.TimePtrFromPgtype(row.CancellationDate),
		CancellationReason:  reason,
		ReimbursementDate:   pgconv.TimePtrFromPgtype(row.ReimbursementDate),
		ReimbursedAmount:    reimbursed,
		ReimbursementRuleID: pgconv.UUIDPtrFromPgtype(row.ReimbursementRuleID),
	}), nil
}

func reasonToPgtype(r *booking.CancellationReason) pgtype.Text {
	if r == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: string(*r), Valid: true}
}
