package readstore

import (
	"context"
	"time"

	"pcapi/internal/infra"
	sqlc "pcapi/internal/infra/sqlc/generated"
	"pcapi/internal/pkg/pgconv"
	"pcapi/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewRow, error)
	ListUserBookingsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUserBookingsFirstPageParams) ([]sqlc.ListUserBookingsFirstPageRow, error)
	ListUserBookingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUserBookingsKeysetParams) ([]sqlc.ListUserBookingsKeysetRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted booking amount", err)
	}
	reimbursed, err := pgconv.DecimalPtrFromNumeric(row.ReimbursedAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted reimbursed amount", err)
	}

	return &queries.BookingView{
		ID:                  row.ID,
		UserID:              row.UserID,
		StockID:             row.StockID,
		OfferID:             row.OfferID,
		OfferName:           row.OfferName,
		VenueID:             row.VenueID,
		VenueName:           row.VenueName,
		OffererID:           row.OffererID,
		Quantity:            int(row.Quantity),
		Amount:              amount,
		TotalAmount:         amount.Mul(decimal.NewFromInt32(row.Quantity)),
		Status:              row.Status,
		Token:               row.Token,
		Individual:          row.Individual,
		DateCreated:         pgconv.TimeFromPgtype(row.DateCreated),
		DateUsed:            pgconv.TimePtrFromPgtype(row.DateUsed),
		CancellationDate:    pgconv.TimePtrFromPgtype(row.CancellationDate),
		CancellationReason:  pgconv.StringPtrFromPgtype(row.CancellationReason),
		ReimbursementDate:   pgconv.TimePtrFromPgtype(row.ReimbursementDate),
		ReimbursedAmount:    reimbursed,
		ReimbursementRuleID: pgconv.UUIDPtrFromPgtype(row.ReimbursementRuleID),
	}, nil
}

func (r *BookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListUserBookingsFirstPage(ctx, r.db, sqlc.ListUserBookingsFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page", err)
	}

	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		item, err := toBookingListItem(bookingListRow(row))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *BookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListUserBookingsKeyset(ctx, r.db, sqlc.ListUserBookingsKeysetParams{
		UserID:          userID,
		LastDateCreated: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:          lastID,
		PageLimit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset", err)
	}

	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		item, err := toBookingListItem(bookingListRow(row))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// bookingListRow has the column set shared by both list queries.
type bookingListRow struct {
	ID               uuid.UUID
	Quantity         int32
	Amount           pgtype.Numeric
	Status           string
	Token            string
	DateCreated      pgtype.Timestamptz
	DateUsed         pgtype.Timestamptz
	CancellationDate pgtype.Timestamptz
	OfferID          uuid.UUID
	OfferName        string
	VenueName        string
}

func toBookingListItem(row bookingListRow) (*queries.BookingListItem, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted booking amount", err)
	}
	return &queries.BookingListItem{
		ID:               row.ID,
		OfferID:          row.OfferID,
		OfferName:        row.OfferName,
		VenueName:        row.VenueName,
		Quantity:         int(row.Quantity),
		Amount:           amount,
		TotalAmount:      amount.Mul(decimal.NewFromInt32(row.Quantity)),
		Status:           row.Status,
		Token:            row.Token,
		DateCreated:      pgconv.TimeFromPgtype(row.DateCreated),
		DateUsed:         pgconv.TimePtrFromPgtype(row.DateUsed),
		CancellationDate: pgconv.TimePtrFromPgtype(row.CancellationDate),
	}, nil
}
