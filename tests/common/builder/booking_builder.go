//go:build unit || e2e

package builder

import (
	"time"

	"pcapi/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	StockID             uuid.UUID
	OfferID             uuid.UUID
	VenueID             uuid.UUID
	OffererID           uuid.UUID
	SubcategoryID       string
	Quantity            int
	Amount              decimal.Decimal
	Status              booking.Status
	Token               string
	Individual          bool
	DateCreated         time.Time
	DateUsed            *time.Time
	CancellationDate    *time.Time
	CancellationReason  *booking.CancellationReason
	ReimbursementDate   *time.Time
	ReimbursedAmount    *decimal.Decimal
	ReimbursementRuleID *uuid.UUID
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		StockID:       uuid.New(),
		OfferID:       uuid.New(),
		VenueID:       uuid.New(),
		OffererID:     uuid.New(),
		SubcategoryID: "SEANCE_CINE",
		Quantity:      1,
		Amount:        decimal.RequireFromString("10.00"),
		Status:        booking.StatusConfirmed,
		Token:         "ABC123",
		Individual:    true,
		DateCreated:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	token, err := booking.NewToken(b.Token)
	if err != nil {
		panic(err)
	}
	return booking.Reconstruct(booking.ReconstructParams{
		ID:                  b.ID,
		UserID:              b.UserID,
		StockID:             b.StockID,
		OfferID:             b.OfferID,
		VenueID:             b.VenueID,
		OffererID:           b.OffererID,
		SubcategoryID:       b.SubcategoryID,
		Quantity:            b.Quantity,
		Amount:              b.Amount,
		Status:              b.Status,
		Token:               token,
		Individual:          b.Individual,
		DateCreated:         b.DateCreated,
		DateUsed:            b.DateUsed,
		CancellationDate:    b.CancellationDate,
		CancellationReason:  b.CancellationReason,
		ReimbursementDate:   b.ReimbursementDate,
		ReimbursedAmount:    b.ReimbursedAmount,
		ReimbursementRuleID: b.ReimbursementRuleID,
	})
}

// Fluent builder methods
func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithAmount(amount string) *BookingBuilder {
	b.Amount = decimal.RequireFromString(amount)
	return b
}

func (b *BookingBuilder) WithQuantity(quantity int) *BookingBuilder {
	b.Quantity = quantity
	return b
}

func (b *BookingBuilder) WithUser(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithOffer(offerID, offererID uuid.UUID) *BookingBuilder {
	b.OfferID = offerID
	b.OffererID = offererID
	return b
}

func (b *BookingBuilder) UsedAt(t time.Time) *BookingBuilder {
	b.Status = booking.StatusUsed
	b.DateUsed = &t
	return b
}

func (b *BookingBuilder) CancelledAt(t time.Time) *BookingBuilder {
	reason := booking.CancellationByBeneficiary
	b.Status = booking.StatusCancelled
	b.CancellationDate = &t
	b.CancellationReason = &reason
	return b
}

func (b *BookingBuilder) AsEducational() *BookingBuilder {
	b.Individual = false
	return b
}
