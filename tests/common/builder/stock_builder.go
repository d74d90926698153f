//go:build unit || e2e

package builder

import (
	"pcapi/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StockBuilder struct {
	ID             uuid.UUID
	OfferID        uuid.UUID
	VenueID        uuid.UUID
	OffererID      uuid.UUID
	SubcategoryID  string
	IsDuo          bool
	IsEducational  bool
	Price          decimal.Decimal
	Quantity       *int
	BookedQuantity int
	IsSoftDeleted  bool
}

func NewStockBuilder() *StockBuilder {
	quantity := 10
	return &StockBuilder{
		ID:            uuid.New(),
		OfferID:       uuid.New(),
		VenueID:       uuid.New(),
		OffererID:     uuid.New(),
		SubcategoryID: "SEANCE_CINE",
		Price:         decimal.RequireFromString("10.00"),
		Quantity:      &quantity,
	}
}

func (s *StockBuilder) With(mutate func(*StockBuilder)) *StockBuilder {
	mutate(s)
	return s
}

func (s *StockBuilder) BuildDomain() *booking.Stock {
	return booking.ReconstructStock(booking.StockParams{
		ID:             s.ID,
		OfferID:        s.OfferID,
		VenueID:        s.VenueID,
		OffererID:      s.OffererID,
		SubcategoryID:  s.SubcategoryID,
		IsDuo:          s.IsDuo,
		IsEducational:  s.IsEducational,
		Price:          s.Price,
		Quantity:       s.Quantity,
		BookedQuantity: s.BookedQuantity,
		IsSoftDeleted:  s.IsSoftDeleted,
	})
}

// Fluent builder methods
func (s *StockBuilder) WithPrice(price string) *StockBuilder {
	s.Price = decimal.RequireFromString(price)
	return s
}

func (s *StockBuilder) WithQuantity(quantity int) *StockBuilder {
	s.Quantity = &quantity
	return s
}

func (s *StockBuilder) Unlimited() *StockBuilder {
	s.Quantity = nil
	return s
}

func (s *StockBuilder) WithBooked(booked int) *StockBuilder {
	s.BookedQuantity = booked
	return s
}

func (s *StockBuilder) AsDuo() *StockBuilder {
	s.IsDuo = true
	return s
}

func (s *StockBuilder) AsEducational() *StockBuilder {
	s.IsEducational = true
	return s
}

func (s *StockBuilder) AsSoftDeleted() *StockBuilder {
	s.IsSoftDeleted = true
	return s
}
