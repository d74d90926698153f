package booking

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stock is the bookable slice of an offer, with the offer facts bookings need.
type Stock struct {
	id             uuid.UUID
	offerID        uuid.UUID
	venueID        uuid.UUID
	offererID      uuid.UUID
	subcategoryID  string
	isDuo          bool
	isEducational  bool
	price          decimal.Decimal
	quantity       *int
	bookedQuantity int
	isSoftDeleted  bool
}

type StockParams struct {
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

func ReconstructStock(p StockParams) *Stock {
	return &Stock{
		id:             p.ID,
		offerID:        p.OfferID,
		venueID:        p.VenueID,
		offererID:      p.OffererID,
		subcategoryID:  p.SubcategoryID,
		isDuo:          p.IsDuo,
		isEducational:  p.IsEducational,
		price:          p.Price,
		quantity:       p.Quantity,
		bookedQuantity: p.BookedQuantity,
		isSoftDeleted:  p.IsSoftDeleted,
	}
}

func (s *Stock) ID() uuid.UUID          { return s.id }
func (s *Stock) OfferID() uuid.UUID     { return s.offerID }
func (s *Stock) VenueID() uuid.UUID     { return s.venueID }
func (s *Stock) OffererID() uuid.UUID   { return s.offererID }
func (s *Stock) SubcategoryID() string  { return s.subcategoryID }
func (s *Stock) IsDuo() bool            { return s.isDuo }
func (s *Stock) IsEducational() bool    { return s.isEducational }
func (s *Stock) Price() decimal.Decimal { return s.price }
func (s *Stock) Quantity() *int         { return s.quantity }
func (s *Stock) BookedQuantity() int    { return s.bookedQuantity }
func (s *Stock) IsSoftDeleted() bool    { return s.isSoftDeleted }

// RemainingQuantity is nil for unlimited stocks.
func (s *Stock) RemainingQuantity() *int {
	if s.quantity == nil {
		return nil
	}
	remaining := *s.quantity - s.bookedQuantity
	return &remaining
}
