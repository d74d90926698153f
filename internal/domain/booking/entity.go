package booking

import (
	"errors"
	"time"

	"pcapi/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus             = errors.New("invalid booking status")
	ErrInvalidToken              = errors.New("invalid booking token")
	ErrInvalidQuantity           = errors.New("quantity must be 1, or 2 for a duo offer")
	ErrInvalidCancellationReason = errors.New("invalid cancellation reason")
	ErrNegativeAmount            = errors.New("amount cannot be negative")
	ErrStockDeleted              = errors.New("stock is no longer bookable")
	ErrBeneficiaryInactive       = errors.New("beneficiary account is inactive")
	ErrTooManyBookings           = errors.New("stock quantity exceeded")
	ErrInsufficientFunds         = errors.New("insufficient wallet balance")
	ErrAlreadyCancelled          = errors.New("booking is already cancelled")
	ErrAlreadyUsed               = errors.New("booking is already used")
	ErrAlreadyReimbursed         = errors.New("booking is already reimbursed")
	ErrNotCancelled              = errors.New("booking is not cancelled")
	ErrNotUsed                   = errors.New("booking is not used")
	ErrNotPending                = errors.New("booking is not pending")
	ErrNotConfirmed              = errors.New("booking is not confirmed")
)

type Services struct {
	Clock          clock.Clock
	TokenGenerator TokenGenerator
}

type Beneficiary struct {
	ID       uuid.UUID
	IsActive bool
}

type Booking struct {
	id                  uuid.UUID
	userID              uuid.UUID
	stockID             uuid.UUID
	offerID             uuid.UUID
	venueID             uuid.UUID
	offererID           uuid.UUID
	subcategoryID       string
	quantity            int
	amount              decimal.Decimal
	status              Status
	token               Token
	individual          bool
	dateCreated         time.Time
	dateUsed            *time.Time
	cancellationDate    *time.Time
	cancellationReason  *CancellationReason
	reimbursementDate   *time.Time
	reimbursedAmount    *decimal.Decimal
	reimbursementRuleID *uuid.UUID
}

// NewBooking books quantity places of stock at the current stock price.
// Capacity and wallet checks need the stored totals and are run by the caller.
func NewBooking(services *Services, beneficiary Beneficiary, stock *Stock, quantity int) (*Booking, error) {
	if !beneficiary.IsActive {
		return nil, ErrBeneficiaryInactive
	}
	if stock.isSoftDeleted {
		return nil, ErrStockDeleted
	}
	qty, err := NewQuantity(quantity, stock.isDuo)
	if err != nil {
		return nil, err
	}
	if stock.price.IsNegative() {
		return nil, ErrNegativeAmount
	}
	token, err := services.TokenGenerator.Generate()
	if err != nil {
		return nil, err
	}

	status := StatusConfirmed
	if stock.isEducational {
		status = StatusPending
	}

	return &Booking{
		id:            uuid.New(),
		userID:        beneficiary.ID,
		stockID:       stock.id,
		offerID:       stock.offerID,
		venueID:       stock.venueID,
		offererID:     stock.offererID,
		subcategoryID: stock.subcategoryID,
		quantity:      qty.Int(),
		amount:        stock.price,
		status:        status,
		token:         token,
		individual:    !stock.isEducational,
		dateCreated:   services.Clock.Now(),
	}, nil
}

type ReconstructParams struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	StockID             uuid.UUID
	OfferID             uuid.UUID
	VenueID             uuid.UUID
	OffererID           uuid.UUID
	SubcategoryID       string
	Quantity            int
	Amount              decimal.Decimal
	Status              Status
	Token               Token
	Individual          bool
	DateCreated         time.Time
	DateUsed            *time.Time
	CancellationDate    *time.Time
	CancellationReason  *CancellationReason
	ReimbursementDate   *time.Time
	ReimbursedAmount    *decimal.Decimal
	ReimbursementRuleID *uuid.UUID
}

func Reconstruct(p ReconstructParams) *Booking {
	return &Booking{
		id:                  p.ID,
		userID:              p.UserID,
		stockID:             p.StockID,
		offerID:             p.OfferID,
		venueID:             p.VenueID,
		offererID:           p.OffererID,
		subcategoryID:       p.SubcategoryID,
		quantity:            p.Quantity,
		amount:              p.Amount,
		status:              p.Status,
		token:               p.Token,
		individual:          p.Individual,
		dateCreated:         p.DateCreated,
		dateUsed:            p.DateUsed,
		cancellationDate:    p.CancellationDate,
		cancellationReason:  p.CancellationReason,
		reimbursementDate:   p.ReimbursementDate,
		reimbursedAmount:    p.ReimbursedAmount,
		reimbursementRuleID: p.ReimbursementRuleID,
	}
}

func (b *Booking) ID() uuid.UUID                           { return b.id }
func (b *Booking) UserID() uuid.UUID                       { return b.userID }
func (b *Booking) StockID() uuid.UUID                      { return b.stockID }
func (b *Booking) OfferID() uuid.UUID                      { return b.offerID }
func (b *Booking) VenueID() uuid.UUID                      { return b.venueID }
func (b *Booking) OffererID() uuid.UUID                    { return b.offererID }
func (b *Booking) SubcategoryID() string                   { return b.subcategoryID }
func (b *Booking) Quantity() int                           { return b.quantity }
func (b *Booking) Amount() decimal.Decimal                 { return b.amount }
func (b *Booking) Status() Status                          { return b.status }
func (b *Booking) Token() Token                            { return b.token }
func (b *Booking) IsIndividual() bool                      { return b.individual }
func (b *Booking) DateCreated() time.Time                  { return b.dateCreated }
func (b *Booking) DateUsed() *time.Time                    { return b.dateUsed }
func (b *Booking) CancellationDate() *time.Time            { return b.cancellationDate }
func (b *Booking) CancellationReason() *CancellationReason { return b.cancellationReason }
func (b *Booking) ReimbursementDate() *time.Time           { return b.reimbursementDate }
func (b *Booking) ReimbursedAmount() *decimal.Decimal      { return b.reimbursedAmount }
func (b *Booking) ReimbursementRuleID() *uuid.UUID         { return b.reimbursementRuleID }

func (b *Booking) TotalAmount() decimal.Decimal {
	return b.amount.Mul(decimal.NewFromInt(int64(b.quantity)))
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

// Cancel releases the booking. The caller gives the quantity back to the stock.
func (b *Booking) Cancel(reason CancellationReason, now time.Time) error {
	switch b.status {
	case StatusPending, StatusConfirmed:
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusUsed:
		return ErrAlreadyUsed
	case StatusReimbursed:
		return ErrAlreadyReimbursed
	default:
		return ErrInvalidStatus
	}
	b.status = StatusCancelled
	b.cancellationDate = &now
	b.cancellationReason = &reason
	return nil
}

// Uncancel reactivates a cancelled booking. The returned Change must be fed
// to the capacity and wallet checks before the write.
func (b *Booking) Uncancel() (Change, error) {
	if b.status != StatusCancelled {
		return Change{}, ErrNotCancelled
	}
	b.status = StatusConfirmed
	b.cancellationDate = nil
	b.cancellationReason = nil
	return Change{LeavesCancelled: true}, nil
}

func (b *Booking) Confirm() error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusConfirmed
	return nil
}

// MarkAsUsed validates the counter token before setting the date used.
func (b *Booking) MarkAsUsed(token Token, now time.Time) error {
	switch b.status {
	case StatusConfirmed:
	case StatusUsed, StatusReimbursed:
		return ErrAlreadyUsed
	case StatusCancelled:
		return ErrAlreadyCancelled
	default:
		return ErrNotConfirmed
	}
	if !b.token.Equals(token) {
		return ErrInvalidToken
	}
	b.status = StatusUsed
	b.dateUsed = &now
	return nil
}

func (b *Booking) MarkAsUnused() error {
	switch b.status {
	case StatusUsed:
	case StatusReimbursed:
		return ErrAlreadyReimbursed
	default:
		return ErrNotUsed
	}
	b.status = StatusConfirmed
	b.dateUsed = nil
	return nil
}

// MarkAsReimbursed records the amount paid to the offerer. ruleID is nil when
// the fallback rule applied.
func (b *Booking) MarkAsReimbursed(amount decimal.Decimal, ruleID *uuid.UUID, now time.Time) error {
	switch b.status {
	case StatusUsed:
	case StatusReimbursed:
		return ErrAlreadyReimbursed
	default:
		return ErrNotUsed
	}
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	b.status = StatusReimbursed
	b.reimbursementDate = &now
	b.reimbursedAmount = &amount
	b.reimbursementRuleID = ruleID
	return nil
}
