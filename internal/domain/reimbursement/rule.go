package reimbursement

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking holds the booking facts a rule looks at.
type Booking struct {
	OfferID       uuid.UUID
	OffererID     uuid.UUID
	SubcategoryID string
	Quantity      int
	Amount        decimal.Decimal
	DateUsed      *time.Time
}

func (b Booking) TotalAmount() decimal.Decimal {
	return b.Amount.Mul(decimal.NewFromInt(int64(b.Quantity)))
}

type Rule interface {
	// ID is uuid.Nil for rules that are not stored.
	ID() uuid.UUID
	Description() string
	IsActive(b Booking) bool
	IsRelevant(b Booking) bool
	Apply(b Booking) decimal.Decimal
}

// Matches is never true for an inactive rule.
func Matches(r Rule, b Booking) bool {
	return r.IsActive(b) && r.IsRelevant(b)
}

// FallbackRule applies when no custom rule matches.
type FallbackRule struct {
	rate decimal.Decimal
}

func NewFallbackRule(rate decimal.Decimal) (*FallbackRule, error) {
	if _, err := NewRateCompensation(rate); err != nil {
		return nil, err
	}
	return &FallbackRule{rate: rate}, nil
}

func NewFullReimbursementRule() *FallbackRule {
	return &FallbackRule{rate: one}
}

func (f *FallbackRule) ID() uuid.UUID { return uuid.Nil }

func (f *FallbackRule) Description() string {
	return "Remboursement standard à " + f.rate.Mul(decimal.NewFromInt(100)).String() + " %"
}

func (f *FallbackRule) IsActive(_ Booking) bool   { return true }
func (f *FallbackRule) IsRelevant(_ Booking) bool { return true }

func (f *FallbackRule) Apply(b Booking) decimal.Decimal {
	return b.TotalAmount().Mul(f.rate).Round(2)
}

func subcategoriesIntersect(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return true
	}
	for _, s := range a {
		if slices.Contains(b, s) {
			return true
		}
	}
	return false
}
