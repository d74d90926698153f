package reimbursement

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrScopeRequired        = errors.New("exactly one of offer or offerer must be set")
	ErrSubcategoriesOnOffer = errors.New("subcategories only apply to offerer rules")
	ErrRuleOverlap          = errors.New("rule overlaps an existing rule of the same scope")
	ErrCloseInPast          = errors.New("a rule cannot end in the past")
	ErrAlreadyClosed        = errors.New("rule already has an end date in the past")
)

// Scope says which bookings a rule is about: one offer, or the bookings of
// one offerer optionally restricted to some subcategories.
type Scope struct {
	offerID       *uuid.UUID
	offererID     *uuid.UUID
	subcategories []string
}

func NewOfferScope(offerID uuid.UUID) Scope {
	return Scope{offerID: &offerID}
}

func NewOffererScope(offererID uuid.UUID, subcategories []string) Scope {
	subs := slices.Clone(subcategories)
	slices.Sort(subs)
	return Scope{offererID: &offererID, subcategories: slices.Compact(subs)}
}

func NewScope(offerID, offererID *uuid.UUID, subcategories []string) (Scope, error) {
	switch {
	case offerID != nil && offererID == nil:
		if len(subcategories) > 0 {
			return Scope{}, ErrSubcategoriesOnOffer
		}
		return NewOfferScope(*offerID), nil
	case offererID != nil && offerID == nil:
		return NewOffererScope(*offererID, subcategories), nil
	default:
		return Scope{}, ErrScopeRequired
	}
}

func (s Scope) OfferID() *uuid.UUID     { return s.offerID }
func (s Scope) OffererID() *uuid.UUID   { return s.offererID }
func (s Scope) Subcategories() []string { return s.subcategories }
func (s Scope) IsOfferScope() bool      { return s.offerID != nil }

func (s Scope) sameScopeAs(other Scope) bool {
	if s.offerID != nil || other.offerID != nil {
		return s.offerID != nil && other.offerID != nil && *s.offerID == *other.offerID
	}
	return *s.offererID == *other.offererID && subcategoriesIntersect(s.subcategories, other.subcategories)
}

type CustomRule struct {
	id           uuid.UUID
	scope        Scope
	compensation Compensation
	timespan     Timespan
	createdAt    time.Time
}

func NewCustomRule(scope Scope, compensation Compensation, timespan Timespan, now time.Time) *CustomRule {
	return &CustomRule{
		id:           uuid.New(),
		scope:        scope,
		compensation: compensation,
		timespan:     timespan,
		createdAt:    now,
	}
}

func ReconstructCustomRule(id uuid.UUID, scope Scope, compensation Compensation, timespan Timespan, createdAt time.Time) *CustomRule {
	return &CustomRule{
		id:           id,
		scope:        scope,
		compensation: compensation,
		timespan:     timespan,
		createdAt:    createdAt,
	}
}

func (r *CustomRule) ID() uuid.UUID              { return r.id }
func (r *CustomRule) Scope() Scope               { return r.scope }
func (r *CustomRule) Compensation() Compensation { return r.compensation }
func (r *CustomRule) Timespan() Timespan         { return r.timespan }
func (r *CustomRule) CreatedAt() time.Time       { return r.createdAt }

func (r *CustomRule) Description() string {
	if r.compensation.amount != nil {
		return "Montant remboursé : " + r.compensation.amount.StringFixed(2) + " €"
	}
	return "Taux de remboursement : " + r.compensation.rate.Mul(decimal.NewFromInt(100)).String() + " %"
}

// IsActive: a booking that has not been used is never covered.
func (r *CustomRule) IsActive(b Booking) bool {
	if b.DateUsed == nil {
		return false
	}
	return r.timespan.Contains(*b.DateUsed)
}

func (r *CustomRule) IsRelevant(b Booking) bool {
	if r.scope.offerID != nil {
		return *r.scope.offerID == b.OfferID
	}
	if *r.scope.offererID != b.OffererID {
		return false
	}
	if len(r.scope.subcategories) > 0 {
		return slices.Contains(r.scope.subcategories, b.SubcategoryID)
	}
	return true
}

func (r *CustomRule) Apply(b Booking) decimal.Decimal {
	return r.compensation.Apply(b)
}

// Overlaps reports whether both rules could apply to the same booking.
func (r *CustomRule) Overlaps(other *CustomRule) bool {
	return r.scope.sameScopeAs(other.scope) && r.timespan.Overlaps(other.timespan)
}

// Close ends the rule at until. until cannot be before now nor before the start.
func (r *CustomRule) Close(until, now time.Time) error {
	if until.Before(now) {
		return ErrCloseInPast
	}
	if r.timespan.until != nil && r.timespan.until.Before(now) {
		return ErrAlreadyClosed
	}
	ts, err := r.timespan.WithUntil(until)
	if err != nil {
		return err
	}
	r.timespan = ts
	return nil
}
