//go:build unit || e2e

package builder

import (
	"time"

	"pcapi/internal/domain/reimbursement"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RuleBuilder struct {
	ID            uuid.UUID
	OfferID       *uuid.UUID
	OffererID     *uuid.UUID
	Subcategories []string
	Amount        *decimal.Decimal
	Rate          *decimal.Decimal
	From          time.Time
	Until         *time.Time
	CreatedAt     time.Time
}

func NewRuleBuilder() *RuleBuilder {
	offererID := uuid.New()
	rate := decimal.RequireFromString("0.5")
	return &RuleBuilder{
		ID:        uuid.New(),
		OffererID: &offererID,
		Rate:      &rate,
		From:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *RuleBuilder) With(mutate func(*RuleBuilder)) *RuleBuilder {
	mutate(b)
	return b
}

func (b *RuleBuilder) ForOffer(offerID uuid.UUID) *RuleBuilder {
	b.OfferID = &offerID
	b.OffererID = nil
	b.Subcategories = nil
	return b
}

func (b *RuleBuilder) ForOfferer(offererID uuid.UUID, subcategories ...string) *RuleBuilder {
	b.OffererID = &offererID
	b.OfferID = nil
	b.Subcategories = subcategories
	return b
}

func (b *RuleBuilder) WithAmount(amount string) *RuleBuilder {
	d := decimal.RequireFromString(amount)
	b.Amount = &d
	b.Rate = nil
	return b
}

func (b *RuleBuilder) WithRate(rate string) *RuleBuilder {
	d := decimal.RequireFromString(rate)
	b.Rate = &d
	b.Amount = nil
	return b
}

func (b *RuleBuilder) Between(from time.Time, until *time.Time) *RuleBuilder {
	b.From = from
	b.Until = until
	return b
}

func (b *RuleBuilder) BuildDomain() *reimbursement.CustomRule {
	scope, err := reimbursement.NewScope(b.OfferID, b.OffererID, b.Subcategories)
	if err != nil {
		panic(err)
	}
	comp, err := reimbursement.NewCompensation(b.Amount, b.Rate)
	if err != nil {
		panic(err)
	}
	ts, err := reimbursement.NewTimespan(b.From, b.Until)
	if err != nil {
		panic(err)
	}
	return reimbursement.ReconstructCustomRule(b.ID, scope, comp, ts, b.CreatedAt)
}
