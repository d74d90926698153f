package queries

import (
	"context"

	"pcapi/internal/domain/reimbursement"
	"pcapi/internal/infra"
	"pcapi/internal/pkg/errs"
	"pcapi/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReimbursementReadStore interface {
	FindFacts(ctx context.Context, bookingID uuid.UUID) (*shared.ReimbursementFacts, error)
	ListRulesInScope(ctx context.Context, offerID, offererID uuid.UUID) ([]*reimbursement.CustomRule, error)
	// ListRulesByOfferer includes the rules of the offerer's offers.
	ListRulesByOfferer(ctx context.Context, offererID uuid.UUID) ([]*reimbursement.CustomRule, error)
}

type ReimbursementQueries interface {
	ComputeReimbursement(ctx context.Context, bookingID uuid.UUID) (*ReimbursementView, error)
	ListCustomRules(ctx context.Context, offererID uuid.UUID) ([]*CustomRuleView, error)
}

type reimbursementQueriesImpl struct {
	repo     ReimbursementReadStore
	resolver *reimbursement.Resolver
}

func NewReimbursementQueries(repo ReimbursementReadStore, resolver *reimbursement.Resolver) ReimbursementQueries {
	return &reimbursementQueriesImpl{repo: repo, resolver: resolver}
}

func (q *reimbursementQueriesImpl) ComputeReimbursement(ctx context.Context, bookingID uuid.UUID) (*ReimbursementView, error) {
	facts, err := q.repo.FindFacts(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}
	if facts.Booking.DateUsed == nil {
		return nil, ErrNotReimbursable
	}

	rules, err := q.repo.ListRulesInScope(ctx, facts.Booking.OfferID, facts.Booking.OffererID)
	if err != nil {
		return nil, err
	}

	rule := q.resolver.Resolve(rules, facts.Booking)
	view := &ReimbursementView{
		BookingID:       facts.BookingID,
		Status:          facts.Status.String(),
		TotalAmount:     facts.Booking.TotalAmount(),
		Amount:          rule.Apply(facts.Booking),
		RuleDescription: rule.Description(),
	}
	if id := rule.ID(); id != uuid.Nil {
		view.RuleID = &id
	}
	return view, nil
}

func (q *reimbursementQueriesImpl) ListCustomRules(ctx context.Context, offererID uuid.UUID) ([]*CustomRuleView, error) {
	rules, err := q.repo.ListRulesByOfferer(ctx, offererID)
	if err != nil {
		return nil, err
	}

	views := make([]*CustomRuleView, 0, len(rules))
	for _, r := range rules {
		views = append(views, ToCustomRuleView(r))
	}
	return views, nil
}

func ToCustomRuleView(r *reimbursement.CustomRule) *CustomRuleView {
	subs := r.Scope().Subcategories()
	if subs == nil {
		subs = []string{}
	}
	return &CustomRuleView{
		ID:            r.ID(),
		OfferID:       r.Scope().OfferID(),
		OffererID:     r.Scope().OffererID(),
		Subcategories: subs,
		Amount:        r.Compensation().Amount(),
		Rate:          r.Compensation().Rate(),
		ValidFrom:     r.Timespan().From(),
		ValidUntil:    r.Timespan().Until(),
		Description:   r.Description(),
		CreatedAt:     r.CreatedAt(),
	}
}
