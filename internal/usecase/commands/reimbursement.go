package commands

import (
	"context"
	"log/slog"
	"time"

	"pcapi/internal/domain/booking"
	"pcapi/internal/domain/reimbursement"
	"pcapi/internal/infra"
	"pcapi/internal/pkg/clock"
	"pcapi/internal/pkg/config"
	"pcapi/internal/pkg/errs"
	"pcapi/internal/usecase/queries"
	"pcapi/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCustomRuleInput struct {
	OfferID       *uuid.UUID
	OffererID     *uuid.UUID
	Subcategories []string
	Amount        *decimal.Decimal
	Rate          *decimal.Decimal
	ValidFrom     *time.Time
	ValidUntil    *time.Time
}

type ReimbursementSummary struct {
	Reimbursed int
	Failed     []uuid.UUID
	Total      decimal.Decimal
}

type ReimbursementCommands interface {
	CreateCustomRule(ctx context.Context, in CreateCustomRuleInput) (*queries.CustomRuleView, error)
	CloseCustomRule(ctx context.Context, ruleID uuid.UUID, until time.Time) (*queries.CustomRuleView, error)
	ReimburseBookings(ctx context.Context, offererID uuid.UUID, cutoff time.Time) (*ReimbursementSummary, error)
}

type reimbursementCommandsImpl struct {
	uow       shared.UnitOfWork
	resolver  *reimbursement.Resolver
	clock     clock.Clock
	chunkSize int
}

func NewReimbursementCommands(uow shared.UnitOfWork, resolver *reimbursement.Resolver, clk clock.Clock, cfg config.FinanceConfig) ReimbursementCommands {
	chunkSize := cfg.ReimbursementChunkSize
	if chunkSize <= 0 {
		chunkSize = 100
	}
	return &reimbursementCommandsImpl{
		uow:       uow,
		resolver:  resolver,
		clock:     clk,
		chunkSize: chunkSize,
	}
}

func (uc *reimbursementCommandsImpl) CreateCustomRule(ctx context.Context, in CreateCustomRuleInput) (*queries.CustomRuleView, error) {
	scope, err := reimbursement.NewScope(in.OfferID, in.OffererID, in.Subcategories)
	if err != nil {
		return nil, err
	}
	compensation, err := reimbursement.NewCompensation(in.Amount, in.Rate)
	if err != nil {
		return nil, err
	}
	if in.ValidFrom == nil {
		return nil, reimbursement.ErrMissingStart
	}
	timespan, err := reimbursement.NewTimespan(*in.ValidFrom, in.ValidUntil)
	if err != nil {
		return nil, err
	}
	rule := reimbursement.NewCustomRule(scope, compensation, timespan, uc.clock.Now())

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rules := tx.ReimbursementRules()
		// Offerer rules overlap through their subcategory lists, which no
		// constraint can express: serialize inserts per offerer instead.
		if offererID := scope.OffererID(); offererID != nil {
			if err := rules.LockOfferer(ctx, tx.DB(), *offererID); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		existing, err := rules.ListInScope(ctx, tx.DB(), scope.OfferID(), scope.OffererID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := reimbursement.ValidateNoOverlap(existing, rule); err != nil {
			return err
		}

		if err := rules.Create(ctx, tx.DB(), rule); err != nil {
			switch {
			case infra.IsKind(err, infra.KindConflict):
				return errs.Mark(err, reimbursement.ErrRuleOverlap)
			case infra.IsKind(err, infra.KindForeignKeyViolated) && scope.IsOfferScope():
				return errs.Mark(err, errs.ErrOfferNotFound)
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return errs.Mark(err, errs.ErrOffererNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.ToCustomRuleView(rule), nil
}

func (uc *reimbursementCommandsImpl) CloseCustomRule(ctx context.Context, ruleID uuid.UUID, until time.Time) (*queries.CustomRuleView, error) {
	var closed *reimbursement.CustomRule
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rules := tx.ReimbursementRules()
		rule, err := rules.FindByIDForUpdate(ctx, tx.DB(), ruleID)
		if err != nil {
			return markNotFound(err, errs.ErrRuleNotFound)
		}
		if err := rule.Close(until, uc.clock.Now()); err != nil {
			return err
		}

		// A later end can run into a rule that starts after the current one.
		scope := rule.Scope()
		if offererID := scope.OffererID(); offererID != nil {
			if err := rules.LockOfferer(ctx, tx.DB(), *offererID); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		existing, err := rules.ListInScope(ctx, tx.DB(), scope.OfferID(), scope.OffererID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := reimbursement.ValidateNoOverlap(existing, rule); err != nil {
			return err
		}

		if err := rules.UpdateTimespan(ctx, tx.DB(), rule); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, reimbursement.ErrRuleOverlap)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		closed = rule
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.ToCustomRuleView(closed), nil
}

// ReimburseBookings pays every used booking of the offerer used before
// cutoff. Each chunk is one transaction; when a chunk fails its bookings are
// retried one by one so a single bad booking does not block the others.
func (uc *reimbursementCommandsImpl) ReimburseBookings(ctx context.Context, offererID uuid.UUID, cutoff time.Time) (*ReimbursementSummary, error) {
	summary := &ReimbursementSummary{Total: decimal.Zero}
	failed := make(map[uuid.UUID]struct{})

	for {
		ids, err := uc.nextChunk(ctx, offererID, cutoff, failed)
		if err != nil {
			return summary, err
		}
		if len(ids) == 0 {
			return summary, nil
		}

		var chunkTotal decimal.Decimal
		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			chunkTotal = decimal.Zero
			for _, id := range ids {
				amount, err := uc.reimburseOne(ctx, tx, id)
				if err != nil {
					return err
				}
				chunkTotal = chunkTotal.Add(amount)
			}
			return nil
		})
		if err == nil {
			summary.Reimbursed += len(ids)
			summary.Total = summary.Total.Add(chunkTotal)
			continue
		}
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		slog.Warn("reimbursement chunk failed, retrying bookings one by one",
			"offerer_id", offererID,
			"chunk_size", len(ids),
			"error", err.Error())

		for _, id := range ids {
			var amount decimal.Decimal
			oneErr := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				var err error
				amount, err = uc.reimburseOne(ctx, tx, id)
				return err
			})
			if oneErr != nil {
				slog.Error("failed to reimburse booking", "booking_id", id, "error", oneErr.Error())
				failed[id] = struct{}{}
				summary.Failed = append(summary.Failed, id)
				continue
			}
			summary.Reimbursed++
			summary.Total = summary.Total.Add(amount)
		}
	}
}

// nextChunk lists the next reimbursable bookings, skipping the ones that
// already failed in this run.
func (uc *reimbursementCommandsImpl) nextChunk(ctx context.Context, offererID uuid.UUID, cutoff time.Time, failed map[uuid.UUID]struct{}) ([]uuid.UUID, error) {
	limit := uc.chunkSize + len(failed)
	var listed []uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		listed, err = tx.Bookings().ListReimbursableIDs(ctx, tx.DB(), offererID, cutoff, int32(limit)) // #nosec G115 -- bounded by chunk size and failures
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	ids := make([]uuid.UUID, 0, uc.chunkSize)
	for _, id := range listed {
		if _, skip := failed[id]; skip {
			continue
		}
		ids = append(ids, id)
		if len(ids) == uc.chunkSize {
			break
		}
	}
	return ids, nil
}

func (uc *reimbursementCommandsImpl) reimburseOne(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (decimal.Decimal, error) {
	b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
	if err != nil {
		return decimal.Zero, markNotFound(err, errs.ErrBookingNotFound)
	}

	facts := reimbursementFacts(b)
	offerID, offererID := facts.OfferID, facts.OffererID
	rules, err := tx.ReimbursementRules().ListInScope(ctx, tx.DB(), &offerID, &offererID)
	if err != nil {
		return decimal.Zero, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	rule := uc.resolver.Resolve(rules, facts)
	amount := rule.Apply(facts)
	var ruleID *uuid.UUID
	if id := rule.ID(); id != uuid.Nil {
		ruleID = &id
	}

	if err := b.MarkAsReimbursed(amount, ruleID, uc.clock.Now()); err != nil {
		return decimal.Zero, err
	}
	if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
		return decimal.Zero, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return amount, nil
}

func reimbursementFacts(b *booking.Booking) reimbursement.Booking {
	return reimbursement.Booking{
		OfferID:       b.OfferID(),
		OffererID:     b.OffererID(),
		SubcategoryID: b.SubcategoryID(),
		Quantity:      b.Quantity(),
		Amount:        b.Amount(),
		DateUsed:      b.DateUsed(),
	}
}
