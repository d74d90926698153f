package readstore

import (
	"context"

	"pcapi/internal/domain/booking"
	"pcapi/internal/domain/reimbursement"
	"pcapi/internal/infra"
	"pcapi/internal/infra/repository"
	sqlc "pcapi/internal/infra/sqlc/generated"
	"pcapi/internal/pkg/pgconv"
	"pcapi/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReimbursementQueries interface {
	GetReimbursementFacts(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReimbursementFactsRow, error)
	ListCustomRulesInScope(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCustomRulesInScopeParams) ([]sqlc.ListCustomRulesInScopeRow, error)
	ListCustomRulesByOfferer(ctx context.Context, db sqlc.DBTX, offererID uuid.UUID) ([]sqlc.ListCustomRulesByOffererRow, error)
}

type ReimbursementReadStore struct {
	queries ReimbursementQueries
	db      sqlc.DBTX
}

func NewReimbursementReadStore(queries ReimbursementQueries, db sqlc.DBTX) *ReimbursementReadStore {
	return &ReimbursementReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReimbursementReadStore) FindFacts(ctx context.Context, bookingID uuid.UUID) (*shared.ReimbursementFacts, error) {
	row, err := r.queries.GetReimbursementFacts(ctx, r.db, bookingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read reimbursement facts", err)
	}

	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted booking status", err)
	}
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted booking amount", err)
	}

	return &shared.ReimbursementFacts{
		BookingID: row.ID,
		Status:    status,
		Booking: reimbursement.Booking{
			OfferID:       row.OfferID,
			OffererID:     row.OffererID,
			SubcategoryID: row.SubcategoryID,
			Quantity:      int(row.Quantity),
			Amount:        amount,
			DateUsed:      pgconv.TimePtrFromPgtype(row.DateUsed),
		},
	}, nil
}

func (r *ReimbursementReadStore) ListRulesInScope(ctx context.Context, offerID, offererID uuid.UUID) ([]*reimbursement.CustomRule, error) {
	rows, err := r.queries.ListCustomRulesInScope(ctx, r.db, sqlc.ListCustomRulesInScopeParams{
		OfferID:   pgconv.UUIDToPgtype(offerID),
		OffererID: pgconv.UUIDToPgtype(offererID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reimbursement rules", err)
	}

	rules := make([]*reimbursement.CustomRule, 0, len(rows))
	for _, row := range rows {
		rule, err := repository.CustomRuleFromRow(sqlc.FindCustomRuleByIDRow(row))
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (r *ReimbursementReadStore) ListRulesByOfferer(ctx context.Context, offererID uuid.UUID) ([]*reimbursement.CustomRule, error) {
	rows, err := r.queries.ListCustomRulesByOfferer(ctx, r.db, offererID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offerer rules", err)
	}

	rules := make([]*reimbursement.CustomRule, 0, len(rows))
	for _, row := range rows {
		rule, err := repository.CustomRuleFromRow(sqlc.FindCustomRuleByIDRow(row))
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
