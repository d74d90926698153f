package repository

import (
	"context"

	"pcapi/internal/domain/reimbursement"
	"pcapi/internal/infra"
	sqlc "pcapi/internal/infra/sqlc/generated"
	"pcapi/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReimbursementRuleWriteQueries interface {
	LockOffererRules(ctx context.Context, db sqlc.DBTX, offererID uuid.UUID) error
	CreateCustomRule(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCustomRuleParams) error
	UpdateCustomRuleTimespan(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCustomRuleTimespanParams) error
	FindCustomRuleByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindCustomRuleByIDForUpdateRow, error)
	ListCustomRulesInScope(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCustomRulesInScopeParams) ([]sqlc.ListCustomRulesInScopeRow, error)
}

type ReimbursementRuleRepository struct {
	queries ReimbursementRuleWriteQueries
}

func NewReimbursementRuleRepository(queries ReimbursementRuleWriteQueries) *ReimbursementRuleRepository {
	return &ReimbursementRuleRepository{
		queries: queries,
	}
}

// LockOfferer serializes rule writes of one offerer until the transaction ends.
// Offerer-scoped overlaps cannot be expressed as an exclusion constraint because
// of the subcategory filter, so they are checked under this lock.
func (r *ReimbursementRuleRepository) LockOfferer(ctx context.Context, tx sqlc.DBTX, offererID uuid.UUID) error {
	if err := r.queries.LockOffererRules(ctx, tx, offererID); err != nil {
		return infra.WrapRepoErr("failed to lock offerer rules", err)
	}
	return nil
}

func (r *ReimbursementRuleRepository) Create(ctx context.Context, tx sqlc.DBTX, rule *reimbursement.CustomRule) error {
	scope := rule.Scope()
	comp := rule.Compensation()
	params := sqlc.CreateCustomRuleParams{
		ID:            rule.ID(),
		OfferID:       pgconv.UUIDPtrToPgtype(scope.OfferID()),
		OffererID:     pgconv.UUIDPtrToPgtype(scope.OffererID()),
		Subcategories: scope.Subcategories(),
		Amount:        pgconv.DecimalPtrToNumeric(comp.Amount()),
		Rate:          pgconv.DecimalPtrToNumeric(comp.Rate()),
		ValidFrom:     pgconv.TimeToPgtype(rule.Timespan().From()),
		ValidUntil:    pgconv.TimePtrToPgtype(rule.Timespan().Until()),
		CreatedAt:     pgconv.TimeToPgtype(rule.CreatedAt()),
	}
	if params.Subcategories == nil {
		params.Subcategories = []string{}
	}

	if err := r.queries.CreateCustomRule(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create reimbursement rule", err)
	}
	return nil
}

func (r *ReimbursementRuleRepository) UpdateTimespan(ctx context.Context, tx sqlc.DBTX, rule *reimbursement.CustomRule) error {
	err := r.queries.UpdateCustomRuleTimespan(ctx, tx, sqlc.UpdateCustomRuleTimespanParams{
		ValidFrom:  pgconv.TimeToPgtype(rule.Timespan().From()),
		ValidUntil: pgconv.TimePtrToPgtype(rule.Timespan().Until()),
		ID:         rule.ID(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reimbursement rule", err)
	}
	return nil
}

func (r *ReimbursementRuleRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reimbursement.CustomRule, error) {
	row, err := r.queries.FindCustomRuleByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reimbursement rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reimbursement rule", err)
	}
	return CustomRuleFromRow(sqlc.FindCustomRuleByIDRow(row))
}

func (r *ReimbursementRuleRepository) ListInScope(ctx context.Context, tx sqlc.DBTX, offerID, offererID *uuid.UUID) ([]*reimbursement.CustomRule, error) {
	rows, err := r.queries.ListCustomRulesInScope(ctx, tx, sqlc.ListCustomRulesInScopeParams{
		OfferID:   pgconv.UUIDPtrToPgtype(offerID),
		OffererID: pgconv.UUIDPtrToPgtype(offererID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reimbursement rules", err)
	}

	rules := make([]*reimbursement.CustomRule, 0, len(rows))
	for _, row := range rows {
		rule, err := CustomRuleFromRow(sqlc.FindCustomRuleByIDRow(row))
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// CustomRuleFromRow rebuilds a rule through the domain constructors so that a
// row violating the rule invariants surfaces as an error.
func CustomRuleFromRow(row sqlc.FindCustomRuleByIDRow) (*reimbursement.CustomRule, error) {
	scope, err := reimbursement.NewScope(
		pgconv.UUIDPtrFromPgtype(row.OfferID),
		pgconv.UUIDPtrFromPgtype(row.OffererID),
		row.Subcategories,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted rule scope", err)
	}
	amount, err := pgconv.DecimalPtrFromNumeric(row.Amount)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted rule amount", err)
	}
	rate, err := pgconv.DecimalPtrFromNumeric(row.Rate)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted rule rate", err)
	}
	comp, err := reimbursement.NewCompensation(amount, rate)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted rule compensation", err)
	}
	ts, err := reimbursement.NewTimespan(pgconv.TimeFromPgtype(row.ValidFrom), pgconv.TimePtrFromPgtype(row.ValidUntil))
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted rule timespan", err)
	}
	return reimbursement.ReconstructCustomRule(row.ID, scope, comp, ts, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
