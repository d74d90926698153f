package readstore

import (
	"context"
	"time"

	"pcapi/internal/infra"
	sqlc "pcapi/internal/infra/sqlc/generated"
	"pcapi/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SubscriptionLookupQueries interface {
	IsFeatureActive(ctx context.Context, db sqlc.DBTX, name string) (bool, error)
	EmailExists(ctx context.Context, db sqlc.DBTX, email string) (bool, error)
	FindDuplicateBeneficiary(ctx context.Context, db sqlc.DBTX, arg sqlc.FindDuplicateBeneficiaryParams) (uuid.UUID, error)
	CountSimilarRecentUsers(ctx context.Context, db sqlc.DBTX, arg sqlc.CountSimilarRecentUsersParams) (int64, error)
	IsIDPieceNumberTaken(ctx context.Context, db sqlc.DBTX, arg sqlc.IsIDPieceNumberTakenParams) (bool, error)
	HasInvalidIDPieceFraudCheck(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (bool, error)
}

// SubscriptionLookup answers the pre-subscription checks from the database.
type SubscriptionLookup struct {
	queries SubscriptionLookupQueries
	db      sqlc.DBTX
}

func NewSubscriptionLookup(queries SubscriptionLookupQueries, db sqlc.DBTX) *SubscriptionLookup {
	return &SubscriptionLookup{
		queries: queries,
		db:      db,
	}
}

// IsFeatureActive treats an unknown flag as off.
func (l *SubscriptionLookup) IsFeatureActive(ctx context.Context, name string) (bool, error) {
	active, err := l.queries.IsFeatureActive(ctx, l.db, name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to read feature flag", err)
	}
	return active, nil
}

func (l *SubscriptionLookup) EmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := l.queries.EmailExists(ctx, l.db, email)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check email", err)
	}
	return exists, nil
}

func (l *SubscriptionLookup) FindDuplicateBeneficiary(ctx context.Context, firstName, lastName string, dateOfBirth time.Time, excludedUserID *uuid.UUID) (*uuid.UUID, error) {
	id, err := l.queries.FindDuplicateBeneficiary(ctx, l.db, sqlc.FindDuplicateBeneficiaryParams{
		FirstName:   firstName,
		LastName:    lastName,
		DateOfBirth: pgconv.DatePtrToPgtype(&dateOfBirth),
		ExcludedID:  pgconv.UUIDPtrToPgtype(excludedUserID),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to search duplicate beneficiary", err)
	}
	return &id, nil
}

func (l *SubscriptionLookup) CountSimilarRecentUsers(ctx context.Context, firstName, lastName string, since time.Time) (int, error) {
	n, err := l.queries.CountSimilarRecentUsers(ctx, l.db, sqlc.CountSimilarRecentUsersParams{
		FirstName: firstName,
		LastName:  lastName,
		Since:     pgconv.TimeToPgtype(since),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count similar users", err)
	}
	return int(n), nil
}

func (l *SubscriptionLookup) IsIDPieceNumberTaken(ctx context.Context, idPieceNumber string, excludedUserID *uuid.UUID) (bool, error) {
	taken, err := l.queries.IsIDPieceNumberTaken(ctx, l.db, sqlc.IsIDPieceNumberTakenParams{
		IDPieceNumber: idPieceNumber,
		ExcludedID:    pgconv.UUIDPtrToPgtype(excludedUserID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check ID piece number", err)
	}
	return taken, nil
}

func (l *SubscriptionLookup) HasInvalidIDPieceFraudCheck(ctx context.Context, userID uuid.UUID) (bool, error) {
	flagged, err := l.queries.HasInvalidIDPieceFraudCheck(ctx, l.db, userID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to read fraud checks", err)
	}
	return flagged, nil
}
