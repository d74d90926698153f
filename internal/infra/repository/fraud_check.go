package repository

import (
	"context"
	"time"

	"pcapi/internal/infra"
	sqlc "pcapi/internal/infra/sqlc/generated"
	"pcapi/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type FraudCheckWriteQueries interface {
	CreateFraudCheck(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateFraudCheckParams) error
}

type FraudCheckRepository struct {
	queries FraudCheckWriteQueries
}

func NewFraudCheckRepository(queries FraudCheckWriteQueries) *FraudCheckRepository {
	return &FraudCheckRepository{
		queries: queries,
	}
}

func (r *FraudCheckRepository) Create(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, checkType, status string, reasonCodes []string, at time.Time) error {
	if reasonCodes == nil {
		reasonCodes = []string{}
	}
	err := r.queries.CreateFraudCheck(ctx, tx, sqlc.CreateFraudCheckParams{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        checkType,
		Status:      status,
		ReasonCodes: reasonCodes,
		CreatedAt:   pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record fraud check", err)
	}
	return nil
}
