//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"pcapi/internal/domain/booking"
	"pcapi/internal/infra"
	sqlc "pcapi/internal/infra/sqlc/generated"
	"pcapi/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWalletQueries struct {
	mock.Mock
}

func (m *MockWalletQueries) FindLatestDepositByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.Deposits, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(sqlc.Deposits), args.Error(1)
}

func (m *MockWalletQueries) SumActiveIndividualBookingAmount(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (pgtype.Numeric, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(pgtype.Numeric), args.Error(1)
}

func TestFindLatestDeposit(t *testing.T) {
	userID := uuid.New()
	expires := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockWalletQueries)
		mockQueries.On("FindLatestDepositByUser", mock.Anything, mock.Anything, userID).Return(sqlc.Deposits{
			ID:             uuid.New(),
			UserID:         userID,
			Type:           "GRANT_18",
			Amount:         pgconv.DecimalToNumeric(decimal.RequireFromString("300.00")),
			ExpirationDate: pgconv.TimeToPgtype(expires),
			Source:         "ubble",
			CreatedAt:      pgconv.TimeToPgtype(expires.AddDate(-2, 0, 0)),
		}, nil)

		d, err := NewWalletReadStore(mockQueries, nil).FindLatestDeposit(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, booking.DepositAge18, d.Type())
		assert.True(t, d.Amount().Equal(decimal.NewFromInt(300)))
		require.NotNil(t, d.ExpirationDate())
		assert.True(t, d.ExpirationDate().Equal(expires))
	})

	t.Run("no deposit is not an error", func(t *testing.T) {
		mockQueries := new(MockWalletQueries)
		mockQueries.On("FindLatestDepositByUser", mock.Anything, mock.Anything, userID).Return(sqlc.Deposits{}, pgx.ErrNoRows)

		d, err := NewWalletReadStore(mockQueries, nil).FindLatestDeposit(context.Background(), userID)

		assert.NoError(t, err)
		assert.Nil(t, d)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockWalletQueries)
		mockQueries.On("FindLatestDepositByUser", mock.Anything, mock.Anything, userID).Return(sqlc.Deposits{}, assert.AnError)

		_, err := NewWalletReadStore(mockQueries, nil).FindLatestDeposit(context.Background(), userID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestSumActiveIndividualAmount(t *testing.T) {
	userID := uuid.New()
	mockQueries := new(MockWalletQueries)
	mockQueries.On("SumActiveIndividualBookingAmount", mock.Anything, mock.Anything, userID).
		Return(pgconv.DecimalToNumeric(decimal.RequireFromString("12.50")), nil)

	total, err := NewWalletReadStore(mockQueries, nil).SumActiveIndividualAmount(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, "12.5", total.String())
	mockQueries.AssertExpectations(t)
}
