//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"pcapi/internal/infra"
	"pcapi/internal/infra/repository"
	sqlc "pcapi/internal/infra/sqlc/generated"
	"pcapi/internal/pkg/pgconv"
	repositorymock "pcapi/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStockRepository_Reserve(t *testing.T) {
	ctx := context.Background()
	stockID := uuid.New()

	testCases := []struct {
		name         string
		rowsAffected int64
		returnErr    error
		wantReserved bool
		wantErr      bool
	}{
		{
			name:         "success: quantity reserved",
			rowsAffected: 1,
			wantReserved: true,
		},
		{
			name:         "success: stock full, nothing updated",
			rowsAffected: 0,
			wantReserved: false,
		},
		{
			name:      "error: database failure",
			returnErr: errors.New("broken pipe"),
			wantErr:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockStockWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().
				ReserveStockQuantity(ctx, mockDB, sqlc.ReserveStockQuantityParams{Quantity: 2, ID: stockID}).
				Return(tc.rowsAffected, tc.returnErr)

			reserved, err := repository.NewStockRepository(mockQueries).Reserve(ctx, mockDB, stockID, 2)

			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantReserved, reserved)
		})
	}
}

func TestStockRepository_Release(t *testing.T) {
	ctx := context.Background()
	stockID := uuid.New()

	t.Run("error: nothing left to release", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockStockWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ReleaseStockQuantity(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		err := repository.NewStockRepository(mockQueries).Release(ctx, mockDB, stockID, 1)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockStockWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ReleaseStockQuantity(ctx, mockDB, gomock.Any()).Return(int64(1), nil)

		assert.NoError(t, repository.NewStockRepository(mockQueries).Release(ctx, mockDB, stockID, 1))
	})
}

func TestStockFromRow_UnlimitedStock(t *testing.T) {
	stock, err := repository.StockFromRow(sqlc.FindStockForBookingRow{
		ID:               uuid.New(),
		Price:            pgconv.DecimalToNumeric(decimal.RequireFromString("5.00")),
		Quantity:         pgtype.Int4{},
		DnBookedQuantity: 12,
	})

	require.NoError(t, err)
	assert.Nil(t, stock.Quantity())
	assert.Nil(t, stock.RemainingQuantity())
	assert.Equal(t, 12, stock.BookedQuantity())
}
