//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"pcapi/internal/domain/booking"
	"pcapi/internal/pkg/clock"
	"pcapi/internal/usecase/queries"
	mock_queries "pcapi/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetWallet(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	userID := uuid.New()
	deposit := func(expiration time.Time) *booking.Deposit {
		return booking.ReconstructDeposit(uuid.New(), userID, booking.DepositAge18, decimal.NewFromInt(300), &expiration, now.AddDate(-1, 0, 0))
	}

	tests := []struct {
		name        string
		deposit     *booking.Deposit
		spent       string
		wantBalance string
		wantExpired bool
		wantType    bool
	}{
		{name: "active grant", deposit: deposit(now.AddDate(1, 0, 0)), spent: "42.5", wantBalance: "257.5", wantType: true},
		{name: "expired grant keeps no credit", deposit: deposit(now.Add(-time.Hour)), spent: "42.5", wantBalance: "-42.5", wantExpired: true, wantType: true},
		{name: "never subscribed", spent: "0", wantBalance: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mock_queries.NewMockWalletReadStore(ctrl)
			store.EXPECT().FindLatestDeposit(gomock.Any(), userID).Return(tt.deposit, nil)
			store.EXPECT().SumActiveIndividualAmount(gomock.Any(), userID).Return(decimal.RequireFromString(tt.spent), nil)

			view, err := queries.NewWalletQueries(store, clock.NewMockClock(now)).GetWallet(context.Background(), userID)

			require.NoError(t, err)
			assert.Equal(t, tt.wantBalance, view.Balance.String())
			assert.Equal(t, tt.wantExpired, view.IsExpired)
			assert.Equal(t, tt.wantType, view.DepositType != nil)
		})
	}
}

func TestGetWalletStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_queries.NewMockWalletReadStore(ctrl)
	store.EXPECT().FindLatestDeposit(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	_, err := queries.NewWalletQueries(store, clock.NewMockClock(time.Now())).GetWallet(context.Background(), uuid.New())

	assert.ErrorIs(t, err, assert.AnError)
}
