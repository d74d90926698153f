package queries

import (
	"context"

	"pcapi/internal/domain/booking"
	"pcapi/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WalletReadStore interface {
	// FindLatestDeposit returns nil when the user has no deposit.
	FindLatestDeposit(ctx context.Context, userID uuid.UUID) (*booking.Deposit, error)
	SumActiveIndividualAmount(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

type WalletQueries interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*WalletView, error)
}

type walletQueriesImpl struct {
	repo  WalletReadStore
	clock clock.Clock
}

func NewWalletQueries(repo WalletReadStore, clk clock.Clock) WalletQueries {
	return &walletQueriesImpl{repo: repo, clock: clk}
}

func (q *walletQueriesImpl) GetWallet(ctx context.Context, userID uuid.UUID) (*WalletView, error) {
	deposit, err := q.repo.FindLatestDeposit(ctx, userID)
	if err != nil {
		return nil, err
	}
	spent, err := q.repo.SumActiveIndividualAmount(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	wallet := booking.NewWallet(deposit, spent, now)
	view := &WalletView{
		UserID:  userID,
		Initial: decimal.Zero,
		Spent:   spent,
		Balance: wallet.Balance(),
	}
	if deposit != nil {
		depositType := string(deposit.Type())
		view.DepositType = &depositType
		view.Initial = deposit.Amount()
		view.ExpirationDate = deposit.ExpirationDate()
		view.IsExpired = deposit.IsExpired(now)
	}
	return view, nil
}
