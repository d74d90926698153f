//go:build unit

package commands_test

import (
	"context"
	"testing"

	"pcapi/internal/domain/booking"
	"pcapi/internal/usecase/shared"
	sharedmock "pcapi/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// uowFixture runs every Within callback against one mocked transaction.
type uowFixture struct {
	ctrl          *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	bookings      *sharedmock.MockBookingRepository
	stocks        *sharedmock.MockStockRepository
	deposits      *sharedmock.MockDepositRepository
	rules         *sharedmock.MockReimbursementRuleRepository
	users         *sharedmock.MockUserRepository
	fraudChecks   *sharedmock.MockFraudCheckRepository
	notifications *sharedmock.MockNotificationRepository
}

func newUOWFixture(t *testing.T) *uowFixture {
	ctrl := gomock.NewController(t)
	f := &uowFixture{
		ctrl:          ctrl,
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		stocks:        sharedmock.NewMockStockRepository(ctrl),
		deposits:      sharedmock.NewMockDepositRepository(ctrl),
		rules:         sharedmock.NewMockReimbursementRuleRepository(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		fraudChecks:   sharedmock.NewMockFraudCheckRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()

	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Stocks().Return(f.stocks).AnyTimes()
	f.tx.EXPECT().Deposits().Return(f.deposits).AnyTimes()
	f.tx.EXPECT().ReimbursementRules().Return(f.rules).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.tx.EXPECT().FraudChecks().Return(f.fraudChecks).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	return f
}

// expectEvent expects one outbox job on topic.
func (f *uowFixture) expectEvent(topic string) *gomock.Call {
	return f.notifications.EXPECT().
		CreateJob(gomock.Any(), gomock.Any(), "event", topic, gomock.Any(), gomock.Any()).
		Return(nil)
}

type fixedTokens struct{ value string }

func (g fixedTokens) Generate() (booking.Token, error) {
	return booking.NewToken(g.value)
}
