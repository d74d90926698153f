//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"pcapi/internal/domain/booking"
	"pcapi/internal/domain/user"
	"pcapi/internal/infra"
	"pcapi/internal/pkg/clock"
	"pcapi/internal/pkg/errs"
	"pcapi/internal/usecase/commands"
	"pcapi/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var bookingNow = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

func newBookingCommands(f *uowFixture) commands.BookingCommands {
	return commands.NewBookingCommands(f.uow, clock.NewMockClock(bookingNow), fixedTokens{value: "XYZ789"})
}

func beneficiary(t *testing.T) *user.User {
	t.Helper()
	u, err := builder.NewUserBuilder().AsBeneficiary(time.Date(2008, 1, 1, 0, 0, 0, 0, time.UTC)).BuildDomain()
	require.NoError(t, err)
	return u
}

func grant(userID uuid.UUID, amount string) *booking.Deposit {
	expires := bookingNow.AddDate(2, 0, 0)
	return booking.ReconstructDeposit(uuid.New(), userID, booking.DepositAge18, decimal.RequireFromString(amount), &expires, bookingNow.AddDate(0, -1, 0))
}

func TestBookOffer(t *testing.T) {
	ctx := context.Background()

	t.Run("success: reserves, checks the wallet and records the event", func(t *testing.T) {
		f := newUOWFixture(t)
		u := beneficiary(t)
		stock := builder.NewStockBuilder().WithPrice("12.50").BuildDomain()

		f.reads.EXPECT().UserByID(gomock.Any(), u.ID()).Return(u, nil)
		f.reads.EXPECT().StockByID(gomock.Any(), stock.ID()).Return(stock, nil)
		f.stocks.EXPECT().Reserve(gomock.Any(), gomock.Any(), stock.ID(), 1).Return(true, nil)
		f.deposits.EXPECT().FindActiveByUserForUpdate(gomock.Any(), gomock.Any(), u.ID()).Return(grant(u.ID(), "300"), nil)
		f.bookings.EXPECT().SumActiveIndividualAmount(gomock.Any(), gomock.Any(), u.ID()).Return(decimal.RequireFromString("100"), nil)

		var created *booking.Booking
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
				created = b
				return nil
			})
		f.notifications.EXPECT().
			CreateJob(gomock.Any(), gomock.Any(), "event", "booking_created", gomock.Any(), bookingNow).
			DoAndReturn(func(_ context.Context, _ any, _, _ string, payload []byte, _ time.Time) error {
				var body map[string]any
				require.NoError(t, json.Unmarshal(payload, &body))
				assert.Equal(t, "12.50", body["amount"])
				assert.Equal(t, "CONFIRMED", body["status"])
				return nil
			})

		id, err := newBookingCommands(f).BookOffer(ctx, u.ID(), stock.ID(), 1)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, created.ID(), id)
		assert.Equal(t, "XYZ789", created.Token().String())
		assert.Equal(t, bookingNow, created.DateCreated())
	})

	t.Run("error: sold out stock is not booked", func(t *testing.T) {
		f := newUOWFixture(t)
		u := beneficiary(t)
		stock := builder.NewStockBuilder().WithQuantity(1).WithBooked(1).BuildDomain()

		f.reads.EXPECT().UserByID(gomock.Any(), u.ID()).Return(u, nil)
		f.reads.EXPECT().StockByID(gomock.Any(), stock.ID()).Return(stock, nil)
		f.stocks.EXPECT().Reserve(gomock.Any(), gomock.Any(), stock.ID(), 1).Return(false, nil)

		_, err := newBookingCommands(f).BookOffer(ctx, u.ID(), stock.ID(), 1)

		assert.ErrorIs(t, err, booking.ErrTooManyBookings)
	})

	t.Run("error: booking beyond the remaining credit", func(t *testing.T) {
		f := newUOWFixture(t)
		u := beneficiary(t)
		stock := builder.NewStockBuilder().WithPrice("10.00").BuildDomain()

		f.reads.EXPECT().UserByID(gomock.Any(), u.ID()).Return(u, nil)
		f.reads.EXPECT().StockByID(gomock.Any(), stock.ID()).Return(stock, nil)
		f.stocks.EXPECT().Reserve(gomock.Any(), gomock.Any(), stock.ID(), 1).Return(true, nil)
		f.deposits.EXPECT().FindActiveByUserForUpdate(gomock.Any(), gomock.Any(), u.ID()).Return(grant(u.ID(), "300"), nil)
		f.bookings.EXPECT().SumActiveIndividualAmount(gomock.Any(), gomock.Any(), u.ID()).Return(decimal.RequireFromString("295"), nil)

		_, err := newBookingCommands(f).BookOffer(ctx, u.ID(), stock.ID(), 1)

		assert.ErrorIs(t, err, booking.ErrInsufficientFunds)
	})

	t.Run("success: spending exactly the remaining credit", func(t *testing.T) {
		f := newUOWFixture(t)
		u := beneficiary(t)
		stock := builder.NewStockBuilder().WithPrice("10.00").BuildDomain()

		f.reads.EXPECT().UserByID(gomock.Any(), u.ID()).Return(u, nil)
		f.reads.EXPECT().StockByID(gomock.Any(), stock.ID()).Return(stock, nil)
		f.stocks.EXPECT().Reserve(gomock.Any(), gomock.Any(), stock.ID(), 1).Return(true, nil)
		f.deposits.EXPECT().FindActiveByUserForUpdate(gomock.Any(), gomock.Any(), u.ID()).Return(grant(u.ID(), "300"), nil)
		f.bookings.EXPECT().SumActiveIndividualAmount(gomock.Any(), gomock.Any(), u.ID()).Return(decimal.RequireFromString("290"), nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.expectEvent("booking_created")

		_, err := newBookingCommands(f).BookOffer(ctx, u.ID(), stock.ID(), 1)

		assert.NoError(t, err)
	})

	t.Run("success: educational bookings skip the wallet", func(t *testing.T) {
		f := newUOWFixture(t)
		u := beneficiary(t)
		stock := builder.NewStockBuilder().AsEducational().WithPrice("500").BuildDomain()

		f.reads.EXPECT().UserByID(gomock.Any(), u.ID()).Return(u, nil)
		f.reads.EXPECT().StockByID(gomock.Any(), stock.ID()).Return(stock, nil)
		f.stocks.EXPECT().Reserve(gomock.Any(), gomock.Any(), stock.ID(), 1).Return(true, nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
				assert.Equal(t, booking.StatusPending, b.Status())
				return nil
			})
		f.expectEvent("booking_created")

		_, err := newBookingCommands(f).BookOffer(ctx, u.ID(), stock.ID(), 1)

		assert.NoError(t, err)
	})

	t.Run("error: unknown stock", func(t *testing.T) {
		f := newUOWFixture(t)
		u := beneficiary(t)
		stockID := uuid.New()

		f.reads.EXPECT().UserByID(gomock.Any(), u.ID()).Return(u, nil)
		f.reads.EXPECT().StockByID(gomock.Any(), stockID).
			Return(nil, infra.WrapRepoErr("stock not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := newBookingCommands(f).BookOffer(ctx, u.ID(), stockID, 1)

		assert.True(t, errs.Is(err, errs.ErrStockNotFound))
	})

	t.Run("error: duo quantity on a solo offer", func(t *testing.T) {
		f := newUOWFixture(t)
		u := beneficiary(t)
		stock := builder.NewStockBuilder().BuildDomain()

		f.reads.EXPECT().UserByID(gomock.Any(), u.ID()).Return(u, nil)
		f.reads.EXPECT().StockByID(gomock.Any(), stock.ID()).Return(stock, nil)

		_, err := newBookingCommands(f).BookOffer(ctx, u.ID(), stock.ID(), 2)

		assert.ErrorIs(t, err, booking.ErrInvalidQuantity)
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success: releases the stock", func(t *testing.T) {
		f := newUOWFixture(t)
		b := builder.NewBookingBuilder().WithQuantity(1).BuildDomain()

		f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		f.stocks.EXPECT().Release(gomock.Any(), gomock.Any(), b.StockID(), 1).Return(nil)
		f.bookings.EXPECT().Update(gomock.Any(), gomock.Any(), b).Return(nil)
		f.expectEvent("booking_cancelled")

		actor := commands.Actor{ID: b.UserID(), Role: user.RoleBeneficiary}
		err := newBookingCommands(f).CancelBooking(ctx, actor, b.ID(), booking.CancellationByBeneficiary)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("error: beneficiary cannot cancel someone else's booking", func(t *testing.T) {
		f := newUOWFixture(t)
		b := builder.NewBookingBuilder().BuildDomain()

		f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

		actor := commands.Actor{ID: uuid.New(), Role: user.RoleBeneficiary}
		err := newBookingCommands(f).CancelBooking(ctx, actor, b.ID(), booking.CancellationByBeneficiary)

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("error: only the owner cancels below the pro role", func(t *testing.T) {
		for _, role := range []user.Role{user.RoleUser, user.RoleUnderageBeneficiary} {
			f := newUOWFixture(t)
			b := builder.NewBookingBuilder().BuildDomain()

			f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

			actor := commands.Actor{ID: uuid.New(), Role: role}
			err := newBookingCommands(f).CancelBooking(ctx, actor, b.ID(), booking.CancellationByBeneficiary)

			assert.ErrorIs(t, err, errs.ErrForbidden, role)
			assert.Equal(t, booking.StatusConfirmed, b.Status(), role)
		}
	})

	t.Run("success: pro cancels a booking it does not own", func(t *testing.T) {
		f := newUOWFixture(t)
		b := builder.NewBookingBuilder().WithQuantity(2).BuildDomain()

		f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		f.stocks.EXPECT().Release(gomock.Any(), gomock.Any(), b.StockID(), 2).Return(nil)
		f.bookings.EXPECT().Update(gomock.Any(), gomock.Any(), b).Return(nil)
		f.expectEvent("booking_cancelled")

		actor := commands.Actor{ID: uuid.New(), Role: user.RolePro}
		err := newBookingCommands(f).CancelBooking(ctx, actor, b.ID(), booking.CancellationByOfferer)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("error: used bookings stay used", func(t *testing.T) {
		f := newUOWFixture(t)
		b := builder.NewBookingBuilder().UsedAt(bookingNow.Add(-time.Hour)).BuildDomain()

		f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

		actor := commands.Actor{ID: uuid.New(), Role: user.RolePro}
		err := newBookingCommands(f).CancelBooking(ctx, actor, b.ID(), booking.CancellationByOfferer)

		assert.ErrorIs(t, err, booking.ErrAlreadyUsed)
	})

	t.Run("error: unknown booking", func(t *testing.T) {
		f := newUOWFixture(t)
		id := uuid.New()

		f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound))

		err := newBookingCommands(f).CancelBooking(ctx, commands.Actor{ID: uuid.New(), Role: user.RoleAdmin}, id, booking.CancellationFraud)

		assert.True(t, errs.Is(err, errs.ErrBookingNotFound))
	})
}

func TestUncancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("error: stock was deleted in the meantime", func(t *testing.T) {
		f := newUOWFixture(t)
		b := builder.NewBookingBuilder().CancelledAt(bookingNow.Add(-time.Hour)).BuildDomain()
		stock := builder.NewStockBuilder().With(func(s *builder.StockBuilder) {
			s.ID = b.StockID()
			s.IsSoftDeleted = true
		}).BuildDomain()

		f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		f.reads.EXPECT().StockByID(gomock.Any(), b.StockID()).Return(stock, nil)

		err := newBookingCommands(f).UncancelBooking(ctx, b.ID())

		assert.ErrorIs(t, err, booking.ErrStockDeleted)
	})

	t.Run("error: stock was taken in the meantime", func(t *testing.T) {
		f := newUOWFixture(t)
		b := builder.NewBookingBuilder().CancelledAt(bookingNow.Add(-time.Hour)).BuildDomain()

		f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		f.reads.EXPECT().StockByID(gomock.Any(), b.StockID()).Return(stockOf(b), nil)
		f.stocks.EXPECT().Reserve(gomock.Any(), gomock.Any(), b.StockID(), b.Quantity()).Return(false, nil)

		err := newBookingCommands(f).UncancelBooking(ctx, b.ID())

		assert.ErrorIs(t, err, booking.ErrTooManyBookings)
	})

	t.Run("error: credit was spent in the meantime", func(t *testing.T) {
		f := newUOWFixture(t)
		b := builder.NewBookingBuilder().WithAmount("20.00").CancelledAt(bookingNow.Add(-time.Hour)).BuildDomain()

		f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		f.reads.EXPECT().StockByID(gomock.Any(), b.StockID()).Return(stockOf(b), nil)
		f.stocks.EXPECT().Reserve(gomock.Any(), gomock.Any(), b.StockID(), b.Quantity()).Return(true, nil)
		f.deposits.EXPECT().FindActiveByUserForUpdate(gomock.Any(), gomock.Any(), b.UserID()).Return(grant(b.UserID(), "300"), nil)
		f.bookings.EXPECT().SumActiveIndividualAmount(gomock.Any(), gomock.Any(), b.UserID()).Return(decimal.RequireFromString("290"), nil)

		err := newBookingCommands(f).UncancelBooking(ctx, b.ID())

		assert.ErrorIs(t, err, booking.ErrInsufficientFunds)
	})

	t.Run("success: booking is confirmed again", func(t *testing.T) {
		f := newUOWFixture(t)
		b := builder.NewBookingBuilder().CancelledAt(bookingNow.Add(-time.Hour)).BuildDomain()

		f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		f.reads.EXPECT().StockByID(gomock.Any(), b.StockID()).Return(stockOf(b), nil)
		f.stocks.EXPECT().Reserve(gomock.Any(), gomock.Any(), b.StockID(), b.Quantity()).Return(true, nil)
		f.deposits.EXPECT().FindActiveByUserForUpdate(gomock.Any(), gomock.Any(), b.UserID()).Return(grant(b.UserID(), "300"), nil)
		f.bookings.EXPECT().SumActiveIndividualAmount(gomock.Any(), gomock.Any(), b.UserID()).Return(decimal.Zero, nil)
		f.bookings.EXPECT().Update(gomock.Any(), gomock.Any(), b).Return(nil)
		f.expectEvent("booking_uncancelled")

		err := newBookingCommands(f).UncancelBooking(ctx, b.ID())

		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Nil(t, b.CancellationDate())
	})
}

func stockOf(b *booking.Booking) *booking.Stock {
	return builder.NewStockBuilder().With(func(s *builder.StockBuilder) { s.ID = b.StockID() }).BuildDomain()
}

func TestMarkBookingAsUsed(t *testing.T) {
	ctx := context.Background()

	t.Run("error: malformed token is rejected before loading", func(t *testing.T) {
		f := newUOWFixture(t)

		err := newBookingCommands(f).MarkBookingAsUsed(ctx, uuid.New(), "abc")

		assert.ErrorIs(t, err, booking.ErrInvalidToken)
	})

	t.Run("success: sets the date used", func(t *testing.T) {
		f := newUOWFixture(t)
		b := builder.NewBookingBuilder().BuildDomain()

		f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		f.bookings.EXPECT().Update(gomock.Any(), gomock.Any(), b).Return(nil)
		f.expectEvent("booking_used")

		err := newBookingCommands(f).MarkBookingAsUsed(ctx, b.ID(), "ABC123")

		require.NoError(t, err)
		assert.Equal(t, booking.StatusUsed, b.Status())
		require.NotNil(t, b.DateUsed())
		assert.Equal(t, bookingNow, *b.DateUsed())
	})
}
