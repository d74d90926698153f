//go:build unit

package booking_test

import (
	"testing"
	"time"

	"pcapi/internal/domain/booking"
	"pcapi/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func deposit(amount string) *booking.Deposit {
	expiration := now.AddDate(2, 0, 0)
	d, err := booking.NewDeposit(uuid.New(), booking.DepositAge18, decimal.RequireFromString(amount), &expiration, now.AddDate(0, -1, 0))
	if err != nil {
		panic(err)
	}
	return d
}

func TestCheckStockCapacity(t *testing.T) {
	cases := []struct {
		name   string
		stock  *booking.Stock
		active int
		errIs  error
	}{
		{name: "unlimited stock accepts anything", stock: builder.NewStockBuilder().Unlimited().BuildDomain(), active: 1000},
		{name: "exactly full", stock: builder.NewStockBuilder().WithQuantity(2).BuildDomain(), active: 2},
		{name: "one over", stock: builder.NewStockBuilder().WithQuantity(2).BuildDomain(), active: 3, errIs: booking.ErrTooManyBookings},
		{name: "zero quantity stock", stock: builder.NewStockBuilder().WithQuantity(0).BuildDomain(), active: 1, errIs: booking.ErrTooManyBookings},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := booking.CheckStockCapacity(c.stock, c.active)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestCheckWalletBalance(t *testing.T) {
	cases := []struct {
		name   string
		b      *booking.Booking
		change booking.Change
		wallet booking.Wallet
		errIs  error
	}{
		{
			name:   "new booking within balance",
			b:      builder.NewBookingBuilder().WithAmount("20").BuildDomain(),
			change: booking.Change{IsNew: true},
			wallet: booking.NewWallet(deposit("300"), decimal.RequireFromString("300"), now),
		},
		{
			name:   "new booking one cent over",
			b:      builder.NewBookingBuilder().WithAmount("20").BuildDomain(),
			change: booking.Change{IsNew: true},
			wallet: booking.NewWallet(deposit("300"), decimal.RequireFromString("300.01"), now),
			errIs:  booking.ErrInsufficientFunds,
		},
		{
			name:   "free booking is always accepted",
			b:      builder.NewBookingBuilder().WithAmount("0").BuildDomain(),
			change: booking.Change{IsNew: true},
			wallet: booking.NewWallet(nil, decimal.RequireFromString("500"), now),
		},
		{
			name:   "no deposit and non-free booking",
			b:      builder.NewBookingBuilder().WithAmount("5").BuildDomain(),
			change: booking.Change{IsNew: true},
			wallet: booking.NewWallet(nil, decimal.RequireFromString("5"), now),
			errIs:  booking.ErrInsufficientFunds,
		},
		{
			name:   "expired deposit counts as no credit",
			b:      builder.NewBookingBuilder().WithAmount("5").BuildDomain(),
			change: booking.Change{IsNew: true},
			wallet: booking.NewWallet(deposit("300"), decimal.RequireFromString("5"), now.AddDate(3, 0, 0)),
			errIs:  booking.ErrInsufficientFunds,
		},
		{
			name:   "un-cancel re-checks the balance",
			b:      builder.NewBookingBuilder().WithAmount("50").BuildDomain(),
			change: booking.Change{LeavesCancelled: true},
			wallet: booking.NewWallet(deposit("300"), decimal.RequireFromString("310"), now),
			errIs:  booking.ErrInsufficientFunds,
		},
		{
			name:   "status-only change is not checked",
			b:      builder.NewBookingBuilder().WithAmount("50").BuildDomain(),
			change: booking.Change{},
			wallet: booking.NewWallet(deposit("300"), decimal.RequireFromString("310"), now),
		},
		{
			name:   "educational bookings do not use the wallet",
			b:      builder.NewBookingBuilder().WithAmount("500").AsEducational().BuildDomain(),
			change: booking.Change{IsNew: true},
			wallet: booking.NewWallet(nil, decimal.RequireFromString("500"), now),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := booking.CheckWalletBalance(c.b, c.change, c.wallet)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestWallet(t *testing.T) {
	w := booking.NewWallet(deposit("300"), decimal.RequireFromString("120.50"), now)
	require.True(t, w.Balance().Equal(decimal.RequireFromString("179.50")))

	w = w.WithBooking(decimal.RequireFromString("180"))
	require.True(t, w.Balance().IsNegative())
}
