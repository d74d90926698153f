//go:build unit

package booking_test

import (
	"testing"
	"time"

	"pcapi/internal/domain/booking"
	"pcapi/internal/pkg/clock"
	"pcapi/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedTokens struct{ token string }

func (f fixedTokens) Generate() (booking.Token, error) {
	return booking.NewToken(f.token)
}

func newServices() *booking.Services {
	return &booking.Services{
		Clock:          clock.NewMockClock(now),
		TokenGenerator: fixedTokens{token: "XYZ789"},
	}
}

func TestNewBooking(t *testing.T) {
	beneficiary := booking.Beneficiary{ID: uuid.New(), IsActive: true}

	t.Run("individual booking is confirmed at stock price", func(t *testing.T) {
		stock := builder.NewStockBuilder().WithPrice("12.50").BuildDomain()

		b, err := booking.NewBooking(newServices(), beneficiary, stock, 1)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, "XYZ789", b.Token().String())
		assert.True(t, b.IsIndividual())
		assert.Equal(t, now, b.DateCreated())
		assert.Equal(t, stock.OffererID(), b.OffererID())
		if diff := cmp.Diff("12.5", b.TotalAmount().String()); diff != "" {
			t.Errorf("total mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("educational booking starts pending", func(t *testing.T) {
		stock := builder.NewStockBuilder().AsEducational().BuildDomain()

		b, err := booking.NewBooking(newServices(), beneficiary, stock, 1)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.False(t, b.IsIndividual())
	})

	cases := []struct {
		name        string
		stock       *booking.Stock
		beneficiary booking.Beneficiary
		quantity    int
		errIs       error
	}{
		{name: "duo offer accepts two", stock: builder.NewStockBuilder().AsDuo().BuildDomain(), beneficiary: beneficiary, quantity: 2},
		{name: "non duo offer refuses two", stock: builder.NewStockBuilder().BuildDomain(), beneficiary: beneficiary, quantity: 2, errIs: booking.ErrInvalidQuantity},
		{name: "three is never allowed", stock: builder.NewStockBuilder().AsDuo().BuildDomain(), beneficiary: beneficiary, quantity: 3, errIs: booking.ErrInvalidQuantity},
		{name: "zero is never allowed", stock: builder.NewStockBuilder().BuildDomain(), beneficiary: beneficiary, quantity: 0, errIs: booking.ErrInvalidQuantity},
		{name: "soft deleted stock", stock: builder.NewStockBuilder().AsSoftDeleted().BuildDomain(), beneficiary: beneficiary, quantity: 1, errIs: booking.ErrStockDeleted},
		{name: "inactive beneficiary", stock: builder.NewStockBuilder().BuildDomain(), beneficiary: booking.Beneficiary{ID: uuid.New()}, quantity: 1, errIs: booking.ErrBeneficiaryInactive},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := booking.NewBooking(newServices(), c.beneficiary, c.stock, c.quantity)
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, b)
			} else {
				require.Nil(t, b)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestBookingTransitions(t *testing.T) {
	later := now.Add(time.Hour)
	token, err := booking.NewToken("ABC123")
	require.NoError(t, err)
	wrong, err := booking.NewToken("ZZZ999")
	require.NoError(t, err)

	t.Run("cancel then uncancel", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()

		require.NoError(t, b.Cancel(booking.CancellationByBeneficiary, later))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.False(t, b.IsActive())
		require.NotNil(t, b.CancellationDate())

		change, err := b.Uncancel()
		require.NoError(t, err)
		assert.True(t, change.LeavesCancelled)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Nil(t, b.CancellationDate())
		assert.Nil(t, b.CancellationReason())
	})

	t.Run("cannot cancel twice", func(t *testing.T) {
		b := builder.NewBookingBuilder().CancelledAt(now).BuildDomain()
		require.ErrorIs(t, b.Cancel(booking.CancellationByOfferer, later), booking.ErrAlreadyCancelled)
	})

	t.Run("cannot cancel a used booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().UsedAt(now).BuildDomain()
		require.ErrorIs(t, b.Cancel(booking.CancellationByOfferer, later), booking.ErrAlreadyUsed)
	})

	t.Run("uncancel requires a cancelled booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		_, err := b.Uncancel()
		require.ErrorIs(t, err, booking.ErrNotCancelled)
	})

	t.Run("use with the right token", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, b.MarkAsUsed(token, later))
		assert.Equal(t, booking.StatusUsed, b.Status())
		assert.Equal(t, &later, b.DateUsed())
	})

	t.Run("use with a wrong token", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		require.ErrorIs(t, b.MarkAsUsed(wrong, later), booking.ErrInvalidToken)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("pending booking must be confirmed before use", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusPending).BuildDomain()
		require.ErrorIs(t, b.MarkAsUsed(token, later), booking.ErrNotConfirmed)
		require.NoError(t, b.Confirm())
		require.NoError(t, b.MarkAsUsed(token, later))
	})

	t.Run("unuse clears date used", func(t *testing.T) {
		b := builder.NewBookingBuilder().UsedAt(now).BuildDomain()
		require.NoError(t, b.MarkAsUnused())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Nil(t, b.DateUsed())
	})

	t.Run("reimbursed booking is frozen", func(t *testing.T) {
		b := builder.NewBookingBuilder().UsedAt(now).BuildDomain()
		ruleID := uuid.New()
		require.NoError(t, b.MarkAsReimbursed(decimal.RequireFromString("9.50"), &ruleID, later))
		assert.Equal(t, booking.StatusReimbursed, b.Status())
		assert.Equal(t, &ruleID, b.ReimbursementRuleID())

		require.ErrorIs(t, b.MarkAsUnused(), booking.ErrAlreadyReimbursed)
		require.ErrorIs(t, b.Cancel(booking.CancellationByOfferer, later), booking.ErrAlreadyReimbursed)
		require.ErrorIs(t, b.MarkAsReimbursed(decimal.Zero, nil, later), booking.ErrAlreadyReimbursed)
	})

	t.Run("only used bookings are reimbursed", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		require.ErrorIs(t, b.MarkAsReimbursed(decimal.Zero, nil, later), booking.ErrNotUsed)
	})
}

func TestToken(t *testing.T) {
	tok, err := booking.NewToken(" abc123 ")
	require.NoError(t, err)
	assert.Equal(t, "ABC123", tok.String())

	_, err = booking.NewToken("AB-123")
	require.ErrorIs(t, err, booking.ErrInvalidToken)
	_, err = booking.NewToken("ABC12")
	require.ErrorIs(t, err, booking.ErrInvalidToken)

	generated, err := booking.NewRandomTokenGenerator().Generate()
	require.NoError(t, err)
	_, err = booking.NewToken(generated.String())
	require.NoError(t, err)
}
