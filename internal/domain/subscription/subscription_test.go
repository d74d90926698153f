//go:build unit

package subscription_test

import (
	"testing"
	"time"

	"pcapi/internal/domain/booking"
	"pcapi/internal/domain/subscription"
	"pcapi/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartmentCode(t *testing.T) {
	cases := map[string]string{
		"75011": "75",
		"97400": "974",
		"98400": "984",
		"20000": "20",
		"1":     "1",
	}
	for postalCode, want := range cases {
		assert.Equal(t, want, subscription.DepartmentCode(postalCode), postalCode)
	}
}

func TestIsEligibleDepartment(t *testing.T) {
	for _, dep := range []string{"975", "977", "978", "984", "986", "987", "988", "989"} {
		assert.False(t, subscription.IsEligibleDepartment(dep), dep)
	}
	for _, dep := range []string{"75", "971", "974", "976", "2A"} {
		assert.True(t, subscription.IsEligibleDepartment(dep), dep)
	}
}

func TestIsValidIDPieceNumber(t *testing.T) {
	assert.True(t, subscription.IsValidIDPieceNumber("12AB34567"))
	assert.True(t, subscription.IsValidIDPieceNumber("1234 5678 9012"))
	assert.True(t, subscription.IsValidIDPieceNumber("ab1234567"))
	assert.False(t, subscription.IsValidIDPieceNumber(""))
	assert.False(t, subscription.IsValidIDPieceNumber("12345678"))
	assert.False(t, subscription.IsValidIDPieceNumber("1234567890"))
	assert.False(t, subscription.IsValidIDPieceNumber("12345678-"))
	assert.Equal(t, "AB1234567", subscription.NormalizeIDPieceNumber(" ab12 34567 "))
}

func TestGrantFor(t *testing.T) {
	at := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("age18 grant lasts two years", func(t *testing.T) {
		g, err := subscription.GrantFor(user.EligibilityAge18, time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC), at)
		require.NoError(t, err)
		assert.Equal(t, booking.DepositAge18, g.Type)
		assert.Equal(t, "300", g.Amount.String())
		assert.Equal(t, at.AddDate(2, 0, 0), g.ExpirationDate)
	})

	cases := []struct {
		name   string
		birth  time.Time
		amount string
		errIs  error
	}{
		{name: "15 years old", birth: time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC), amount: "20"},
		{name: "turns 16 today", birth: time.Date(2008, 6, 10, 0, 0, 0, 0, time.UTC), amount: "30"},
		{name: "still 15 until tomorrow", birth: time.Date(2008, 6, 11, 0, 0, 0, 0, time.UTC), amount: "20"},
		{name: "17 years old", birth: time.Date(2006, 12, 31, 0, 0, 0, 0, time.UTC), amount: "30"},
		{name: "14 years old", birth: time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC), errIs: subscription.ErrBeneficiaryIsNotEligible},
		{name: "already 18", birth: time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC), errIs: subscription.ErrBeneficiaryIsNotEligible},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := subscription.GrantFor(user.EligibilityUnderage, c.birth, at)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, booking.DepositUnderage, g.Type)
			assert.Equal(t, c.amount, g.Amount.String())
			assert.Equal(t, c.birth.AddDate(18, 0, 0), g.ExpirationDate)
		})
	}
}
