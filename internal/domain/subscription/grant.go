package subscription

import (
	"time"

	"pcapi/internal/domain/booking"
	"pcapi/internal/domain/user"

	"github.com/shopspring/decimal"
)

var (
	age18Amount      = decimal.NewFromInt(300)
	age15Amount      = decimal.NewFromInt(20)
	age16To17Amount  = decimal.NewFromInt(30)
	age18GrantPeriod = 2
)

// Grant is the deposit a new beneficiary receives.
type Grant struct {
	Type           booking.DepositType
	Amount         decimal.Decimal
	ExpirationDate time.Time
}

// GrantFor computes the deposit for the given eligibility. Underage grants
// depend on the age at now and expire on the 18th birthday.
func GrantFor(e user.Eligibility, dateOfBirth, now time.Time) (Grant, error) {
	if e == user.EligibilityAge18 {
		return Grant{
			Type:           booking.DepositAge18,
			Amount:         age18Amount,
			ExpirationDate: now.AddDate(age18GrantPeriod, 0, 0),
		}, nil
	}

	expiration := dateOfBirth.AddDate(18, 0, 0)
	var amount decimal.Decimal
	switch AgeAt(dateOfBirth, now) {
	case 15:
		amount = age15Amount
	case 16, 17:
		amount = age16To17Amount
	default:
		return Grant{}, reject(ReasonNotEligible, "age is not eligible to the underage grant")
	}
	return Grant{Type: booking.DepositUnderage, Amount: amount, ExpirationDate: expiration}, nil
}

func AgeAt(dateOfBirth, at time.Time) int {
	age := at.Year() - dateOfBirth.Year()
	if !birthdayPassed(dateOfBirth, at) {
		age--
	}
	return age
}

func birthdayPassed(dateOfBirth, at time.Time) bool {
	if at.Month() != dateOfBirth.Month() {
		return at.Month() > dateOfBirth.Month()
	}
	return at.Day() >= dateOfBirth.Day()
}
