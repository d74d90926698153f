package reimbursement

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrAmountOrRateRequired = errors.New("exactly one of amount or rate must be set")
	ErrNegativeAmount       = errors.New("reimbursed amount cannot be negative")
	ErrRateOutOfRange       = errors.New("rate must be between 0 and 1")
	ErrMissingStart         = errors.New("timespan start is mandatory")
	ErrEmptyTimespan        = errors.New("timespan end must be after its start")
)

var one = decimal.NewFromInt(1)

// Compensation is either a fixed amount per unit or a rate of the booking total.
type Compensation struct {
	amount *decimal.Decimal
	rate   *decimal.Decimal
}

func NewAmountCompensation(amount decimal.Decimal) (Compensation, error) {
	if amount.IsNegative() {
		return Compensation{}, ErrNegativeAmount
	}
	return Compensation{amount: &amount}, nil
}

func NewRateCompensation(rate decimal.Decimal) (Compensation, error) {
	if rate.IsNegative() || rate.GreaterThan(one) {
		return Compensation{}, ErrRateOutOfRange
	}
	return Compensation{rate: &rate}, nil
}

func NewCompensation(amount, rate *decimal.Decimal) (Compensation, error) {
	switch {
	case amount != nil && rate == nil:
		return NewAmountCompensation(*amount)
	case rate != nil && amount == nil:
		return NewRateCompensation(*rate)
	default:
		return Compensation{}, ErrAmountOrRateRequired
	}
}

func (c Compensation) Amount() *decimal.Decimal { return c.amount }
func (c Compensation) Rate() *decimal.Decimal   { return c.rate }

// Apply rounds to the cent, half away from zero.
func (c Compensation) Apply(b Booking) decimal.Decimal {
	if c.amount != nil {
		return c.amount.Mul(decimal.NewFromInt(int64(b.Quantity))).Round(2)
	}
	return b.TotalAmount().Mul(*c.rate).Round(2)
}

// Timespan is the half-open interval [from, until). A nil until is open ended.
type Timespan struct {
	from  time.Time
	until *time.Time
}

func NewTimespan(from time.Time, until *time.Time) (Timespan, error) {
	if from.IsZero() {
		return Timespan{}, ErrMissingStart
	}
	if until != nil && !until.After(from) {
		return Timespan{}, ErrEmptyTimespan
	}
	return Timespan{from: from, until: until}, nil
}

func (t Timespan) From() time.Time   { return t.from }
func (t Timespan) Until() *time.Time { return t.until }
func (t Timespan) IsOpenEnded() bool { return t.until == nil }

func (t Timespan) Contains(at time.Time) bool {
	if at.Before(t.from) {
		return false
	}
	return t.until == nil || at.Before(*t.until)
}

func (t Timespan) Overlaps(other Timespan) bool {
	startsBeforeOtherEnds := other.until == nil || t.from.Before(*other.until)
	otherStartsBeforeEnd := t.until == nil || other.from.Before(*t.until)
	return startsBeforeOtherEnds && otherStartsBeforeEnd
}

// WithUntil returns the timespan closed at until.
func (t Timespan) WithUntil(until time.Time) (Timespan, error) {
	return NewTimespan(t.from, &until)
}
