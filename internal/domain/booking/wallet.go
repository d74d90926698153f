package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deposit is the credit ceiling granted to a beneficiary.
type Deposit struct {
	id             uuid.UUID
	userID         uuid.UUID
	depositType    DepositType
	amount         decimal.Decimal
	expirationDate *time.Time
	createdAt      time.Time
}

func NewDeposit(userID uuid.UUID, depositType DepositType, amount decimal.Decimal, expiration *time.Time, now time.Time) (*Deposit, error) {
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	return &Deposit{
		id:             uuid.New(),
		userID:         userID,
		depositType:    depositType,
		amount:         amount,
		expirationDate: expiration,
		createdAt:      now,
	}, nil
}

func ReconstructDeposit(id, userID uuid.UUID, depositType DepositType, amount decimal.Decimal, expiration *time.Time, createdAt time.Time) *Deposit {
	return &Deposit{
		id:             id,
		userID:         userID,
		depositType:    depositType,
		amount:         amount,
		expirationDate: expiration,
		createdAt:      createdAt,
	}
}

func (d *Deposit) ID() uuid.UUID              { return d.id }
func (d *Deposit) UserID() uuid.UUID          { return d.userID }
func (d *Deposit) Type() DepositType          { return d.depositType }
func (d *Deposit) Amount() decimal.Decimal    { return d.amount }
func (d *Deposit) ExpirationDate() *time.Time { return d.expirationDate }
func (d *Deposit) CreatedAt() time.Time       { return d.createdAt }

func (d *Deposit) IsExpired(at time.Time) bool {
	return d.expirationDate != nil && !at.Before(*d.expirationDate)
}

// Wallet is a point-in-time view of a beneficiary's credit.
// spent is the sum of total amounts of the user's active individual bookings.
type Wallet struct {
	deposit *Deposit
	spent   decimal.Decimal
	at      time.Time
}

func NewWallet(deposit *Deposit, spent decimal.Decimal, at time.Time) Wallet {
	return Wallet{deposit: deposit, spent: spent, at: at}
}

func (w Wallet) Deposit() *Deposit      { return w.deposit }
func (w Wallet) Spent() decimal.Decimal { return w.spent }

// Balance is negative when the bookings exceed the credit. An expired or
// missing deposit counts as zero credit.
func (w Wallet) Balance() decimal.Decimal {
	credit := decimal.Zero
	if w.deposit != nil && !w.deposit.IsExpired(w.at) {
		credit = w.deposit.amount
	}
	return credit.Sub(w.spent)
}

// WithBooking returns the wallet as it would be with one more active total.
func (w Wallet) WithBooking(total decimal.Decimal) Wallet {
	return Wallet{deposit: w.deposit, spent: w.spent.Add(total), at: w.at}
}
