package booking

// Change describes how a booking write affects the wallet.
type Change struct {
	IsNew           bool
	QuantityChanged bool
	AmountChanged   bool
	LeavesCancelled bool
}

func (c Change) affectsWallet() bool {
	return c.IsNew || c.QuantityChanged || c.AmountChanged || c.LeavesCancelled
}

// CheckStockCapacity verifies activeQuantity, the sum of quantities of
// non-cancelled bookings on the stock including the one being written,
// fits in a limited stock.
func CheckStockCapacity(stock *Stock, activeQuantity int) error {
	if stock.quantity == nil {
		return nil
	}
	if activeQuantity > *stock.quantity {
		return ErrTooManyBookings
	}
	return nil
}

// CheckWalletBalance expects wallet to already count b when b is active.
func CheckWalletBalance(b *Booking, change Change, wallet Wallet) error {
	if !b.individual || !change.affectsWallet() {
		return nil
	}
	if !b.amount.IsPositive() {
		return nil
	}
	if wallet.Balance().IsNegative() {
		return ErrInsufficientFunds
	}
	return nil
}
