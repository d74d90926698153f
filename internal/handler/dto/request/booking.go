package request

import (
	"pcapi/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	StockID  uuid.UUID `json:"stockId" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1,max=2"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"omitempty,oneof=BENEFICIARY OFFERER EXPIRED FRAUD"`
}

// ReasonOr returns the requested reason, or def when none was given.
func (r CancelBookingRequest) ReasonOr(def booking.CancellationReason) (booking.CancellationReason, error) {
	if r.Reason == "" {
		return def, nil
	}
	return booking.NewCancellationReason(r.Reason)
}

type UseBookingRequest struct {
	Token string `json:"token" binding:"required,len=6"`
}
