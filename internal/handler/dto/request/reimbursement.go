package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCustomRuleRequest struct {
	OfferID       *uuid.UUID       `json:"offerId"`
	OffererID     *uuid.UUID       `json:"offererId"`
	Subcategories []string         `json:"subcategories"`
	Amount        *decimal.Decimal `json:"amount"`
	Rate          *decimal.Decimal `json:"rate"`
	ValidFrom     *time.Time       `json:"validFrom" binding:"required"`
	ValidUntil    *time.Time       `json:"validUntil"`
}

type CloseCustomRuleRequest struct {
	ValidUntil time.Time `json:"validUntil" binding:"required"`
}

type ReimburseRequest struct {
	OffererID uuid.UUID `json:"offererId" binding:"required"`
	Cutoff    time.Time `json:"cutoff" binding:"required"`
}
