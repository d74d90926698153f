package response

import (
	"time"

	"pcapi/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubscriptionResponse struct {
	UserID         uuid.UUID       `json:"userId"`
	Role           string          `json:"role"`
	Upgraded       bool            `json:"upgraded"`
	DepositType    string          `json:"depositType"`
	DepositAmount  decimal.Decimal `json:"depositAmount"`
	ExpirationDate time.Time       `json:"expirationDate"`
}

func FromSubscriptionResult(r *commands.SubscriptionResult) *SubscriptionResponse {
	return &SubscriptionResponse{
		UserID:         r.UserID,
		Role:           r.Role.String(),
		Upgraded:       r.Upgraded,
		DepositType:    string(r.DepositType),
		DepositAmount:  r.DepositAmount,
		ExpirationDate: r.ExpirationDate,
	}
}
