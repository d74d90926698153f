package response

import (
	"time"

	"pcapi/internal/usecase/commands"
	"pcapi/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type CustomRuleResponse struct {
	ID            uuid.UUID        `json:"id"`
	OfferID       *uuid.UUID       `json:"offerId,omitempty"`
	OffererID     *uuid.UUID       `json:"offererId,omitempty"`
	Subcategories []string         `json:"subcategories"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Rate          *decimal.Decimal `json:"rate,omitempty"`
	ValidFrom     time.Time        `json:"validFrom"`
	ValidUntil    *time.Time       `json:"validUntil,omitempty"`
	Description   string           `json:"description"`
	CreatedAt     time.Time        `json:"createdAt"`
}

type ReimbursementResponse struct {
	BookingID       uuid.UUID       `json:"bookingId"`
	Status          string          `json:"status"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Amount          decimal.Decimal `json:"amount"`
	RuleID          *uuid.UUID      `json:"ruleId,omitempty"`
	RuleDescription string          `json:"ruleDescription"`
}

type ReimbursementRunResponse struct {
	Reimbursed int             `json:"reimbursed"`
	Failed     []uuid.UUID     `json:"failed"`
	Total      decimal.Decimal `json:"total"`
}

func FromCustomRuleView(v *queries.CustomRuleView) *CustomRuleResponse {
	res := &CustomRuleResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromCustomRuleViews(vs []*queries.CustomRuleView) []CustomRuleResponse {
	res := make([]CustomRuleResponse, 0, len(vs))
	_ = copier.Copy(&res, vs)
	return res
}

func FromReimbursementView(v *queries.ReimbursementView) *ReimbursementResponse {
	res := &ReimbursementResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromReimbursementSummary(s *commands.ReimbursementSummary) *ReimbursementRunResponse {
	failed := s.Failed
	if failed == nil {
		failed = []uuid.UUID{}
	}
	return &ReimbursementRunResponse{
		Reimbursed: s.Reimbursed,
		Failed:     failed,
		Total:      s.Total,
	}
}
