package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	FirstName      string    `json:"first_name,omitempty"`
	LastName       string    `json:"last_name,omitempty"`
	DepartmentCode string    `json:"department_code,omitempty"`
	IsActive       bool      `json:"is_active"`
}

type BookingView struct {
	ID                  uuid.UUID        `json:"id"`
	UserID              uuid.UUID        `json:"user_id"`
	StockID             uuid.UUID        `json:"stock_id"`
	OfferID             uuid.UUID        `json:"offer_id"`
	OfferName           string           `json:"offer_name"`
	VenueID             uuid.UUID        `json:"venue_id"`
	VenueName           string           `json:"venue_name"`
	OffererID           uuid.UUID        `json:"offerer_id"`
	Quantity            int              `json:"quantity"`
	Amount              decimal.Decimal  `json:"amount"`
	TotalAmount         decimal.Decimal  `json:"total_amount"`
	Status              string           `json:"status"`
	Token               string           `json:"token"`
	Individual          bool             `json:"individual"`
	DateCreated         time.Time        `json:"date_created"`
	DateUsed            *time.Time       `json:"date_used,omitempty"`
	CancellationDate    *time.Time       `json:"cancellation_date,omitempty"`
	CancellationReason  *string          `json:"cancellation_reason,omitempty"`
	ReimbursementDate   *time.Time       `json:"reimbursement_date,omitempty"`
	ReimbursedAmount    *decimal.Decimal `json:"reimbursed_amount,omitempty"`
	ReimbursementRuleID *uuid.UUID       `json:"reimbursement_rule_id,omitempty"`
}

type BookingListItem struct {
	ID               uuid.UUID       `json:"id"`
	OfferID          uuid.UUID       `json:"offer_id"`
	OfferName        string          `json:"offer_name"`
	VenueName        string          `json:"venue_name"`
	Quantity         int             `json:"quantity"`
	Amount           decimal.Decimal `json:"amount"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Status           string          `json:"status"`
	Token            string          `json:"token"`
	DateCreated      time.Time       `json:"date_created"`
	DateUsed         *time.Time      `json:"date_used,omitempty"`
	CancellationDate *time.Time      `json:"cancellation_date,omitempty"`
}

// WalletView has no deposit fields when the user never received a grant.
type WalletView struct {
	UserID         uuid.UUID       `json:"user_id"`
	DepositType    *string         `json:"deposit_type,omitempty"`
	Initial        decimal.Decimal `json:"initial"`
	Spent          decimal.Decimal `json:"spent"`
	Balance        decimal.Decimal `json:"balance"`
	ExpirationDate *time.Time      `json:"expiration_date,omitempty"`
	IsExpired      bool            `json:"is_expired"`
}

type CustomRuleView struct {
	ID            uuid.UUID        `json:"id"`
	OfferID       *uuid.UUID       `json:"offer_id,omitempty"`
	OffererID     *uuid.UUID       `json:"offerer_id,omitempty"`
	Subcategories []string         `json:"subcategories"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Rate          *decimal.Decimal `json:"rate,omitempty"`
	ValidFrom     time.Time        `json:"valid_from"`
	ValidUntil    *time.Time       `json:"valid_until,omitempty"`
	Description   string           `json:"description"`
	CreatedAt     time.Time        `json:"created_at"`
}

// ReimbursementView is what a booking would be paid under the current rules.
// RuleID is nil when the fallback rule applies.
type ReimbursementView struct {
	BookingID       uuid.UUID       `json:"booking_id"`
	Status          string          `json:"status"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Amount          decimal.Decimal `json:"amount"`
	RuleID          *uuid.UUID      `json:"rule_id,omitempty"`
	RuleDescription string          `json:"rule_description"`
}
